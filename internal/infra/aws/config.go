package aws

import (
	"context"
	"fmt"

	"weather-etl/configs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Clients bundles the service clients built from a single aws.Config.
type Clients struct {
	Config         aws.Config
	RDSData        *rdsdata.Client
	S3             *s3.Client
	SecretsManager *secretsmanager.Client
	SQS            *sqs.Client
	endpoint       string
}

// LoadConfig resolves the SDK configuration. Static credentials are used only when both
// keys are set; otherwise the default credential chain applies.
func LoadConfig(ctx context.Context, cfg configs.AWSConfig) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsConfig, nil
}

// NewClients builds every service client. A custom endpoint (LocalStack) is applied to all
// of them and forces path-style S3 addressing.
func NewClients(ctx context.Context, cfg configs.AWSConfig) (*Clients, error) {
	awsConfig, err := LoadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	clients := &Clients{Config: awsConfig, endpoint: cfg.Endpoint}
	clients.RDSData = rdsdata.NewFromConfig(awsConfig, func(o *rdsdata.Options) {
		o.BaseEndpoint = clients.baseEndpoint()
	})
	clients.S3 = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = clients.baseEndpoint()
		o.UsePathStyle = cfg.Endpoint != ""
	})
	clients.SecretsManager = secretsmanager.NewFromConfig(awsConfig, func(o *secretsmanager.Options) {
		o.BaseEndpoint = clients.baseEndpoint()
	})
	clients.SQS = sqs.NewFromConfig(awsConfig, func(o *sqs.Options) {
		o.BaseEndpoint = clients.baseEndpoint()
	})
	return clients, nil
}

func (c *Clients) baseEndpoint() *string {
	if c.endpoint == "" {
		return nil
	}
	return aws.String(c.endpoint)
}
