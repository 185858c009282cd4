package secret

import (
	"context"
	"fmt"

	"weather-etl/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerClient is the subset of the Secrets Manager API used here.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type SecretsManagerGateway struct {
	client SecretsManagerClient
}

var _ SecretGateway = (*SecretsManagerGateway)(nil)

func NewSecretsManagerGateway(client SecretsManagerClient) *SecretsManagerGateway {
	return &SecretsManagerGateway{client: client}
}

func (gateway *SecretsManagerGateway) GetSecretString(ctx context.Context, secretID string) (string, error) {
	if secretID == "" {
		return "", fmt.Errorf("secret identifier: %w", model.ErrConfigurationMissing)
	}

	output, err := gateway.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		return "", fmt.Errorf("get secret %s: %w", secretID, err)
	}
	if output.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string payload: %w", secretID, model.ErrNoData)
	}
	return *output.SecretString, nil
}
