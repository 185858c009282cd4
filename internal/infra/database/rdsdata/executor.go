package rdsdata

import (
	"context"
	"fmt"

	"weather-etl/configs"
	"weather-etl/internal/domain/gateway/db"
	"weather-etl/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
)

// Client is the subset of the RDS Data API used by the executor.
type Client interface {
	ExecuteStatement(ctx context.Context, params *rdsdata.ExecuteStatementInput, optFns ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error)
}

// Executor runs statements through the RDS Data API against an Aurora cluster.
type Executor struct {
	client     Client
	clusterARN string
	secretARN  string
	database   string
}

var _ db.StatementExecutor = (*Executor)(nil)

func NewExecutor(client Client, cfg configs.DatabaseConfig) *Executor {
	return &Executor{
		client:     client,
		clusterARN: cfg.ClusterARN,
		secretARN:  cfg.SecretARN,
		database:   cfg.Name,
	}
}

func (e *Executor) ExecuteStatement(ctx context.Context, statement model.Statement) (*model.StatementResult, error) {
	if e.clusterARN == "" || e.secretARN == "" {
		return nil, fmt.Errorf("database cluster and secret ARNs: %w", model.ErrConfigurationMissing)
	}

	input := &rdsdata.ExecuteStatementInput{
		ResourceArn:           aws.String(e.clusterARN),
		SecretArn:             aws.String(e.secretARN),
		Sql:                   aws.String(statement.SQL),
		IncludeResultMetadata: statement.IncludeResultMetadata,
		Parameters:            toSqlParameters(statement.Parameters),
	}
	if e.database != "" {
		input.Database = aws.String(e.database)
	}

	output, err := e.client.ExecuteStatement(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("rds data execute statement: %w", err)
	}
	return fromOutput(output), nil
}

func toSqlParameters(parameters []model.SqlParameter) []types.SqlParameter {
	if len(parameters) == 0 {
		return nil
	}

	out := make([]types.SqlParameter, 0, len(parameters))
	for _, p := range parameters {
		out = append(out, types.SqlParameter{
			Name:     aws.String(p.Name),
			Value:    toField(p.Value),
			TypeHint: types.TypeHint(p.TypeHint),
		})
	}
	return out
}

func toField(field model.Field) types.Field {
	switch {
	case field.StringValue != nil:
		return &types.FieldMemberStringValue{Value: *field.StringValue}
	case field.LongValue != nil:
		return &types.FieldMemberLongValue{Value: *field.LongValue}
	case field.DoubleValue != nil:
		return &types.FieldMemberDoubleValue{Value: *field.DoubleValue}
	case field.BooleanValue != nil:
		return &types.FieldMemberBooleanValue{Value: *field.BooleanValue}
	default:
		return &types.FieldMemberIsNull{Value: true}
	}
}

func fromOutput(output *rdsdata.ExecuteStatementOutput) *model.StatementResult {
	result := &model.StatementResult{NumberOfRecordsUpdated: output.NumberOfRecordsUpdated}

	for _, column := range output.ColumnMetadata {
		result.ColumnMetadata = append(result.ColumnMetadata, model.ColumnMetadata{
			Label:    aws.ToString(column.Label),
			TypeName: aws.ToString(column.TypeName),
		})
	}

	for _, record := range output.Records {
		row := make([]model.Field, 0, len(record))
		for _, field := range record {
			row = append(row, fromField(field))
		}
		result.Records = append(result.Records, row)
	}
	return result
}

// fromField maps a Data API cell. Blob and array values have no scalar form and come back
// unpopulated.
func fromField(field types.Field) model.Field {
	switch v := field.(type) {
	case *types.FieldMemberStringValue:
		return model.StringField(v.Value)
	case *types.FieldMemberLongValue:
		return model.LongField(v.Value)
	case *types.FieldMemberDoubleValue:
		return model.DoubleField(v.Value)
	case *types.FieldMemberBooleanValue:
		return model.BooleanField(v.Value)
	case *types.FieldMemberIsNull:
		if v.Value {
			return model.NullField()
		}
		return model.Field{}
	default:
		return model.Field{}
	}
}
