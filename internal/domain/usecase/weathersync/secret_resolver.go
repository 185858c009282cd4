package weathersync

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"weather-etl/internal/domain/gateway/secret"
	"weather-etl/internal/domain/model"
	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"

	"go.uber.org/zap"
)

// PlaceholderAPIKey is sent when the API key secret cannot be resolved. The upstream then
// rejects the call and the run fails at the fetch stage.
const PlaceholderAPIKey = "YOUR_API_KEY"

const apiKeyField = "api-key"

type SecretResolver struct {
	gateway secret.SecretGateway
}

func NewSecretResolver(gateway secret.SecretGateway) *SecretResolver {
	return &SecretResolver{gateway: gateway}
}

// Resolve reads the secret and parses the credential out of it.
func (r *SecretResolver) Resolve(ctx context.Context, secretID string) (string, error) {
	if secretID == "" {
		return "", fmt.Errorf("api key secret name: %w", model.ErrConfigurationMissing)
	}

	payload, err := r.gateway.GetSecretString(ctx, secretID)
	if err != nil {
		return "", err
	}
	if payload == "" {
		return "", fmt.Errorf("secret %s is empty: %w", secretID, model.ErrNoData)
	}
	return ParseAPIKey(payload), nil
}

// ResolveAPIKey never fails: any resolution error is logged and PlaceholderAPIKey returned.
func (r *SecretResolver) ResolveAPIKey(ctx context.Context, secretID string) string {
	apiKey, err := r.Resolve(ctx, secretID)
	if err != nil {
		log.Error(msg.GetMessage("sync.placeholder-key"), zap.String("secret", secretID), zap.Error(err))
		return PlaceholderAPIKey
	}
	log.Info("API key resolved", zap.String("secret", secretID))
	return apiKey
}

// ParseAPIKey accepts two secret formats: a JSON object with a non-empty "api-key" field,
// or a bare value. Anything that is not the first format is returned trimmed of surrounding
// quote characters.
func ParseAPIKey(payload string) string {
	var document map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &document); err == nil {
		if raw, ok := document[apiKeyField]; ok {
			if value := rawToString(raw); value != "" {
				return value
			}
		}
		log.Debug("Secret JSON has no api-key field, using raw payload")
	}
	return strings.Trim(payload, `"'`)
}

func rawToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}
