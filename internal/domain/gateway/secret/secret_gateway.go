package secret

import "context"

// SecretGateway reads the string payload stored under a secret identifier.
type SecretGateway interface {
	GetSecretString(ctx context.Context, secretID string) (string, error)
}
