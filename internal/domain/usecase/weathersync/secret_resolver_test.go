package weathersync

import (
	"context"
	"errors"
	"testing"

	"weather-etl/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretGateway struct {
	payload string
	err     error
	calls   int
}

func (f *fakeSecretGateway) GetSecretString(context.Context, string) (string, error) {
	f.calls++
	return f.payload, f.err
}

func TestParseAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "json with api-key", payload: `{"api-key":"abc123"}`, expected: "abc123"},
		{name: "json with extra fields", payload: `{"user":"x","api-key":"abc123"}`, expected: "abc123"},
		{name: "json with numeric api-key", payload: `{"api-key":12345}`, expected: "12345"},
		{name: "bare string", payload: `abc123`, expected: "abc123"},
		{name: "double quoted", payload: `"abc123"`, expected: "abc123"},
		{name: "single quoted", payload: `'abc123'`, expected: "abc123"},
		{name: "mixed quotes", payload: `"'abc123'"`, expected: "abc123"},
		{name: "json lacking field", payload: `{"key":"abc123"}`, expected: `{"key":"abc123"}`},
		{name: "json with empty api-key", payload: `{"api-key":""}`, expected: `{"api-key":""}`},
		{name: "json with null api-key", payload: `{"api-key":null}`, expected: `{"api-key":null}`},
		{name: "json array", payload: `["abc"]`, expected: `["abc"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAPIKey(tt.payload))
		})
	}
}

func TestResolve(t *testing.T) {
	gateway := &fakeSecretGateway{payload: `{"api-key":"abc123"}`}

	apiKey, err := NewSecretResolver(gateway).Resolve(context.Background(), "weather/api")

	require.NoError(t, err)
	assert.Equal(t, "abc123", apiKey)
}

func TestResolve_Failures(t *testing.T) {
	t.Run("unset identifier", func(t *testing.T) {
		gateway := &fakeSecretGateway{payload: "abc"}
		_, err := NewSecretResolver(gateway).Resolve(context.Background(), "")
		assert.ErrorIs(t, err, model.ErrConfigurationMissing)
		assert.Zero(t, gateway.calls)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := NewSecretResolver(&fakeSecretGateway{}).Resolve(context.Background(), "weather/api")
		assert.ErrorIs(t, err, model.ErrNoData)
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := NewSecretResolver(&fakeSecretGateway{err: errors.New("denied")}).Resolve(context.Background(), "weather/api")
		assert.Error(t, err)
	})
}

func TestResolveAPIKey_FallsBackToPlaceholder(t *testing.T) {
	resolver := NewSecretResolver(&fakeSecretGateway{err: errors.New("ResourceNotFoundException")})

	assert.Equal(t, PlaceholderAPIKey, resolver.ResolveAPIKey(context.Background(), "weather/api"))
	assert.Equal(t, PlaceholderAPIKey, resolver.ResolveAPIKey(context.Background(), ""))
	assert.Equal(t, "YOUR_API_KEY", PlaceholderAPIKey)
}
