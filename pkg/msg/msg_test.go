package msg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	require.NoError(t, Init([]byte(`
test:
  plain: "Export started"
  one: "Uploaded to s3://{0}"
  two: "Processed {0} records in {1}"
  object: "Payload {0}"
`)))

	assert.Equal(t, "Export started", GetMessage("test.plain"))
	assert.Equal(t, "Uploaded to s3://bucket/key.csv", GetMessage("test.one", "bucket/key.csv"))
	assert.Equal(t, "Processed 3 records in 1.5", GetMessage("test.two", 3, 1.5))
	assert.Equal(t, `Payload {"a":1}`, GetMessage("test.object", map[string]int{"a": 1}))
	assert.Equal(t, "Message not found: test.missing", GetMessage("test.missing"))
}
