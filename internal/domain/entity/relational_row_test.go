package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationalRow_KeepsInsertionOrder(t *testing.T) {
	row := NewRelationalRow()
	row.Set("city", "Rome")
	row.Set("temperature", 20.5)
	row.Set("description", nil)
	row.Set("city", "Milan")

	assert.Equal(t, []string{"city", "temperature", "description"}, row.Columns())
	assert.Equal(t, 3, row.Len())

	city, ok := row.Get("city")
	assert.True(t, ok)
	assert.Equal(t, "Milan", city)

	description, ok := row.Get("description")
	assert.True(t, ok)
	assert.Nil(t, description)

	_, ok = row.Get("pressure")
	assert.False(t, ok)
}

func TestRelationalRow_ZeroValueIsUsable(t *testing.T) {
	var row RelationalRow
	row.Set("humidity", int64(60))

	assert.Equal(t, []string{"humidity"}, row.Columns())
}
