package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("1299.00")
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.RequireFromString("1299.00")))

	_, err = ParsePrice("-1.00")
	assert.Error(t, err, "negative prices are rejected")

	_, err = ParsePrice("abc")
	assert.Error(t, err)

	_, err = ParsePrice("")
	assert.Error(t, err)
}
