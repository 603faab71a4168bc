package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "1500000", FormatWithPrecision(decimal.RequireFromString("1500000.456"), 0))
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "10.00", FormatWithPrecision(decimal.NewFromInt(10), 2))
}
