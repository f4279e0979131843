package concerns

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLessThanOrEqTo(t *testing.T) {
	validator := PrecisionValidator{}

	assert.True(t, validator.LessThanOrEqTo(decimal.RequireFromString("1.123456"), 6))
	assert.True(t, validator.LessThanOrEqTo(decimal.RequireFromString("1.1"), 6))
	assert.True(t, validator.LessThanOrEqTo(decimal.RequireFromString("100"), 0))
	assert.False(t, validator.LessThanOrEqTo(decimal.RequireFromString("1.1234567"), 6))
	assert.False(t, validator.LessThanOrEqTo(decimal.RequireFromString("0.5"), 0))
}
