package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDayWindowStart(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	assert.NoError(t, err)

	now := time.Date(2022, 6, 15, 18, 45, 12, 0, madrid)
	start := DayWindowStart(now)

	assert.Equal(t, time.Date(2022, 6, 15, 0, 0, 0, 0, madrid), start)
	assert.Equal(t, madrid, start.Location())
}

func TestMonthWindowStart(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	assert.NoError(t, err)

	now := time.Date(2022, 6, 15, 18, 45, 12, 0, madrid)
	start := MonthWindowStart(now)

	assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, madrid), start)
}

func TestLimitExceeded(t *testing.T) {
	limit := decimal.RequireFromString("50")
	spent := decimal.RequireFromString("40")

	// 40 spent, 20 more breaks a limit of 50.
	assert.True(t, LimitExceeded(limit, spent, decimal.RequireFromString("20")))

	// Spending exactly up to the limit is allowed.
	assert.False(t, LimitExceeded(limit, spent, decimal.RequireFromString("10")))
	assert.False(t, LimitExceeded(limit, decimal.Zero, limit))
	assert.True(t, LimitExceeded(limit, decimal.Zero, decimal.RequireFromString("50.01")))
}
