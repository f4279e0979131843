package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

func TestAggregateHistory(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	assert.NoError(t, err)

	transactions := []*models.Transaction{
		{
			Kind:          types.KindIncome,
			Amount:        decimal.RequireFromString("100"),
			BalanceAfter:  decimal.RequireFromString("100"),
			Status:        types.StatusCompleted,
			Description:   "solar production",
			CreatedAt:     time.Date(2022, 6, 1, 9, 0, 0, 0, madrid),
		},
		{
			Kind:          types.KindExpense,
			Amount:        decimal.RequireFromString("30"),
			BalanceAfter:  decimal.RequireFromString("70"),
			Status:        types.StatusCompleted,
			Description:   "grid usage",
			CreatedAt:     time.Date(2022, 6, 1, 18, 30, 0, 0, madrid),
		},
		{
			Kind:          types.KindIncome,
			Amount:        decimal.RequireFromString("10"),
			BalanceAfter:  decimal.RequireFromString("80"),
			Status:        types.StatusCompleted,
			Description:   "solar production",
			CreatedAt:     time.Date(2022, 6, 3, 12, 0, 0, 0, madrid),
		},
	}

	history := AggregateHistory(transactions, madrid)
	assert.Len(t, history, 2)

	assert.Equal(t, "2022-06-01", history[0].Date)
	assert.True(t, history[0].Change.Equal(decimal.RequireFromString("70")))
	assert.True(t, history[0].Amount.Equal(decimal.RequireFromString("70")))

	assert.Equal(t, "2022-06-03", history[1].Date)
	assert.True(t, history[1].Change.Equal(decimal.RequireFromString("10")))
	assert.True(t, history[1].Amount.Equal(decimal.RequireFromString("80")))
}

func TestAggregateHistoryEmpty(t *testing.T) {
	history := AggregateHistory(nil, time.UTC)

	assert.NotNil(t, history)
	assert.Len(t, history, 0)
}

func TestAggregateHistoryOrdersAcrossMonths(t *testing.T) {
	transactions := []*models.Transaction{
		{
			Kind:         types.KindIncome,
			Amount:       decimal.RequireFromString("5"),
			BalanceAfter: decimal.RequireFromString("15"),
			Status:       types.StatusCompleted,
			CreatedAt:    time.Date(2022, 10, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			Kind:         types.KindIncome,
			Amount:       decimal.RequireFromString("10"),
			BalanceAfter: decimal.RequireFromString("10"),
			Status:       types.StatusCompleted,
			CreatedAt:    time.Date(2022, 9, 28, 8, 0, 0, 0, time.UTC),
		},
	}

	history := AggregateHistory(transactions, time.UTC)
	assert.Len(t, history, 2)
	assert.Equal(t, "2022-09-28", history[0].Date)
	assert.Equal(t, "2022-10-02", history[1].Date)
}
