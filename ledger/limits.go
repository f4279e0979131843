package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

// checkLimits enforces the rolling daily/monthly spend limits. It must run
// inside the same transaction that holds the account row lock, otherwise two
// concurrent debits could both pass the check before either commits.
func checkLimits(tx *gorm.DB, account *models.Account, amount decimal.Decimal) error {
	if !account.DailyLimit.Valid && !account.MonthlyLimit.Valid {
		return nil
	}

	now := time.Now().In(config.App.Location())

	if account.DailyLimit.Valid {
		spent := expenseSumSince(tx, account.ID, DayWindowStart(now))
		if LimitExceeded(account.DailyLimit.Decimal, spent, amount) {
			return ErrDailyLimitExceeded
		}
	}

	if account.MonthlyLimit.Valid {
		spent := expenseSumSince(tx, account.ID, MonthWindowStart(now))
		if LimitExceeded(account.MonthlyLimit.Decimal, spent, amount) {
			return ErrMonthlyLimitExceeded
		}
	}

	return nil
}

// DayWindowStart is midnight of the current calendar day in the tenant-local
// timezone.
func DayWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// MonthWindowStart is the first day of the current calendar month.
func MonthWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// LimitExceeded reports whether spending m on top of spent breaks the limit.
func LimitExceeded(limit, spent, m decimal.Decimal) bool {
	return spent.Add(m).GreaterThan(limit)
}

func expenseSumSince(tx *gorm.DB, account_id uint64, since time.Time) decimal.Decimal {
	var result struct {
		Total decimal.Decimal
	}

	tx.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("account_id = ? AND status = ? AND kind IN ? AND created_at >= ?",
			account_id, types.StatusCompleted, []types.TransactionKind{types.KindExpense, types.KindTransferOut}, since).
		Scan(&result)

	return result.Total
}
