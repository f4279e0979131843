package ledger

import (
	"errors"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"gorm.io/gorm"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/controllers/entities"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

// GetHistory returns per-day aggregates of the account's completed
// transactions over the last period_days. Read-only, no locking; serving
// from a replica is fine.
func GetHistory(account_id uint64, period_days int) ([]entities.HistoryEntry, error) {
	var account *models.Account
	result := config.DataBase.First(&account, "id = ?", account_id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	} else if result.Error != nil {
		return nil, result.Error
	}

	if period_days <= 0 {
		period_days = 30
	}

	location := config.App.Location()
	since := DayWindowStart(time.Now().In(location)).AddDate(0, 0, -period_days)

	var transactions []*models.Transaction
	config.DataBase.
		Where("account_id = ? AND status = ? AND created_at >= ?", account_id, types.StatusCompleted, since).
		Order("created_at asc").
		Find(&transactions)

	return AggregateHistory(transactions, location), nil
}

// AggregateHistory folds completed transactions into one entry per calendar
// day, ordered by date. Amount is the closing balance of the day, Change the
// net signed movement.
func AggregateHistory(transactions []*models.Transaction, location *time.Location) []entities.HistoryEntry {
	tree := treemap.NewWithStringComparator()

	for _, trans := range transactions {
		date := trans.CreatedAt.In(location).Format("2006-01-02")

		entry := entities.HistoryEntry{Date: date}
		if value, found := tree.Get(date); found {
			entry = value.(entities.HistoryEntry)
		}

		entry.Change = entry.Change.Add(trans.SignedAmount())
		entry.Amount = trans.BalanceAfter
		entry.Description = trans.Description

		tree.Put(date, entry)
	}

	history := make([]entities.HistoryEntry, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		history = append(history, it.Value().(entities.HistoryEntry))
	}

	return history
}

// ExportForAccounting flattens one completed transaction for the external
// bookkeeping system.
func ExportForAccounting(transaction_id uint64) (*entities.AccountingRecord, error) {
	var trans *models.Transaction
	result := config.DataBase.First(&trans, "id = ?", transaction_id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	} else if result.Error != nil {
		return nil, result.Error
	}

	record := trans.ToAccountingRecord(trans.Account())

	return &record, nil
}
