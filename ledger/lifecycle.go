package ledger

import (
	"time"

	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

// ProcessTransaction applies a pending (deferred) transaction: pending →
// completed under the account row lock. The transaction row itself is locked
// first so a concurrent cancel cannot race the processing.
func ProcessTransaction(transaction_id uint64) (*models.Transaction, error) {
	var trans *models.Transaction
	var account *models.Account

	err := withRetries(func() error {
		return config.DataBase.Transaction(func(tx *gorm.DB) error {
			var err error
			trans, err = lockTransaction(tx, transaction_id)
			if err != nil {
				return err
			}

			if !trans.IsPending() {
				return ErrNotPending
			}

			account, err = lockAccount(tx, trans.AccountID)
			if err != nil {
				return err
			}

			if models.ExpenseKind(trans.Kind) {
				if account.IsFrozen {
					return ErrAccountFrozen
				}
				if err := checkLimits(tx, account, trans.Amount); err != nil {
					return err
				}
			}

			balance_before := account.Amount
			balance_after := balance_before.Add(trans.SignedAmount())

			if balance_after.IsNegative() && !account.AllowNegative() {
				return ErrInsufficientBalance
			}

			if err := tx.Model(trans).Updates(map[string]interface{}{
				"status":         types.StatusCompleted,
				"balance_before": balance_before,
				"balance_after":  balance_after,
			}).Error; err != nil {
				return err
			}

			now := time.Now()
			if err := tx.Model(&models.Account{}).Where("id = ?", account.ID).Updates(map[string]interface{}{
				"amount":              balance_after,
				"last_transaction_at": now,
			}).Error; err != nil {
				return err
			}

			trans.Status = types.StatusCompleted
			trans.BalanceBefore = balance_before
			trans.BalanceAfter = balance_after
			account.Amount = balance_after
			account.LastTransactionAt = null.TimeFrom(now)

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	account.TriggerEvent()
	trans.WriteToInflux()

	return trans, nil
}

// CancelTransaction abandons a pending transaction. Legal only while pending;
// the row lock serializes it against a concurrent process.
func CancelTransaction(transaction_id uint64) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		trans, err := lockTransaction(tx, transaction_id)
		if err != nil {
			return err
		}

		if !trans.IsPending() {
			return ErrNotPending
		}

		return tx.Model(trans).Update("status", types.StatusCancelled).Error
	})
}

// FailTransaction marks a transaction failed by explicit operator action.
// Failing a completed row does not rewind the balance; the divergence is
// expected to be corrected by a reversal.
func FailTransaction(transaction_id uint64, reason string) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		trans, err := lockTransaction(tx, transaction_id)
		if err != nil {
			return err
		}

		if !trans.IsPending() && !trans.IsCompleted() {
			return ErrNotPending
		}

		metadata := trans.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		metadata["failure_reason"] = reason

		return tx.Model(trans).Updates(map[string]interface{}{
			"status":   types.StatusFailed,
			"metadata": metadata,
		}).Error
	})
}
