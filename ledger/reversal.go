package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/models/datatypes"
	"github.com/coopwatt/coopwatt/types"
)

// Reverse records a compensating transaction of the opposite kind for a
// completed one. The original row is never touched; the reversal goes through
// the normal recording path, including frozen, balance and limit checks.
func Reverse(transaction_id uint64, reason string, created_by string) (*models.Transaction, error) {
	var reversal *models.Transaction
	var account *models.Account

	err := withRetries(func() error {
		return config.DataBase.Transaction(func(tx *gorm.DB) error {
			original, err := lockTransaction(tx, transaction_id)
			if err != nil {
				return err
			}

			if !original.IsCompleted() {
				return ErrNotReversible
			}

			account, err = lockAccount(tx, original.AccountID)
			if err != nil {
				return err
			}

			kind := models.OppositeKind(original.Kind)

			metadata := datatypes.Metadata{
				"reversal_of": original.ID,
				"reason":      reason,
			}
			if kind == types.KindAdjustment && original.SignedAmount().IsPositive() {
				metadata["direction"] = "debit"
			}

			opts := &RecordOptions{
				Reference: models.Reference{ID: original.ID, Type: "Transaction"},
				Metadata:  metadata,
				CreatedBy: created_by,
			}

			reversal, err = apply(tx, account, kind, original.Amount, "reversal: "+original.Description, opts, uuid.NullUUID{})
			return err
		})
	})

	if err != nil {
		return nil, err
	}

	account.TriggerEvent()
	reversal.WriteToInflux()

	return reversal, nil
}

// Reconcile marks a completed transaction as matched against an external
// accounting reference. No balance effect.
func Reconcile(transaction_id uint64, external_reference string) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		trans, err := lockTransaction(tx, transaction_id)
		if err != nil {
			return err
		}

		if !trans.IsCompleted() {
			return ErrNotReversible
		}

		return tx.Model(trans).Updates(map[string]interface{}{
			"is_reconciled":      true,
			"reconciled_at":      null.TimeFrom(time.Now()),
			"external_reference": external_reference,
		}).Error
	})
}

func lockTransaction(tx *gorm.DB, id uint64) (*models.Transaction, error) {
	var trans *models.Transaction

	result := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "transactions"}}).
		Where("id = ?", id).First(&trans)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	} else if result.Error != nil {
		return nil, result.Error
	}

	return trans, nil
}
