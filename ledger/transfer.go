package ledger

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

// Transfer moves an amount between two accounts of different owners as one
// atomic unit: a transfer_out leg on the source and a transfer_in leg on the
// destination sharing one batch id. Either both legs commit or neither does.
func Transfer(source_id, dest_id uint64, amount decimal.Decimal, description string, opts *RecordOptions) (*models.Transaction, *models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}
	if opts == nil {
		opts = &RecordOptions{}
	}

	var out_trans, in_trans *models.Transaction
	var source, dest *models.Account

	err := withRetries(func() error {
		return config.DataBase.Transaction(func(tx *gorm.DB) error {
			// Lock in ascending account id order so two opposite transfers
			// between the same pair cannot deadlock.
			first, second := source_id, dest_id
			if second < first {
				first, second = second, first
			}

			first_account, err := lockAccount(tx, first)
			if err != nil {
				return err
			}
			second_account, err := lockAccount(tx, second)
			if err != nil {
				return err
			}

			if first == source_id {
				source, dest = first_account, second_account
			} else {
				source, dest = second_account, first_account
			}

			if source.OwnerID == dest.OwnerID {
				return ErrSameOwnerTransfer
			}
			if source.AssetType != dest.AssetType || source.Currency != dest.Currency {
				return ErrAssetTypeMismatch
			}

			batch := uuid.NullUUID{UUID: uuid.New(), Valid: true}

			out_trans, err = apply(tx, source, types.KindTransferOut, amount, description, opts, batch)
			if err != nil {
				return err
			}

			in_trans, err = apply(tx, dest, types.KindTransferIn, amount, description, opts, batch)
			if err != nil {
				return err
			}

			return nil
		})
	})

	if err != nil {
		return nil, nil, err
	}

	source.TriggerEvent()
	dest.TriggerEvent()
	out_trans.WriteToInflux()
	in_trans.WriteToInflux()

	return out_trans, in_trans, nil
}

func lockAccount(tx *gorm.DB, id uint64) (*models.Account, error) {
	var account *models.Account

	result := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "accounts"}}).
		Where("id = ?", id).First(&account)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	} else if result.Error != nil {
		return nil, result.Error
	}

	return account, nil
}
