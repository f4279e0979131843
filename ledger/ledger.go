package ledger

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/models/datatypes"
	"github.com/coopwatt/coopwatt/types"
)

// RecordOptions carries the optional attributes of a mutation. A nil options
// pointer means plain synchronous recording with no linkage.
type RecordOptions struct {
	Reference models.Reference
	Metadata  datatypes.Metadata
	TaxAmount decimal.Decimal
	FeeAmount decimal.Decimal
	CreatedBy string
	Deferred  bool
}

// GetOrCreateAccount returns the account for (owner, asset type, currency),
// creating a zero-balance one with the default limits chart on first use.
func GetOrCreateAccount(owner_id uint64, asset_type types.AssetType, currency string) (*models.Account, error) {
	if !types.ValidAssetType(asset_type) {
		return nil, ErrInvalidAssetType
	}

	var account *models.Account

	daily, monthly := models.DefaultLimits(asset_type)

	result := config.DataBase.Where(models.Account{
		OwnerID:   owner_id,
		AssetType: asset_type,
		Currency:  currency,
	}).Attrs(models.Account{
		Amount:       decimal.Zero,
		DailyLimit:   daily,
		MonthlyLimit: monthly,
	}).FirstOrCreate(&account)

	if result.Error != nil {
		return nil, result.Error
	}

	return account, nil
}

// Credit records an income transaction. Always permitted, even on frozen
// accounts.
func Credit(account_id uint64, amount decimal.Decimal, description string, opts *RecordOptions) (*models.Transaction, error) {
	return record(account_id, types.KindIncome, amount, description, opts)
}

// Debit records an expense transaction, subject to frozen, balance and limit
// checks.
func Debit(account_id uint64, amount decimal.Decimal, description string, opts *RecordOptions) (*models.Transaction, error) {
	return record(account_id, types.KindExpense, amount, description, opts)
}

func record(account_id uint64, kind types.TransactionKind, amount decimal.Decimal, description string, opts *RecordOptions) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if opts == nil {
		opts = &RecordOptions{}
	}

	var trans *models.Transaction
	var account *models.Account

	err := withRetries(func() error {
		return config.DataBase.Transaction(func(tx *gorm.DB) error {
			result := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "accounts"}}).
				Where("id = ?", account_id).First(&account)
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			} else if result.Error != nil {
				return result.Error
			}

			if opts.Deferred {
				t, err := createPending(tx, account, kind, amount, description, opts)
				trans = t
				return err
			}

			t, err := apply(tx, account, kind, amount, description, opts, uuid.NullUUID{})
			trans = t
			return err
		})
	})

	if err != nil {
		return nil, err
	}

	if opts.Deferred {
		enqueueDeferred(trans)
	} else {
		account.TriggerEvent()
		trans.WriteToInflux()
	}

	return trans, nil
}

// apply runs steps 1-6 of the recording algorithm. The caller must hold the
// row lock on the account within tx; the account struct is updated in place
// so transfer legs see each other's effect.
func apply(tx *gorm.DB, account *models.Account, kind types.TransactionKind, amount decimal.Decimal, description string, opts *RecordOptions, batch uuid.NullUUID) (*models.Transaction, error) {
	if models.ExpenseKind(kind) {
		if account.IsFrozen {
			return nil, ErrAccountFrozen
		}
		if err := checkLimits(tx, account, amount); err != nil {
			return nil, err
		}
	}

	trans := &models.Transaction{
		AccountID:     account.ID,
		Kind:          kind,
		Amount:        amount,
		Description:   description,
		Status:        types.StatusCompleted,
		ReferenceType: opts.Reference.Type,
		ReferenceID:   opts.Reference.ID,
		BatchID:       batch,
		TaxAmount:     opts.TaxAmount,
		FeeAmount:     opts.FeeAmount,
		NetAmount:     amount.Sub(opts.TaxAmount).Sub(opts.FeeAmount),
		CreatedBy:     createdBy(opts),
		Metadata:      opts.Metadata,
	}

	balance_before := account.Amount
	balance_after := balance_before.Add(trans.SignedAmount())

	if balance_after.IsNegative() && !account.AllowNegative() {
		return nil, ErrInsufficientBalance
	}

	trans.BalanceBefore = balance_before
	trans.BalanceAfter = balance_after

	if err := tx.Create(trans).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if err := tx.Model(&models.Account{}).Where("id = ?", account.ID).Updates(map[string]interface{}{
		"amount":              balance_after,
		"last_transaction_at": now,
	}).Error; err != nil {
		return nil, err
	}

	account.Amount = balance_after
	account.LastTransactionAt = null.TimeFrom(now)

	return trans, nil
}

// createPending inserts a deferred row with no balance effect; balances are
// filled in when the daemon processes it.
func createPending(tx *gorm.DB, account *models.Account, kind types.TransactionKind, amount decimal.Decimal, description string, opts *RecordOptions) (*models.Transaction, error) {
	trans := &models.Transaction{
		AccountID:     account.ID,
		Kind:          kind,
		Amount:        amount,
		Description:   description,
		Status:        types.StatusPending,
		ReferenceType: opts.Reference.Type,
		ReferenceID:   opts.Reference.ID,
		TaxAmount:     opts.TaxAmount,
		FeeAmount:     opts.FeeAmount,
		NetAmount:     amount.Sub(opts.TaxAmount).Sub(opts.FeeAmount),
		CreatedBy:     createdBy(opts),
		Metadata:      opts.Metadata,
	}

	if err := tx.Create(trans).Error; err != nil {
		return nil, err
	}

	return trans, nil
}

func createdBy(opts *RecordOptions) null.String {
	if len(opts.CreatedBy) == 0 {
		return null.String{}
	}

	return null.StringFrom(opts.CreatedBy)
}

func enqueueDeferred(trans *models.Transaction) {
	payload_message, _ := json.Marshal(types.LedgerPayloadMessage{
		Action:        types.ActionProcess,
		TransactionID: trans.ID,
	})

	config.Nats.Publish("ledger", payload_message)
}

// withRetries reruns fn on lock conflicts (deadlock, serialization failure)
// up to the configured budget, then surfaces ErrConcurrencyConflict.
func withRetries(fn func() error) error {
	retries := config.App.LockRetries
	if retries < 1 {
		retries = 1
	}

	var err error
	for attempt := 0; attempt < retries; attempt++ {
		err = fn()
		if !lockConflict(err) {
			return err
		}
	}

	return ErrConcurrencyConflict
}

func lockConflict(err error) bool {
	var pg_err *pgconn.PgError
	if errors.As(err, &pg_err) {
		return pg_err.Code == "40001" || pg_err.Code == "40P01"
	}

	return false
}
