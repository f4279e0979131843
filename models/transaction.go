package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/controllers/entities"
	"github.com/coopwatt/coopwatt/models/datatypes"
	"github.com/coopwatt/coopwatt/types"
)

// Transaction is one ledger row. Completed rows are immutable; corrections
// happen through a new reversal row, never by editing history.
type Transaction struct {
	ID                uint64                  `json:"id" gorm:"primaryKey"`
	AccountID         uint64                  `json:"account_id"`
	Kind              types.TransactionKind   `json:"kind" validate:"ValidateKind"`
	Amount            decimal.Decimal         `json:"amount" validate:"ValidateAmount"`
	BalanceBefore     decimal.Decimal         `json:"balance_before" gorm:"default:0.0"`
	BalanceAfter      decimal.Decimal         `json:"balance_after" gorm:"default:0.0"`
	Description       string                  `json:"description"`
	Status            types.TransactionStatus `json:"status" gorm:"default:pending"`
	ReferenceType     string                  `json:"reference_type"`
	ReferenceID       uint64                  `json:"reference_id"`
	BatchID           uuid.NullUUID           `json:"batch_id"`
	TaxAmount         decimal.Decimal         `json:"tax_amount" gorm:"default:0.0"`
	FeeAmount         decimal.Decimal         `json:"fee_amount" gorm:"default:0.0"`
	NetAmount         decimal.Decimal         `json:"net_amount" gorm:"default:0.0"`
	IsReconciled      bool                    `json:"is_reconciled" gorm:"default:false"`
	ReconciledAt      null.Time               `json:"reconciled_at"`
	ExternalReference null.String             `json:"external_reference"`
	CreatedBy         null.String             `json:"created_by"`
	Metadata          datatypes.Metadata      `json:"metadata"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func (t Transaction) ValidateKind(kind types.TransactionKind) bool {
	switch kind {
	case types.KindIncome, types.KindExpense, types.KindTransferIn, types.KindTransferOut, types.KindAdjustment:
		return true
	}

	return false
}

func (t Transaction) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

// ExpenseKind reports whether a kind debits the account.
func ExpenseKind(kind types.TransactionKind) bool {
	return kind == types.KindExpense || kind == types.KindTransferOut
}

// IncomeKind reports whether a kind credits the account.
func IncomeKind(kind types.TransactionKind) bool {
	return kind == types.KindIncome || kind == types.KindTransferIn
}

// OppositeKind maps a kind to the kind of its reversal.
func OppositeKind(kind types.TransactionKind) types.TransactionKind {
	switch kind {
	case types.KindIncome:
		return types.KindExpense
	case types.KindExpense:
		return types.KindIncome
	case types.KindTransferIn:
		return types.KindTransferOut
	case types.KindTransferOut:
		return types.KindTransferIn
	default:
		return types.KindAdjustment
	}
}

// SignedAmount is +amount for income-like kinds and -amount for expense-like
// kinds. Adjustments carry their direction in metadata (default credit).
func (t *Transaction) SignedAmount() decimal.Decimal {
	if ExpenseKind(t.Kind) {
		return t.Amount.Neg()
	}

	if t.Kind == types.KindAdjustment {
		if direction, ok := t.Metadata["direction"].(string); ok && direction == "debit" {
			return t.Amount.Neg()
		}
	}

	return t.Amount
}

func (t *Transaction) IsPending() bool {
	return t.Status == types.StatusPending
}

func (t *Transaction) IsCompleted() bool {
	return t.Status == types.StatusCompleted
}

func (t *Transaction) Account() *Account {
	var account *Account

	config.DataBase.First(&account, "id = ?", t.AccountID)

	return account
}

func (t *Transaction) WriteToInflux() {
	amount, _ := t.SignedAmount().Float64()
	balance_after, _ := t.BalanceAfter.Float64()

	account := t.Account()

	tags := map[string]string{
		"asset_type": account.AssetType,
		"currency":   account.Currency,
		"kind":       t.Kind,
	}
	fields := map[string]interface{}{
		"id":            int64(t.ID),
		"account_id":    int64(t.AccountID),
		"amount":        amount,
		"balance_after": balance_after,
		"created_at":    t.CreatedAt,
	}

	config.InfluxDB.NewPoint("transactions", tags, fields)
}

func (t *Transaction) ToJSON() entities.TransactionEntity {
	var batch_id string
	if t.BatchID.Valid {
		batch_id = t.BatchID.UUID.String()
	}

	return entities.TransactionEntity{
		ID:            t.ID,
		AccountID:     t.AccountID,
		Kind:          t.Kind,
		Amount:        t.Amount,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		Description:   t.Description,
		Status:        t.Status,
		ReferenceType: t.ReferenceType,
		ReferenceID:   t.ReferenceID,
		BatchID:       batch_id,
		TaxAmount:     t.TaxAmount,
		FeeAmount:     t.FeeAmount,
		NetAmount:     t.NetAmount,
		IsReconciled:  t.IsReconciled,
		CreatedAt:     t.CreatedAt,
	}
}

// ToAccountingRecord flattens the row for export to external bookkeeping.
func (t *Transaction) ToAccountingRecord(account *Account) entities.AccountingRecord {
	debit := decimal.Zero
	credit := decimal.Zero

	if t.SignedAmount().IsNegative() {
		debit = t.Amount
	} else {
		credit = t.Amount
	}

	reference := t.ExternalReference.String
	if len(reference) == 0 && len(t.ReferenceType) > 0 {
		reference = t.ReferenceType
	}

	return entities.AccountingRecord{
		Date:       t.CreatedAt,
		Reference:  reference,
		Debit:      debit,
		Credit:     credit,
		Tax:        t.TaxAmount,
		Net:        t.NetAmount,
		Currency:   account.Currency,
		Status:     t.Status,
		Reconciled: t.IsReconciled,
	}
}
