package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopwatt/coopwatt/types"
)

type TransactionEntity struct {
	ID            uint64                  `json:"id"`
	AccountID     uint64                  `json:"account_id"`
	Kind          types.TransactionKind   `json:"kind"`
	Amount        decimal.Decimal         `json:"amount"`
	BalanceBefore decimal.Decimal         `json:"balance_before"`
	BalanceAfter  decimal.Decimal         `json:"balance_after"`
	Description   string                  `json:"description"`
	Status        types.TransactionStatus `json:"status"`
	ReferenceType string                  `json:"reference_type,omitempty"`
	ReferenceID   uint64                  `json:"reference_id,omitempty"`
	BatchID       string                  `json:"batch_id,omitempty"`
	TaxAmount     decimal.Decimal         `json:"tax_amount"`
	FeeAmount     decimal.Decimal         `json:"fee_amount"`
	NetAmount     decimal.Decimal         `json:"net_amount"`
	IsReconciled  bool                    `json:"is_reconciled"`
	CreatedAt     time.Time               `json:"created_at"`
}

// AccountingRecord is the flat export row consumed by external bookkeeping.
type AccountingRecord struct {
	Date       time.Time               `json:"date"`
	Reference  string                  `json:"reference"`
	Debit      decimal.Decimal         `json:"debit"`
	Credit     decimal.Decimal         `json:"credit"`
	Tax        decimal.Decimal         `json:"tax"`
	Net        decimal.Decimal         `json:"net"`
	Currency   string                  `json:"currency"`
	Status     types.TransactionStatus `json:"status"`
	Reconciled bool                    `json:"reconciled"`
}

// HistoryEntry is one per-day aggregate of an account history.
type HistoryEntry struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Change      decimal.Decimal `json:"change"`
	Description string          `json:"description"`
}
