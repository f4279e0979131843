package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopwatt/coopwatt/types"
)

type AccountEntity struct {
	ID                uint64              `json:"id"`
	AssetType         types.AssetType     `json:"asset_type"`
	Currency          string              `json:"currency"`
	Amount            decimal.Decimal     `json:"amount"`
	FormattedAmount   string              `json:"formatted_amount"`
	IsFrozen          bool                `json:"is_frozen"`
	DailyLimit        decimal.NullDecimal `json:"daily_limit"`
	MonthlyLimit      decimal.NullDecimal `json:"monthly_limit"`
	LastTransactionAt *time.Time          `json:"last_transaction_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
