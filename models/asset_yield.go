package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/coopwatt/coopwatt/types"
)

// AssetYield is a pending payout produced by the metering side (solar
// production, mining output, storage rental). The yield cron credits it to
// the owner account through the normal ledger path and marks it distributed.
type AssetYield struct {
	ID            uint64          `json:"id" gorm:"primaryKey"`
	MemberID      uint64          `json:"member_id"`
	AssetType     types.AssetType `json:"asset_type"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount" validate:"ValidateAmount"`
	YieldDate     time.Time       `json:"yield_date"`
	DistributedAt null.Time       `json:"distributed_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (y AssetYield) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (y *AssetYield) IsDistributed() bool {
	return y.DistributedAt.Valid
}
