package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models/datatypes"
	"github.com/coopwatt/coopwatt/mq_client"
	"github.com/coopwatt/coopwatt/types"
)

// Account is one balance row per (owner, asset type, currency). Its amount is
// mutated only by the ledger package under a row lock; everything here is
// lock-free presentation and bookkeeping.
type Account struct {
	ID                uint64              `json:"id" gorm:"primaryKey"`
	OwnerID           uint64              `json:"owner_id"`
	AssetType         types.AssetType     `json:"asset_type" validate:"ValidateAssetType"`
	Currency          string              `json:"currency"`
	Amount            decimal.Decimal     `json:"amount" gorm:"default:0.0" validate:"ValidateAmount"`
	IsFrozen          bool                `json:"is_frozen" gorm:"default:false"`
	FrozenReason      null.String         `json:"frozen_reason"`
	DailyLimit        decimal.NullDecimal `json:"daily_limit"`
	MonthlyLimit      decimal.NullDecimal `json:"monthly_limit"`
	LastTransactionAt null.Time           `json:"last_transaction_at"`
	Metadata          datatypes.Metadata  `json:"metadata"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func (a Account) ValidateAssetType(asset_type types.AssetType) bool {
	return types.ValidAssetType(asset_type)
}

func (a Account) ValidateAmount(Amount decimal.Decimal) bool {
	if a.AllowNegative() {
		return true
	}

	return Amount.GreaterThanOrEqual(decimal.Zero)
}

func (a *Account) AssetInfo() types.AssetInfo {
	return types.AssetRegistry[a.AssetType]
}

func (a *Account) AllowNegative() bool {
	return a.AssetInfo().AllowNegative
}

func (a *Account) Owner() *Member {
	var member *Member

	config.DataBase.First(&member, "id = ?", a.OwnerID)

	return member
}

// FormattedAmount renders the balance with the asset display precision and
// unit suffix (currency code for wallet balances). Pure, never mutates.
func (a *Account) FormattedAmount() string {
	info := a.AssetInfo()

	unit := info.Unit
	if len(unit) == 0 {
		unit = strings.ToUpper(a.Currency)
	}

	return a.Amount.StringFixed(info.Precision) + " " + unit
}

func (a *Account) TriggerEvent() {
	owner := a.Owner()
	payload_message, _ := json.Marshal(a.ToJSON())

	mq_client.EnqueueEvent("private", owner.UID, "balance", payload_message)

	config.Redis.SetKey("coopwatt:balance:"+strconv.FormatUint(a.ID, 10), a.ToJSON(), time.Hour)
}

type AccountJSON struct {
	AssetType       types.AssetType `json:"asset_type"`
	Currency        string          `json:"currency"`
	Amount          decimal.Decimal `json:"amount"`
	FormattedAmount string          `json:"formatted_amount"`
	IsFrozen        bool            `json:"is_frozen"`
}

func (a *Account) ToJSON() AccountJSON {
	return AccountJSON{
		AssetType:       a.AssetType,
		Currency:        a.Currency,
		Amount:          a.Amount,
		FormattedAmount: a.FormattedAmount(),
		IsFrozen:        a.IsFrozen,
	}
}
