package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/types"
)

type Member struct {
	ID        uint64      `json:"id" gorm:"primaryKey"`
	UID       string      `json:"uid"`
	Email     string      `json:"email"`
	Username  null.String `json:"username"`
	Role      string      `json:"role"`
	State     string      `json:"state"`
	Level     int32       `json:"level" gorm:"default:0" validate:"min:0"`
	OrgID     null.Uint64 `json:"org_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// GetAccount returns the member account for an asset type and currency,
// creating it lazily with the default limits chart on first use.
func (m *Member) GetAccount(asset_type types.AssetType, currency string) *Account {
	var account *Account

	daily, monthly := DefaultLimits(asset_type)

	config.DataBase.Where(Account{
		OwnerID:   m.ID,
		AssetType: asset_type,
		Currency:  currency,
	}).Attrs(Account{
		Amount:       decimal.Zero,
		DailyLimit:   daily,
		MonthlyLimit: monthly,
	}).FirstOrCreate(&account)

	return account
}

// DefaultLimits reads the yaml limits chart. Zero or missing means unlimited.
func DefaultLimits(asset_type types.AssetType) (daily, monthly decimal.NullDecimal) {
	chart, found := config.Limits[asset_type]
	if !found {
		return
	}

	if chart.Daily.IsPositive() {
		daily = decimal.NewNullDecimal(chart.Daily)
	}
	if chart.Monthly.IsPositive() {
		monthly = decimal.NewNullDecimal(chart.Monthly)
	}

	return
}
