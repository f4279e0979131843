package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coopwatt/coopwatt/types"
)

func TestFormattedAmount(t *testing.T) {
	wallet := &Account{
		AssetType: types.AssetWallet,
		Currency:  "eur",
		Amount:    decimal.RequireFromString("70"),
	}
	assert.Equal(t, "70.00 EUR", wallet.FormattedAmount())

	energy := &Account{
		AssetType: types.AssetEnergyKwh,
		Currency:  "kwh",
		Amount:    decimal.RequireFromString("12.345"),
	}
	assert.Equal(t, "12.345 kWh", energy.FormattedAmount())

	points := &Account{
		AssetType: types.AssetLoyaltyPoints,
		Currency:  "pts",
		Amount:    decimal.RequireFromString("15"),
	}
	assert.Equal(t, "15 pts", points.FormattedAmount())
}

func TestFormattedAmountPure(t *testing.T) {
	account := &Account{
		AssetType: types.AssetWallet,
		Currency:  "eur",
		Amount:    decimal.RequireFromString("12.5"),
	}

	first := account.FormattedAmount()
	second := account.FormattedAmount()

	assert.Equal(t, first, second)
	assert.True(t, account.Amount.Equal(decimal.RequireFromString("12.5")))
}

func TestAccountValidateAmount(t *testing.T) {
	wallet := Account{AssetType: types.AssetWallet}
	assert.True(t, wallet.ValidateAmount(decimal.RequireFromString("-10")))

	energy := Account{AssetType: types.AssetEnergyKwh}
	assert.True(t, energy.ValidateAmount(decimal.Zero))
	assert.False(t, energy.ValidateAmount(decimal.RequireFromString("-0.001")))
}
