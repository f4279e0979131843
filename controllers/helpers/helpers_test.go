package helpers

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coopwatt/coopwatt/ledger"
	"github.com/coopwatt/coopwatt/types"
)

func TestStatusForError(t *testing.T) {
	assert.Equal(t, 404, StatusForError(ledger.ErrAccountNotFound))
	assert.Equal(t, 404, StatusForError(ledger.ErrTransactionNotFound))
	assert.Equal(t, 409, StatusForError(ledger.ErrConcurrencyConflict))
	assert.Equal(t, 422, StatusForError(ledger.ErrInsufficientBalance))
	assert.Equal(t, 422, StatusForError(ledger.ErrDailyLimitExceeded))
	assert.Equal(t, 422, StatusForError(ledger.ErrAccountFrozen))
	assert.Equal(t, 500, StatusForError(errors.New("boom")))
}

func TestVaildateDepositParams(t *testing.T) {
	valid := CreateDepositParams{
		AccountID: 1,
		Amount:    decimal.RequireFromString("10.50"),
	}

	err_src := Errors{}
	Vaildate(valid, &err_src)
	assert.Zero(t, err_src.Size())

	missing_account := CreateDepositParams{
		Amount: decimal.RequireFromString("10.50"),
	}

	err_src = Errors{}
	Vaildate(missing_account, &err_src)
	assert.NotZero(t, err_src.Size())
}

func TestVaildateAmountPrecision(t *testing.T) {
	params := CreateWithdrawParams{
		AccountID: 1,
		Amount:    decimal.RequireFromString("0.1234567"),
	}

	err_src := Errors{}
	Vaildate(params, &err_src)
	assert.NotZero(t, err_src.Size())

	params.Amount = decimal.RequireFromString("0.123456")

	err_src = Errors{}
	Vaildate(params, &err_src)
	assert.Zero(t, err_src.Size())
}

func TestVaildateNonPositiveAmount(t *testing.T) {
	params := CreateTransferParams{
		SourceAccountID: 1,
		DestAccountID:   2,
		Amount:          decimal.Zero,
	}

	err_src := Errors{}
	Vaildate(params, &err_src)
	assert.NotZero(t, err_src.Size())
}

func TestVaildateAccountParams(t *testing.T) {
	valid := CreateAccountParams{AssetType: types.AssetEnergyKwh}

	err_src := Errors{}
	Vaildate(valid, &err_src)
	assert.Zero(t, err_src.Size())

	invalid := CreateAccountParams{AssetType: "gold_bars"}

	err_src = Errors{}
	Vaildate(invalid, &err_src)
	assert.NotZero(t, err_src.Size())
}
