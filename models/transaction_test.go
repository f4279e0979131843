package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coopwatt/coopwatt/models/datatypes"
	"github.com/coopwatt/coopwatt/types"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("30.00")

	income := &Transaction{Kind: types.KindIncome, Amount: amount}
	assert.True(t, income.SignedAmount().Equal(amount))

	transfer_in := &Transaction{Kind: types.KindTransferIn, Amount: amount}
	assert.True(t, transfer_in.SignedAmount().Equal(amount))

	expense := &Transaction{Kind: types.KindExpense, Amount: amount}
	assert.True(t, expense.SignedAmount().Equal(amount.Neg()))

	transfer_out := &Transaction{Kind: types.KindTransferOut, Amount: amount}
	assert.True(t, transfer_out.SignedAmount().Equal(amount.Neg()))
}

func TestSignedAmountAdjustment(t *testing.T) {
	amount := decimal.RequireFromString("5.5")

	credit := &Transaction{Kind: types.KindAdjustment, Amount: amount}
	assert.True(t, credit.SignedAmount().Equal(amount))

	debit := &Transaction{
		Kind:     types.KindAdjustment,
		Amount:   amount,
		Metadata: datatypes.Metadata{"direction": "debit"},
	}
	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
}

func TestBalanceInvariant(t *testing.T) {
	// balance_after = balance_before + signed amount, for every row.
	trans := &Transaction{
		Kind:          types.KindExpense,
		Amount:        decimal.RequireFromString("30.00"),
		BalanceBefore: decimal.RequireFromString("100.00"),
		BalanceAfter:  decimal.RequireFromString("70.00"),
		Status:        types.StatusCompleted,
	}

	assert.True(t, trans.BalanceAfter.Equal(trans.BalanceBefore.Add(trans.SignedAmount())))
}

func TestOppositeKind(t *testing.T) {
	assert.Equal(t, types.KindExpense, OppositeKind(types.KindIncome))
	assert.Equal(t, types.KindIncome, OppositeKind(types.KindExpense))
	assert.Equal(t, types.KindTransferOut, OppositeKind(types.KindTransferIn))
	assert.Equal(t, types.KindTransferIn, OppositeKind(types.KindTransferOut))
	assert.Equal(t, types.KindAdjustment, OppositeKind(types.KindAdjustment))
}

func TestExpenseKind(t *testing.T) {
	assert.True(t, ExpenseKind(types.KindExpense))
	assert.True(t, ExpenseKind(types.KindTransferOut))
	assert.False(t, ExpenseKind(types.KindIncome))
	assert.False(t, ExpenseKind(types.KindTransferIn))
	assert.False(t, ExpenseKind(types.KindAdjustment))

	assert.True(t, IncomeKind(types.KindIncome))
	assert.True(t, IncomeKind(types.KindTransferIn))
	assert.False(t, IncomeKind(types.KindExpense))
}

func TestToAccountingRecord(t *testing.T) {
	account := &Account{AssetType: types.AssetWallet, Currency: "eur"}

	expense := &Transaction{
		Kind:      types.KindExpense,
		Amount:    decimal.RequireFromString("30.00"),
		TaxAmount: decimal.RequireFromString("5.00"),
		NetAmount: decimal.RequireFromString("25.00"),
		Status:    types.StatusCompleted,
	}

	record := expense.ToAccountingRecord(account)
	assert.True(t, record.Debit.Equal(expense.Amount))
	assert.True(t, record.Credit.IsZero())
	assert.True(t, record.Tax.Equal(expense.TaxAmount))
	assert.Equal(t, "eur", record.Currency)
	assert.False(t, record.Reconciled)

	income := &Transaction{
		Kind:   types.KindIncome,
		Amount: decimal.RequireFromString("12.00"),
		Status: types.StatusCompleted,
	}

	record = income.ToAccountingRecord(account)
	assert.True(t, record.Credit.Equal(income.Amount))
	assert.True(t, record.Debit.IsZero())
}

func TestTransactionValidators(t *testing.T) {
	trans := Transaction{}

	assert.True(t, trans.ValidateKind(types.KindIncome))
	assert.True(t, trans.ValidateKind(types.KindAdjustment))
	assert.False(t, trans.ValidateKind("donation"))

	assert.True(t, trans.ValidateAmount(decimal.RequireFromString("0.01")))
	assert.False(t, trans.ValidateAmount(decimal.Zero))
	assert.False(t, trans.ValidateAmount(decimal.RequireFromString("-1")))
}
