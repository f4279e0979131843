package helpers

import (
	"github.com/shopspring/decimal"

	"github.com/coopwatt/coopwatt/models/concerns"
	"github.com/coopwatt/coopwatt/types"
)

var precision_validator = &concerns.PrecisionValidator{}

// Amounts are fixed-point with 6 fractional digits.
const AmountPrecision = 6

type CreateDepositParams struct {
	AccountID   uint64          `json:"account_id" form:"account_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" form:"amount" validate:"ValidateAmount"`
	Description string          `json:"description" form:"description"`
	Deferred    bool            `json:"deferred" form:"deferred"`
}

func (p CreateDepositParams) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive() && precision_validator.LessThanOrEqTo(Amount, AmountPrecision)
}

func (p CreateDepositParams) Messages() map[string]string {
	return VaildateMessage("account.deposit")
}

type CreateWithdrawParams struct {
	AccountID   uint64          `json:"account_id" form:"account_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" form:"amount" validate:"ValidateAmount"`
	Description string          `json:"description" form:"description"`
	Deferred    bool            `json:"deferred" form:"deferred"`
}

func (p CreateWithdrawParams) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive() && precision_validator.LessThanOrEqTo(Amount, AmountPrecision)
}

func (p CreateWithdrawParams) Messages() map[string]string {
	return VaildateMessage("account.withdraw")
}

type CreateTransferParams struct {
	SourceAccountID uint64          `json:"source_account_id" form:"source_account_id" validate:"required"`
	DestAccountID   uint64          `json:"dest_account_id" form:"dest_account_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount" form:"amount" validate:"ValidateAmount"`
	Description     string          `json:"description" form:"description"`
}

func (p CreateTransferParams) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive() && precision_validator.LessThanOrEqTo(Amount, AmountPrecision)
}

func (p CreateTransferParams) Messages() map[string]string {
	return VaildateMessage("account.transfer")
}

type CreateAccountParams struct {
	AssetType types.AssetType `json:"asset_type" form:"asset_type" validate:"ValidateAssetType"`
	Currency  string          `json:"currency" form:"currency"`
}

func (p CreateAccountParams) ValidateAssetType(asset_type types.AssetType) bool {
	return types.ValidAssetType(asset_type)
}

func (p CreateAccountParams) Messages() map[string]string {
	return VaildateMessage("account")
}

type FreezeParams struct {
	Reason string `json:"reason" form:"reason"`
}

type ReverseParams struct {
	Reason string `json:"reason" form:"reason" validate:"required"`
}

func (p ReverseParams) Messages() map[string]string {
	return VaildateMessage("admin.transaction")
}

type ReconcileParams struct {
	ExternalReference string `json:"external_reference" form:"external_reference" validate:"required"`
}

func (p ReconcileParams) Messages() map[string]string {
	return VaildateMessage("admin.transaction")
}

type HistoryQuery struct {
	PeriodDays int `query:"period_days" validate:"uint"`
}

func VaildateMessage(prefix string) map[string]string {
	return map[string]string{
		"required": prefix + ".missing_{field}",
	}
}
