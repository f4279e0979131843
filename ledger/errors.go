package ledger

import "errors"

// Rejections carry dotted codes so the API layer can render precise
// messages. All of them happen before or atomically with the write; a
// rejected mutation leaves no partial state.
var (
	ErrInvalidAmount        = errors.New("ledger.transaction.invalid_amount")
	ErrAccountNotFound      = errors.New("ledger.account.not_found")
	ErrAccountFrozen        = errors.New("ledger.account.frozen")
	ErrInsufficientBalance  = errors.New("ledger.account.insufficient_balance")
	ErrDailyLimitExceeded   = errors.New("ledger.limit.daily_exceeded")
	ErrMonthlyLimitExceeded = errors.New("ledger.limit.monthly_exceeded")
	ErrSameOwnerTransfer    = errors.New("ledger.transfer.same_owner")
	ErrAssetTypeMismatch    = errors.New("ledger.transfer.asset_type_mismatch")
	ErrTransactionNotFound  = errors.New("ledger.transaction.not_found")
	ErrNotPending           = errors.New("ledger.transaction.not_pending")
	ErrNotReversible        = errors.New("ledger.transaction.not_reversible")
	ErrInvalidAssetType     = errors.New("ledger.account.invalid_asset_type")
	ErrConcurrencyConflict  = errors.New("ledger.concurrency_conflict")
)
