package helpers

import (
	"errors"

	"github.com/gookit/validate"

	"github.com/coopwatt/coopwatt/ledger"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Vaildate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// StatusForError maps ledger rejections to HTTP statuses. The error text is
// the dotted code rendered to the client.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound), errors.Is(err, ledger.ErrTransactionNotFound):
		return 404
	case errors.Is(err, ledger.ErrConcurrencyConflict):
		return 409
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrAccountFrozen),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrDailyLimitExceeded),
		errors.Is(err, ledger.ErrMonthlyLimitExceeded),
		errors.Is(err, ledger.ErrSameOwnerTransfer),
		errors.Is(err, ledger.ErrAssetTypeMismatch),
		errors.Is(err, ledger.ErrNotPending),
		errors.Is(err, ledger.ErrNotReversible),
		errors.Is(err, ledger.ErrInvalidAssetType):
		return 422
	default:
		return 500
	}
}
