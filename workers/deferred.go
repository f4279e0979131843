package workers

import (
	"encoding/json"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/ledger"
	"github.com/coopwatt/coopwatt/types"
)

type Worker interface {
	Process(payload []byte) error
}

// DeferredTransactionWorker consumes ledger payloads and applies pending
// transactions under the account lock.
type DeferredTransactionWorker struct {
}

func NewDeferredTransactionWorker() *DeferredTransactionWorker {
	return &DeferredTransactionWorker{}
}

func (w *DeferredTransactionWorker) Process(payload []byte) error {
	var message types.LedgerPayloadMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return err
	}

	switch message.Action {
	case types.ActionProcess:
		trans, err := ledger.ProcessTransaction(message.TransactionID)
		if err != nil {
			return err
		}

		config.Logger.Infof("Processed transaction %d (balance %s -> %s)", trans.ID, trans.BalanceBefore.String(), trans.BalanceAfter.String())
	case types.ActionCancel:
		if err := ledger.CancelTransaction(message.TransactionID); err != nil {
			return err
		}

		config.Logger.Infof("Cancelled transaction %d", message.TransactionID)
	default:
		config.Logger.Errorf("Unknown action: %s", message.Action)
	}

	return nil
}
