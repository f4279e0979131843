package ledger

import (
	"time"

	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/models"
)

// Freeze blocks future expense mutations on the account. Income stays
// allowed and existing transactions are untouched.
func Freeze(account_id uint64, reason string, created_by string) (*models.Account, error) {
	return setFrozen(account_id, true, reason, created_by)
}

func Unfreeze(account_id uint64, created_by string) (*models.Account, error) {
	return setFrozen(account_id, false, "", created_by)
}

func setFrozen(account_id uint64, frozen bool, reason string, created_by string) (*models.Account, error) {
	var account *models.Account

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccount(tx, account_id)
		if err != nil {
			return err
		}

		action := "unfreeze"
		frozen_reason := null.String{}
		if frozen {
			action = "freeze"
			frozen_reason = null.StringFrom(reason)
		}

		metadata := account.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}

		audit, _ := metadata["audit"].([]interface{})
		audit = append(audit, map[string]interface{}{
			"action": action,
			"reason": reason,
			"by":     created_by,
			"at":     time.Now().Format(time.RFC3339),
		})
		metadata["audit"] = audit

		if err := tx.Model(account).Updates(map[string]interface{}{
			"is_frozen":     frozen,
			"frozen_reason": frozen_reason,
			"metadata":      metadata,
		}).Error; err != nil {
			return err
		}

		account.IsFrozen = frozen
		account.FrozenReason = frozen_reason
		account.Metadata = metadata

		return nil
	})

	if err != nil {
		return nil, err
	}

	account.TriggerEvent()

	return account, nil
}
