package admin_controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/controllers/auth"
	"github.com/coopwatt/coopwatt/controllers/helpers"
	"github.com/coopwatt/coopwatt/ledger"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

func requireAdmin(c *fiber.Ctx) *models.Member {
	CurrentUser := auth.GetCurrentUser(c)

	if !auth.IsAdmin(CurrentUser) {
		return nil
	}

	return CurrentUser
}

func paramID(c *fiber.Ctx) (uint64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}

	return uint64(id), true
}

func FreezeAccount(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.account.invalid_id"},
		})
	}

	params := new(helpers.FreezeParams)
	c.BodyParser(params)

	account, err := ledger.Freeze(id, params.Reason, CurrentUser.UID)
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(200).JSON(account.ToJSON())
}

func UnfreezeAccount(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.account.invalid_id"},
		})
	}

	account, err := ledger.Unfreeze(id, CurrentUser.UID)
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(200).JSON(account.ToJSON())
}

func ReverseTransaction(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.transaction.invalid_id"},
		})
	}

	errs := new(helpers.Errors)
	params := new(helpers.ReverseParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	reversal, err := ledger.Reverse(id, params.Reason, CurrentUser.UID)
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(201).JSON(reversal.ToJSON())
}

func ReconcileTransaction(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.transaction.invalid_id"},
		})
	}

	errs := new(helpers.Errors)
	params := new(helpers.ReconcileParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if err := ledger.Reconcile(id, params.ExternalReference); err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.SendStatus(204)
}

func ExportTransaction(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.transaction.invalid_id"},
		})
	}

	record, err := ledger.ExportForAccounting(id)
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(200).JSON(record)
}

// ProcessTransaction dispatches a pending transaction to the daemon.
func ProcessTransaction(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.transaction.invalid_id"},
		})
	}

	payload_message, _ := json.Marshal(types.LedgerPayloadMessage{
		Action:        types.ActionProcess,
		TransactionID: id,
	})
	config.Nats.Publish("ledger", payload_message)

	return c.SendStatus(202)
}

func CancelTransaction(c *fiber.Ctx) error {
	CurrentUser := requireAdmin(c)
	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	id, ok := paramID(c)
	if !ok {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.transaction.invalid_id"},
		})
	}

	if err := ledger.CancelTransaction(id); err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.SendStatus(204)
}
