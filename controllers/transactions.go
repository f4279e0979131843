package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/controllers/auth"
	"github.com/coopwatt/coopwatt/controllers/entities"
	"github.com/coopwatt/coopwatt/controllers/helpers"
	"github.com/coopwatt/coopwatt/ledger"
	"github.com/coopwatt/coopwatt/models"
)

// ownAccount loads an account and checks it belongs to the current user.
func ownAccount(member *models.Member, id uint64) *models.Account {
	var account *models.Account

	if result := config.DataBase.Where("id = ? AND owner_id = ?", id, member.ID).First(&account); result.Error != nil {
		return nil
	}

	return account
}

func CreateDeposit(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(helpers.CreateDepositParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if account := ownAccount(CurrentUser, params.AccountID); account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	trans, err := ledger.Credit(params.AccountID, params.Amount, params.Description, &ledger.RecordOptions{
		CreatedBy: CurrentUser.UID,
		Deferred:  params.Deferred,
	})
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(201).JSON(trans.ToJSON())
}

func CreateWithdraw(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(helpers.CreateWithdrawParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if account := ownAccount(CurrentUser, params.AccountID); account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	trans, err := ledger.Debit(params.AccountID, params.Amount, params.Description, &ledger.RecordOptions{
		CreatedBy: CurrentUser.UID,
		Deferred:  params.Deferred,
	})
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(201).JSON(trans.ToJSON())
}

func CreateTransfer(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(helpers.CreateTransferParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if account := ownAccount(CurrentUser, params.SourceAccountID); account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	out_trans, in_trans, err := ledger.Transfer(params.SourceAccountID, params.DestAccountID, params.Amount, params.Description, &ledger.RecordOptions{
		CreatedBy: CurrentUser.UID,
	})
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(201).JSON([]entities.TransactionEntity{out_trans.ToJSON(), in_trans.ToJSON()})
}

func GetTransactions(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.invalid_id"},
		})
	}

	if account := ownAccount(CurrentUser, uint64(id)); account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	var transactions []*models.Transaction
	config.DataBase.Where("account_id = ?", id).Order("id desc").Limit(100).Find(&transactions)

	transaction_entities := make([]entities.TransactionEntity, 0)
	for _, trans := range transactions {
		transaction_entities = append(transaction_entities, trans.ToJSON())
	}

	return c.Status(200).JSON(transaction_entities)
}
