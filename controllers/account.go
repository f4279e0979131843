package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/coopwatt/coopwatt/config"
	"github.com/coopwatt/coopwatt/controllers/auth"
	"github.com/coopwatt/coopwatt/controllers/entities"
	"github.com/coopwatt/coopwatt/controllers/helpers"
	"github.com/coopwatt/coopwatt/ledger"
	"github.com/coopwatt/coopwatt/models"
	"github.com/coopwatt/coopwatt/types"
)

func GetTimestamp(c *fiber.Ctx) error {
	c.Status(200).JSON(time.Now())

	return nil
}

func GetAssetTypes(c *fiber.Ctx) error {
	return c.Status(200).JSON(types.AssetRegistry)
}

func AccountToEntity(account *models.Account) entities.AccountEntity {
	var last_transaction_at *time.Time
	if account.LastTransactionAt.Valid {
		last_transaction_at = &account.LastTransactionAt.Time
	}

	return entities.AccountEntity{
		ID:                account.ID,
		AssetType:         account.AssetType,
		Currency:          account.Currency,
		Amount:            account.Amount,
		FormattedAmount:   account.FormattedAmount(),
		IsFrozen:          account.IsFrozen,
		DailyLimit:        account.DailyLimit,
		MonthlyLimit:      account.MonthlyLimit,
		LastTransactionAt: last_transaction_at,
		UpdatedAt:         account.UpdatedAt,
	}
}

func GetAccounts(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	var accounts []*models.Account

	config.DataBase.Where("owner_id = ?", CurrentUser.ID).Order("asset_type asc").Find(&accounts)

	account_entities := make([]entities.AccountEntity, 0)
	for _, account := range accounts {
		account_entities = append(account_entities, AccountToEntity(account))
	}

	return c.Status(200).JSON(account_entities)
}

// CreateAccount is the lazy get-or-create for one asset type; idempotent.
func CreateAccount(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(helpers.CreateAccountParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	currency := params.Currency
	if len(currency) == 0 {
		currency = types.AssetRegistry[params.AssetType].DefaultCurrency
	}

	account, err := ledger.GetOrCreateAccount(CurrentUser.ID, params.AssetType, currency)
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(201).JSON(AccountToEntity(account))
}

func GetAccountHistory(c *fiber.Ctx) error {
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

	var account *models.Account
	if result := config.DataBase.Where("id = ? AND owner_id = ?", id, CurrentUser.ID).First(&account); result.Error != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	params := new(helpers.HistoryQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	history, err := ledger.GetHistory(account.ID, params.PeriodDays)
	if err != nil {
		return c.Status(helpers.StatusForError(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.Status(200).JSON(history)
}
