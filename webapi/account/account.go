package account

import (
	"net/url"
	"time"

	accountsvc "github.com/amirasaad/bankcore/pkg/service/account"
	transfersvc "github.com/amirasaad/bankcore/pkg/service/transfer"

	"github.com/amirasaad/bankcore/pkg/domain/transfer"
	"github.com/amirasaad/bankcore/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers HTTP routes for account operations and transfers.
//
// Routes:
//   - POST   /api/accounts               : Open an account.
//   - GET    /api/accounts               : List accounts.
//   - POST   /api/accounts/transfer      : Transfer money between two accounts.
//   - GET    /api/accounts/owner/:name   : Find the oldest account of an owner.
//   - GET    /api/accounts/:id           : Retrieve an account.
//   - GET    /api/accounts/:id/balance   : Retrieve the balance of an account.
//   - DELETE /api/accounts/:id           : Delete an account.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	transferSvc *transfersvc.Service,
) {
	group := app.Group("/api/accounts")
	group.Post("/", CreateAccount(accountSvc))
	group.Get("/", ListAccounts(accountSvc))
	group.Post("/transfer", Transfer(transferSvc))
	group.Get("/owner/:name", FindByOwner(accountSvc))
	group.Get("/:id", GetAccount(accountSvc))
	group.Get("/:id/balance", GetBalance(transferSvc))
	group.Delete("/:id", DeleteAccount(accountSvc))
}

// CreateAccount returns a Fiber handler for opening a new account.
// @Summary Open an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/accounts [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.OpenAccount(c.UserContext(), input.OwnerName, input.InitialBalance)
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountDTO(a))
	}
}

// ListAccounts returns a Fiber handler listing every account.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Accounts fetched"
// @Router /api/accounts [get]
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.ListAccounts(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", toAccountDTOs(accounts))
	}
}

// GetAccount returns a Fiber handler retrieving one account.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Account fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/accounts/{id} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		a, err := accountSvc.GetAccount(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", ToAccountDTO(a))
	}
}

// GetBalance returns a Fiber handler reporting the balance of an account.
// @Summary Get account balance
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Balance fetched"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/accounts/{id}/balance [get]
func GetBalance(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		balance, err := transferSvc.BalanceOf(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", BalanceDTO{
			AccountID: id.String(),
			Balance:   balance.String(),
		})
	}
}

// FindByOwner returns a Fiber handler looking an account up by owner name.
// @Summary Find account by owner
// @Tags accounts
// @Produce json
// @Param name path string true "Owner name"
// @Success 200 {object} common.Response "Account fetched"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/accounts/owner/{name} [get]
func FindByOwner(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid owner name", err, fiber.StatusBadRequest)
		}
		a, err := accountSvc.FindByOwnerName(c.UserContext(), name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to find account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", ToAccountDTO(a))
	}
}

// DeleteAccount returns a Fiber handler removing an account.
// @Summary Delete an account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/accounts/{id} [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err)
		}
		if err = accountSvc.DeleteAccount(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Transfer returns a Fiber handler moving money between two accounts.
// The origin is debited, the destination credited and the bank's transfer
// counter incremented in one unit of work.
// @Summary Transfer money
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} TransferResponse "Transfer completed"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account or bank not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /api/accounts/transfer [post]
func Transfer(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		// the validator has already checked the uuid format
		req := transfer.Request{
			OriginAccountID:      uuid.MustParse(input.OriginAccountID),
			DestinationAccountID: uuid.MustParse(input.DestinationAccountID),
			BankID:               uuid.MustParse(input.BankID),
			Amount:               input.Amount,
		}
		if err = transferSvc.Transfer(c.UserContext(), req); err != nil {
			log.Warnf("Transfer rejected: %v", err)
			return common.ProblemDetailsJSON(c, "Transfer failed", err)
		}
		return c.Status(fiber.StatusOK).JSON(TransferResponse{
			Date:        time.Now().UTC(),
			Status:      "OK",
			Message:     "Transfer completed successfully",
			Transaction: *input,
		})
	}
}
