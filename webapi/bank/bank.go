package bank

import (
	banksvc "github.com/amirasaad/bankcore/pkg/service/bank"
	transfersvc "github.com/amirasaad/bankcore/pkg/service/transfer"
	"github.com/amirasaad/bankcore/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for bank operations.
//
// Routes:
//   - POST /api/banks                 : Register a bank.
//   - GET  /api/banks                 : List banks.
//   - GET  /api/banks/:id             : Retrieve a bank.
//   - GET  /api/banks/:id/transfers   : Number of completed transfers.
func Routes(app *fiber.App, bankSvc *banksvc.Service, transferSvc *transfersvc.Service) {
	group := app.Group("/api/banks")
	group.Post("/", CreateBank(bankSvc))
	group.Get("/", ListBanks(bankSvc))
	group.Get("/:id", GetBank(bankSvc))
	group.Get("/:id/transfers", GetTransferCount(transferSvc))
}

// CreateBank returns a Fiber handler registering a bank with a zero
// transfer count.
// @Summary Register a bank
// @Tags banks
// @Accept json
// @Produce json
// @Param request body CreateBankRequest true "Bank details"
// @Success 201 {object} common.Response "Bank created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Router /api/banks [post]
func CreateBank(bankSvc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateBankRequest](c)
		if input == nil {
			return err // error response already written
		}
		b, err := bankSvc.CreateBank(c.UserContext(), input.Name)
		if err != nil {
			log.Errorf("Failed to create bank: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create bank", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Bank created", ToBankDTO(b))
	}
}

func ListBanks(bankSvc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		banks, err := bankSvc.ListBanks(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list banks", err)
		}
		out := make([]*BankDTO, 0, len(banks))
		for _, b := range banks {
			out = append(out, ToBankDTO(b))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Banks fetched", out)
	}
}

func GetBank(bankSvc *banksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid bank ID", err)
		}
		b, err := bankSvc.GetBank(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get bank", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Bank fetched", ToBankDTO(b))
	}
}

// GetTransferCount returns a Fiber handler reporting how many transfers a
// bank has completed.
// @Summary Get bank transfer count
// @Tags banks
// @Produce json
// @Param id path string true "Bank ID"
// @Success 200 {object} common.Response "Transfer count fetched"
// @Failure 404 {object} common.ProblemDetails "Bank not found"
// @Router /api/banks/{id}/transfers [get]
func GetTransferCount(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseUUIDParam(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid bank ID", err)
		}
		count, err := transferSvc.TransferCountOf(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transfer count", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer count fetched", TransferCountDTO{
			BankID:        id.String(),
			TransferCount: count,
		})
	}
}
