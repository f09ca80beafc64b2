package account_test

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/amirasaad/bankcore/internal/fixtures/seed"
	"github.com/amirasaad/bankcore/pkg/app"
	accountweb "github.com/amirasaad/bankcore/webapi/account"
	"github.com/amirasaad/bankcore/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	suite.Suite
	app    *fiber.App
	deps   *app.App
	seed   *seed.Data
	andres string
	john   string
	bank   string
}

func (s *AccountTestSuite) SetupTest() {
	s.app, s.deps, s.seed = testutils.NewSeededApp(s.T())
	s.andres = s.seed.Accounts[0].ID.String()
	s.john = s.seed.Accounts[1].ID.String()
	s.bank = s.seed.Banks[0].ID.String()
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) transferBody(origin, destination, amount string) string {
	return fmt.Sprintf(
		`{"bank_id":%q,"origin_account_id":%q,"destination_account_id":%q,"amount":%s}`,
		s.bank, origin, destination, amount,
	)
}

func (s *AccountTestSuite) balance(id string) decimal.Decimal {
	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/"+id+"/balance", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_, dto := testutils.DecodeResponse[accountweb.BalanceDTO](s.T(), resp)
	return decimal.RequireFromString(dto.Balance)
}

func (s *AccountTestSuite) TestCreateAccount() {
	s.Run("Create account successfully", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts",
			`{"owner_name":"María","initial_balance":"150.25"}`)
		s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

		envelope, dto := testutils.DecodeResponse[accountweb.AccountDTO](s.T(), resp)
		s.Assert().Equal("Account created", envelope.Message)
		s.Assert().Equal("María", dto.OwnerName)
		s.Assert().Equal("150.25", dto.Balance)
		s.Assert().NotEmpty(dto.ID)
	})

	s.Run("Create account with numeric balance", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts",
			`{"owner_name":"Ana","initial_balance":10}`)
		s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
		_, dto := testutils.DecodeResponse[accountweb.AccountDTO](s.T(), resp)
		s.Assert().Equal("10", dto.Balance)
	})

	s.Run("Missing owner", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts", `{"initial_balance":1}`)
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
		pd := testutils.DecodeProblem(s.T(), resp)
		s.Assert().Equal("Validation failed", pd.Title)
	})

	s.Run("Negative initial balance", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts",
			`{"owner_name":"Ana","initial_balance":"-1"}`)
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
		pd := testutils.DecodeProblem(s.T(), resp)
		s.Assert().Equal("Failed to create account", pd.Title)
	})
}

func (s *AccountTestSuite) TestGetAndListAccounts() {
	s.Run("Get seeded account", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/"+s.andres, "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		_, dto := testutils.DecodeResponse[accountweb.AccountDTO](s.T(), resp)
		s.Assert().Equal("Andrés", dto.OwnerName)
		s.Assert().Equal("1000", dto.Balance)
	})

	s.Run("Unknown account", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/"+uuid.NewString(), "")
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})

	s.Run("Invalid id", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/not-a-uuid", "")
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("List", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts", "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		_, list := testutils.DecodeResponse[[]accountweb.AccountDTO](s.T(), resp)
		s.Require().Len(list, 2)
		s.Assert().Equal("Andrés", list[0].OwnerName)
		s.Assert().Equal("John", list[1].OwnerName)
	})

	s.Run("Find by owner", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/owner/"+url.PathEscape("Andrés"), "")
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		_, dto := testutils.DecodeResponse[accountweb.AccountDTO](s.T(), resp)
		s.Assert().Equal(s.andres, dto.ID)
	})

	s.Run("Find by unknown owner", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/owner/Nobody", "")
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})
}

func (s *AccountTestSuite) TestDeleteAccount() {
	resp := testutils.MakeRequest(s.app, fiber.MethodDelete, "/api/accounts/"+s.john, "")
	s.Require().Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = testutils.MakeRequest(s.app, fiber.MethodGet, "/api/accounts/"+s.john, "")
	s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = testutils.MakeRequest(s.app, fiber.MethodDelete, "/api/accounts/"+s.john, "")
	s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *AccountTestSuite) TestTransfer() {
	s.Run("Transfer successfully", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
			s.transferBody(s.andres, s.john, `"100"`))
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)

		var body accountweb.TransferResponse
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
		s.Require().NoError(resp.Body.Close())
		s.Assert().Equal("OK", body.Status)
		s.Assert().Equal(s.andres, body.Transaction.OriginAccountID)
		s.Assert().True(decimal.NewFromInt(100).Equal(body.Transaction.Amount))
		s.Assert().False(body.Date.IsZero())

		s.Assert().True(decimal.NewFromInt(900).Equal(s.balance(s.andres)))
		s.Assert().True(decimal.NewFromInt(2100).Equal(s.balance(s.john)))
		s.Assert().Equal(int64(1), s.transferCount())
	})

	s.Run("Insufficient funds", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
			s.transferBody(s.andres, s.john, "1200"))
		s.Assert().Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
		pd := testutils.DecodeProblem(s.T(), resp)
		s.Assert().Contains(pd.Detail, "insufficient funds")

		s.Assert().True(decimal.NewFromInt(900).Equal(s.balance(s.andres)))
		s.Assert().Equal(int64(1), s.transferCount())
	})

	s.Run("Missing destination", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
			s.transferBody(s.andres, uuid.NewString(), "1"))
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
		s.Assert().True(decimal.NewFromInt(900).Equal(s.balance(s.andres)))
	})

	s.Run("Same account", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
			s.transferBody(s.andres, s.andres, "1"))
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Non-positive amount", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
			s.transferBody(s.andres, s.john, "0"))
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
	})

	s.Run("Malformed ids", func() {
		resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
			`{"bank_id":"x","origin_account_id":"y","destination_account_id":"z","amount":1}`)
		s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
		pd := testutils.DecodeProblem(s.T(), resp)
		s.Assert().NotNil(pd.Errors)
	})
}

func (s *AccountTestSuite) TestConcurrentTransfersOverHTTP() {
	const workers = 20
	var wg sync.WaitGroup
	statuses := make(chan int, workers*2)
	// Andrés holds 1000: exactly 20 transfers of 50 fit
	for range workers * 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := testutils.MakeRequest(s.app, fiber.MethodPost, "/api/accounts/transfer",
				s.transferBody(s.andres, s.john, "50"))
			_ = resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for code := range statuses {
		counts[code]++
	}
	s.Assert().Equal(workers, counts[fiber.StatusOK])
	s.Assert().Equal(workers, counts[fiber.StatusUnprocessableEntity])
	s.Assert().True(decimal.Zero.Equal(s.balance(s.andres)))
	s.Assert().True(decimal.NewFromInt(3000).Equal(s.balance(s.john)))
	s.Assert().Equal(int64(workers), s.transferCount())
}

func (s *AccountTestSuite) transferCount() int64 {
	n, err := s.deps.TransferService.TransferCountOf(s.T().Context(), s.seed.Banks[0].ID)
	s.Require().NoError(err)
	return n
}
