package webapi_test

import (
	"testing"
	"time"

	"github.com/amirasaad/bankcore/infra/memory"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *RateLimitTestSuite) SetupTest() {
	cfg := testutils.TestConfig()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 5, Window: time.Second}
	s.app, _ = testutils.NewTestApp(memory.NewUoW(memory.NewStore()), cfg)
}

func (s *RateLimitTestSuite) TestRateLimit() {
	// Send requests until rate limit is hit
	for i := range [6]int{} {
		resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/", "")
		defer resp.Body.Close() //nolint: errcheck

		if i < 5 {
			s.Assert().Equal(fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			s.Assert().Equal(fiber.StatusTooManyRequests, resp.StatusCode, "Expected Too Many Requests for request %d", i+1)
			pd := testutils.DecodeProblem(s.T(), resp)
			s.Assert().Equal("Too Many Requests", pd.Title)
		}
	}

	// Wait for the rate limit window to reset
	time.Sleep(1100 * time.Millisecond)

	resp := testutils.MakeRequest(s.app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Assert().Equal(fiber.StatusOK, resp.StatusCode, "Expected OK after rate limit reset")
}

func (s *RateLimitTestSuite) TestRateLimitKeyedByForwardedFor() {
	for range 5 {
		req := testutils.MakeRequestWithHeaders(s.app, fiber.MethodGet, "/", map[string]string{
			"X-Forwarded-For": "10.0.0.1, 10.0.0.2",
		})
		s.Require().Equal(fiber.StatusOK, req.StatusCode)
	}
	limited := testutils.MakeRequestWithHeaders(s.app, fiber.MethodGet, "/", map[string]string{
		"X-Forwarded-For": "10.0.0.1",
	})
	s.Assert().Equal(fiber.StatusTooManyRequests, limited.StatusCode)

	other := testutils.MakeRequestWithHeaders(s.app, fiber.MethodGet, "/", map[string]string{
		"X-Real-IP": "10.0.0.9",
	})
	s.Assert().Equal(fiber.StatusOK, other.StatusCode)
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}
