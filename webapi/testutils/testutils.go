// Package testutils builds fully wired HTTP apps for handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/bankcore/infra/memory"
	"github.com/amirasaad/bankcore/internal/fixtures/seed"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/amirasaad/bankcore/webapi"
	"github.com/amirasaad/bankcore/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// TestConfig returns a config suited to handler tests: memory store and a
// rate limit high enough never to trip.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 0},
		Log:       &config.Log{Format: "text"},
		DB:        &config.DB{Driver: config.DriverMemory},
		RateLimit: &config.RateLimit{MaxRequests: 10_000, Window: time.Minute},
		Seed:      &config.Seed{Enabled: true},
	}
}

// NewTestApp wires a fiber app over uow with the given config.
func NewTestApp(uow repository.UnitOfWork, cfg *config.App) (*fiber.App, *app.App) {
	deps := &app.Deps{
		Uow:    uow,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	a := app.New(deps, cfg)
	return webapi.SetupApp(a), a
}

// NewSeededApp returns an app over a fresh in-memory store holding the
// seed accounts and bank, along with the seed data itself.
func NewSeededApp(t *testing.T) (*fiber.App, *app.App, *seed.Data) {
	t.Helper()
	uow := memory.NewUoW(memory.NewStore())
	data := SeedStore(t, uow)
	fiberApp, a := NewTestApp(uow, TestConfig())
	return fiberApp, a, data
}

// SeedStore writes the embedded seed data through uow.
func SeedStore(t *testing.T, uow repository.UnitOfWork) *seed.Data {
	t.Helper()
	data, err := seed.Load("")
	require.NoError(t, err)

	ctx := t.Context()
	accounts, err := uow.AccountRepository()
	require.NoError(t, err)
	banks, err := uow.BankRepository()
	require.NoError(t, err)
	for _, a := range data.Accounts {
		require.NoError(t, accounts.Create(ctx, a.Clone()))
	}
	for _, b := range data.Banks {
		require.NoError(t, banks.Create(ctx, b.Clone()))
	}
	return data
}

// MakeRequest is a helper for making HTTP requests in tests
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// MakeRequestWithHeaders sends a body-less request carrying headers.
func MakeRequestWithHeaders(app *fiber.App, method, path string, headers map[string]string) *http.Response {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// DecodeResponse decodes a success envelope whose data is a T.
func DecodeResponse[T any](t *testing.T, resp *http.Response) (common.Response, T) {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	var raw struct {
		common.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	var data T
	if len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, &data))
	}
	return raw.Response, data
}

// DecodeProblem decodes an RFC 9457 error body.
func DecodeProblem(t *testing.T, resp *http.Response) common.ProblemDetails {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, common.ContentTypeProblemJSON, resp.Header.Get("Content-Type"))
	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}
