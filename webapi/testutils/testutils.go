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

	infracache "github.com/amirasaad/ledger/infra/cache"
	infracustomer "github.com/amirasaad/ledger/infra/repository/customer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

const (
	TestUser     = "admin"
	TestPassword = "123"
)

// Clock is a settable time source shared by the services of a test app.
type Clock struct {
	Now time.Time
}

func (c *Clock) Time() time.Time { return c.Now }

// TestConfig returns an application config suitable for tests.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3031},
		Log:    &config.Log{Format: "text"},
		Auth: &config.Auth{
			User:     TestUser,
			Password: TestPassword,
			Jwt:      &config.Jwt{Secret: "test-secret", Expiry: 5 * time.Minute},
		},
		Store:     &config.Store{Driver: "memory"},
		Redis:     &config.Redis{KeyPrefix: "ledger:revoked:"},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Ledger:    &config.Ledger{TimeZone: "UTC"},
	}
}

// SetupTestApp wires the full HTTP app over an in-memory store, a memory denylist
// and a controllable clock. mutate, if given, adjusts the config before wiring.
func SetupTestApp(t testing.TB, mutate ...func(*config.App)) (*fiber.App, *app.App, *Clock) {
	t.Helper()
	cfg := TestConfig()
	for _, m := range mutate {
		m(cfg)
	}
	clock := &Clock{Now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	denylist := infracache.NewMemoryDenylist(time.Hour)
	deps := &app.Deps{
		Store:    infracustomer.NewMemory(),
		Denylist: denylist,
		Location: time.UTC,
		Clock:    clock.Time,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Closers:  []io.Closer{denylist},
	}
	t.Cleanup(func() { _ = deps.Close() })

	a, err := app.New(deps, cfg)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	return webapi.SetupApp(a), a, clock
}

// Request describes a test HTTP request.
type Request struct {
	Method string
	Path   string
	Body   string
	Token  string
	CPF    string
}

// Do sends req to app and returns the response.
func Do(t testing.TB, app *fiber.App, req Request) *http.Response {
	t.Helper()
	var body io.Reader
	if req.Body != "" {
		body = bytes.NewBufferString(req.Body)
	}
	r := httptest.NewRequest(req.Method, req.Path, body)
	if req.Body != "" {
		r.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if req.Token != "" {
		r.Header.Set("x-access-token", req.Token)
	}
	if req.CPF != "" {
		r.Header.Set(common.CPFHeader, req.CPF)
	}
	resp, err := app.Test(r, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.Path, err)
	}
	return resp
}

// MakeRequest is a shorthand for Do without identity header.
func MakeRequest(t testing.TB, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	return Do(t, app, Request{Method: method, Path: path, Body: body, Token: token})
}

// Decode reads the response body into a value of type T and closes it.
func Decode[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// Envelope is the success response with its data left raw for typed decoding.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData decodes the data field of a success envelope into T.
func DecodeData[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	env := Decode[Envelope](t, resp)
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return out
}

// LoginUser logs in with the test credentials and returns the session token and id.
func LoginUser(t testing.TB, app *fiber.App) (token, id string) {
	t.Helper()
	resp := MakeRequest(t, app, http.MethodPost, "/login",
		`{"user":"`+TestUser+`","password":"`+TestPassword+`"}`, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	data := DecodeData[struct {
		Auth  bool   `json:"auth"`
		Token string `json:"token"`
		ID    string `json:"id"`
	}](t, resp)
	if data.Token == "" {
		t.Fatal("login: no token in response")
	}
	return data.Token, data.ID
}
