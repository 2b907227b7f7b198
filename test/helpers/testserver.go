package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"finvest_backend/internal/app"
	"finvest_backend/internal/auth"
	"finvest_backend/internal/config"
	"finvest_backend/internal/models"
)

// Google credentials the test verifier accepts.
const (
	GoogleCredAlice      = "google-credential-alice"
	GoogleCredBob        = "google-credential-bob"
	GoogleCredUnverified = "google-credential-unverified"
)

// TestServer is a full HTTP stack over an in-memory database, with a
// static Google verifier in place of the real one.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Verifier *auth.StaticVerifier
}

// NewTestServer boots an isolated server per test. The database is
// in-memory SQLite pinned to a single connection so every request sees
// the same data; TranslateError keeps the unique-violation mapping the
// repositories rely on.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB from GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.UserDetails{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	verifier := &auth.StaticVerifier{
		Identities: map[string]*auth.GoogleIdentity{
			GoogleCredAlice: {
				Subject:       "google-sub-alice",
				Email:         "alice@example.com",
				Name:          "Alice Example",
				EmailVerified: true,
			},
			GoogleCredBob: {
				Subject:       "google-sub-bob",
				Email:         "bob@example.com",
				Name:          "Bob Example",
				EmailVerified: true,
			},
			GoogleCredUnverified: {
				Subject:       "google-sub-mallory",
				Email:         "mallory@example.com",
				Name:          "Mallory Example",
				EmailVerified: false,
			},
		},
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-signing-secret"
	cfg.JWT.TTLHours = 24
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	router := app.SetupRouter(cfg, db, sqlDB, verifier)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		sqlDB.Close()
	})

	return &TestServer{
		Server:   server,
		DB:       db,
		Verifier: verifier,
	}
}

// SendRequest performs one JSON request against the test server and
// returns the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
