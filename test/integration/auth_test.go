package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finvest_backend/test/helpers"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	regRes, regBody := ts.SendRequest(t, "POST", "/api/register", "", map[string]interface{}{
		"name":     "Alice Example",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBody, "User registered successfully")
	assert.Contains(t, regBody, `"token"`)
	assert.Contains(t, regBody, "alice@example.com")

	logRes, logBody := ts.SendRequest(t, "POST", "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBody, "Login successful")
	assert.Contains(t, logBody, `"token"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.RegisterUser(t, ts, "User One", "duplicate@example.com", "password1")

	res, body := ts.SendRequest(t, "POST", "/api/register", "", map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@example.com",
		"password": "password2",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User already exists")
}

func TestRegister_ValidationFailure(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/register", "", map[string]interface{}{
		"name":     "Shorty",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "email")
}

func TestRegister_ShortPassword(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/register", "", map[string]interface{}{
		"name":     "Shorty",
		"email":    "shorty@example.com",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "password")
	assert.Contains(t, body, "at least 6 characters")

	// The rejected registration left no account behind.
	logRes, _ := ts.SendRequest(t, "POST", "/api/login", "", map[string]interface{}{
		"email":    "shorty@example.com",
		"password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, logRes.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User not found")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	helpers.RegisterUser(t, ts, "Alice Example", "alice@example.com", "correct-password")

	res, body := ts.SendRequest(t, "POST", "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "WRONG-password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid credentials")
}

func TestGoogleLogin_NewUser(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/google", "", map[string]interface{}{
		"credential": helpers.GoogleCredBob,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Google login successful")
	assert.Contains(t, body, "bob@example.com")

	var first struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &first))

	// A repeat login with the same identity resolves to the same
	// account instead of provisioning a duplicate.
	res, body = ts.SendRequest(t, "POST", "/api/auth/google", "", map[string]interface{}{
		"credential": helpers.GoogleCredBob,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var second struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.Equal(t, first.User.ID, second.User.ID)

	// The provisioned account has no password, so password login is
	// rejected as a credential failure.
	logRes, logBody := ts.SendRequest(t, "POST", "/api/login", "", map[string]interface{}{
		"email":    "bob@example.com",
		"password": "anything1",
	})
	assert.Equal(t, http.StatusBadRequest, logRes.StatusCode)
	assert.Contains(t, logBody, "Invalid credentials")
}

func TestGoogleLogin_LinksExistingAccount(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	registered := helpers.RegisterUser(t, ts, "Alice Example", "alice@example.com", "secret123")

	res, body := ts.SendRequest(t, "POST", "/api/auth/google", "", map[string]interface{}{
		"credential": helpers.GoogleCredAlice,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, registered.ID, parsed.User.ID, "google login must reuse the existing account")

	// Password login keeps working after linking.
	logRes, _ := ts.SendRequest(t, "POST", "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
}

func TestGoogleLogin_UnverifiedEmail(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/google", "", map[string]interface{}{
		"credential": helpers.GoogleCredUnverified,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "not verified")
}

func TestGoogleLogin_MissingCredential(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/google", "", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Token ID is required")
}

func TestGoogleLogin_InvalidCredential(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/auth/google", "", map[string]interface{}{
		"credential": "garbage-credential",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Google sign-in failed")
}

func TestVerify_SessionProbe(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	registered := helpers.RegisterUser(t, ts, "Alice Example", "alice@example.com", "secret123")

	res, body := ts.SendRequest(t, "GET", "/api/auth/verify", registered.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, registered.ID)
	assert.Contains(t, body, "alice@example.com")
}

func TestVerify_MissingToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/api/auth/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Access token required")
}

func TestVerify_InvalidToken(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/api/auth/verify", "not-a-real-token", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired token")
}

func TestNoRoute(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "API endpoint not found")
}
