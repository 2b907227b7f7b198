package apperrors

import (
	"net/http"
)

// Predeclared errors for the auth and investor-profile domains.
// HTTP codes follow the public API contract: credential and conflict
// failures on the auth endpoints answer 400, a missing bearer token
// answers 401, a failed token verification answers 403.

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest,
)

var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	"Access token required",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusForbidden,
)

// --- Google sign-in ---

var ErrGoogleTokenMissing = New(
	CodeValidationFailed,
	"google",
	"Token ID is required",
	http.StatusBadRequest,
)

var ErrGoogleTokenExpired = New(
	CodeInvalidToken,
	"google",
	"Google token has expired. Please try again.",
	http.StatusBadRequest,
)

var ErrGoogleAudienceMismatch = New(
	CodeInvalidToken,
	"google",
	"Invalid Google client ID configuration.",
	http.StatusBadRequest,
)

var ErrGoogleTokenInvalid = New(
	CodeInvalidToken,
	"google",
	"Google sign-in failed",
	http.StatusBadRequest,
)

// Linking a Google identity to an existing account requires the
// provider to vouch for the email address.
var ErrGoogleEmailUnverified = New(
	CodeForbidden,
	"google",
	"Google account email is not verified",
	http.StatusBadRequest,
)

// --- Investor profile ---

var ErrDetailsAlreadyExist = New(
	CodeAlreadyExists,
	"details",
	"Details already exist. Use PUT to update.",
	http.StatusBadRequest,
)

var ErrDetailsNotFound = New(
	CodeNotFound,
	"details",
	"User details not found",
	http.StatusNotFound,
)

// Owner row deleted after the token was issued.
var ErrProfileUserGone = New(
	CodeNotFound,
	"details",
	"User not found",
	http.StatusNotFound,
)
