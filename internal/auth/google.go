package auth

import (
	"context"
	"strings"

	"google.golang.org/api/idtoken"

	"finvest_backend/pkg/apperrors"
)

// GoogleIdentity is the subset of a verified ID-token payload the auth
// service needs.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// GoogleVerifier checks a Google-issued ID token against Google's
// public key set and the expected audience. An interface so tests can
// substitute a static verifier.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier builds a verifier bound to the OAuth client ID the
// tokens must be issued for.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

// Verify validates signature, audience and expiry, then extracts the
// identity claims. Expiry and audience failures map to their own
// errors so each surfaces a distinct user-facing message.
func (v *googleVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "expired"):
			return nil, apperrors.ErrGoogleTokenExpired.WithError(err)
		case strings.Contains(err.Error(), "audience"):
			return nil, apperrors.ErrGoogleAudienceMismatch.WithError(err)
		default:
			return nil, apperrors.ErrGoogleTokenInvalid.WithError(err)
		}
	}

	identity := &GoogleIdentity{
		Subject: payload.Subject,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		identity.Name = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	return identity, nil
}
