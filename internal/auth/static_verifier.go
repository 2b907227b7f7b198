package auth

import (
	"context"

	"finvest_backend/pkg/apperrors"
)

// StaticVerifier is a GoogleVerifier backed by a fixed credential map,
// for tests and local development without Google connectivity.
type StaticVerifier struct {
	Identities map[string]*GoogleIdentity
	// Err, when set, is returned for unknown credentials instead of
	// the generic invalid-token error.
	Err error
}

func (v *StaticVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	if identity, ok := v.Identities[credential]; ok {
		clone := *identity
		return &clone, nil
	}
	if v.Err != nil {
		return nil, v.Err
	}
	return nil, apperrors.ErrGoogleTokenInvalid
}
