package dto

// RegisterRequest is the payload for email/password sign-up. The
// password policy itself lives in the auth package, not in a tag.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload for email/password sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the Google-issued ID token. Clients send
// it under different keys depending on the Google SDK in use, so all
// three are accepted; Token() picks the first non-empty one.
type GoogleLoginRequest struct {
	Credential string `json:"credential"`
	IDToken    string `json:"id_token"`
	TokenID    string `json:"tokenId"`
}

func (r *GoogleLoginRequest) Token() string {
	if r.Credential != "" {
		return r.Credential
	}
	if r.IDToken != "" {
		return r.IDToken
	}
	return r.TokenID
}

// AuthUser is the public identity shape embedded in auth responses.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the envelope returned by register, login and Google
// login on success.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

// VerifyResponse answers the session probe for an authenticated caller.
type VerifyResponse struct {
	Success bool     `json:"success"`
	User    AuthUser `json:"user"`
}
