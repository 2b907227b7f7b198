package handlers

import (
	"database/sql"

	"finvest_backend/internal/auth"
	"finvest_backend/internal/services"
	"finvest_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler so route registration takes a
// single argument.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	DetailsHandler *DetailsHandler
	HealthHandler  *HealthHandler
}

// NewAppHandlers builds the full handler set with its service graph.
func NewAppHandlers(tokens *auth.TokenService, google auth.GoogleVerifier, sqlDB *sql.DB) *AppHandlers {
	base := NewBaseHandler(validator.New())

	authService := services.NewAuthService(tokens, google)
	detailsService := services.NewUserDetailsService()

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, authService, tokens),
		DetailsHandler: NewDetailsHandler(base, detailsService, tokens),
		HealthHandler:  NewHealthHandler(sqlDB),
	}
}
