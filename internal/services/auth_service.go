package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"finvest_backend/internal/auth"
	"finvest_backend/internal/logger"
	"finvest_backend/internal/models"
	"finvest_backend/internal/repositories"
	"finvest_backend/internal/services/dto"
	"finvest_backend/pkg/apperrors"
)

// AuthService covers registration, both login paths and the session
// probe. The request-scoped *gorm.DB comes in per call.
type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GoogleLogin(ctx context.Context, db *gorm.DB, credential string) (*dto.AuthResponse, error)
	Verify(ctx context.Context, db *gorm.DB, userID string) (*dto.VerifyResponse, error)
}

type AuthServiceImpl struct {
	tokens   *auth.TokenService
	google   auth.GoogleVerifier
	userRepo repositories.UserRepository
}

func NewAuthService(tokens *auth.TokenService, google auth.GoogleVerifier) AuthService {
	return &AuthServiceImpl{
		tokens:   tokens,
		google:   google,
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID)

	return &dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    authUser(user),
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// A Google-only account has no hash to check against.
	if !user.HasPassword() {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, *user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return &dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    authUser(user),
	}, nil
}

// GoogleLogin verifies the Google-issued credential, then either signs
// in the matching account, links the Google identity to an existing
// password account with the same email, or provisions a new
// passwordless account.
func (s *AuthServiceImpl) GoogleLogin(ctx context.Context, db *gorm.DB, credential string) (*dto.AuthResponse, error) {
	if credential == "" {
		return nil, apperrors.ErrGoogleTokenMissing
	}

	identity, err := s.google.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}
	if !identity.EmailVerified {
		return nil, apperrors.ErrGoogleEmailUnverified
	}

	user, err := s.userRepo.FindByEmail(db, identity.Email)
	switch {
	case err == nil:
		if user.GoogleID == nil {
			if err := s.userRepo.LinkGoogleID(db, user.ID, identity.Subject); err != nil {
				return nil, apperrors.InternalError(err)
			}
			logger.CtxInfo(ctx, "linked google identity to existing account", "user_id", user.ID)
		}
	case errors.Is(err, repositories.ErrUserNotFound):
		user, err = s.provisionGoogleUser(ctx, db, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Success: true,
		Message: "Google login successful",
		Token:   token,
		User:    authUser(user),
	}, nil
}

func (s *AuthServiceImpl) provisionGoogleUser(ctx context.Context, db *gorm.DB, identity *auth.GoogleIdentity) (*models.User, error) {
	name := identity.Name
	if name == "" {
		name = identity.Email
	}

	googleID := identity.Subject
	user := &models.User{
		Name:     name,
		Email:    identity.Email,
		GoogleID: &googleID,
	}
	err := s.userRepo.Create(db, user)
	if err == nil {
		logger.CtxInfo(ctx, "provisioned account from google identity", "user_id", user.ID)
		return user, nil
	}

	// Lost a race against a concurrent first login for the same email;
	// the other request's row is the account now.
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		existing, ferr := s.userRepo.FindByEmail(db, identity.Email)
		if ferr != nil {
			return nil, apperrors.InternalError(ferr)
		}
		return existing, nil
	}
	return nil, apperrors.InternalError(err)
}

// Verify re-reads the token's owner so a valid token whose account was
// deleted answers with a 404 instead of a ghost session.
func (s *AuthServiceImpl) Verify(ctx context.Context, db *gorm.DB, userID string) (*dto.VerifyResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrProfileUserGone
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyResponse{
		Success: true,
		User:    authUser(user),
	}, nil
}

func authUser(user *models.User) dto.AuthUser {
	return dto.AuthUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
