package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"finvest_backend/internal/logger"
	"finvest_backend/internal/models"
	"finvest_backend/internal/repositories"
	"finvest_backend/internal/services/dto"
	"finvest_backend/internal/validator"
	"finvest_backend/pkg/apperrors"
)

// UserDetailsService manages the one-per-user investor profile.
type UserDetailsService interface {
	Get(ctx context.Context, db *gorm.DB, userID string) (*dto.DetailsEnvelope, error)
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.UserDetailsRequest) (*dto.DetailsMutationResponse, error)
	Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UserDetailsRequest) (*dto.DetailsMutationResponse, error)
}

type UserDetailsServiceImpl struct {
	userRepo    repositories.UserRepository
	detailsRepo repositories.UserDetailsRepository
}

func NewUserDetailsService() UserDetailsService {
	return &UserDetailsServiceImpl{
		userRepo:    repositories.NewUserRepository(),
		detailsRepo: repositories.NewUserDetailsRepository(),
	}
}

// Get never 404s on a missing profile: the client needs to distinguish
// "not onboarded yet" from an error, so absence is a 200 with
// exists=false.
func (s *UserDetailsServiceImpl) Get(ctx context.Context, db *gorm.DB, userID string) (*dto.DetailsEnvelope, error) {
	details, err := s.detailsRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrDetailsNotFound) {
			return &dto.DetailsEnvelope{Success: true, Exists: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.DetailsEnvelope{
		Success: true,
		Exists:  true,
		Details: detailsResponse(details),
	}, nil
}

func (s *UserDetailsServiceImpl) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.UserDetailsRequest) (*dto.DetailsMutationResponse, error) {
	if err := validateDetails(req); err != nil {
		return nil, err
	}

	// The token can outlive its account; a profile must never be
	// created for a deleted owner.
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrProfileUserGone
		}
		return nil, apperrors.InternalError(err)
	}

	details, err := detailsModel(userID, user.Email, req)
	if err != nil {
		return nil, err
	}
	details.SubmittedAt = time.Now()

	if err := s.detailsRepo.Create(db, details); err != nil {
		if errors.Is(err, repositories.ErrDetailsAlreadyExist) {
			return nil, apperrors.ErrDetailsAlreadyExist
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "investor profile created", "user_id", userID)

	return &dto.DetailsMutationResponse{
		Success: true,
		Message: "User details saved successfully",
		Details: detailsResponse(details),
	}, nil
}

// Update fully replaces the profile under the same validation rules as
// Create; a partial edit is not a thing on this surface. Email and
// SubmittedAt are preserved from the original submission.
func (s *UserDetailsServiceImpl) Update(ctx context.Context, db *gorm.DB, userID string, req *dto.UserDetailsRequest) (*dto.DetailsMutationResponse, error) {
	if err := validateDetails(req); err != nil {
		return nil, err
	}

	existing, err := s.detailsRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrDetailsNotFound) {
			return nil, apperrors.ErrDetailsNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	replacement, err := detailsModel(userID, existing.Email, req)
	if err != nil {
		return nil, err
	}

	if err := s.detailsRepo.Replace(db, replacement); err != nil {
		if errors.Is(err, repositories.ErrDetailsNotFound) {
			return nil, apperrors.ErrDetailsNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Re-read for the database-assigned UpdatedAt.
	updated, err := s.detailsRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "investor profile updated", "user_id", userID)

	return &dto.DetailsMutationResponse{
		Success: true,
		Message: "User details updated successfully",
		Details: detailsResponse(updated),
	}, nil
}

// validateDetails checks the enum-valued fields against their canonical
// option sets, collecting every offending field before failing so the
// client gets the full picture in one round trip. It runs identically
// for first submissions and edits.
func validateDetails(req *dto.UserDetailsRequest) error {
	fields := make(map[string]string)

	if !models.IsOneOf(req.Gender, models.GenderOptions) {
		fields["gender"] = "Must be one of the listed gender options"
	}
	if !models.IsOneOf(req.MaritalStatus, models.MaritalStatusOptions) {
		fields["maritalStatus"] = "Must be one of the listed marital status options"
	}
	if !models.IsOneOf(req.Occupation, models.OccupationOptions) {
		fields["occupation"] = "Must be one of the listed occupation options"
	}
	if !models.IsOneOf(req.AnnualIncome, models.AnnualIncomeOptions) {
		fields["annualIncome"] = "Must be one of the listed income brackets"
	}
	if !models.IsOneOf(req.InvestmentExperience, models.InvestmentExperienceOptions) {
		fields["investmentExperience"] = "Must be one of the listed experience levels"
	}
	if !models.IsOneOf(req.RiskTolerance, models.RiskToleranceOptions) {
		fields["riskTolerance"] = "Must be one of the listed risk profiles"
	}
	if !models.AllIn(req.Goals, models.GoalOptions) {
		fields["goals"] = "Contains an unknown goal"
	}
	if !models.AllIn(req.PreferredCommunication, models.CommunicationOptions) {
		fields["preferredCommunication"] = "Contains an unknown communication channel"
	}

	if len(fields) > 0 {
		return apperrors.ValidationError(fields)
	}
	return nil
}

func detailsModel(userID, email string, req *dto.UserDetailsRequest) (*models.UserDetails, error) {
	dob, err := time.Parse(validator.DOBLayout, req.DOB)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"dob": "Must be a calendar date in YYYY-MM-DD format",
		})
	}

	return &models.UserDetails{
		UserID:                 userID,
		Email:                  email,
		FullName:               req.FullName,
		Phone:                  validator.NormalizePhone(req.Phone),
		DOB:                    dob,
		Gender:                 req.Gender,
		MaritalStatus:          req.MaritalStatus,
		Occupation:             req.Occupation,
		Company:                req.Company,
		AnnualIncome:           req.AnnualIncome,
		InvestmentExperience:   req.InvestmentExperience,
		RiskTolerance:          req.RiskTolerance,
		Goals:                  datatypes.NewJSONSlice(req.Goals),
		PreferredCommunication: datatypes.NewJSONSlice(req.PreferredCommunication),
		AcceptTerms:            req.AcceptTerms,
	}, nil
}

func detailsResponse(d *models.UserDetails) *dto.UserDetailsResponse {
	return &dto.UserDetailsResponse{
		ID:                     d.ID,
		UserID:                 d.UserID,
		Email:                  d.Email,
		FullName:               d.FullName,
		Phone:                  d.Phone,
		DOB:                    d.DOB.Format(validator.DOBLayout),
		Gender:                 d.Gender,
		MaritalStatus:          d.MaritalStatus,
		Occupation:             d.Occupation,
		Company:                d.Company,
		AnnualIncome:           d.AnnualIncome,
		InvestmentExperience:   d.InvestmentExperience,
		RiskTolerance:          d.RiskTolerance,
		Goals:                  d.Goals,
		PreferredCommunication: d.PreferredCommunication,
		AcceptTerms:            d.AcceptTerms,
		SubmittedAt:            d.SubmittedAt.UTC().Format(time.RFC3339),
		UpdatedAt:              d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
