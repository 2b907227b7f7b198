package repositories

import (
	"errors"

	"gorm.io/gorm"

	"finvest_backend/internal/models"
)

var (
	ErrDetailsNotFound     = errors.New("user details not found")
	ErrDetailsAlreadyExist = errors.New("user details already exist")
)

// UserDetailsRepository persists the one-per-user investor profile.
type UserDetailsRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.UserDetails, error)
	Create(db *gorm.DB, details *models.UserDetails) error
	Replace(db *gorm.DB, details *models.UserDetails) error
}

type UserDetailsRepositoryImpl struct{}

func NewUserDetailsRepository() UserDetailsRepository {
	return &UserDetailsRepositoryImpl{}
}

func (r *UserDetailsRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.UserDetails, error) {
	var details models.UserDetails
	err := db.First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

// Create inserts the profile. The unique index on user_id is the
// one-to-one guard: when two first submissions race, one insert loses
// on the index and comes back as ErrDetailsAlreadyExist instead of a
// generic database error.
func (r *UserDetailsRepositoryImpl) Create(db *gorm.DB, details *models.UserDetails) error {
	err := db.Create(details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDetailsAlreadyExist
		}
		return err
	}
	return nil
}

// Replace fully overwrites the mutable fields of an existing profile.
// UserID, Email and SubmittedAt are immutable from this surface;
// UpdatedAt advances via the model's autoUpdateTime.
func (r *UserDetailsRepositoryImpl) Replace(db *gorm.DB, details *models.UserDetails) error {
	result := db.Model(&models.UserDetails{}).
		Where("user_id = ?", details.UserID).
		Select(
			"full_name", "phone", "dob", "gender", "marital_status",
			"occupation", "company", "annual_income",
			"investment_experience", "risk_tolerance", "goals",
			"preferred_communication", "accept_terms",
		).
		Updates(details)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDetailsNotFound
	}
	return nil
}
