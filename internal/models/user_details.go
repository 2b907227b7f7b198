package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserDetails is the investor onboarding profile, at most one per
// user. The unique index on UserID is the authoritative one-to-one
// guard: a concurrent double first-submission loses on the index, not
// on an application-level check. Existence of this row is the sole
// signal that onboarding is complete.
type UserDetails struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null"`

	// Denormalized from the owning user at creation; never taken
	// from client input.
	Email string `gorm:"not null"`

	FullName             string
	Phone                string
	DOB                  time.Time `gorm:"type:date"`
	Gender               string
	MaritalStatus        string
	Occupation           string
	Company              string
	AnnualIncome         string
	InvestmentExperience string
	RiskTolerance        string

	Goals                  datatypes.JSONSlice[string]
	PreferredCommunication datatypes.JSONSlice[string]

	AcceptTerms bool

	// Set once when the profile is first submitted. UpdatedAt from
	// BaseModel advances on every replace.
	SubmittedAt time.Time
}
