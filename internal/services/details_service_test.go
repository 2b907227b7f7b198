package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finvest_backend/internal/services/dto"
	"finvest_backend/pkg/apperrors"
)

func validDetailsRequest() *dto.UserDetailsRequest {
	return &dto.UserDetailsRequest{
		FullName:               "Alice Example",
		Phone:                  "9876543210",
		DOB:                    "1990-05-10",
		Gender:                 "Female",
		MaritalStatus:          "Single",
		Occupation:             "Employed (Private)",
		Company:                "Example Corp",
		AnnualIncome:           "₹5,00,001 - ₹10,00,000",
		InvestmentExperience:   "Intermediate (2-5 years)",
		RiskTolerance:          "Moderate",
		Goals:                  []string{"Wealth Creation"},
		PreferredCommunication: []string{"Email"},
		AcceptTerms:            true,
	}
}

func TestValidateDetails_Valid(t *testing.T) {
	assert.NoError(t, validateDetails(validDetailsRequest()))
}

func TestValidateDetails_CollectsEveryOffendingField(t *testing.T) {
	req := validDetailsRequest()
	req.Gender = "Unknown"
	req.RiskTolerance = "Reckless"
	req.Goals = []string{"Wealth Creation", "Speculation"}

	err := validateDetails(req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	fields, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "gender")
	assert.Contains(t, fields, "riskTolerance")
	assert.Contains(t, fields, "goals")
}

func TestValidateDetails_SameRulesForAllOptionSets(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*dto.UserDetailsRequest)
	}{
		{"maritalStatus", func(r *dto.UserDetailsRequest) { r.MaritalStatus = "Complicated" }},
		{"occupation", func(r *dto.UserDetailsRequest) { r.Occupation = "Adventurer" }},
		{"annualIncome", func(r *dto.UserDetailsRequest) { r.AnnualIncome = "$100,000" }},
		{"investmentExperience", func(r *dto.UserDetailsRequest) { r.InvestmentExperience = "Expert" }},
		{"preferredCommunication", func(r *dto.UserDetailsRequest) { r.PreferredCommunication = []string{"Fax"} }},
	}

	for _, tc := range cases {
		req := validDetailsRequest()
		tc.mutate(req)

		err := validateDetails(req)
		require.Error(t, err, "field %s", tc.field)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		fields := appErr.Details.(map[string]string)
		assert.Contains(t, fields, tc.field)
	}
}
