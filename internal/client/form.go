package client

import (
	"context"
	"errors"
	"sync"

	"finvest_backend/internal/models"
	"finvest_backend/internal/services/dto"
	"finvest_backend/internal/validator"
)

// FormMode says whether Submit will create the profile or replace it.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeUpdate
)

// ErrSubmissionInFlight rejects a second Submit while one is running.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ErrFormNotLoaded rejects Submit before Load has established the mode.
var ErrFormNotLoaded = errors.New("form not loaded")

// Form drives the investor-profile form: prefill, client-side
// validation and submission. Validation mirrors the server's rules so
// a clean local form never bounces off the API for a rule reason.
type Form struct {
	api     *APIClient
	session *Session

	mu       sync.Mutex
	inFlight bool
	loaded   bool
	mode     FormMode

	Fields dto.UserDetailsRequest
}

func NewForm(api *APIClient, session *Session) *Form {
	return &Form{
		api:     api,
		session: session,
	}
}

// Mode is valid after Load.
func (f *Form) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Load fetches the stored profile. An existing profile prefills every
// field and puts the form in update mode; absence leaves the blank
// form in create mode.
func (f *Form) Load(ctx context.Context) error {
	if err := f.session.RequireAuthenticated(); err != nil {
		return err
	}

	envelope, err := f.api.GetDetails(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.loaded = true
	if !envelope.Exists || envelope.Details == nil {
		f.mode = ModeCreate
		return nil
	}

	f.mode = ModeUpdate
	d := envelope.Details
	f.Fields = dto.UserDetailsRequest{
		FullName:               d.FullName,
		Phone:                  d.Phone,
		DOB:                    d.DOB,
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
	}
	return nil
}

// Validate checks the whole form and returns every offending field at
// once, keyed by the wire field name. The same rules apply in create
// and update mode.
func (f *Form) Validate() map[string]string {
	problems := make(map[string]string)

	req := &f.Fields

	if req.FullName == "" {
		problems["fullName"] = "Full name is required"
	}
	if req.Phone == "" {
		problems["phone"] = "Phone number is required"
	} else if !validator.ValidPhone(req.Phone) {
		problems["phone"] = "Must be a valid 10-digit phone number"
	}
	if req.DOB == "" {
		problems["dob"] = "Date of birth is required"
	} else if !validator.Adult(req.DOB) {
		problems["dob"] = "Must be at least 18 years old"
	}

	requireOneOf(problems, "gender", req.Gender, models.GenderOptions)
	requireOneOf(problems, "maritalStatus", req.MaritalStatus, models.MaritalStatusOptions)
	requireOneOf(problems, "occupation", req.Occupation, models.OccupationOptions)
	requireOneOf(problems, "annualIncome", req.AnnualIncome, models.AnnualIncomeOptions)
	requireOneOf(problems, "investmentExperience", req.InvestmentExperience, models.InvestmentExperienceOptions)
	requireOneOf(problems, "riskTolerance", req.RiskTolerance, models.RiskToleranceOptions)

	if len(req.Goals) == 0 {
		problems["goals"] = "Select at least one goal"
	} else if !models.AllIn(req.Goals, models.GoalOptions) {
		problems["goals"] = "Contains an unknown goal"
	}
	if len(req.PreferredCommunication) == 0 {
		problems["preferredCommunication"] = "Select at least one channel"
	} else if !models.AllIn(req.PreferredCommunication, models.CommunicationOptions) {
		problems["preferredCommunication"] = "Contains an unknown communication channel"
	}

	if !req.AcceptTerms {
		problems["acceptTerms"] = "Terms must be accepted"
	}

	return problems
}

func requireOneOf(problems map[string]string, field, value string, options []string) {
	if value == "" {
		problems[field] = "This field is required"
		return
	}
	if !models.IsOneOf(value, options) {
		problems[field] = "Must be one of the listed options"
	}
}

// Submit sends the form, POST in create mode, PUT in update mode. A
// successful create flips the form into update mode so a follow-up
// Submit edits rather than duplicates.
func (f *Form) Submit(ctx context.Context) (*dto.DetailsMutationResponse, error) {
	if err := f.session.RequireAuthenticated(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	if !f.loaded {
		f.mu.Unlock()
		return nil, ErrFormNotLoaded
	}
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	f.inFlight = true
	mode := f.mode
	req := f.Fields
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	var (
		resp *dto.DetailsMutationResponse
		err  error
	)
	if mode == ModeCreate {
		resp, err = f.api.CreateDetails(ctx, &req)
	} else {
		resp, err = f.api.UpdateDetails(ctx, &req)
	}
	if err != nil {
		return nil, err
	}

	if mode == ModeCreate {
		f.mu.Lock()
		f.mode = ModeUpdate
		f.mu.Unlock()
	}
	return resp, nil
}
