package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finvest_backend/internal/client"
	"finvest_backend/internal/services/dto"
)

// detailsStub fakes the profile endpoints and records which methods
// were used.
type detailsStub struct {
	mu      sync.Mutex
	details *dto.UserDetailsResponse
	methods []string

	// when set, mutation handlers signal started once and then block
	// until hold is closed
	hold      chan struct{}
	started   chan struct{}
	startOnce sync.Once
}

func (s *detailsStub) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"user":    map[string]string{"id": "user-1", "name": "Alice Example", "email": "alice@example.com"},
		})
	})
	mux.HandleFunc("GET /api/user/details", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		json.NewEncoder(w).Encode(dto.DetailsEnvelope{
			Success: true,
			Exists:  s.details != nil,
			Details: s.details,
		})
	})

	mutate := func(method string, status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.hold != nil {
				s.startOnce.Do(func() { close(s.started) })
				<-s.hold
			}
			var req dto.UserDetailsRequest
			json.NewDecoder(r.Body).Decode(&req)

			s.mu.Lock()
			s.methods = append(s.methods, method)
			s.details = &dto.UserDetailsResponse{
				UserID:                 "user-1",
				Email:                  "alice@example.com",
				FullName:               req.FullName,
				Phone:                  req.Phone,
				DOB:                    req.DOB,
				Gender:                 req.Gender,
				MaritalStatus:          req.MaritalStatus,
				Occupation:             req.Occupation,
				Company:                req.Company,
				AnnualIncome:           req.AnnualIncome,
				InvestmentExperience:   req.InvestmentExperience,
				RiskTolerance:          req.RiskTolerance,
				Goals:                  req.Goals,
				PreferredCommunication: req.PreferredCommunication,
				AcceptTerms:            req.AcceptTerms,
			}
			s.mu.Unlock()

			w.WriteHeader(status)
			json.NewEncoder(w).Encode(dto.DetailsMutationResponse{
				Success: true,
				Message: "ok",
				Details: s.details,
			})
		}
	}
	mux.HandleFunc("POST /api/user/details", mutate("POST", http.StatusCreated))
	mux.HandleFunc("PUT /api/user/details", mutate("PUT", http.StatusOK))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func (s *detailsStub) recordedMethods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.methods...)
}

func authenticatedSession(t *testing.T, server *httptest.Server) (*client.APIClient, *client.Session) {
	t.Helper()

	api := client.NewAPIClient(server.URL)
	store := client.NewMemoryCredentialStore()
	require.NoError(t, store.Save(&client.Credentials{Token: "stub-token"}))

	session := client.NewSession(api, store)
	require.NoError(t, session.Open(context.Background()))
	require.Equal(t, client.StateAuthenticated, session.State())
	return api, session
}

func validFormFields() dto.UserDetailsRequest {
	return dto.UserDetailsRequest{
		FullName:               "Alice Example",
		Phone:                  "9876543210",
		DOB:                    "1990-05-10",
		Gender:                 "Female",
		MaritalStatus:          "Single",
		Occupation:             "Employed (Private)",
		AnnualIncome:           "₹5,00,001 - ₹10,00,000",
		InvestmentExperience:   "Intermediate (2-5 years)",
		RiskTolerance:          "Moderate",
		Goals:                  []string{"Wealth Creation"},
		PreferredCommunication: []string{"Email"},
		AcceptTerms:            true,
	}
}

func TestForm_CreateThenEdit(t *testing.T) {
	stub := &detailsStub{}
	server := stub.server(t)
	api, session := authenticatedSession(t, server)

	form := client.NewForm(api, session)
	require.NoError(t, form.Load(context.Background()))
	assert.Equal(t, client.ModeCreate, form.Mode())

	form.Fields = validFormFields()
	require.Empty(t, form.Validate())

	resp, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)

	// A successful create flips the form to update mode.
	assert.Equal(t, client.ModeUpdate, form.Mode())

	form.Fields.Occupation = "Self-Employed"
	_, err = form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"POST", "PUT"}, stub.recordedMethods())
}

func TestForm_LoadPrefillsExistingProfile(t *testing.T) {
	stub := &detailsStub{
		details: &dto.UserDetailsResponse{
			FullName:               "Alice Example",
			Phone:                  "9876543210",
			DOB:                    "1990-05-10",
			Gender:                 "Female",
			MaritalStatus:          "Single",
			Occupation:             "Employed (Private)",
			AnnualIncome:           "₹5,00,001 - ₹10,00,000",
			InvestmentExperience:   "Intermediate (2-5 years)",
			RiskTolerance:          "Moderate",
			Goals:                  []string{"Tax Saving"},
			PreferredCommunication: []string{"Email"},
			AcceptTerms:            true,
		},
	}
	server := stub.server(t)
	api, session := authenticatedSession(t, server)

	form := client.NewForm(api, session)
	require.NoError(t, form.Load(context.Background()))

	assert.Equal(t, client.ModeUpdate, form.Mode())
	assert.Equal(t, "Alice Example", form.Fields.FullName)
	assert.Equal(t, []string{"Tax Saving"}, form.Fields.Goals)
}

func TestForm_ValidateCollectsEverything(t *testing.T) {
	stub := &detailsStub{}
	server := stub.server(t)
	api, session := authenticatedSession(t, server)

	form := client.NewForm(api, session)
	require.NoError(t, form.Load(context.Background()))

	// Entirely blank form: every field reports at once.
	problems := form.Validate()
	for _, field := range []string{
		"fullName", "phone", "dob", "gender", "maritalStatus",
		"occupation", "annualIncome", "investmentExperience",
		"riskTolerance", "goals", "preferredCommunication", "acceptTerms",
	} {
		assert.Contains(t, problems, field)
	}

	form.Fields = validFormFields()
	form.Fields.Phone = "12345"
	form.Fields.DOB = "2020-01-01"
	form.Fields.AcceptTerms = false

	problems = form.Validate()
	assert.Len(t, problems, 3)
	assert.Contains(t, problems, "phone")
	assert.Contains(t, problems, "dob")
	assert.Contains(t, problems, "acceptTerms")
}

func TestForm_SubmitRequiresLoad(t *testing.T) {
	stub := &detailsStub{}
	server := stub.server(t)
	api, session := authenticatedSession(t, server)

	form := client.NewForm(api, session)
	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, client.ErrFormNotLoaded)
}

func TestForm_RequiresAuthentication(t *testing.T) {
	stub := &detailsStub{}
	server := stub.server(t)

	api := client.NewAPIClient(server.URL)
	session := client.NewSession(api, client.NewMemoryCredentialStore())
	require.NoError(t, session.Open(context.Background()))

	form := client.NewForm(api, session)
	assert.ErrorIs(t, form.Load(context.Background()), client.ErrNotAuthenticated)
	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, client.ErrNotAuthenticated)
}

func TestForm_RejectsConcurrentSubmit(t *testing.T) {
	stub := &detailsStub{
		hold:    make(chan struct{}),
		started: make(chan struct{}),
	}
	server := stub.server(t)
	api, session := authenticatedSession(t, server)

	form := client.NewForm(api, session)
	require.NoError(t, form.Load(context.Background()))
	form.Fields = validFormFields()

	firstDone := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		firstDone <- err
	}()

	// Wait until the first submission reached the server, then a
	// second Submit must bounce without issuing a request.
	select {
	case <-stub.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the server")
	}

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, client.ErrSubmissionInFlight)

	close(stub.hold)
	require.NoError(t, <-firstDone)
}
