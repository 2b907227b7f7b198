package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
)

// RegisteredUser is the result of driving the register endpoint.
type RegisteredUser struct {
	ID    string
	Name  string
	Email string
	Token string
}

// RegisterUser creates an account through the public API and returns
// its identity and bearer token.
func RegisterUser(t *testing.T, ts *TestServer, name, email, password string) *RegisteredUser {
	t.Helper()

	res, body := ts.SendRequest(t, "POST", "/api/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("failed to register %s: status %d, body %s", email, res.StatusCode, body)
	}

	var parsed struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("failed to parse register response: %v", err)
	}

	return &RegisteredUser{
		ID:    parsed.User.ID,
		Name:  parsed.User.Name,
		Email: parsed.User.Email,
		Token: parsed.Token,
	}
}

// ValidDetailsBody returns a profile payload that passes every
// validation rule. Tests mutate single fields to probe each rule.
func ValidDetailsBody() map[string]interface{} {
	return map[string]interface{}{
		"fullName":               "Alice Example",
		"phone":                  "9876543210",
		"dob":                    "1990-05-10",
		"gender":                 "Female",
		"maritalStatus":          "Single",
		"occupation":             "Employed (Private)",
		"company":                "Example Corp",
		"annualIncome":           "₹5,00,001 - ₹10,00,000",
		"investmentExperience":   "Intermediate (2-5 years)",
		"riskTolerance":          "Moderate",
		"goals":                  []string{"Wealth Creation", "Retirement Planning"},
		"preferredCommunication": []string{"Email", "WhatsApp"},
		"acceptTerms":            true,
	}
}
