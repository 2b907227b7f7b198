package dto

// UserDetailsRequest is the investor-profile payload. The same shape
// and the same validation rules apply to both the first submission
// (POST) and later edits (PUT): every field is required both times.
type UserDetailsRequest struct {
	FullName               string   `json:"fullName" validate:"required,min=1,max=200"`
	Phone                  string   `json:"phone" validate:"required,profilephone"`
	DOB                    string   `json:"dob" validate:"required,adult"`
	Gender                 string   `json:"gender" validate:"required"`
	MaritalStatus          string   `json:"maritalStatus" validate:"required"`
	Occupation             string   `json:"occupation" validate:"required"`
	Company                string   `json:"company" validate:"max=200"`
	AnnualIncome           string   `json:"annualIncome" validate:"required"`
	InvestmentExperience   string   `json:"investmentExperience" validate:"required"`
	RiskTolerance          string   `json:"riskTolerance" validate:"required"`
	Goals                  []string `json:"goals" validate:"required,min=1"`
	PreferredCommunication []string `json:"preferredCommunication" validate:"required,min=1"`
	AcceptTerms            bool     `json:"acceptTerms" validate:"required"`
}

// UserDetailsResponse is the stored profile as returned to the client.
type UserDetailsResponse struct {
	ID                     string   `json:"id"`
	UserID                 string   `json:"userId"`
	Email                  string   `json:"email"`
	FullName               string   `json:"fullName"`
	Phone                  string   `json:"phone"`
	DOB                    string   `json:"dob"`
	Gender                 string   `json:"gender"`
	MaritalStatus          string   `json:"maritalStatus"`
	Occupation             string   `json:"occupation"`
	Company                string   `json:"company"`
	AnnualIncome           string   `json:"annualIncome"`
	InvestmentExperience   string   `json:"investmentExperience"`
	RiskTolerance          string   `json:"riskTolerance"`
	Goals                  []string `json:"goals"`
	PreferredCommunication []string `json:"preferredCommunication"`
	AcceptTerms            bool     `json:"acceptTerms"`
	SubmittedAt            string   `json:"submittedAt"`
	UpdatedAt              string   `json:"updatedAt"`
}

// DetailsEnvelope wraps profile reads. Exists lets the client branch
// between first-time onboarding and edit mode without a 404 dance.
type DetailsEnvelope struct {
	Success bool                 `json:"success"`
	Exists  bool                 `json:"exists"`
	Details *UserDetailsResponse `json:"details,omitempty"`
}

// DetailsMutationResponse wraps profile writes.
type DetailsMutationResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Details *UserDetailsResponse `json:"details"`
}
