package models

// Canonical option sets for the investor profile. The client form
// renders exactly these values and the server validates against them,
// so both sides share one definition.

var GenderOptions = []string{
	"Male",
	"Female",
	"Other",
	"Prefer not to say",
}

var MaritalStatusOptions = []string{
	"Single",
	"Married",
	"Divorced",
	"Widowed",
}

var OccupationOptions = []string{
	"Student",
	"Employed (Private)",
	"Employed (Government)",
	"Self-Employed",
	"Business Owner",
	"Retired",
	"Unemployed",
	"Other",
}

var AnnualIncomeOptions = []string{
	"Below ₹2,50,000",
	"₹2,50,000 - ₹5,00,000",
	"₹5,00,001 - ₹10,00,000",
	"₹10,00,001 - ₹20,00,000",
	"Above ₹20,00,000",
}

var InvestmentExperienceOptions = []string{
	"Beginner (0-2 years)",
	"Intermediate (2-5 years)",
	"Advanced (5+ years)",
	"Professional",
}

var RiskToleranceOptions = []string{
	"Conservative (Low Risk)",
	"Moderate",
	"Aggressive (High Risk)",
	"Very Aggressive",
}

var GoalOptions = []string{
	"Wealth Creation",
	"Retirement Planning",
	"Children's Education",
	"Home Purchase",
	"Tax Saving",
	"Emergency Fund",
	"Travel",
	"Other",
}

var CommunicationOptions = []string{
	"Email",
	"SMS",
	"WhatsApp",
	"Phone Call",
}

// IsOneOf reports whether value is a member of the option set.
func IsOneOf(value string, options []string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}

// AllIn reports whether every value is a member of the option set.
func AllIn(values []string, options []string) bool {
	for _, v := range values {
		if !IsOneOf(v, options) {
			return false
		}
	}
	return true
}
