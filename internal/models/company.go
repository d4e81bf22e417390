package models

import "microcredit/internal/apperrors"

// Company is a microcredit company profile as stored in the document store.
// Status is free-form; "active", "suspended" and "closed" are the documented
// values but historical records may carry anything, so no enum is enforced.
type Company struct {
	Name            string   `json:"name" bson:"name"`
	LicenseID       *string  `json:"license_id,omitempty" bson:"license_id,omitempty"`
	Country         string   `json:"country" bson:"country"`
	Region          *string  `json:"region,omitempty" bson:"region,omitempty"`
	PortfolioUSD    float64  `json:"portfolio_usd" bson:"portfolio_usd"`
	ActiveBorrowers int      `json:"active_borrowers" bson:"active_borrowers"`
	PAR30           float64  `json:"par30" bson:"par30"`
	AvgInterestRate float64  `json:"avg_interest_rate" bson:"avg_interest_rate"`
	Status          string   `json:"status" bson:"status"`
	Rating          *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
}

// ApplyDefaults fills the documented defaults for absent fields.
func (c *Company) ApplyDefaults() {
	if c.Status == "" {
		c.Status = "active"
	}
}

// Validate checks the company against its declared constraints and returns
// one entry per violated field. It never touches the store.
func (c *Company) Validate() *apperrors.ValidationError {
	var fields []apperrors.FieldError
	if c.Name == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "is required"})
	}
	if c.Country == "" {
		fields = append(fields, apperrors.FieldError{Field: "country", Message: "is required"})
	}
	if c.PortfolioUSD < 0 {
		fields = append(fields, apperrors.FieldError{Field: "portfolio_usd", Message: "must be >= 0"})
	}
	if c.ActiveBorrowers < 0 {
		fields = append(fields, apperrors.FieldError{Field: "active_borrowers", Message: "must be >= 0"})
	}
	if c.PAR30 < 0 || c.PAR30 > 100 {
		fields = append(fields, apperrors.FieldError{Field: "par30", Message: "must be between 0 and 100"})
	}
	if c.AvgInterestRate < 0 || c.AvgInterestRate > 200 {
		fields = append(fields, apperrors.FieldError{Field: "avg_interest_rate", Message: "must be between 0 and 200"})
	}
	if c.Rating != nil && (*c.Rating < 0 || *c.Rating > 5) {
		fields = append(fields, apperrors.FieldError{Field: "rating", Message: "must be between 0 and 5"})
	}
	return apperrors.NewValidationError(fields)
}

// CompanyStats holds the dashboard aggregates over the whole collection.
type CompanyStats struct {
	TotalCompanies    int     `json:"total_companies"`
	TotalPortfolioUSD float64 `json:"total_portfolio_usd"`
	AvgPAR30          float64 `json:"avg_par30"`
	ActiveBorrowers   int     `json:"active_borrowers"`
	CountriesCount    int     `json:"countries_count"`
}
