package models

// Store collection names, declared in one place rather than derived from
// type names.
const (
	CompanyCollection = "company"
)
