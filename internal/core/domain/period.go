package domain

// Period is an organizational period (a management year or term) referenced by
// most entities as an optional foreign key.
type Period struct {
	PeriodID  string `json:"periodID"`
	Name      string `json:"name"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
