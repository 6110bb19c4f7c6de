package domain

// Management is one member of the management roster for a period.
type Management struct {
	ManagementID string `json:"managementID"`
	UserID       string `json:"userID"`
	Position     string `json:"position"`
	PeriodID     string `json:"periodID"`
	PhotoFileID  string `json:"photoFileID"` // optional attachment
	Status       Status `json:"status"`      // PUBLISHED, PRIVATE
	AuditFields
}
