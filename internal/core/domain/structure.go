package domain

// Structure is one node of the organizational structure for a period, e.g. a
// division or position. ParentID forms the hierarchy; DecreeFileID references
// the appointment decree in external storage.
type Structure struct {
	StructureID  string `json:"structureID"`
	PositionName string `json:"positionName"`
	MemberName   string `json:"memberName"`
	ParentID     string `json:"parentID"` // optional, empty for the root node
	PeriodID     string `json:"periodID"`
	DecreeFileID string `json:"decreeFileID"` // optional attachment
	Status       Status `json:"status"`       // PUBLISHED, PRIVATE
	AuditFields
}
