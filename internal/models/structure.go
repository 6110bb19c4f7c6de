package models

// Structure represents a row of the structures table.
type Structure struct {
	StructureID  string `db:"structure_id"`
	PositionName string `db:"position_name"`
	MemberName   string `db:"member_name"`
	ParentID     string `db:"parent_id"`
	PeriodID     string `db:"period_id"`
	DecreeFileID string `db:"decree_file_id"`
	Status       string `db:"status"`
	AuditFields
}

// Management represents a row of the managements table.
type Management struct {
	ManagementID string `db:"management_id"`
	UserID       string `db:"user_id"`
	Position     string `db:"position"`
	PeriodID     string `db:"period_id"`
	PhotoFileID  string `db:"photo_file_id"`
	Status       string `db:"status"`
	AuditFields
}
