package models

// Team is the primary managed entity: a named group of members with
// independent manager/director sign-offs and an advisory display position.
type Team struct {
	BaseModel
	TeamName           string        `json:"teamName" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	TeamDescription    string        `json:"teamDescription" gorm:"not null;size:500" validate:"required,min=1,max=500"`
	ApprovedByManager  ApprovalState `json:"approvedByManager" gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedByDirector ApprovalState `json:"approvedByDirector" gorm:"type:varchar(20);not null;default:'pending'"`
	DisplayOrder       int           `json:"displayOrder" gorm:"not null;default:0;index"`

	// Members are embedded in the team: they have no lifecycle of their own and
	// are replaced wholesale whenever an update supplies a member list.
	Members []TeamMember `json:"members" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
