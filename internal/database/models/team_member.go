package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person record embedded within a team. Position preserves
// insertion order, which is the display order within the team.
type TeamMember struct {
	BaseModel
	TeamID      uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Position    int       `json:"-" gorm:"not null;default:0"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Gender      Gender    `json:"gender" gorm:"type:varchar(10);not null" validate:"required,oneof=Male Female Other"`
	DateOfBirth time.Time `json:"dateOfBirth" gorm:"type:date;not null" validate:"required"`
	ContactNo   string    `json:"contactNo" gorm:"not null;size:20" validate:"required,digits"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
