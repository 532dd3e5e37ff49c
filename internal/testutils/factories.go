package testutils

import (
	"fmt"
	"time"

	"team-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with one member and default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix so suites can create several teams without tripping
		// the name uniqueness constraint
		TeamName:           "Test Team " + id.String()[:8],
		TeamDescription:    "A test team for testing purposes",
		ApprovedByManager:  models.ApprovalPending,
		ApprovedByDirector: models.ApprovalPending,
		DisplayOrder:       1,
		Members: []models.TeamMember{
			{
				Position:    0,
				Name:        "Jordan Smith",
				Gender:      models.GenderOther,
				DateOfBirth: time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
				ContactNo:   "5550100200",
			},
		},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.TeamName = name
	return team
}

// WithDisplayOrder sets a custom display order for the team
func (f *TeamFactory) WithDisplayOrder(order int) *models.Team {
	team := f.Create()
	team.DisplayOrder = order
	return team
}

// WithMembers replaces the default member list
func (f *TeamFactory) WithMembers(members []models.TeamMember) *models.Team {
	team := f.Create()
	for i := range members {
		members[i].Position = i
	}
	team.Members = members
	return team
}

// WithApprovals sets both approval states
func (f *TeamFactory) WithApprovals(manager, director models.ApprovalState) *models.Team {
	team := f.Create()
	team.ApprovedByManager = manager
	team.ApprovedByDirector = director
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a hashed password
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Name:  "Test User",
		Role:  models.RoleMember,
	}
	// Low cost keeps test suites fast
	_ = user.SetPassword("password123", 4)
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team *TeamFactory
	User *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team: NewTeamFactory(),
		User: NewUserFactory(),
	}
}
