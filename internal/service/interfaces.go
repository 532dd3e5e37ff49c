package service

import (
	"team-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	List(search string, page, limit int) (*TeamListResult, error)
	Create(req *CreateTeamRequest) (*models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	SetApproval(id uuid.UUID, actorRole models.UserRole, req *ApproveTeamRequest) (*models.Team, error)
	Reorder(req *ReorderTeamRequest) (*models.Team, error)
	Delete(id uuid.UUID) error
	BulkDelete(req *BulkDeleteRequest) (int64, error)
}
