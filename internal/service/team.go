package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"team-portal-backend/internal/database/models"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/logger"
	"team-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

// RegisterCustomValidations installs the validation rules the request
// schemas rely on beyond the built-in tags. Must be called once on the
// shared validator instance before any service uses it.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
}

// TeamService handles business logic for teams
type TeamService struct {
	repo      *repository.TeamRepository
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo *repository.TeamRepository, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// MemberPayload represents one member inside a team payload
type MemberPayload struct {
	Name        string        `json:"name" validate:"required"`
	Gender      models.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth string        `json:"dateOfBirth" validate:"required"`
	ContactNo   string        `json:"contactNo" validate:"required,digits"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	TeamName        string          `json:"teamName" validate:"required"`
	TeamDescription string          `json:"teamDescription" validate:"required"`
	Members         []MemberPayload `json:"members" validate:"required,min=1,dive"`
}

// UpdateTeamRequest represents a partial update; nil fields are untouched.
// Members, when present, replace the team's whole member sequence.
type UpdateTeamRequest struct {
	TeamName           *string               `json:"teamName,omitempty"`
	TeamDescription    *string               `json:"teamDescription,omitempty"`
	Members            []MemberPayload       `json:"members,omitempty" validate:"omitempty,dive"`
	ApprovedByManager  *models.ApprovalState `json:"approvedByManager,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	ApprovedByDirector *models.ApprovalState `json:"approvedByDirector,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	DisplayOrder       *int                  `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// ApproveTeamRequest sets one of the two approval fields. Both enums are
// checked in the service against the model enums.
type ApproveTeamRequest struct {
	ApprovalType models.ApprovalType  `json:"approvalType"`
	Status       models.ApprovalState `json:"status"`
}

// ReorderTeamRequest moves a team to a new display position
type ReorderTeamRequest struct {
	TeamID   uuid.UUID `json:"teamId" validate:"required"`
	NewOrder int       `json:"newOrder" validate:"min=0"`
}

// BulkDeleteRequest deletes a set of teams by id. An empty selection is
// rejected in the service.
type BulkDeleteRequest struct {
	TeamIDs []uuid.UUID `json:"teamIds"`
}

// TeamListResult represents a page of teams plus pagination metadata
type TeamListResult struct {
	Teams      []models.Team `json:"teams"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// List retrieves a page of teams, optionally filtered by a free-text search
// over team name, description, and member names.
func (s *TeamService) List(search string, page, limit int) (*TeamListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit
	teams, total, err := s.repo.List(strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if teams == nil {
		teams = []models.Team{}
	}

	return &TeamListResult{
		Teams:      teams,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Create creates a new team with its members. The new team is appended at
// the end of the display order and both approvals start out pending.
func (s *TeamService) Create(req *CreateTeamRequest) (*models.Team, error) {
	req.TeamName = strings.TrimSpace(req.TeamName)
	req.TeamDescription = strings.TrimSpace(req.TeamDescription)

	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	members, err := buildMembers(req.Members)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.CheckTeamNameExists(req.TeamName, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamNameExists
	}

	// Not atomic with the insert; a concurrent create can collide on the
	// order value. Display order is advisory, so this is acceptable.
	maxOrder, err := s.repo.MaxDisplayOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to compute display order: %w", err)
	}

	team := &models.Team{
		TeamName:           req.TeamName,
		TeamDescription:    req.TeamDescription,
		ApprovedByManager:  models.ApprovalPending,
		ApprovedByDirector: models.ApprovalPending,
		DisplayOrder:       maxOrder + 1,
		Members:            members,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"team_id":       team.ID,
		"team_name":     team.TeamName,
		"display_order": team.DisplayOrder,
	}).Info("team created")

	return team, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// Update applies a partial update and returns the post-update team. When
// the name changes, uniqueness is re-checked excluding the team itself.
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if req.TeamName != nil {
		trimmed := strings.TrimSpace(*req.TeamName)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("teamName", "Team name is required")
		}
		req.TeamName = &trimmed
	}
	if req.TeamDescription != nil {
		trimmed := strings.TrimSpace(*req.TeamDescription)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("teamDescription", "Team description is required")
		}
		req.TeamDescription = &trimmed
	}

	// The UI resends the complete member sequence on any single-member
	// edit or delete; an update that would leave the roster empty is a
	// business rule with its own message, checked ahead of the schema
	// rules.
	if req.Members != nil && len(req.Members) == 0 {
		return nil, apperrors.ErrLastMember
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.TeamName != nil && *req.TeamName != existing.TeamName {
		exists, err := s.repo.CheckTeamNameExists(*req.TeamName, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrTeamNameExists
		}
	}

	var members []models.TeamMember
	if req.Members != nil {
		members, err = buildMembers(req.Members)
		if err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.TeamName != nil {
		updates["team_name"] = *req.TeamName
	}
	if req.TeamDescription != nil {
		updates["team_description"] = *req.TeamDescription
	}
	if req.ApprovedByManager != nil {
		updates["approved_by_manager"] = *req.ApprovedByManager
	}
	if req.ApprovedByDirector != nil {
		updates["approved_by_director"] = *req.ApprovedByDirector
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	if err := s.repo.UpdateWithMembers(id, updates, members); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.GetByID(id)
}

// SetApproval sets exactly one approval field. The route guard already
// requires a manager or director role; the check here is the typed,
// exhaustive authorization boundary (defense in depth).
func (s *TeamService) SetApproval(id uuid.UUID, actorRole models.UserRole, req *ApproveTeamRequest) (*models.Team, error) {
	switch actorRole {
	case models.RoleManager, models.RoleDirector:
	case models.RoleMember:
		return nil, apperrors.ErrInsufficientRole
	default:
		return nil, apperrors.ErrInsufficientRole
	}

	if !req.ApprovalType.IsValid() {
		return nil, apperrors.ErrInvalidApprovalType
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidApprovalStatus
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	column := "approved_by_manager"
	if req.ApprovalType == models.ApprovalTypeDirector {
		column = "approved_by_director"
	}

	if err := s.repo.SetApproval(id, column, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update approval status: %w", err)
	}

	return s.GetByID(id)
}

// Reorder moves a team to a new display order, shifting the band of teams
// between the old and new position by one to close the gap. Moving a team
// onto its current order is a no-op.
func (s *TeamService) Reorder(req *ReorderTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}
	if req.TeamID == uuid.Nil {
		return nil, apperrors.NewValidationError("teamId", "Team id is required")
	}

	team, err := s.repo.Reorder(req.TeamID, req.NewOrder)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to reorder team: %w", err)
	}
	return team, nil
}

// Delete deletes a team by id, answering not-found as a distinct error
func (s *TeamService) Delete(id uuid.UUID) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrTeamNotFound
	}

	logger.New().WithField("team_id", id).Info("team deleted")
	return nil
}

// BulkDelete deletes a set of teams and reports the count actually
// removed. Ids that no longer exist are not treated as an error.
func (s *TeamService) BulkDelete(req *BulkDeleteRequest) (int64, error) {
	if len(req.TeamIDs) == 0 {
		return 0, apperrors.ErrNoTeamsSelected
	}

	deleted, err := s.repo.DeleteMany(req.TeamIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete teams: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"requested": len(req.TeamIDs),
		"deleted":   deleted,
	}).Info("teams bulk deleted")
	return deleted, nil
}

// buildMembers converts member payloads into model rows, trimming names
// and parsing dates of birth. Position follows payload order.
func buildMembers(payloads []MemberPayload) ([]models.TeamMember, error) {
	members := make([]models.TeamMember, len(payloads))
	for i, p := range payloads {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("members.name", "Member name is required")
		}
		dob, err := parseDate(p.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("members.dateOfBirth", "Invalid date format")
		}
		members[i] = models.TeamMember{
			Position:    i,
			Name:        name,
			Gender:      p.Gender,
			DateOfBirth: dob,
			ContactNo:   p.ContactNo,
		}
	}
	return members, nil
}

// parseDate accepts both plain dates and full timestamps
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// asValidationError converts a validator error into the taxonomy's
// field-level ValidationError, keeping only the first violation.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the '%s' rule", first.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
