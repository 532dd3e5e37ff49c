package repository

import (
	"team-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team together with its members
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID with its members in insertion order
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("team_members.position ASC")
	}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams with optional free-text search and pagination.
// The search matches team name, team description, and member names
// (case-insensitive substring, logical OR). Results are ordered by
// display_order ascending with creation time descending as the tie-break.
func (r *TeamRepository) List(search string, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			`teams.team_name ILIKE ? OR teams.team_description ILIKE ? OR EXISTS (
				SELECT 1 FROM team_members m WHERE m.team_id = teams.id AND m.name ILIKE ?
			)`, pattern, pattern, pattern)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_members.position ASC")
		}).
		Order("teams.display_order ASC, teams.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// UpdateWithMembers applies field updates to a team and, when members is
// non-nil, replaces the whole member set in the same transaction. Members
// carry no identity of their own, so a partial edit always resends the
// complete sequence.
func (r *TeamRepository) UpdateWithMembers(id uuid.UUID, updates map[string]interface{}, members []models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Team{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if members == nil {
			return nil
		}

		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].TeamID = id
			members[i].Position = i
		}
		return tx.Create(&members).Error
	})
}

// SetApproval sets exactly one of the two approval columns
func (r *TeamRepository) SetApproval(id uuid.UUID, column string, status models.ApprovalState) error {
	return r.db.Model(&models.Team{}).Where("id = ?", id).Update(column, status).Error
}

// Delete deletes a team; members cascade at the storage layer
func (r *TeamRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Team{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteMany deletes all teams matching the given ids in one call and
// reports how many rows were actually removed.
func (r *TeamRepository) DeleteMany(ids []uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Team{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

// MaxDisplayOrder returns the current maximum display order, or 0 when no
// teams exist.
func (r *TeamRepository) MaxDisplayOrder() (int, error) {
	var max *int
	err := r.db.Model(&models.Team{}).Select("MAX(display_order)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// Reorder moves a team to a new display order and closes the gap by
// shifting every team strictly between the old and new position by one.
// The whole band shift runs in a single transaction so a failure cannot
// strand the sequence half-moved.
func (r *TeamRepository) Reorder(id uuid.UUID, newOrder int) (*models.Team, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, "id = ?", id).Error; err != nil {
			return err
		}

		oldOrder := team.DisplayOrder
		if oldOrder == newOrder {
			return nil
		}

		if err := tx.Model(&models.Team{}).Where("id = ?", id).
			Update("display_order", newOrder).Error; err != nil {
			return err
		}

		if oldOrder < newOrder {
			// Moving down: shift teams in (old, new] up by one
			return tx.Model(&models.Team{}).
				Where("id <> ? AND display_order > ? AND display_order <= ?", id, oldOrder, newOrder).
				UpdateColumn("display_order", gorm.Expr("display_order - 1")).Error
		}
		// Moving up: shift teams in [new, old) down by one
		return tx.Model(&models.Team{}).
			Where("id <> ? AND display_order >= ? AND display_order < ?", id, newOrder, oldOrder).
			UpdateColumn("display_order", gorm.Expr("display_order + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// CheckTeamNameExists checks if a team name is already taken, optionally
// excluding one team id (used by updates to skip the document itself).
func (r *TeamRepository) CheckTeamNameExists(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Team{}).Where("team_name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
