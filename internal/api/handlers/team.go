package handlers

import (
	"net/http"
	"strconv"

	"team-portal-backend/internal/auth"
	"team-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles team HTTP endpoints
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// ListTeams handles GET /api/teams
// @Summary List teams
// @Description Returns a page of teams ordered by display order, optionally filtered by a search term matching team name, description, or member names
// @Tags teams
// @Produce json
// @Param search query string false "Free-text search term"
// @Param page query int false "Page number, starting at 1" default(1)
// @Param limit query int false "Page size, 1-100" default(10)
// @Success 200 {object} APIResponse "Page of teams"
// @Failure 401 {object} APIResponse "Unauthenticated"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")

	result, err := h.service.List(search, page, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch teams")
		return
	}

	respondList(c, result.Teams, &Pagination{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// CreateTeam handles POST /api/teams
// @Summary Create a team
// @Description Creates a team with at least one member. The team is appended at the end of the display order with both approvals pending.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} APIResponse "Created team"
// @Failure 400 {object} APIResponse "Validation failure or duplicate name"
// @Failure 401 {object} APIResponse "Unauthenticated"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.service.Create(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to create team")
		return
	}

	respondCreated(c, team, "Team created successfully")
}

// GetTeam handles GET /api/teams/:id
// @Summary Get a team
// @Description Returns a single team with its members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} APIResponse "Team"
// @Failure 404 {object} APIResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	team, err := h.service.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch team")
		return
	}

	respondOK(c, team, "")
}

// UpdateTeam handles PUT /api/teams/:id
// @Summary Update a team
// @Description Applies a partial update. A members list, when present, replaces the team's whole member sequence and must not be empty.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} APIResponse "Updated team"
// @Failure 400 {object} APIResponse "Validation failure, duplicate name, or empty member list"
// @Failure 404 {object} APIResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.service.Update(id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update team")
		return
	}

	respondOK(c, team, "Team updated successfully")
}

// DeleteTeam handles DELETE /api/teams/:id
// @Summary Delete a team
// @Description Deletes a team and its members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} APIResponse "Deleted"
// @Failure 404 {object} APIResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondServiceError(c, err, "Failed to delete team")
		return
	}

	respondOK(c, nil, "Team deleted successfully")
}

// BulkDeleteTeams handles DELETE /api/teams/bulk
// @Summary Delete multiple teams
// @Description Deletes the given teams and reports how many were actually removed. Ids that no longer exist are skipped, not errors.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.BulkDeleteRequest true "Team ids to delete"
// @Success 200 {object} APIResponse "Deletion count"
// @Failure 400 {object} APIResponse "Empty id list"
// @Security BearerAuth
// @Router /teams/bulk [delete]
func (h *TeamHandler) BulkDeleteTeams(c *gin.Context) {
	var req service.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	deleted, err := h.service.BulkDelete(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to delete teams")
		return
	}

	respondOK(c, gin.H{"deletedCount": deleted}, "Teams deleted successfully")
}

// ApproveTeam handles PUT /api/teams/:id/approve
// @Summary Set an approval status
// @Description Sets the manager or director approval independently of the other. Requires a manager or director role.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.ApproveTeamRequest true "Approval type and status"
// @Success 200 {object} APIResponse "Updated team"
// @Failure 400 {object} APIResponse "Unknown approval type or status"
// @Failure 403 {object} APIResponse "Insufficient role"
// @Failure 404 {object} APIResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/approve [put]
func (h *TeamHandler) ApproveTeam(c *gin.Context) {
	id, ok := parseTeamID(c)
	if !ok {
		return
	}

	role, ok := auth.GetUserRole(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req service.ApproveTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.service.SetApproval(id, role, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update approval status")
		return
	}

	respondOK(c, team, "Approval status updated successfully")
}

// ReorderTeams handles PUT /api/teams/reorder
// @Summary Move a team to a new display position
// @Description Moves a team to the given display order and shifts the teams between its old and new position by one. Moving onto the current order is a no-op.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.ReorderTeamRequest true "Team id and new order"
// @Success 200 {object} APIResponse "Moved team"
// @Failure 400 {object} APIResponse "Negative order or missing id"
// @Failure 404 {object} APIResponse "Team not found"
// @Security BearerAuth
// @Router /teams/reorder [put]
func (h *TeamHandler) ReorderTeams(c *gin.Context) {
	var req service.ReorderTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.service.Reorder(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to reorder team")
		return
	}

	respondOK(c, team, "Team order updated successfully")
}

// parseTeamID parses the :id path parameter, responding 400 on garbage
func parseTeamID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid team ID")
		return uuid.Nil, false
	}
	return id, true
}
