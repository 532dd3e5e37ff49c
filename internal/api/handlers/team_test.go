package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"team-portal-backend/internal/api/handlers"
	"team-portal-backend/internal/database/models"
	apperrors "team-portal-backend/internal/errors"
	"team-portal-backend/internal/mocks"
	"team-portal-backend/internal/service"
	"team-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes the way the real router does, with a stand-in for the
	// auth middleware that injects an authenticated manager
	teams := suite.httpSuite.Router.Group("/api/teams")
	teams.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", models.RoleManager)
		c.Next()
	})
	{
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.DELETE("/bulk", suite.handler.BulkDeleteTeams)
		teams.PUT("/reorder", suite.handler.ReorderTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.PUT("/:id/approve", suite.handler.ApproveTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

func sampleTeam() *models.Team {
	return &models.Team{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		TeamName:           "Platform Engineering",
		TeamDescription:    "Owns the shared platform",
		ApprovedByManager:  models.ApprovalPending,
		ApprovedByDirector: models.ApprovalPending,
		DisplayOrder:       1,
		Members: []models.TeamMember{
			{Position: 0, Name: "Priya Nair", Gender: models.GenderFemale, ContactNo: "5550100001"},
		},
	}
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		team := sampleTeam()
		suite.mockService.EXPECT().
			List("", 2, 10).
			Return(&service.TeamListResult{
				Teams:      []models.Team{*team},
				Page:       2,
				Limit:      10,
				Total:      15,
				TotalPages: 2,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams?page=2&limit=10", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response handlers.APIResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)
		assert.NotNil(t, response.Pagination)
		assert.Equal(t, 2, response.Pagination.Page)
		assert.Equal(t, int64(15), response.Pagination.Total)
		assert.Equal(t, 2, response.Pagination.TotalPages)
	})

	suite.T().Run("Search Term Forwarded", func(t *testing.T) {
		suite.mockService.EXPECT().
			List("alpha", 1, 10).
			Return(&service.TeamListResult{Teams: []models.Team{}, Page: 1, Limit: 10}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams?search=alpha", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			List("", 1, 10).
			Return(nil, fmt.Errorf("connection refused")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams", nil)

		// Internal failures surface as the generic message, never the cause
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Failed to fetch teams")
	})
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		team := sampleTeam()

		requestBody := map[string]interface{}{
			"teamName":        team.TeamName,
			"teamDescription": team.TeamDescription,
			"members": []map[string]interface{}{
				{"name": "Priya Nair", "gender": "Female", "dateOfBirth": "1988-03-22", "contactNo": "5550100001"},
			},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response handlers.APIResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)
		assert.Equal(t, "Team created successfully", response.Message)
	})

	suite.T().Run("Duplicate Name", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"teamName":        "Platform Engineering",
			"teamDescription": "duplicate",
			"members": []map[string]interface{}{
				{"name": "A", "gender": "Male", "dateOfBirth": "1990-01-01", "contactNo": "123"},
			},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrTeamNameExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team already exists with this name")
	})

	suite.T().Run("Validation Error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("contactNo", "failed on the 'digits' rule")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", map[string]interface{}{
			"teamName":        "Broken",
			"teamDescription": "x",
			"members": []map[string]interface{}{
				{"name": "A", "gender": "Male", "dateOfBirth": "1990-01-01", "contactNo": "12a45"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/teams")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		team := sampleTeam()

		suite.mockService.EXPECT().
			GetByID(team.ID).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/teams/%s", team.ID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response handlers.APIResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Success)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/teams/%s", teamID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		team := sampleTeam()

		suite.mockService.EXPECT().
			Update(team.ID, gomock.Any()).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s", team.ID),
			map[string]interface{}{"teamDescription": "Updated description"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Empty Members Rejected", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Update(teamID, gomock.Any()).
			Return(nil, apperrors.ErrLastMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s", teamID),
			map[string]interface{}{"members": []interface{}{}})

		// Business rules answer 400 with their own message, not a 500
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest,
			"a team must have at least one member")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Update(teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s", teamID),
			map[string]interface{}{"teamName": "Renamed"})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(teamID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(teamID).
			Return(apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestBulkDeleteTeams tests the BulkDeleteTeams handler
func (suite *TeamHandlerTestSuite) TestBulkDeleteTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		ids := []string{uuid.New().String(), uuid.New().String()}

		suite.mockService.EXPECT().
			BulkDelete(gomock.Any()).
			Return(int64(2), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/bulk",
			map[string]interface{}{"teamIds": ids})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response handlers.APIResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		data, ok := response.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, float64(2), data["deletedCount"])
	})

	suite.T().Run("Empty List", func(t *testing.T) {
		suite.mockService.EXPECT().
			BulkDelete(gomock.Any()).
			Return(int64(0), apperrors.ErrNoTeamsSelected).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/bulk",
			map[string]interface{}{"teamIds": []string{}})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest,
			"at least one team must be selected")
	})
}

// TestApproveTeam tests the ApproveTeam handler
func (suite *TeamHandlerTestSuite) TestApproveTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		team := sampleTeam()
		team.ApprovedByManager = models.ApprovalApproved

		suite.mockService.EXPECT().
			SetApproval(team.ID, models.RoleManager, gomock.Any()).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s/approve", team.ID),
			map[string]interface{}{"approvalType": "manager", "status": "approved"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Insufficient Role", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			SetApproval(teamID, models.RoleManager, gomock.Any()).
			Return(nil, apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s/approve", teamID),
			map[string]interface{}{"approvalType": "director", "status": "approved"})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Invalid Approval Type", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			SetApproval(teamID, models.RoleManager, gomock.Any()).
			Return(nil, apperrors.ErrInvalidApprovalType).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s/approve", teamID),
			map[string]interface{}{"approvalType": "ceo", "status": "approved"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid approval type")
	})

	suite.T().Run("Invalid Status", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			SetApproval(teamID, models.RoleManager, gomock.Any()).
			Return(nil, apperrors.ErrInvalidApprovalStatus).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/teams/%s/approve", teamID),
			map[string]interface{}{"approvalType": "manager", "status": "maybe"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid approval status")
	})
}

// TestReorderTeams tests the ReorderTeams handler
func (suite *TeamHandlerTestSuite) TestReorderTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		team := sampleTeam()
		team.DisplayOrder = 3

		suite.mockService.EXPECT().
			Reorder(gomock.Any()).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/reorder",
			map[string]interface{}{"teamId": team.ID.String(), "newOrder": 3})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			Reorder(gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/teams/reorder",
			map[string]interface{}{"teamId": uuid.New().String(), "newOrder": 1})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("PUT", "/api/teams/reorder")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
