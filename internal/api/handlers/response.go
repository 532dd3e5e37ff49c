package handlers

import (
	"net/http"

	apperrors "team-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIResponse is the common envelope for all JSON responses
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination carries page metadata for list responses
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Message: message})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: message})
}

func respondList(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Pagination: pagination})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Error: message})
}

// respondServiceError maps the error taxonomy onto status codes. Unknown
// failures become a generic 500; details are logged server-side only.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsAlreadyExists(err), apperrors.IsValidation(err), apperrors.IsBusinessRule(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case apperrors.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondError(c, http.StatusForbidden, err.Error())
	default:
		logrus.WithFields(logrus.Fields{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		}).Error("unhandled error")
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
