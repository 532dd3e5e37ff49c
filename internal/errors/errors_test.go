package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrLastMember))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading team: %w", ErrTeamNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "with this name"}
		assert.Equal(t, "team already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "team", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "team", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamNameExists))
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "contactNo", Message: "digits only"}
		assert.Equal(t, "validation error: contactNo - digits only", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("teamName", "required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrMissingSession))
		assert.False(t, IsAuthentication(ErrInsufficientRole))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrInsufficientRole))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
		assert.Equal(t, "insufficient permissions", ErrInsufficientRole.Error())
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("member")
		assert.Equal(t, "member not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("team", "with this name")
		assert.Equal(t, "team already exists with this name", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.True(t, IsAuthentication(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("read only access")
		assert.True(t, IsAuthorization(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, "a team must have at least one member", ErrLastMember.Error())
		assert.Equal(t, "invalid approval type", ErrInvalidApprovalType.Error())
		assert.Equal(t, "invalid approval status", ErrInvalidApprovalStatus.Error())
		assert.Equal(t, "at least one team must be selected", ErrNoTeamsSelected.Error())
	})

	t.Run("IsBusinessRule helper", func(t *testing.T) {
		assert.True(t, IsBusinessRule(ErrLastMember))
		assert.True(t, IsBusinessRule(ErrInvalidApprovalType))
		assert.True(t, IsBusinessRule(ErrInvalidApprovalStatus))
		assert.True(t, IsBusinessRule(ErrNoTeamsSelected))
		assert.False(t, IsBusinessRule(ErrTeamNotFound))
		assert.False(t, IsBusinessRule(NewValidationError("teamName", "required")))
	})

	t.Run("IsBusinessRule through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("updating team: %w", ErrLastMember)
		assert.True(t, IsBusinessRule(wrapped))
	})
}
