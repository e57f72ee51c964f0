package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstructorsMapToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"duplicate", NewDuplicateError("dup"), ErrorTypeDuplicate, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError("no"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"actor", NewActorUnresolvableError("who"), ErrorTypeActorUnresolvable, http.StatusInternalServerError},
		{"storage", NewStorageError("db", fmt.Errorf("down")), ErrorTypeStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", NewDuplicateError("dup"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsDuplicateResourceError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestStorageErrorKeepsCauseInDetails(t *testing.T) {
	err := NewStorageError("failed to save statement", fmt.Errorf("connection refused"))

	assert.Equal(t, "connection refused", err.Details)
	assert.Equal(t, "storage_failure: failed to save statement (connection refused)", err.Error())
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm sentinel", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"mysql", fmt.Errorf("Error 1062 (23000): Duplicate entry 'x' for key 'PRIMARY'"), true},
		{"postgres", fmt.Errorf(`ERROR: duplicate key value violates unique constraint "statements_pkey"`), true},
		{"sqlite", fmt.Errorf("UNIQUE constraint failed: statements.uuid"), true},
		{"other", fmt.Errorf("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}
