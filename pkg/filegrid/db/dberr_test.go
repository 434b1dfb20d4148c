package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilegridDatabaseErrorMessage(t *testing.T) {
	e := NewFilegridDatabaseError(ENTITY_NOT_FOUND, "component not found")
	assert.Equal(t, "ENTITY_NOT_FOUND: component not found", e.Error())
	assert.Equal(t, "ENTITY_ALREADY_EXISTS", ENTITY_ALREADY_EXISTS.String())
	assert.Equal(t, "DATABASE_NOT_SUPPORTED", DATABASE_NOT_SUPPORTED.String())
	assert.Equal(t, "UNKNOWN_ERROR", FilegridDatabaseErrorType(99).String())
}

func TestIsFilegridDatabaseError(t *testing.T) {
	assert.True(t, IsFilegridDatabaseError(NewFilegridDatabaseError(ENTITY_ALREADY_EXISTS, "x")))
	assert.True(t, IsFilegridDatabaseError(ErrDatabaseNotSupported))
	assert.False(t, IsFilegridDatabaseError(errors.New("x")))
	assert.False(t, IsFilegridDatabaseError(nil))
}

// the 404-vs-500 dispatch of every controller rests on this check.
func TestIsEntityNotFound(t *testing.T) {
	assert.True(t, IsEntityNotFound(NewFilegridDatabaseError(ENTITY_NOT_FOUND, "user not found")))
	assert.False(t, IsEntityNotFound(NewFilegridDatabaseError(ENTITY_ALREADY_EXISTS, "user already exists")))
	assert.False(t, IsEntityNotFound(ErrDatabaseNotSupported))
	assert.False(t, IsEntityNotFound(errors.New("user not found")))
	assert.False(t, IsEntityNotFound(nil))
}
