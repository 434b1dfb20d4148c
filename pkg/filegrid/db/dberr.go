package db

import "fmt"

type FilegridDatabaseErrorType int

const (
	ENTITY_NOT_FOUND FilegridDatabaseErrorType = 1
	ENTITY_ALREADY_EXISTS FilegridDatabaseErrorType = 2
	DATABASE_NOT_SUPPORTED FilegridDatabaseErrorType = 3
)

func (det FilegridDatabaseErrorType) String() string {
	switch det {
	case ENTITY_NOT_FOUND: return "ENTITY_NOT_FOUND"
	case ENTITY_ALREADY_EXISTS: return "ENTITY_ALREADY_EXISTS"
	case DATABASE_NOT_SUPPORTED: return "DATABASE_NOT_SUPPORTED"
	}
	return "UNKNOWN_ERROR"
}

type FilegridDatabaseError struct {
	ErrorType FilegridDatabaseErrorType
	ErrorMsg string
}

func (de FilegridDatabaseError) Error() string {
	return fmt.Sprintf("%s: %s", de.ErrorType, de.ErrorMsg)
}

func IsFilegridDatabaseError(e error) bool {
	_, ok := e.(*FilegridDatabaseError)
	return ok
}

func IsEntityNotFound(e error) bool {
	de, ok := e.(*FilegridDatabaseError)
	return ok && de.ErrorType == ENTITY_NOT_FOUND
}

func NewFilegridDatabaseError(t FilegridDatabaseErrorType, msg string) *FilegridDatabaseError {
	return &FilegridDatabaseError{
		ErrorType: t,
		ErrorMsg: msg,
	}
}

var ErrDatabaseNotSupported = NewFilegridDatabaseError(DATABASE_NOT_SUPPORTED, "database type not supported")
