package services

import "fmt"

// AuthenticationError means no signed-in caller was provided.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "unauthenticated: sign in to continue"
}

// AuthorizationError means the caller is signed in but lacks the role
// (or ownership) the operation requires.
type AuthorizationError struct {
	RequiredRole string
	Message      string
}

func (e *AuthorizationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unauthorized: %s role required", e.RequiredRole)
}

// ValidationError means the payload is missing or failed field validation.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError means another record already holds one of the payload's
// unique field values. Field names the colliding field so the UI can show
// the user exactly what to change.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// GenerationError means unique slug generation gave up after exhausting
// its retry budget.
type GenerationError struct {
	Base string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("could not generate a unique slug for %q", e.Base)
}

// NotFoundError means a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
