package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// NetworkError wraps a transport level failure (dial, TLS, timeout, reset)
// raised while talking to the catalog API.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer from the catalog API. The status code decides
// which class of error it unwraps to.
type APIError struct {
	StatusCode int
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Entity     string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog API returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap classifies the response so IsNotFound/IsValidation work on API errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		entity := e.Entity
		if entity == "" {
			entity = "entity"
		}
		return &NotFoundError{Entity: entity}
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &ValidationError{Message: e.Message}
	}
	return nil
}

// Entity Not Found Errors
var (
	ErrTestSuiteNotFound      = &NotFoundError{Entity: "test suite"}
	ErrTestCaseNotFound       = &NotFoundError{Entity: "test case"}
	ErrTestDefinitionNotFound = &NotFoundError{Entity: "test definition"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrOwnerNotFound          = &NotFoundError{Entity: "owner"}
)

// Already Exists Errors
var (
	ErrTestSuiteExists      = &AlreadyExistsError{Entity: "test suite", Context: "with this name"}
	ErrTestCaseExists       = &AlreadyExistsError{Entity: "test case", Context: "with this name in the test suite"}
	ErrTestDefinitionExists = &AlreadyExistsError{Entity: "test definition", Context: "with this name"}
	ErrUserExists           = &AlreadyExistsError{Entity: "user", Context: "with this name or email"}
	ErrTeamExists           = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Patch and paging errors
var (
	ErrInvalidPatch       = &ValidationError{Field: "patch", Message: "invalid JSON patch document"}
	ErrImmutableField     = &ValidationError{Field: "patch", Message: "id, name and fullyQualifiedName cannot be changed"}
	ErrInvalidOwnerType   = &ValidationError{Field: "owner.type", Message: "owner type must be user or team"}
	ErrInvalidCursor      = &ValidationError{Field: "cursor", Message: "malformed paging cursor"}
	ErrConflictingCursors = &ValidationError{Field: "cursor", Message: "only one of before and after may be set"}

	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Client side errors
var (
	ErrUnexpectedResponse = errors.New("unexpected response from server")
	ErrIdentityMismatch   = errors.New("cannot diff snapshots of different entities")
	ErrNoPage             = errors.New("no page in the requested direction")
	ErrEmptyPatch         = errors.New("patch has no operations")
	ErrSuperseded         = errors.New("request superseded by a newer one")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// StatusCode returns the HTTP status of an APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewNetworkError wraps a transport failure for the named operation
func NewNetworkError(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}
