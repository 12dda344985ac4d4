package service

import (
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TestSuiteServiceInterface defines the interface for test suite service
type TestSuiteServiceInterface interface {
	GetByName(fqn string, fields types.Fields) (*types.TestSuite, error)
	List(cursor paging.Cursor, limit int, fields types.Fields) (*paging.List[types.TestSuite], error)
	Patch(id uuid.UUID, patch []byte, updatedBy string) (*types.TestSuite, error)
}

// TestCaseServiceInterface defines the interface for test case service
type TestCaseServiceInterface interface {
	List(params ListTestCasesParams) (*paging.List[types.TestCase], error)
}

// OwnerServiceInterface defines the interface for owner (user and team) lookups
type OwnerServiceInterface interface {
	GetUserByName(name string) (*types.User, error)
	GetTeamByName(name string) (*types.Team, error)
	// Resolve turns a possibly partial owner reference into the canonical one
	Resolve(ref types.EntityReference) (*types.EntityReference, error)
	// Reference builds the owner reference for a stored owner id
	Reference(ownerType types.EntityType, id uuid.UUID) (*types.EntityReference, error)
}
