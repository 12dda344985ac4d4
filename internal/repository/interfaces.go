package repository

import (
	"metadata-catalog/internal/database/models"
	"metadata-catalog/internal/paging"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Page is one keyset-paginated slice of rows plus the information needed to
// build the paging cursors around it.
type Page[T any] struct {
	Items   []T
	HasMore bool
	Total   int64
}

// TestSuiteRepositoryInterface defines the interface for test suite repository operations
type TestSuiteRepositoryInterface interface {
	Create(suite *models.TestSuite) error
	GetByID(id uuid.UUID) (*models.TestSuite, error)
	GetByFQN(fqn string) (*models.TestSuite, error)
	List(cursor paging.Cursor, limit int) (*Page[models.TestSuite], error)
	Update(suite *models.TestSuite) error
}

// TestCaseRepositoryInterface defines the interface for test case repository operations
type TestCaseRepositoryInterface interface {
	Create(testCase *models.TestCase) error
	GetByFQN(fqn string) (*models.TestCase, error)
	ListByTestSuite(testSuiteID *uuid.UUID, cursor paging.Cursor, limit int) (*Page[models.TestCase], error)
}

// TestDefinitionRepositoryInterface defines the interface for test definition repository operations
type TestDefinitionRepositoryInterface interface {
	Create(def *models.TestDefinition) error
	GetByName(name string) (*models.TestDefinition, error)
	ListByIDs(ids []uuid.UUID) ([]models.TestDefinition, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByName(name string) (*models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
}
