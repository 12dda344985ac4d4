package repository

import (
	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestSuiteRepository handles database operations for test suites
type TestSuiteRepository struct {
	db *gorm.DB
}

// Ensure TestSuiteRepository implements TestSuiteRepositoryInterface
var _ TestSuiteRepositoryInterface = (*TestSuiteRepository)(nil)

// NewTestSuiteRepository creates a new test suite repository
func NewTestSuiteRepository(db *gorm.DB) *TestSuiteRepository {
	return &TestSuiteRepository{db: db}
}

// Create creates a new test suite
func (r *TestSuiteRepository) Create(suite *models.TestSuite) error {
	return duplicateAs(r.db.Create(suite).Error, apperrors.ErrTestSuiteExists)
}

// GetByID retrieves a test suite by ID
func (r *TestSuiteRepository) GetByID(id uuid.UUID) (*models.TestSuite, error) {
	var suite models.TestSuite
	err := r.db.First(&suite, "id = ? AND deleted = ?", id, false).Error
	if err != nil {
		return nil, err
	}
	return &suite, nil
}

// GetByFQN retrieves a test suite by its fully qualified name
func (r *TestSuiteRepository) GetByFQN(fqn string) (*models.TestSuite, error) {
	var suite models.TestSuite
	err := r.db.First(&suite, "fully_qualified_name = ? AND deleted = ?", fqn, false).Error
	if err != nil {
		return nil, err
	}
	return &suite, nil
}

// List retrieves test suites ordered by fully qualified name
func (r *TestSuiteRepository) List(cursor paging.Cursor, limit int) (*Page[models.TestSuite], error) {
	base := func() *gorm.DB {
		return r.db.Model(&models.TestSuite{}).Where("deleted = ?", false)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	suites, more, err := keysetPage[models.TestSuite](base(), "fully_qualified_name", cursor, limit)
	if err != nil {
		return nil, err
	}

	return &Page[models.TestSuite]{Items: suites, HasMore: more, Total: total}, nil
}

// Update saves all fields of a test suite
func (r *TestSuiteRepository) Update(suite *models.TestSuite) error {
	return r.db.Save(suite).Error
}
