package repository

import (
	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestCaseRepository handles database operations for test cases
type TestCaseRepository struct {
	db *gorm.DB
}

// Ensure TestCaseRepository implements TestCaseRepositoryInterface
var _ TestCaseRepositoryInterface = (*TestCaseRepository)(nil)

// NewTestCaseRepository creates a new test case repository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// Create creates a new test case, failing with ErrTestCaseExists when the
// fully qualified name is taken
func (r *TestCaseRepository) Create(testCase *models.TestCase) error {
	return duplicateAs(r.db.Create(testCase).Error, apperrors.ErrTestCaseExists)
}

// GetByFQN retrieves a test case by its fully qualified name
func (r *TestCaseRepository) GetByFQN(fqn string) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.Preload("TestSuite").First(&testCase, "fully_qualified_name = ?", fqn).Error
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// ListByTestSuite retrieves test cases ordered by fully qualified name, optionally
// restricted to one test suite
func (r *TestCaseRepository) ListByTestSuite(testSuiteID *uuid.UUID, cursor paging.Cursor, limit int) (*Page[models.TestCase], error) {
	base := func() *gorm.DB {
		q := r.db.Model(&models.TestCase{})
		if testSuiteID != nil {
			q = q.Where("test_suite_id = ?", *testSuiteID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	cases, more, err := keysetPage[models.TestCase](base().Preload("TestSuite"), "fully_qualified_name", cursor, limit)
	if err != nil {
		return nil, err
	}

	return &Page[models.TestCase]{Items: cases, HasMore: more, Total: total}, nil
}
