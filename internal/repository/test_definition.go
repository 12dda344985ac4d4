package repository

import (
	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDefinitionRepository handles database operations for test definitions
type TestDefinitionRepository struct {
	db *gorm.DB
}

// Ensure TestDefinitionRepository implements TestDefinitionRepositoryInterface
var _ TestDefinitionRepositoryInterface = (*TestDefinitionRepository)(nil)

// NewTestDefinitionRepository creates a new test definition repository
func NewTestDefinitionRepository(db *gorm.DB) *TestDefinitionRepository {
	return &TestDefinitionRepository{db: db}
}

// Create creates a new test definition
func (r *TestDefinitionRepository) Create(def *models.TestDefinition) error {
	return duplicateAs(r.db.Create(def).Error, apperrors.ErrTestDefinitionExists)
}

// GetByName retrieves a test definition by name
func (r *TestDefinitionRepository) GetByName(name string) (*models.TestDefinition, error) {
	var def models.TestDefinition
	if err := r.db.First(&def, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &def, nil
}

// ListByIDs loads the definitions with the given ids. Unknown ids are
// skipped, so the result may be shorter than ids.
func (r *TestDefinitionRepository) ListByIDs(ids []uuid.UUID) ([]models.TestDefinition, error) {
	defs := []models.TestDefinition{}
	if len(ids) == 0 {
		return defs, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("name").Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}
