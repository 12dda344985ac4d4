package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TestCase is a single data quality check that belongs to exactly one TestSuite
type TestCase struct {
	BaseModel
	FullyQualifiedName string          `json:"fully_qualified_name" gorm:"uniqueIndex;not null;size:512" validate:"required,max=512"`
	TestSuiteID        uuid.UUID       `json:"test_suite_id" gorm:"type:uuid;not null;index" validate:"required"`
	TestDefinitionID   uuid.UUID       `json:"test_definition_id" gorm:"type:uuid;not null;index" validate:"required"`
	EntityLink         string          `json:"entity_link" gorm:"size:1024"`
	ParameterValues    json.RawMessage `json:"parameter_values" gorm:"type:jsonb"`
	Result             json.RawMessage `json:"result" gorm:"type:jsonb"` // latest TestCaseResult

	// Relationships
	TestSuite      *TestSuite      `json:"test_suite,omitempty" gorm:"foreignKey:TestSuiteID"`
	TestDefinition *TestDefinition `json:"test_definition,omitempty" gorm:"foreignKey:TestDefinitionID"`
}

// TableName returns the table name for TestCase
func (TestCase) TableName() string {
	return "test_cases"
}
