package models

import (
	"encoding/json"
)

// TestDefinition describes a reusable test (e.g. columnValuesToBeUnique)
type TestDefinition struct {
	BaseModel
	EntityType    string          `json:"entity_type" gorm:"size:40;not null;default:'TABLE'"`
	TestPlatforms json.RawMessage `json:"test_platforms" gorm:"type:jsonb"`
}

// TableName returns the table name for TestDefinition
func (TestDefinition) TableName() string {
	return "test_definitions"
}
