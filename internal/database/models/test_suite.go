package models

import (
	"github.com/google/uuid"
)

// TestSuite groups test cases and carries a description and an owner
type TestSuite struct {
	BaseModel
	FullyQualifiedName string     `json:"fully_qualified_name" gorm:"uniqueIndex;not null;size:512" validate:"required,max=512"`
	OwnerID            *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	OwnerType          OwnerType  `json:"owner_type,omitempty" gorm:"type:varchar(16)"`
	Version            float64    `json:"version" gorm:"not null;default:0.1"`
	Deleted            bool       `json:"deleted" gorm:"not null;default:false"`

	// Relationships
	TestCases []TestCase `json:"test_cases,omitempty" gorm:"foreignKey:TestSuiteID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TestSuite
func (TestSuite) TableName() string {
	return "test_suites"
}
