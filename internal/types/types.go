// Package types holds the JSON representation of catalog entities as served
// by the REST API and consumed by the client.
package types

import (
	"strings"

	"github.com/google/uuid"
)

// EntityType tags the kind of entity a reference points to.
type EntityType string

const (
	EntityTypeUser           EntityType = "user"
	EntityTypeTeam           EntityType = "team"
	EntityTypeTestSuite      EntityType = "testSuite"
	EntityTypeTestDefinition EntityType = "testDefinition"
)

// EntityReference is a lightweight pointer to another catalog entity.
type EntityReference struct {
	ID                 uuid.UUID  `json:"id"`
	Type               EntityType `json:"type"`
	Name               string     `json:"name,omitempty"`
	FullyQualifiedName string     `json:"fullyQualifiedName,omitempty"`
	DisplayName        string     `json:"displayName,omitempty"`
	Deleted            bool       `json:"deleted,omitempty"`
}

// TestSuite is the catalog entity rendered by the detail page.
type TestSuite struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	FullyQualifiedName string           `json:"fullyQualifiedName,omitempty"`
	DisplayName        string           `json:"displayName,omitempty"`
	Description        string           `json:"description,omitempty"`
	Owner              *EntityReference `json:"owner,omitempty"`
	Version            float64          `json:"version,omitempty"`
	UpdatedAt          int64            `json:"updatedAt,omitempty"`
	UpdatedBy          string           `json:"updatedBy,omitempty"`
	Deleted            bool             `json:"deleted,omitempty"`
}

// EntityID identifies the suite for patch generation.
func (t TestSuite) EntityID() string {
	return t.ID.String()
}

// TestCaseParameterValue is one argument passed to a test definition.
type TestCaseParameterValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TestCaseResult is the outcome of the latest run of a test case.
type TestCaseResult struct {
	Timestamp      int64  `json:"timestamp"`
	TestCaseStatus string `json:"testCaseStatus"`
	Result         string `json:"result,omitempty"`
}

// TestCase is a child record of a TestSuite.
type TestCase struct {
	ID                 uuid.UUID                `json:"id"`
	Name               string                   `json:"name"`
	FullyQualifiedName string                   `json:"fullyQualifiedName,omitempty"`
	DisplayName        string                   `json:"displayName,omitempty"`
	Description        string                   `json:"description,omitempty"`
	EntityLink         string                   `json:"entityLink,omitempty"`
	TestSuite          EntityReference          `json:"testSuite"`
	TestDefinition     *EntityReference         `json:"testDefinition,omitempty"`
	ParameterValues    []TestCaseParameterValue `json:"parameterValues,omitempty"`
	TestCaseResult     *TestCaseResult          `json:"testCaseResult,omitempty"`
}

// User is the API view of a user.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName,omitempty"`
	Email       string    `json:"email"`
	Deleted     bool      `json:"deleted,omitempty"`
}

// Team is the API view of a team.
type Team struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName,omitempty"`
	Email       string    `json:"email,omitempty"`
	TeamType    string    `json:"teamType,omitempty"`
	Deleted     bool      `json:"deleted,omitempty"`
}

// Fields is the parsed value of a `fields` query parameter.
type Fields map[string]bool

// ParseFields splits a comma separated `fields` parameter.
func ParseFields(raw string) Fields {
	f := Fields{}
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			f[name] = true
		}
	}
	return f
}

// Has reports whether field was requested.
func (f Fields) Has(field string) bool {
	return f[field]
}

const (
	// JSONPatchMediaType is the content type of RFC 6902 patch bodies.
	JSONPatchMediaType = "application/json-patch+json"
	// UserHeader names the acting user on mutating requests.
	UserHeader = "X-Catalog-User"
)
