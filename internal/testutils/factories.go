package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"metadata-catalog/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return f.WithName("user_" + shortID())
}

// WithName creates a user whose email is derived from name
func (f *UserFactory) WithName(name string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			Name:        name,
			DisplayName: name + " Display Name",
		},
		Email: name + "@example.com",
	}
}

// Deactivated creates a deleted user
func (f *UserFactory) Deactivated(name string) *models.User {
	user := f.WithName(name)
	user.Deleted = true
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return f.WithName("team_" + shortID())
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			Name:        name,
			DisplayName: name + " Display Name",
			Description: "A test team for testing purposes",
		},
		Email:    name + "@example.com",
		TeamType: "Group",
	}
}

// TestDefinitionFactory provides methods to create test TestDefinition data
type TestDefinitionFactory struct{}

// NewTestDefinitionFactory creates a new TestDefinitionFactory
func NewTestDefinitionFactory() *TestDefinitionFactory {
	return &TestDefinitionFactory{}
}

// Create creates a column level definition
func (f *TestDefinitionFactory) Create() *models.TestDefinition {
	return f.WithName("columnValuesToBeNotNull_" + shortID())
}

// WithName sets a custom name for the definition
func (f *TestDefinitionFactory) WithName(name string) *models.TestDefinition {
	return &models.TestDefinition{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			Name:        name,
			Description: "Ensures the column has no null values",
		},
		EntityType:    "COLUMN",
		TestPlatforms: json.RawMessage(`["OpenMetadata"]`),
	}
}

// TestSuiteFactory provides methods to create test TestSuite data
type TestSuiteFactory struct{}

// NewTestSuiteFactory creates a new TestSuiteFactory
func NewTestSuiteFactory() *TestSuiteFactory {
	return &TestSuiteFactory{}
}

// Create creates an unowned test suite
func (f *TestSuiteFactory) Create() *models.TestSuite {
	return f.WithName("suite_" + shortID())
}

// WithName creates an unowned suite whose FQN equals name
func (f *TestSuiteFactory) WithName(name string) *models.TestSuite {
	return &models.TestSuite{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			Name:        name,
			Description: "A test suite for testing purposes",
		},
		FullyQualifiedName: name,
		Version:            0.1,
	}
}

// OwnedByTeam creates a suite owned by team
func (f *TestSuiteFactory) OwnedByTeam(name string, teamID uuid.UUID) *models.TestSuite {
	suite := f.WithName(name)
	suite.OwnerID = &teamID
	suite.OwnerType = models.OwnerTypeTeam
	return suite
}

// OwnedByUser creates a suite owned by user
func (f *TestSuiteFactory) OwnedByUser(name string, userID uuid.UUID) *models.TestSuite {
	suite := f.WithName(name)
	suite.OwnerID = &userID
	suite.OwnerType = models.OwnerTypeUser
	return suite
}

// TestCaseFactory provides methods to create test TestCase data
type TestCaseFactory struct{}

// NewTestCaseFactory creates a new TestCaseFactory
func NewTestCaseFactory() *TestCaseFactory {
	return &TestCaseFactory{}
}

// ForSuite creates a test case named name inside suite
func (f *TestCaseFactory) ForSuite(suite *models.TestSuite, definitionID uuid.UUID, name string) *models.TestCase {
	return &models.TestCase{
		BaseModel: models.BaseModel{
			ID:   uuid.New(),
			Name: name,
		},
		FullyQualifiedName: suite.FullyQualifiedName + "." + name,
		TestSuiteID:        suite.ID,
		TestDefinitionID:   definitionID,
		EntityLink:         fmt.Sprintf("<#E::table::%s>", suite.FullyQualifiedName),
		ParameterValues:    json.RawMessage(`[{"name":"columnName","value":"id"}]`),
	}
}

// WithResult attaches a latest result to a test case
func (f *TestCaseFactory) WithResult(tc *models.TestCase, status models.TestCaseStatus, at time.Time) *models.TestCase {
	tc.Result, _ = json.Marshal(map[string]interface{}{
		"timestamp":      at.UnixMilli(),
		"testCaseStatus": status,
		"result":         "result for " + tc.Name,
	})
	return tc
}

// FactorySet provides access to all factories
type FactorySet struct {
	User           *UserFactory
	Team           *TeamFactory
	TestDefinition *TestDefinitionFactory
	TestSuite      *TestSuiteFactory
	TestCase       *TestCaseFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:           NewUserFactory(),
		Team:           NewTeamFactory(),
		TestDefinition: NewTestDefinitionFactory(),
		TestSuite:      NewTestSuiteFactory(),
		TestCase:       NewTestCaseFactory(),
	}
}

func shortID() string {
	return uuid.NewString()[:8]
}
