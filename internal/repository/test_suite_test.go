//go:build integration
// +build integration

package repository

import (
	"testing"

	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestSuiteRepositoryTestSuite tests the TestSuiteRepository
type TestSuiteRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TestSuiteRepository
	factories     *testutils.FactorySet
}

func (suite *TestSuiteRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTestSuiteRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TestSuiteRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TestSuiteRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TestSuiteRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TestSuiteRepositoryTestSuite) TestCreateAndGetByFQN() {
	team := suite.factories.Team.WithName("data_platform")
	suite.Require().NoError(NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	ts := suite.factories.TestSuite.OwnedByTeam("critical_metrics_suite", team.ID)
	suite.Require().NoError(suite.repo.Create(ts))

	found, err := suite.repo.GetByFQN("critical_metrics_suite")
	suite.Require().NoError(err)
	suite.Equal(ts.ID, found.ID)
	suite.Require().NotNil(found.OwnerID)
	suite.Equal(team.ID, *found.OwnerID)
	suite.Equal(models.OwnerTypeTeam, found.OwnerType)
	suite.InDelta(0.1, found.Version, 1e-9)
}

func (suite *TestSuiteRepositoryTestSuite) TestDuplicateFQN() {
	suite.Require().NoError(suite.repo.Create(suite.factories.TestSuite.WithName("dup_suite")))
	suite.ErrorIs(suite.repo.Create(suite.factories.TestSuite.WithName("dup_suite")), apperrors.ErrTestSuiteExists)
}

func (suite *TestSuiteRepositoryTestSuite) TestDeletedSuitesAreHidden() {
	ts := suite.factories.TestSuite.WithName("gone_suite")
	ts.Deleted = true
	suite.Require().NoError(suite.repo.Create(ts))

	_, err := suite.repo.GetByFQN("gone_suite")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.repo.GetByID(ts.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	page, err := suite.repo.List(paging.Cursor{}, 10)
	suite.Require().NoError(err)
	suite.Empty(page.Items)
	suite.Zero(page.Total)
}

func (suite *TestSuiteRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TestSuiteRepositoryTestSuite) TestListKeyset() {
	for _, name := range []string{"c_suite", "a_suite", "d_suite", "b_suite", "e_suite"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.TestSuite.WithName(name)))
	}

	first, err := suite.repo.List(paging.Cursor{}, 2)
	suite.Require().NoError(err)
	suite.Equal([]string{"a_suite", "b_suite"}, suiteNames(first.Items))
	suite.True(first.HasMore)
	suite.EqualValues(5, first.Total)

	second, err := suite.repo.List(paging.Cursor{After: "b_suite"}, 2)
	suite.Require().NoError(err)
	suite.Equal([]string{"c_suite", "d_suite"}, suiteNames(second.Items))
	suite.True(second.HasMore)

	last, err := suite.repo.List(paging.Cursor{After: "d_suite"}, 2)
	suite.Require().NoError(err)
	suite.Equal([]string{"e_suite"}, suiteNames(last.Items))
	suite.False(last.HasMore)

	back, err := suite.repo.List(paging.Cursor{Before: "e_suite"}, 2)
	suite.Require().NoError(err)
	suite.Equal([]string{"c_suite", "d_suite"}, suiteNames(back.Items))
	suite.True(back.HasMore)
}

func (suite *TestSuiteRepositoryTestSuite) TestUpdate() {
	ts := suite.factories.TestSuite.WithName("editable_suite")
	suite.Require().NoError(suite.repo.Create(ts))

	ts.Description = "changed"
	ts.Version = 0.2
	ts.UpdatedBy = "alice"
	suite.Require().NoError(suite.repo.Update(ts))

	found, err := suite.repo.GetByID(ts.ID)
	suite.Require().NoError(err)
	suite.Equal("changed", found.Description)
	suite.Equal("alice", found.UpdatedBy)
	suite.InDelta(0.2, found.Version, 1e-9)
}

func TestTestSuiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteRepositoryTestSuite))
}

func suiteNames(items []models.TestSuite) []string {
	names := make([]string, 0, len(items))
	for _, s := range items {
		names = append(names, s.FullyQualifiedName)
	}
	return names
}
