package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"metadata-catalog/internal/database/models"
	"metadata-catalog/internal/mocks"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/repository"
	"metadata-catalog/internal/service"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TestCaseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockTestCaseRepositoryInterface
	mockDefs    *mocks.MockTestDefinitionRepositoryInterface
	caseService *service.TestCaseService
	suiteID     uuid.UUID
	defID       uuid.UUID
}

func (s *TestCaseServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockTestCaseRepositoryInterface(s.ctrl)
	s.mockDefs = mocks.NewMockTestDefinitionRepositoryInterface(s.ctrl)
	s.caseService = service.NewTestCaseService(s.mockRepo, s.mockDefs, paging.Limits{Default: 10, Max: 50})
	s.suiteID = uuid.New()
	s.defID = uuid.New()
}

func (s *TestCaseServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TestCaseServiceTestSuite) testCase(name string) models.TestCase {
	params, _ := json.Marshal([]types.TestCaseParameterValue{{Name: "minValue", Value: "1"}})
	result, _ := json.Marshal(types.TestCaseResult{Timestamp: 1700000000000, TestCaseStatus: "Failed", Result: "Found 3 nulls"})
	return models.TestCase{
		BaseModel: models.BaseModel{
			ID:   uuid.New(),
			Name: name,
		},
		FullyQualifiedName: "team_suite." + name,
		TestSuiteID:        s.suiteID,
		TestDefinitionID:   s.defID,
		EntityLink:         "<#E::table::sample_data.ecommerce_db.shopify.dim_address>",
		ParameterValues:    params,
		Result:             result,
		TestSuite: &models.TestSuite{
			BaseModel:          models.BaseModel{ID: s.suiteID, Name: "team_suite"},
			FullyQualifiedName: "team_suite",
		},
	}
}

func (s *TestCaseServiceTestSuite) definition() models.TestDefinition {
	return models.TestDefinition{
		BaseModel: models.BaseModel{ID: s.defID, Name: "columnValuesToBeNotNull", DisplayName: "Column Values To Be Not Null"},
	}
}

func (s *TestCaseServiceTestSuite) TestList_WithAllFields() {
	after, err := paging.ParseCursor("", paging.Encode("team_suite.a"))
	require.NoError(s.T(), err)

	s.mockRepo.EXPECT().
		ListByTestSuite(&s.suiteID, after, 10).
		Return(&repository.Page[models.TestCase]{
			Items:   []models.TestCase{s.testCase("b"), s.testCase("c")},
			HasMore: false,
			Total:   3,
		}, nil)
	// both cases share a definition: one id, one query
	s.mockDefs.EXPECT().
		ListByIDs([]uuid.UUID{s.defID}).
		Return([]models.TestDefinition{s.definition()}, nil)

	list, err := s.caseService.List(service.ListTestCasesParams{
		TestSuiteID: &s.suiteID,
		Fields:      types.ParseFields("testCaseResult,testDefinition"),
		Cursor:      after,
	})

	require.NoError(s.T(), err)
	require.Len(s.T(), list.Data, 2)

	first := list.Data[0]
	assert.Equal(s.T(), "team_suite.b", first.FullyQualifiedName)
	assert.Equal(s.T(), types.EntityTypeTestSuite, first.TestSuite.Type)
	assert.Equal(s.T(), "team_suite", first.TestSuite.FullyQualifiedName)
	require.NotNil(s.T(), first.TestDefinition)
	assert.Equal(s.T(), "columnValuesToBeNotNull", first.TestDefinition.Name)
	assert.Equal(s.T(), types.EntityTypeTestDefinition, first.TestDefinition.Type)
	assert.Equal(s.T(), "Column Values To Be Not Null", first.TestDefinition.DisplayName)
	require.NotNil(s.T(), first.TestCaseResult)
	assert.Equal(s.T(), "Failed", first.TestCaseResult.TestCaseStatus)
	assert.Equal(s.T(), []types.TestCaseParameterValue{{Name: "minValue", Value: "1"}}, first.ParameterValues)

	// arrived via "after" on the last page: only a way back
	assert.NotNil(s.T(), list.Paging.Before)
	assert.Nil(s.T(), list.Paging.After)
	assert.Equal(s.T(), int64(3), list.Paging.Total)
}

func (s *TestCaseServiceTestSuite) TestList_OmitsUnrequestedFields() {
	s.mockRepo.EXPECT().
		ListByTestSuite(nil, paging.Cursor{}, 50).
		Return(&repository.Page[models.TestCase]{Items: []models.TestCase{s.testCase("a")}, Total: 1}, nil)

	list, err := s.caseService.List(service.ListTestCasesParams{Limit: 500})

	require.NoError(s.T(), err)
	require.Len(s.T(), list.Data, 1)
	assert.Nil(s.T(), list.Data[0].TestDefinition)
	assert.Nil(s.T(), list.Data[0].TestCaseResult)
	assert.Nil(s.T(), list.Paging.Before)
	assert.Nil(s.T(), list.Paging.After)
}

func (s *TestCaseServiceTestSuite) TestList_Empty() {
	s.mockRepo.EXPECT().
		ListByTestSuite(&s.suiteID, paging.Cursor{}, 10).
		Return(&repository.Page[models.TestCase]{}, nil)

	list, err := s.caseService.List(service.ListTestCasesParams{TestSuiteID: &s.suiteID})

	require.NoError(s.T(), err)
	assert.NotNil(s.T(), list.Data)
	assert.Empty(s.T(), list.Data)
	assert.Equal(s.T(), paging.Paging{}, list.Paging)
}

func (s *TestCaseServiceTestSuite) TestList_RepositoryError() {
	s.mockRepo.EXPECT().ListByTestSuite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	list, err := s.caseService.List(service.ListTestCasesParams{})

	assert.Nil(s.T(), list)
	assert.Contains(s.T(), err.Error(), "failed to list test cases")
}

func (s *TestCaseServiceTestSuite) TestList_EmptyPageSkipsDefinitionLookup() {
	s.mockRepo.EXPECT().
		ListByTestSuite(&s.suiteID, paging.Cursor{}, 10).
		Return(&repository.Page[models.TestCase]{}, nil)

	list, err := s.caseService.List(service.ListTestCasesParams{
		TestSuiteID: &s.suiteID,
		Fields:      types.ParseFields("testDefinition"),
	})

	require.NoError(s.T(), err)
	assert.Empty(s.T(), list.Data)
}

func (s *TestCaseServiceTestSuite) TestList_MissingDefinitionIsOmitted() {
	s.mockRepo.EXPECT().
		ListByTestSuite(nil, paging.Cursor{}, 10).
		Return(&repository.Page[models.TestCase]{Items: []models.TestCase{s.testCase("a")}, Total: 1}, nil)
	s.mockDefs.EXPECT().ListByIDs([]uuid.UUID{s.defID}).Return([]models.TestDefinition{}, nil)

	list, err := s.caseService.List(service.ListTestCasesParams{Fields: types.ParseFields("testDefinition")})

	require.NoError(s.T(), err)
	require.Len(s.T(), list.Data, 1)
	assert.Nil(s.T(), list.Data[0].TestDefinition)
}

func (s *TestCaseServiceTestSuite) TestList_DefinitionLookupError() {
	s.mockRepo.EXPECT().
		ListByTestSuite(nil, paging.Cursor{}, 10).
		Return(&repository.Page[models.TestCase]{Items: []models.TestCase{s.testCase("a")}, Total: 1}, nil)
	s.mockDefs.EXPECT().ListByIDs(gomock.Any()).Return(nil, errors.New("timeout"))

	list, err := s.caseService.List(service.ListTestCasesParams{Fields: types.ParseFields("testDefinition")})

	assert.Nil(s.T(), list)
	assert.Contains(s.T(), err.Error(), "failed to load test definitions")
}

func TestTestCaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TestCaseServiceTestSuite))
}
