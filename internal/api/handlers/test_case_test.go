package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"metadata-catalog/internal/api/handlers"
	"metadata-catalog/internal/mocks"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/service"
	"metadata-catalog/internal/testutils"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TestCaseHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTestCaseServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (s *TestCaseHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockTestCaseServiceInterface(s.ctrl)
	handler := handlers.NewTestCaseHandler(s.mockService)
	s.httpSuite = testutils.SetupHTTPTest()
	s.httpSuite.Router.GET("/api/v1/testCases", handler.ListTestCases)
}

func (s *TestCaseHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TestCaseHandlerTestSuite) TestListTestCases() {
	suiteID := uuid.New()

	s.T().Run("Scoped to suite with fields", func(t *testing.T) {
		s.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params service.ListTestCasesParams) (*paging.List[types.TestCase], error) {
				require.NotNil(t, params.TestSuiteID)
				assert.Equal(t, suiteID, *params.TestSuiteID)
				assert.True(t, params.Fields.Has("testCaseResult"))
				assert.True(t, params.Fields.Has("testDefinition"))
				assert.Equal(t, 10, params.Limit)
				assert.True(t, params.Cursor.IsFirstPage())
				return &paging.List[types.TestCase]{
					Data: []types.TestCase{{
						ID:             uuid.New(),
						Name:           "column_values_not_null",
						TestSuite:      types.EntityReference{ID: suiteID, Type: types.EntityTypeTestSuite},
						TestCaseResult: &types.TestCaseResult{TestCaseStatus: "Success", Timestamp: 1700000000000},
					}},
					Paging: paging.Paging{After: paging.EncodePtr("team_suite.column_values_not_null"), Total: 12},
				}, nil
			}).
			Times(1)

		url := "/api/v1/testCases?testSuiteId=" + suiteID.String() + "&fields=testCaseResult,testDefinition&limit=10"
		recorder := s.httpSuite.MakeRequest(http.MethodGet, url, nil)

		response := testutils.AssertPagedResponse[types.TestCase](t, recorder)
		require.Len(t, response.Data, 1)
		assert.Equal(t, "Success", response.Data[0].TestCaseResult.TestCaseStatus)
		require.NotNil(t, response.Paging.After)
		assert.Equal(t, int64(12), response.Paging.Total)
	})

	s.T().Run("Before cursor is decoded", func(t *testing.T) {
		s.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params service.ListTestCasesParams) (*paging.List[types.TestCase], error) {
				assert.Nil(t, params.TestSuiteID)
				assert.Equal(t, paging.Cursor{Before: "team_suite.b"}, params.Cursor)
				return &paging.List[types.TestCase]{Data: []types.TestCase{}}, nil
			}).
			Times(1)

		recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/testCases?before="+paging.Encode("team_suite.b"), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	s.T().Run("Invalid suite ID", func(t *testing.T) {
		recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/testCases?testSuiteId=abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid test suite ID")
	})

	s.T().Run("Negative limit", func(t *testing.T) {
		recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/testCases?limit=-1", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid pagination parameters")
	})

	s.T().Run("Service error", func(t *testing.T) {
		s.mockService.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("database unavailable")).
			Times(1)

		recorder := s.httpSuite.MakeRequest(http.MethodGet, "/api/v1/testCases", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
	})
}

func TestTestCaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TestCaseHandlerTestSuite))
}
