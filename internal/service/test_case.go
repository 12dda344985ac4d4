package service

import (
	"encoding/json"
	"fmt"
	"slices"

	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/logger"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/repository"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
)

// ListTestCasesParams narrows a test case listing
type ListTestCasesParams struct {
	TestSuiteID *uuid.UUID
	Fields      types.Fields
	Limit       int
	Cursor      paging.Cursor
}

// TestCaseService provides test case business logic
type TestCaseService struct {
	repo        repository.TestCaseRepositoryInterface
	definitions repository.TestDefinitionRepositoryInterface
	limits      paging.Limits
}

// Ensure TestCaseService implements TestCaseServiceInterface
var _ TestCaseServiceInterface = (*TestCaseService)(nil)

// NewTestCaseService creates a new TestCaseService
func NewTestCaseService(repo repository.TestCaseRepositoryInterface, definitions repository.TestDefinitionRepositoryInterface, limits paging.Limits) *TestCaseService {
	return &TestCaseService{
		repo:        repo,
		definitions: definitions,
		limits:      limits,
	}
}

// List retrieves one page of test cases ordered by fully qualified name
func (s *TestCaseService) List(params ListTestCasesParams) (*paging.List[types.TestCase], error) {
	limit := s.limits.Clamp(params.Limit)

	page, err := s.repo.ListByTestSuite(params.TestSuiteID, params.Cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}

	if params.Fields.Has("testDefinition") {
		if err := s.attachDefinitions(page.Items); err != nil {
			return nil, err
		}
	}

	data := make([]types.TestCase, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, toTestCaseResponse(&page.Items[i], params.Fields))
	}

	var first, last string
	if n := len(page.Items); n > 0 {
		first, last = page.Items[0].FullyQualifiedName, page.Items[n-1].FullyQualifiedName
	}

	return &paging.List[types.TestCase]{
		Data:   data,
		Paging: paging.Build(params.Cursor, first, last, len(page.Items), page.HasMore, page.Total),
	}, nil
}

// attachDefinitions loads the definitions referenced by cases with a single
// query. A case whose definition is gone is served without one.
func (s *TestCaseService) attachDefinitions(cases []models.TestCase) error {
	ids := make([]uuid.UUID, 0, len(cases))
	for _, tc := range cases {
		if !slices.Contains(ids, tc.TestDefinitionID) {
			ids = append(ids, tc.TestDefinitionID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	defs, err := s.definitions.ListByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to load test definitions: %w", err)
	}
	byID := make(map[uuid.UUID]*models.TestDefinition, len(defs))
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}

	for i := range cases {
		def, ok := byID[cases[i].TestDefinitionID]
		if !ok {
			logger.New().WithField("test_case", cases[i].FullyQualifiedName).
				WithError(apperrors.ErrTestDefinitionNotFound).
				Warnf("serving test case without its definition")
			continue
		}
		cases[i].TestDefinition = def
	}
	return nil
}

func toTestCaseResponse(tc *models.TestCase, fields types.Fields) types.TestCase {
	resp := types.TestCase{
		ID:                 tc.ID,
		Name:               tc.Name,
		FullyQualifiedName: tc.FullyQualifiedName,
		DisplayName:        tc.DisplayName,
		Description:        tc.Description,
		EntityLink:         tc.EntityLink,
		TestSuite: types.EntityReference{
			ID:   tc.TestSuiteID,
			Type: types.EntityTypeTestSuite,
		},
	}

	if tc.TestSuite != nil {
		resp.TestSuite.Name = tc.TestSuite.Name
		resp.TestSuite.FullyQualifiedName = tc.TestSuite.FullyQualifiedName
	}

	if fields.Has("testDefinition") && tc.TestDefinition != nil {
		resp.TestDefinition = &types.EntityReference{
			ID:                 tc.TestDefinition.ID,
			Type:               types.EntityTypeTestDefinition,
			Name:               tc.TestDefinition.Name,
			FullyQualifiedName: tc.TestDefinition.Name,
			DisplayName:        tc.TestDefinition.DisplayName,
		}
	}

	if len(tc.ParameterValues) > 0 {
		if err := json.Unmarshal(tc.ParameterValues, &resp.ParameterValues); err != nil {
			logger.New().WithField("test_case", tc.FullyQualifiedName).WithError(err).Warnf("ignoring malformed parameter values")
		}
	}

	if fields.Has("testCaseResult") && len(tc.Result) > 0 {
		var result types.TestCaseResult
		if err := json.Unmarshal(tc.Result, &result); err != nil {
			logger.New().WithField("test_case", tc.FullyQualifiedName).WithError(err).Warnf("ignoring malformed result")
		} else {
			resp.TestCaseResult = &result
		}
	}

	return resp
}
