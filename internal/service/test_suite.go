package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/logger"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/repository"
	"metadata-catalog/internal/types"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// versionStep is added to an entity's version on every effective change
const versionStep = 0.1

// TestSuiteService provides test suite business logic
type TestSuiteService struct {
	repo      repository.TestSuiteRepositoryInterface
	owners    OwnerServiceInterface
	validator *validator.Validate
	limits    paging.Limits
}

// Ensure TestSuiteService implements TestSuiteServiceInterface
var _ TestSuiteServiceInterface = (*TestSuiteService)(nil)

// NewTestSuiteService creates a new TestSuiteService
func NewTestSuiteService(repo repository.TestSuiteRepositoryInterface, owners OwnerServiceInterface, validator *validator.Validate, limits paging.Limits) *TestSuiteService {
	return &TestSuiteService{
		repo:      repo,
		owners:    owners,
		validator: validator,
		limits:    limits,
	}
}

// GetByName retrieves a test suite by its fully qualified name
func (s *TestSuiteService) GetByName(fqn string, fields types.Fields) (*types.TestSuite, error) {
	suite, err := s.repo.GetByFQN(fqn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestSuiteNotFound
		}
		return nil, fmt.Errorf("failed to get test suite: %w", err)
	}
	return s.toResponse(suite, fields)
}

// List retrieves test suites ordered by fully qualified name
func (s *TestSuiteService) List(cursor paging.Cursor, limit int, fields types.Fields) (*paging.List[types.TestSuite], error) {
	limit = s.limits.Clamp(limit)

	page, err := s.repo.List(cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list test suites: %w", err)
	}

	data := make([]types.TestSuite, 0, len(page.Items))
	for i := range page.Items {
		resp, err := s.toResponse(&page.Items[i], fields)
		if err != nil {
			return nil, err
		}
		data = append(data, *resp)
	}

	var first, last string
	if n := len(page.Items); n > 0 {
		first, last = page.Items[0].FullyQualifiedName, page.Items[n-1].FullyQualifiedName
	}

	return &paging.List[types.TestSuite]{
		Data:   data,
		Paging: paging.Build(cursor, first, last, len(page.Items), page.HasMore, page.Total),
	}, nil
}

// Patch applies an RFC 6902 document to the JSON form of a test suite. Only
// description, displayName and owner can change; a patch that changes nothing
// returns the suite as stored.
func (s *TestSuiteService) Patch(id uuid.UUID, patch []byte, updatedBy string) (*types.TestSuite, error) {
	suite, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestSuiteNotFound
		}
		return nil, fmt.Errorf("failed to get test suite: %w", err)
	}

	current, err := s.toResponse(suite, types.Fields{"owner": true})
	if err != nil {
		return nil, err
	}

	doc, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode test suite: %w", err)
	}

	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, apperrors.ErrInvalidPatch
	}
	patched, err := ops.Apply(doc)
	if err != nil {
		return nil, apperrors.NewValidationError("patch", err.Error())
	}

	var next types.TestSuite
	if err := json.Unmarshal(patched, &next); err != nil {
		return nil, apperrors.ErrInvalidPatch
	}

	if next.ID != current.ID || next.Name != current.Name || next.FullyQualifiedName != current.FullyQualifiedName {
		return nil, apperrors.ErrImmutableField
	}

	var owner *types.EntityReference
	if next.Owner != nil {
		if owner, err = s.owners.Resolve(*next.Owner); err != nil {
			return nil, err
		}
	}

	if next.Description == current.Description && next.DisplayName == current.DisplayName && sameOwner(owner, current.Owner) {
		return current, nil
	}

	suite.Description = next.Description
	suite.DisplayName = next.DisplayName
	if owner != nil {
		ownerID := owner.ID
		suite.OwnerID = &ownerID
		suite.OwnerType = models.OwnerType(owner.Type)
	} else {
		suite.OwnerID = nil
		suite.OwnerType = ""
	}
	suite.Version = math.Round((suite.Version+versionStep)*10) / 10
	suite.UpdatedBy = updatedBy

	if err := s.validator.Struct(suite); err != nil {
		return nil, apperrors.NewValidationError("testSuite", err.Error())
	}

	if err := s.repo.Update(suite); err != nil {
		return nil, fmt.Errorf("failed to update test suite: %w", err)
	}

	resp, err := s.toResponse(suite, nil)
	if err != nil {
		return nil, err
	}
	resp.Owner = owner
	return resp, nil
}

func sameOwner(a, b *types.EntityReference) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Type == b.Type
}

// toResponse converts a TestSuite model to its API form. The owner is only
// looked up when requested through fields.
func (s *TestSuiteService) toResponse(suite *models.TestSuite, fields types.Fields) (*types.TestSuite, error) {
	resp := &types.TestSuite{
		ID:                 suite.ID,
		Name:               suite.Name,
		FullyQualifiedName: suite.FullyQualifiedName,
		DisplayName:        suite.DisplayName,
		Description:        suite.Description,
		Version:            suite.Version,
		UpdatedAt:          suite.UpdatedAt.UnixMilli(),
		UpdatedBy:          suite.UpdatedBy,
		Deleted:            suite.Deleted,
	}

	if fields.Has("owner") && suite.OwnerID != nil {
		owner, err := s.owners.Reference(types.EntityType(suite.OwnerType), *suite.OwnerID)
		switch {
		case err == nil:
			resp.Owner = owner
		case apperrors.IsNotFound(err):
			logger.New().WithField("test_suite", suite.FullyQualifiedName).Warnf("owner %s no longer exists", suite.OwnerID)
		default:
			return nil, err
		}
	}

	return resp, nil
}
