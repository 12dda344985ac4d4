package service_test

import (
	"errors"
	"testing"

	"metadata-catalog/internal/database/models"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/mocks"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/repository"
	"metadata-catalog/internal/service"
	"metadata-catalog/internal/types"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TestSuiteServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockTestSuiteRepositoryInterface
	mockOwners    *mocks.MockOwnerServiceInterface
	suiteService  *service.TestSuiteService
	suiteID       uuid.UUID
	teamID        uuid.UUID
	teamReference *types.EntityReference
}

func (s *TestSuiteServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockTestSuiteRepositoryInterface(s.ctrl)
	s.mockOwners = mocks.NewMockOwnerServiceInterface(s.ctrl)
	s.suiteService = service.NewTestSuiteService(s.mockRepo, s.mockOwners, validator.New(), paging.Limits{Default: 10, Max: 100})

	s.suiteID = uuid.New()
	s.teamID = uuid.New()
	s.teamReference = &types.EntityReference{ID: s.teamID, Type: types.EntityTypeTeam, Name: "data", FullyQualifiedName: "data"}
}

func (s *TestSuiteServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TestSuiteServiceTestSuite) storedSuite(withOwner bool) *models.TestSuite {
	suite := &models.TestSuite{
		BaseModel: models.BaseModel{
			ID:          s.suiteID,
			Name:        "team_suite",
			Description: "old",
		},
		FullyQualifiedName: "team_suite",
		Version:            0.1,
	}
	if withOwner {
		suite.OwnerID = &s.teamID
		suite.OwnerType = models.OwnerTypeTeam
	}
	return suite
}

func (s *TestSuiteServiceTestSuite) TestGetByName_WithoutOwnerField() {
	s.mockRepo.EXPECT().GetByFQN("team_suite").Return(s.storedSuite(true), nil)

	resp, err := s.suiteService.GetByName("team_suite", types.ParseFields(""))

	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.suiteID, resp.ID)
	assert.Equal(s.T(), "old", resp.Description)
	assert.Nil(s.T(), resp.Owner)
}

func (s *TestSuiteServiceTestSuite) TestGetByName_WithOwnerField() {
	s.mockRepo.EXPECT().GetByFQN("team_suite").Return(s.storedSuite(true), nil)
	s.mockOwners.EXPECT().Reference(types.EntityTypeTeam, s.teamID).Return(s.teamReference, nil)

	resp, err := s.suiteService.GetByName("team_suite", types.ParseFields("owner"))

	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.teamReference, resp.Owner)
}

func (s *TestSuiteServiceTestSuite) TestGetByName_OwnerGone() {
	s.mockRepo.EXPECT().GetByFQN("team_suite").Return(s.storedSuite(true), nil)
	s.mockOwners.EXPECT().Reference(types.EntityTypeTeam, s.teamID).Return(nil, apperrors.ErrOwnerNotFound)

	resp, err := s.suiteService.GetByName("team_suite", types.ParseFields("owner"))

	require.NoError(s.T(), err)
	assert.Nil(s.T(), resp.Owner)
}

func (s *TestSuiteServiceTestSuite) TestGetByName_NotFound() {
	s.mockRepo.EXPECT().GetByFQN("missing").Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.suiteService.GetByName("missing", nil)

	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrTestSuiteNotFound)
}

func (s *TestSuiteServiceTestSuite) TestGetByName_RepositoryError() {
	s.mockRepo.EXPECT().GetByFQN("team_suite").Return(nil, errors.New("connection reset"))

	_, err := s.suiteService.GetByName("team_suite", nil)

	require.Error(s.T(), err)
	assert.False(s.T(), apperrors.IsNotFound(err))
	assert.Contains(s.T(), err.Error(), "failed to get test suite")
}

func (s *TestSuiteServiceTestSuite) TestList_ClampsLimitAndBuildsPaging() {
	a, b := *s.storedSuite(false), *s.storedSuite(false)
	a.FullyQualifiedName, b.FullyQualifiedName = "a_suite", "b_suite"

	s.mockRepo.EXPECT().
		List(paging.Cursor{}, 10).
		Return(&repository.Page[models.TestSuite]{Items: []models.TestSuite{a, b}, HasMore: true, Total: 12}, nil)

	list, err := s.suiteService.List(paging.Cursor{}, 0, nil)

	require.NoError(s.T(), err)
	assert.Len(s.T(), list.Data, 2)
	assert.Nil(s.T(), list.Paging.Before)
	require.NotNil(s.T(), list.Paging.After)
	key, err := paging.Decode(*list.Paging.After)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "b_suite", key)
	assert.Equal(s.T(), int64(12), list.Paging.Total)
}

func (s *TestSuiteServiceTestSuite) TestPatch_Description() {
	stored := s.storedSuite(false)
	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(stored, nil)
	s.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(suite *models.TestSuite) error {
		assert.Equal(s.T(), "new", suite.Description)
		assert.Equal(s.T(), 0.2, suite.Version)
		assert.Equal(s.T(), "alice", suite.UpdatedBy)
		return nil
	})

	resp, err := s.suiteService.Patch(s.suiteID, []byte(`[{"op":"replace","path":"/description","value":"new"}]`), "alice")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "new", resp.Description)
	assert.Equal(s.T(), 0.2, resp.Version)
	assert.Equal(s.T(), "alice", resp.UpdatedBy)
}

func (s *TestSuiteServiceTestSuite) TestPatch_NoChangeSkipsUpdate() {
	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(false), nil)
	s.mockRepo.EXPECT().Update(gomock.Any()).Times(0)

	resp, err := s.suiteService.Patch(s.suiteID, []byte(`[{"op":"replace","path":"/description","value":"old"}]`), "alice")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0.1, resp.Version)
}

func (s *TestSuiteServiceTestSuite) TestPatch_ImmutableFields() {
	for _, path := range []string{"/name", "/fullyQualifiedName", "/id"} {
		s.Run(path, func() {
			s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(false), nil)

			doc := `[{"op":"replace","path":"` + path + `","value":"` + uuid.NewString() + `"}]`
			resp, err := s.suiteService.Patch(s.suiteID, []byte(doc), "alice")

			assert.Nil(s.T(), resp)
			assert.ErrorIs(s.T(), err, apperrors.ErrImmutableField)
		})
	}
}

func (s *TestSuiteServiceTestSuite) TestPatch_InvalidDocuments() {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{{`},
		{"missing target", `[{"op":"remove","path":"/owner"}]`},
		{"failed test op", `[{"op":"test","path":"/description","value":"other"}]`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(false), nil)

			resp, err := s.suiteService.Patch(s.suiteID, []byte(tt.doc), "alice")

			assert.Nil(s.T(), resp)
			assert.True(s.T(), apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (s *TestSuiteServiceTestSuite) TestPatch_OwnerResolvedByName() {
	userID := uuid.New()
	userRef := &types.EntityReference{ID: userID, Type: types.EntityTypeUser, Name: "alice"}

	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(true), nil)
	s.mockOwners.EXPECT().Reference(types.EntityTypeTeam, s.teamID).Return(s.teamReference, nil)
	s.mockOwners.EXPECT().
		Resolve(gomock.Any()).
		DoAndReturn(func(ref types.EntityReference) (*types.EntityReference, error) {
			// the merged reference still carries the previous owner's id
			assert.Equal(s.T(), s.teamID, ref.ID)
			assert.Equal(s.T(), "alice", ref.Name)
			assert.Equal(s.T(), types.EntityTypeUser, ref.Type)
			return userRef, nil
		})
	s.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(suite *models.TestSuite) error {
		require.NotNil(s.T(), suite.OwnerID)
		assert.Equal(s.T(), userID, *suite.OwnerID)
		assert.Equal(s.T(), models.OwnerTypeUser, suite.OwnerType)
		return nil
	})

	doc := `[{"op":"replace","path":"/owner/name","value":"alice"},{"op":"replace","path":"/owner/type","value":"user"}]`
	resp, err := s.suiteService.Patch(s.suiteID, []byte(doc), "alice")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), userRef, resp.Owner)
}

func (s *TestSuiteServiceTestSuite) TestPatch_RemoveOwner() {
	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(true), nil)
	s.mockOwners.EXPECT().Reference(types.EntityTypeTeam, s.teamID).Return(s.teamReference, nil)
	s.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(suite *models.TestSuite) error {
		assert.Nil(s.T(), suite.OwnerID)
		assert.Empty(s.T(), suite.OwnerType)
		return nil
	})

	resp, err := s.suiteService.Patch(s.suiteID, []byte(`[{"op":"remove","path":"/owner"}]`), "alice")

	require.NoError(s.T(), err)
	assert.Nil(s.T(), resp.Owner)
}

func (s *TestSuiteServiceTestSuite) TestPatch_UnknownOwner() {
	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(false), nil)
	s.mockOwners.EXPECT().Resolve(gomock.Any()).Return(nil, apperrors.NewValidationError("owner", "user bob not found"))
	s.mockRepo.EXPECT().Update(gomock.Any()).Times(0)

	doc := `[{"op":"add","path":"/owner","value":{"id":"00000000-0000-0000-0000-000000000000","type":"user","name":"bob"}}]`
	resp, err := s.suiteService.Patch(s.suiteID, []byte(doc), "alice")

	assert.Nil(s.T(), resp)
	assert.True(s.T(), apperrors.IsValidation(err))
}

func (s *TestSuiteServiceTestSuite) TestPatch_NotFound() {
	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.suiteService.Patch(s.suiteID, []byte(`[]`), "alice")

	assert.ErrorIs(s.T(), err, apperrors.ErrTestSuiteNotFound)
}

func (s *TestSuiteServiceTestSuite) TestPatch_UpdateFails() {
	s.mockRepo.EXPECT().GetByID(s.suiteID).Return(s.storedSuite(false), nil)
	s.mockRepo.EXPECT().Update(gomock.Any()).Return(errors.New("deadlock"))

	_, err := s.suiteService.Patch(s.suiteID, []byte(`[{"op":"add","path":"/displayName","value":"Team Suite"}]`), "alice")

	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "failed to update test suite")
}

func TestTestSuiteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteServiceTestSuite))
}
