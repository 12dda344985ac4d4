//go:build integration
// +build integration

package routes

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"metadata-catalog/internal/client"
	"metadata-catalog/internal/config"
	"metadata-catalog/internal/database/models"
	"metadata-catalog/internal/detail"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/session"
	"metadata-catalog/internal/testutils"
	"metadata-catalog/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// DetailPageTestSuite drives the detail controller against the real API
// backed by Postgres.
type DetailPageTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	server        *httptest.Server
	recorder      *detail.Recorder
	controller    *detail.Controller

	team  *models.Team
	user  *models.User
	suite *models.TestSuite
}

func (s *DetailPageTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
	s.factories = testutils.NewFactorySet()
	s.server = httptest.NewServer(SetupRoutes(s.baseTestSuite.DB, s.baseTestSuite.Config))
}

func (s *DetailPageTestSuite) TearDownSuite() {
	s.server.Close()
	s.baseTestSuite.TeardownTestSuite()
}

func (s *DetailPageTestSuite) SetupTest() {
	s.baseTestSuite.SetupTest()
	db := s.baseTestSuite.DB

	s.team = s.factories.Team.WithName("data_platform")
	s.user = s.factories.User.WithName("aaron_johnson0")
	s.Require().NoError(db.Create(s.team).Error)
	s.Require().NoError(db.Create(s.user).Error)

	def := s.factories.TestDefinition.Create()
	s.Require().NoError(db.Create(def).Error)

	s.suite = s.factories.TestSuite.OwnedByTeam("shop.orders.testSuite", s.team.ID)
	s.suite.Description = "old"
	s.Require().NoError(db.Create(s.suite).Error)

	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for _, name := range []string{"a_not_null", "b_unique", "c_in_set"} {
		tc := s.factories.TestCase.ForSuite(s.suite, def.ID, name)
		s.factories.TestCase.WithResult(tc, models.TestCaseStatusSuccess, at)
		s.Require().NoError(db.Create(tc).Error)
	}

	cfg := *s.baseTestSuite.Config
	cfg.CatalogURL = s.server.URL + "/api/v1"
	sess := &session.Session{UserName: "alice"}
	s.recorder = &detail.Recorder{}
	s.controller = detail.New(client.New(&cfg, sess), sess, s.recorder, detail.WithPageSize(2))
}

func (s *DetailPageTestSuite) TearDownTest() {
	s.baseTestSuite.TearDownTest()
}

func (s *DetailPageTestSuite) TestMountLoadsSuiteAndFirstPage() {
	s.controller.Mount(context.Background(), "shop.orders.testSuite")

	snap := s.controller.Snapshot()
	s.Require().Equal(detail.StateLoaded, snap.State)
	s.Empty(s.recorder.Notifications())
	s.Equal("old", snap.TestSuite.Description)
	s.Equal(detail.TeamOwner{Ref: *snap.TestSuite.Owner}, snap.Owner)
	s.Equal("data_platform", snap.TestSuite.Owner.Name)

	s.True(snap.TestCasesLoaded)
	s.Require().Len(snap.TestCases, 2)
	s.Equal("a_not_null", snap.TestCases[0].Name)
	s.EqualValues(3, snap.Paging.Total)
	s.NotEmpty(snap.Paging.Token(paging.After))
}

func (s *DetailPageTestSuite) TestChangePageFollowsCursors() {
	ctx := context.Background()
	s.controller.Mount(ctx, "shop.orders.testSuite")

	s.controller.ChangePage(ctx, paging.After, 2)
	snap := s.controller.Snapshot()
	s.Require().Len(snap.TestCases, 1)
	s.Equal("c_in_set", snap.TestCases[0].Name)
	s.Equal(2, snap.CurrentPage)
	s.Empty(snap.Paging.Token(paging.After))

	s.controller.ChangePage(ctx, paging.Before, 1)
	snap = s.controller.Snapshot()
	s.Require().Len(snap.TestCases, 2)
	s.Equal("a_not_null", snap.TestCases[0].Name)
	s.Equal(1, snap.CurrentPage)
}

func (s *DetailPageTestSuite) TestUpdateDescriptionPersists() {
	ctx := context.Background()
	s.controller.Mount(ctx, "shop.orders.testSuite")
	s.controller.SetDescriptionEditable(true)

	s.controller.UpdateDescription(ctx, "Checks on the orders table")

	snap := s.controller.Snapshot()
	s.Empty(s.recorder.Notifications())
	s.False(snap.DescriptionEditable)
	s.Equal("Checks on the orders table", snap.TestSuite.Description)
	s.InDelta(0.2, snap.TestSuite.Version, 1e-9)

	var stored models.TestSuite
	s.Require().NoError(s.baseTestSuite.DB.First(&stored, "id = ?", s.suite.ID).Error)
	s.Equal("Checks on the orders table", stored.Description)
	s.Equal("alice", stored.UpdatedBy)
}

func (s *DetailPageTestSuite) TestUpdateOwnerToUser() {
	ctx := context.Background()
	s.controller.Mount(ctx, "shop.orders.testSuite")

	s.controller.UpdateOwner(ctx, &types.EntityReference{Type: types.EntityTypeUser, Name: "aaron_johnson0"})

	snap := s.controller.Snapshot()
	s.Empty(s.recorder.Notifications())
	s.Require().NotNil(snap.TestSuite.Owner)
	s.Equal(s.user.ID, snap.TestSuite.Owner.ID)
	s.Equal(types.EntityTypeUser, snap.TestSuite.Owner.Type)

	var stored models.TestSuite
	s.Require().NoError(s.baseTestSuite.DB.First(&stored, "id = ?", s.suite.ID).Error)
	s.Require().NotNil(stored.OwnerID)
	s.Equal(s.user.ID, *stored.OwnerID)
	s.Equal(models.OwnerTypeUser, stored.OwnerType)
}

func (s *DetailPageTestSuite) TestUpdateOwnerUnknownNotifies() {
	ctx := context.Background()
	s.controller.Mount(ctx, "shop.orders.testSuite")

	s.controller.UpdateOwner(ctx, &types.EntityReference{Type: types.EntityTypeUser, Name: "nobody"})

	notes := s.recorder.Notifications()
	s.Require().Len(notes, 1)
	s.Equal(detail.KindUpdateOwner, notes[0].Kind)
	s.Equal("data_platform", s.controller.Snapshot().TestSuite.Owner.Name)
}

func (s *DetailPageTestSuite) TestMountMissingSuite() {
	s.controller.Mount(context.Background(), "no.such.suite")

	snap := s.controller.Snapshot()
	s.Equal(detail.StateError, snap.State)
	notes := s.recorder.Notifications()
	s.Require().Len(notes, 1)
	s.Equal(detail.KindFetchTestSuite, notes[0].Kind)
}

func TestDetailPageTestSuite(t *testing.T) {
	suite.Run(t, new(DetailPageTestSuite))
}
