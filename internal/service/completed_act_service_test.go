package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/internal/service"
	"github.com/kindnet/kindness-api/internal/testutil"
	"github.com/kindnet/kindness-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CompletedActServiceTestSuite struct {
	suite.Suite
	testDB           *testutil.TestDatabase
	completedService *service.CompletedActService

	user *models.User
	act  *models.KindnessAct
}

func (s *CompletedActServiceTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())

	actRepo := repository.NewActRepository(s.testDB.DB)
	completedRepo := repository.NewCompletedActRepository(s.testDB.DB)
	s.completedService = service.NewCompletedActService(completedRepo, actRepo, nil)
}

func (s *CompletedActServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *CompletedActServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	var err error
	s.user, err = testutil.DefaultTestUser()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(s.user).Error)

	s.act = testutil.CreateTestAct(s.user.ID, models.StatusApproved)
	require.NoError(s.T(), s.testDB.DB.Create(s.act).Error)
}

func (s *CompletedActServiceTestSuite) TestCreateDirectSnapshotsAct() {
	completed, err := s.completedService.CreateDirect(testutil.ActorFor(s.user), s.act.ID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), s.act.ID, completed.ActID)
	assert.Equal(s.T(), s.act.Title, completed.Title)
	assert.Equal(s.T(), s.act.Description, completed.Description)
	assert.Equal(s.T(), s.act.Difficulty, completed.Difficulty)
	assert.False(s.T(), completed.CompletedAt.IsZero())
}

func (s *CompletedActServiceTestSuite) TestCreateDirectUnknownActNotFound() {
	_, err := s.completedService.CreateDirect(testutil.ActorFor(s.user), uuid.New())
	assert.True(s.T(), apperr.IsKind(err, apperr.KindNotFound))
}

func (s *CompletedActServiceTestSuite) TestRepeatCompletionsAllowed() {
	actor := testutil.ActorFor(s.user)

	_, err := s.completedService.CreateDirect(actor, s.act.ID)
	require.NoError(s.T(), err)
	_, err = s.completedService.CreateDirect(actor, s.act.ID)
	require.NoError(s.T(), err, "the same act may be completed more than once")

	ledger, err := s.completedService.ListForUser(s.user.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), ledger, 2)
}

func (s *CompletedActServiceTestSuite) TestListForUserScopedToUser() {
	other, err := testutil.CreateTestUser("other", "other@example.com", "Secret123", models.RoleUser)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(other).Error)

	_, err = s.completedService.CreateDirect(testutil.ActorFor(s.user), s.act.ID)
	require.NoError(s.T(), err)

	ledger, err := s.completedService.ListForUser(other.ID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), ledger)
}

func TestCompletedActServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompletedActServiceTestSuite))
}
