package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/kindnet/kindness-api/internal/apperr"
	"github.com/kindnet/kindness-api/internal/models"
	"github.com/kindnet/kindness-api/internal/policy"
	"github.com/kindnet/kindness-api/internal/repository"
	"github.com/kindnet/kindness-api/internal/service"
	"github.com/kindnet/kindness-api/internal/testutil"
	"github.com/kindnet/kindness-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ActServiceTestSuite struct {
	suite.Suite
	testDB     *testutil.TestDatabase
	actService *service.ActService

	user  *models.User
	admin *models.User
}

func (s *ActServiceTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())

	actRepo := repository.NewActRepository(s.testDB.DB)
	s.actService = service.NewActService(actRepo, nil)
}

func (s *ActServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ActServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	var err error
	s.user, err = testutil.DefaultTestUser()
	require.NoError(s.T(), err)
	s.admin, err = testutil.DefaultAdminUser()
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(s.user).Error)
	require.NoError(s.T(), s.testDB.DB.Create(s.admin).Error)
}

func (s *ActServiceTestSuite) createInput() service.CreateActInput {
	return service.CreateActInput{
		Title:       "Buy a coffee",
		Description: "Buy a coffee for the next person in line at the cafe.",
		Category:    "everyday",
		Difficulty:  models.DifficultyEasy,
	}
}

func (s *ActServiceTestSuite) TestCreateByUserStartsPending() {
	input := s.createInput()
	input.Status = models.StatusApproved // must be ignored for non-admins

	act, err := s.actService.CreateAct(testutil.ActorFor(s.user), input)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), models.StatusPending, act.Status)
	assert.Equal(s.T(), s.user.ID, act.CreatedBy)
}

func (s *ActServiceTestSuite) TestCreateByAdmin() {
	act, err := s.actService.CreateAct(testutil.ActorFor(s.admin), s.createInput())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusApproved, act.Status, "admin creation defaults to approved")

	input := s.createInput()
	input.Status = models.StatusRejected
	act, err = s.actService.CreateAct(testutil.ActorFor(s.admin), input)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusRejected, act.Status, "admin-supplied status is honored")
}

func (s *ActServiceTestSuite) TestGetActByIDNotFound() {
	_, err := s.actService.GetActByID(uuid.New())
	assert.True(s.T(), apperr.IsKind(err, apperr.KindNotFound))
}

func (s *ActServiceTestSuite) TestUpdateByStrangerForbidden() {
	act, err := s.actService.CreateAct(testutil.ActorFor(s.user), s.createInput())
	require.NoError(s.T(), err)

	stranger := policy.Actor{ID: uuid.New(), Role: models.RoleUser}
	title := "stolen"
	_, err = s.actService.UpdateAct(stranger, act.ID, policy.ActUpdate{Title: &title})
	assert.True(s.T(), apperr.IsKind(err, apperr.KindForbidden))

	// Record left untouched.
	current, err := s.actService.GetActByID(act.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), act.Title, current.Title)
}

func (s *ActServiceTestSuite) TestModerationLifecycle() {
	// User creates: pending.
	act, err := s.actService.CreateAct(testutil.ActorFor(s.user), s.createInput())
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.StatusPending, act.Status)

	// Admin approves.
	approved := models.StatusApproved
	updated, err := s.actService.UpdateAct(testutil.ActorFor(s.admin), act.ID, policy.ActUpdate{Status: &approved})
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.StatusApproved, updated.Status)

	// Creator edits with an explicit approved status: title changes but the
	// act drops back to pending.
	title := "x"
	updated, err = s.actService.UpdateAct(testutil.ActorFor(s.user), act.ID, policy.ActUpdate{
		Title:  &title,
		Status: &approved,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "x", updated.Title)
	assert.Equal(s.T(), models.StatusPending, updated.Status)
}

func (s *ActServiceTestSuite) TestListApprovedFiltersStatus() {
	_, err := s.actService.CreateAct(testutil.ActorFor(s.user), s.createInput())
	require.NoError(s.T(), err)
	approvedAct, err := s.actService.CreateAct(testutil.ActorFor(s.admin), s.createInput())
	require.NoError(s.T(), err)

	acts, err := s.actService.ListApproved()
	require.NoError(s.T(), err)
	require.Len(s.T(), acts, 1)
	assert.Equal(s.T(), approvedAct.ID, acts[0].ID)
}

func (s *ActServiceTestSuite) TestListByCreator() {
	mine, err := s.actService.CreateAct(testutil.ActorFor(s.user), s.createInput())
	require.NoError(s.T(), err)
	_, err = s.actService.CreateAct(testutil.ActorFor(s.admin), s.createInput())
	require.NoError(s.T(), err)

	acts, err := s.actService.ListByCreator(testutil.ActorFor(s.user))
	require.NoError(s.T(), err)
	require.Len(s.T(), acts, 1)
	assert.Equal(s.T(), mine.ID, acts[0].ID)
}

func (s *ActServiceTestSuite) TestDelete() {
	act, err := s.actService.CreateAct(testutil.ActorFor(s.user), s.createInput())
	require.NoError(s.T(), err)

	stranger := policy.Actor{ID: uuid.New(), Role: models.RoleUser}
	err = s.actService.DeleteAct(stranger, act.ID)
	assert.True(s.T(), apperr.IsKind(err, apperr.KindForbidden))

	// Admin may delete an act they did not create.
	require.NoError(s.T(), s.actService.DeleteAct(testutil.ActorFor(s.admin), act.ID))

	_, err = s.actService.GetActByID(act.ID)
	assert.True(s.T(), apperr.IsKind(err, apperr.KindNotFound), "delete is a hard delete")
}

func (s *ActServiceTestSuite) TestDeleteNotFound() {
	err := s.actService.DeleteAct(testutil.ActorFor(s.admin), uuid.New())
	assert.True(s.T(), apperr.IsKind(err, apperr.KindNotFound))
}

func TestActServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActServiceTestSuite))
}
