package repositories

import (
	"context"
	"testing"

	"rentora/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InvitationRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    InvitationRepository
	context context.Context
}

func (suite *InvitationRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewInvitationRepository(mock)
	suite.context = context.Background()
}

func (suite *InvitationRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestInvitationRepoTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationRepoTestSuite))
}

func (suite *InvitationRepoTestSuite) TestResolveIfPending_Wins() {
	id := uuid.New()

	suite.mock.ExpectExec(`UPDATE invitations SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = 'pending'`).
		WithArgs(models.InvitationAccepted, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	won, err := suite.repo.ResolveIfPending(suite.context, nil, id, models.InvitationAccepted)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), won)
}

func (suite *InvitationRepoTestSuite) TestResolveIfPending_AlreadyResolved() {
	id := uuid.New()

	// A second resolution matches no pending row.
	suite.mock.ExpectExec(`UPDATE invitations SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = 'pending'`).
		WithArgs(models.InvitationDeclined, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	won, err := suite.repo.ResolveIfPending(suite.context, nil, id, models.InvitationDeclined)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), won)
}

func (suite *InvitationRepoTestSuite) TestCountPendingByEmail() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM invitations WHERE tenant_email = \$1 AND status = 'pending'`).
		WithArgs("tenant@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := suite.repo.CountPendingByEmail(suite.context, "tenant@example.com")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}
