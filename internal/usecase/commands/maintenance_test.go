//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tripslot/internal/infra"
	"tripslot/internal/usecase/commands"
	"tripslot/internal/usecase/shared"
	sharedmock "tripslot/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MaintenanceCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUoW         *sharedmock.MockUnitOfWork
	mockTx          *sharedmock.MockTx
	mockIdempotency *sharedmock.MockIdempotencyRepository
	commands        commands.MaintenanceCommands
}

func (s *MaintenanceCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockIdempotency = sharedmock.NewMockIdempotencyRepository(s.mockCtrl)
	s.commands = commands.NewMaintenanceCommands(s.mockUoW)

	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
	s.mockTx.EXPECT().Idempotency().Return(s.mockIdempotency).AnyTimes()
}

func (s *MaintenanceCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMaintenanceCommandsSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceCommandsTestSuite))
}

func (s *MaintenanceCommandsTestSuite) TestPurgeExpiredIdempotencyKeys() {
	s.Run("success: reports how many keys were purged", func() {
		s.mockIdempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).
			Return(int64(7), nil).Times(1)

		purged, err := s.commands.PurgeExpiredIdempotencyKeys(context.Background())

		s.Require().NoError(err)
		s.Equal(int64(7), purged)
	})

	s.Run("error: delete failure surfaces as ErrDatabaseOperationFailed", func() {
		s.mockIdempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr(infra.KindDBFailure, "delete failed", nil)).Times(1)

		_, err := s.commands.PurgeExpiredIdempotencyKeys(context.Background())

		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
