//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	reqdto "tripslot/internal/handler/dto/request"
	"tripslot/internal/infra"
	"tripslot/internal/pkg/clock"
	"tripslot/internal/usecase/commands"
	"tripslot/internal/usecase/shared"
	"tripslot/tests/common/builder"
	queriesmock "tripslot/tests/mock/queries"
	sharedmock "tripslot/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUoW         *sharedmock.MockUnitOfWork
	mockTx          *sharedmock.MockTx
	mockReads       *sharedmock.MockCommandReads
	mockSlots       *sharedmock.MockSlotRepository
	mockBookings    *sharedmock.MockBookingRepository
	mockIdempotency *sharedmock.MockIdempotencyRepository
	mockNotify      *sharedmock.MockNotificationRepository
	mockQueries     *queriesmock.MockBookingQueries
	clock           *clock.MockClock
	commands        commands.BookingCommands

	userID         uuid.UUID
	idempotencyKey uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockSlots = sharedmock.NewMockSlotRepository(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.mockIdempotency = sharedmock.NewMockIdempotencyRepository(s.mockCtrl)
	s.mockNotify = sharedmock.NewMockNotificationRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(s.mockUoW, s.mockQueries, s.clock)

	s.userID = uuid.New()
	s.idempotencyKey = uuid.New()

	// Within executes the callback against the shared mock transaction
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()
	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()
	s.mockTx.EXPECT().Slots().Return(s.mockSlots).AnyTimes()
	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()
	s.mockTx.EXPECT().Idempotency().Return(s.mockIdempotency).AnyTimes()
	s.mockTx.EXPECT().Notifications().Return(s.mockNotify).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func requestHashOf(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// processingRecord mimics a row an earlier request left behind.
func (s *BookingCommandsTestSuite) processingRecord(hash string) *shared.IdempotencyRecord {
	return &shared.IdempotencyRecord{
		Key:         s.idempotencyKey,
		UserID:      s.userID,
		Status:      "processing",
		RequestHash: hash,
		ExpiresAt:   s.clock.Now().Add(time.Hour),
	}
}

func (s *BookingCommandsTestSuite) expectFreshKey(req reqdto.CreateBookingRequest) {
	s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, "POST /bookings", requestHashOf(req), gomock.Any()).
		Return(true, nil).Times(1)
}

func (s *BookingCommandsTestSuite) TestCommitBooking() {
	s.Run("success: commits a fresh booking without a promo", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID).WithPriceCents(5000)
		req := bb.BuildCreateRequestDTO()
		view := bb.BuildView()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockSlots.EXPECT().DecrementSeat(gomock.Any(), gomock.Any(), req.SlotID, req.ExperienceID).
			Return(bb.BuildSlotSnapshot(4, 5), nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b interface {
				TotalCents() int64
				SubtotalCents() int64
			}) (uuid.UUID, error) {
				s.Equal(int64(5000), b.SubtotalCents())
				s.Equal(int64(5000), b.TotalCents())
				return view.ID, nil
			}).Times(1)
		s.mockNotify.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "booking_confirmed", gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		s.mockIdempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, gomock.Any(), view.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		result, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.Equal(view.ID, result.Booking.ID)
	})

	s.Run("success: recomputes the total from the stored promo", func() {
		code := "SAVE10"
		bb := builder.NewBookingBuilder().WithUserID(s.userID).WithPriceCents(5000).WithPromoCode(code)
		req := bb.BuildCreateRequestDTO()
		view := bb.BuildView()
		promoID := uuid.New()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockReads.EXPECT().PromoByCode(gomock.Any(), code).
			Return(&shared.PromoSnapshot{ID: promoID, Code: code, DiscountType: "percentage", Value: 10, Active: true}, nil).Times(1)
		s.mockSlots.EXPECT().DecrementSeat(gomock.Any(), gomock.Any(), req.SlotID, req.ExperienceID).
			Return(bb.BuildSlotSnapshot(4, 5), nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b interface {
				SubtotalCents() int64
				DiscountCents() int64
				TotalCents() int64
				PromoID() *uuid.UUID
			}) (uuid.UUID, error) {
				s.Equal(int64(5000), b.SubtotalCents())
				s.Equal(int64(500), b.DiscountCents())
				s.Equal(int64(4500), b.TotalCents())
				s.Require().NotNil(b.PromoID())
				s.Equal(promoID, *b.PromoID())
				return view.ID, nil
			}).Times(1)
		s.mockNotify.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "booking_confirmed", gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		s.mockIdempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, gomock.Any(), view.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		result, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})

	s.Run("success: replays a completed key without touching the slot", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()
		view := bb.BuildView()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, "POST /bookings", gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		record := s.processingRecord(requestHashOf(req))
		record.Status = "completed"
		record.ResultBookingID = &view.ID
		s.mockReads.EXPECT().IdempotencyByKey(gomock.Any(), s.idempotencyKey, s.userID).
			Return(record, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		result, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(view.ID, result.Booking.ID)
	})

	s.Run("error: rejects a reused key with a different payload", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, "POST /bookings", gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		s.mockReads.EXPECT().IdempotencyByKey(gomock.Any(), s.idempotencyKey, s.userID).
			Return(s.processingRecord("some-other-request-hash"), nil).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrIdempotencyConflict)
	})

	s.Run("error: sold out slot maps to ErrSlotExhausted", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockSlots.EXPECT().DecrementSeat(gomock.Any(), gomock.Any(), req.SlotID, req.ExperienceID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "no seat available", nil)).Times(1)
		s.mockReads.EXPECT().SlotByID(gomock.Any(), req.SlotID).
			Return(bb.BuildSlotSnapshot(0, 5), nil).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrSlotExhausted)
	})

	s.Run("error: missing slot maps to ErrSlotNotFound", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockSlots.EXPECT().DecrementSeat(gomock.Any(), gomock.Any(), req.SlotID, req.ExperienceID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "no seat available", nil)).Times(1)
		s.mockReads.EXPECT().SlotByID(gomock.Any(), req.SlotID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", nil)).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrSlotNotFound)
	})

	s.Run("error: slot on another experience maps to ErrSlotMismatch", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockSlots.EXPECT().DecrementSeat(gomock.Any(), gomock.Any(), req.SlotID, req.ExperienceID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "no seat available", nil)).Times(1)
		foreign := bb.BuildSlotSnapshot(3, 5)
		foreign.ExperienceID = uuid.New()
		s.mockReads.EXPECT().SlotByID(gomock.Any(), req.SlotID).
			Return(foreign, nil).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrSlotMismatch)
	})

	s.Run("error: unknown experience maps to ErrExperienceNotFound", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "experience not found", nil)).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrExperienceNotFound)
	})

	s.Run("error: unknown promo code maps to ErrPromoNotFound", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID).WithPromoCode("NOPE123")
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockReads.EXPECT().PromoByCode(gomock.Any(), "NOPE123").
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "promo not found", nil)).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrPromoNotFound)
	})

	s.Run("error: inactive promo maps to ErrInvalidPromo", func() {
		code := "OLDDEAL"
		bb := builder.NewBookingBuilder().WithUserID(s.userID).WithPromoCode(code)
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockReads.EXPECT().PromoByCode(gomock.Any(), code).
			Return(&shared.PromoSnapshot{ID: uuid.New(), Code: code, DiscountType: "fixed", Value: 500, Active: false}, nil).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrInvalidPromo)
	})

	s.Run("error: invalid guest phone maps to ErrInvalidContact", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID).WithGuest("Asha Patel", "asha@example.com", "12345")
		req := bb.BuildCreateRequestDTO()

		// No expectations: contact validation fails before any store access,
		// so the key is never claimed and nothing is read.
		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrInvalidContact)
	})

	s.Run("error: booking insert failure aborts the transaction", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.expectFreshKey(req)
		s.mockReads.EXPECT().ExperienceByID(gomock.Any(), req.ExperienceID).
			Return(bb.BuildExperienceSnapshot(), nil).Times(1)
		s.mockSlots.EXPECT().DecrementSeat(gomock.Any(), gomock.Any(), req.SlotID, req.ExperienceID).
			Return(bb.BuildSlotSnapshot(4, 5), nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "insert failed", nil)).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("error: duplicate in-flight request with the same payload is rejected", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		// A second submit with the same key and payload while the first is
		// still processing. Letting it through would decrement the seat twice.
		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, "POST /bookings", requestHashOf(req), gomock.Any()).
			Return(false, nil).Times(1)
		s.mockReads.EXPECT().IdempotencyByKey(gomock.Any(), s.idempotencyKey, s.userID).
			Return(s.processingRecord(requestHashOf(req)), nil).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		s.Require().ErrorIs(err, commands.ErrIdempotencyConflict)
	})

	s.Run("expired processing key with same payload is reclaimed", func() {
		bb := builder.NewBookingBuilder().WithUserID(s.userID)
		req := bb.BuildCreateRequestDTO()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, "POST /bookings", gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		stale := s.processingRecord(requestHashOf(req))
		stale.ExpiresAt = s.clock.Now().Add(-time.Hour)
		s.mockReads.EXPECT().IdempotencyByKey(gomock.Any(), s.idempotencyKey, s.userID).
			Return(stale, nil).Times(1)
		s.mockIdempotency.EXPECT().ClaimExpiredKey(gomock.Any(), gomock.Any(), s.idempotencyKey, s.userID, requestHashOf(req), gomock.Any()).
			Return(int64(0), nil).Times(1)

		_, err := s.commands.CommitBooking(context.Background(), req, s.userID, s.idempotencyKey)

		// Another worker won the reclaim race
		s.Require().ErrorIs(err, commands.ErrIdempotencyConflict)
	})
}
