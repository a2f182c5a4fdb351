//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"

	"tripslot/internal/domain/user"
	"tripslot/internal/handler/dto/response"
	"tripslot/tests/common/authtest"
	"tripslot/tests/common/builder"
	"tripslot/tests/common/dbtest"
	"tripslot/tests/common/httptest"
	"tripslot/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func idempotencyHeaders(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

// =============================================================================
// TestCreateBooking - booking commit API
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: commits a booking and decrements the seat", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			WithGuest("Asha Patel", "asha@example.com", "9876543210").
			BuildCreateRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, "Asha Patel", created.GuestName)
		require.Equal(t, "2026-09-15", created.Date)
		require.Equal(t, "10:00", created.Time)
		require.Equal(t, int64(5000), created.SubtotalCents)
		require.Equal(t, int64(0), created.DiscountCents)
		require.Equal(t, int64(5000), created.TotalCents)

		require.Equal(t, int32(2), dbtest.GetRemainingSeats(t, s.DB, slotID))
		require.Equal(t, int64(1), dbtest.CountBookingsForSlot(t, s.DB, slotID))
	})

	s.Run("Normal case: promo code discount is applied server-side", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "promo@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "City Food Walk", 4000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-20", "18:00", 5, 5)
		dbtest.CreateTestPromo(t, s.DB, "SAVE10", "percentage", 10, true)

		token := authtest.LoginUser(t, s.Router, "promo@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			WithPromoCode("save10"). // lowercased on purpose, server normalizes
			BuildCreateRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, int64(4000), created.SubtotalCents)
		require.Equal(t, int64(400), created.DiscountCents)
		require.Equal(t, int64(3600), created.TotalCents)
		require.NotNil(t, created.PromoCode)
		require.Equal(t, "SAVE10", *created.PromoCode)
	})

	s.Run("Normal case: same key and payload replays the original booking", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "replay@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "replay@example.com", "password123")
		key := uuid.New()

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(key), token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		var first response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(key), token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var replayed response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)
		if diff := cmp.Diff(first, replayed); diff != "" {
			t.Errorf("replayed booking differs from the original (-first +replayed):\n%s", diff)
		}

		// Only one seat was taken across both requests
		require.Equal(t, int32(2), dbtest.GetRemainingSeats(t, s.DB, slotID))
		require.Equal(t, int64(1), dbtest.CountBookingsForSlot(t, s.DB, slotID))
	})

	s.Run("Race case: double submit with the same key books exactly once", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "doubletap@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "doubletap@example.com", "password123")
		key := uuid.New()

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		// A double click fires the same key and payload twice at once.
		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
					reqBody, idempotencyHeaders(key), token)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusOK, http.StatusConflict:
				// The loser either replays the finished booking or is told
				// the key is still being processed. Never a second booking.
			default:
				t.Fatalf("unexpected status %d for duplicate submit", code)
			}
		}
		require.Equal(t, 1, created, "exactly one duplicate submit may create the booking")
		require.Equal(t, int32(2), dbtest.GetRemainingSeats(t, s.DB, slotID))
		require.Equal(t, int64(1), dbtest.CountBookingsForSlot(t, s.DB, slotID))
	})

	s.Run("Error case: same key with a different payload is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "conflict@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "conflict@example.com", "password123")
		key := uuid.New()

		bb := builder.NewBookingBuilder().WithExperienceID(experienceID).WithSlotID(slotID)

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bb.BuildCreateRequestDTO(), idempotencyHeaders(key), token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		changed := bb.WithGuest("Someone Else", "other@example.com", "9999999999").BuildCreateRequestDTO()
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			changed, idempotencyHeaders(key), token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("Error case: sold out slot returns 409 and never oversells", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "first@example.com", string(user.RoleCustomer))
		dbtest.CreateTestUser(t, s.DB, "second@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Tiny Boat Trip", 3000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-16", "09:00", 1, 1)

		firstToken := authtest.LoginUser(t, s.Router, "first@example.com", "password123")
		secondToken := authtest.LoginUser(t, s.Router, "second@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), firstToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), secondToken)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())

		require.Equal(t, int32(0), dbtest.GetRemainingSeats(t, s.DB, slotID))
		require.Equal(t, int64(1), dbtest.CountBookingsForSlot(t, s.DB, slotID))
	})

	s.Run("Race case: concurrent commits on the last seat yield exactly one booking", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "racer1@example.com", string(user.RoleCustomer))
		dbtest.CreateTestUser(t, s.DB, "racer2@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Last Seat Special", 2500)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-17", "12:00", 1, 1)

		tokens := []string{
			authtest.LoginUser(t, s.Router, "racer1@example.com", "password123"),
			authtest.LoginUser(t, s.Router, "racer2@example.com", "password123"),
		}

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		codes := make([]int, len(tokens))
		var wg sync.WaitGroup
		for i, token := range tokens {
			wg.Add(1)
			go func(i int, token string) {
				defer wg.Done()
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
					reqBody, idempotencyHeaders(uuid.New()), token)
				codes[i] = w.Code
			}(i, token)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			} else {
				require.Equal(t, http.StatusConflict, code)
			}
		}
		require.Equal(t, 1, created, "exactly one concurrent commit may win")
		require.Equal(t, int32(0), dbtest.GetRemainingSeats(t, s.DB, slotID))
		require.Equal(t, int64(1), dbtest.CountBookingsForSlot(t, s.DB, slotID))
	})

	s.Run("Error case: slot from another experience is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "mismatch@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		otherExperienceID := dbtest.CreateTestExperience(t, s.DB, "City Food Walk", 4000)
		foreignSlotID := dbtest.CreateTestSlot(t, s.DB, otherExperienceID, "2026-09-15", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "mismatch@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(foreignSlotID).
			BuildCreateRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		require.Equal(t, int32(3), dbtest.GetRemainingSeats(t, s.DB, foreignSlotID))
	})

	s.Run("Error case: missing Idempotency-Key header returns 400", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "nokey@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "nokey@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated request returns 401", func() {
		t := s.T()

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestGetBookings - booking read APIs
// =============================================================================

func (s *BookingSuite) TestGetBookings() {
	s.Run("Normal case: owner reads their booking, others get 404", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleCustomer))
		dbtest.CreateTestUser(t, s.DB, "intruder@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)

		ownerToken := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")
		intruderToken := authtest.LoginUser(t, s.Router, "intruder@example.com", "password123")

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeaders(uuid.New()), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		detailURL := bookingsURL + "/" + created.ID.String()

		ownerRead := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, ownerRead.Code, ownerRead.Body.String())

		// Foreign bookings look identical to missing ones
		intruderRead := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, intruderToken)
		require.Equal(t, http.StatusNotFound, intruderRead.Code, intruderRead.Body.String())
	})

	s.Run("Normal case: list returns the user's bookings newest first", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "lister@example.com", string(user.RoleCustomer))
		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		firstSlot := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 3, 5)
		secondSlot := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-16", "10:00", 3, 5)

		token := authtest.LoginUser(t, s.Router, "lister@example.com", "password123")

		for _, slotID := range []uuid.UUID{firstSlot, secondSlot} {
			reqBody := builder.NewBookingBuilder().
				WithExperienceID(experienceID).
				WithSlotID(slotID).
				BuildCreateRequestDTO()
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
				reqBody, idempotencyHeaders(uuid.New()), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		listRead := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, listRead.Code, listRead.Body.String())

		var items []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, listRead.Body, &items))
		require.Len(t, items, 2)
		require.False(t, items[0].CreatedAt.Before(items[1].CreatedAt), "newest booking should come first")
	})
}
