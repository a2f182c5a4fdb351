//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripslot/internal/domain/booking"
	"tripslot/internal/domain/promo"
)

func TestNewGuestContact(t *testing.T) {
	cases := []struct {
		name  string
		guest string
		email string
		phone string
		errIs error
	}{
		{name: "valid contact", guest: "Asha Rao", email: "asha@example.com", phone: "9876543210"},
		{name: "whitespace around fields is trimmed", guest: "  Asha  ", email: " asha@example.com ", phone: " 9876543210 "},
		{name: "empty name", guest: "", email: "asha@example.com", phone: "9876543210", errIs: booking.ErrEmptyGuestName},
		{name: "whitespace only name", guest: "   ", email: "asha@example.com", phone: "9876543210", errIs: booking.ErrEmptyGuestName},
		{name: "email missing at sign", guest: "Asha", email: "asha.example.com", phone: "9876543210", errIs: booking.ErrInvalidGuestEmail},
		{name: "email missing domain dot", guest: "Asha", email: "asha@example", phone: "9876543210", errIs: booking.ErrInvalidGuestEmail},
		{name: "phone too short", guest: "Asha", email: "asha@example.com", phone: "98765", errIs: booking.ErrInvalidGuestPhone},
		{name: "phone too long", guest: "Asha", email: "asha@example.com", phone: "98765432101", errIs: booking.ErrInvalidGuestPhone},
		{name: "phone with letters", guest: "Asha", email: "asha@example.com", phone: "98765abc10", errIs: booking.ErrInvalidGuestPhone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			contact, err := booking.NewGuestContact(c.guest, c.email, c.phone)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, contact.Name())
			assert.Equal(t, "asha@example.com", contact.Email())
			assert.Equal(t, "9876543210", contact.Phone())
		})
	}
}

func TestNewQuote(t *testing.T) {
	t.Run("no promo keeps the full price", func(t *testing.T) {
		q := booking.NewQuote(1000, nil)

		assert.Equal(t, int64(1000), q.SubtotalCents)
		assert.Equal(t, int64(0), q.DiscountCents)
		assert.Equal(t, int64(1000), q.TotalCents)
	})

	t.Run("percentage promo", func(t *testing.T) {
		p, err := promo.NewPromo(uuid.New(), "SAVE10", "percentage", 10, true)
		require.NoError(t, err)

		q := booking.NewQuote(1000, p)

		assert.Equal(t, int64(1000), q.SubtotalCents)
		assert.Equal(t, int64(100), q.DiscountCents)
		assert.Equal(t, int64(900), q.TotalCents)
	})

	t.Run("fixed promo exceeding the price clamps at zero", func(t *testing.T) {
		p, err := promo.NewPromo(uuid.New(), "FLAT5000", "fixed", 5000, true)
		require.NoError(t, err)

		q := booking.NewQuote(1000, p)

		assert.Equal(t, int64(1000), q.DiscountCents)
		assert.Equal(t, int64(0), q.TotalCents)
	})
}

func TestNewBooking(t *testing.T) {
	contact, err := booking.NewGuestContact("Asha Rao", "asha@example.com", "9876543210")
	require.NoError(t, err)

	t.Run("fields are carried through", func(t *testing.T) {
		id := uuid.New()
		userID := uuid.New()
		experienceID := uuid.New()
		slotID := uuid.New()
		promoID := uuid.New()
		now := time.Now()

		b, err := booking.NewBooking(id, userID, experienceID, slotID, contact, &promoID, booking.Quote{
			SubtotalCents: 1000,
			DiscountCents: 100,
			TotalCents:    900,
		}, now)
		require.NoError(t, err)

		assert.Equal(t, id, b.ID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, experienceID, b.ExperienceID())
		assert.Equal(t, slotID, b.SlotID())
		assert.Equal(t, &promoID, b.PromoID())
		assert.Equal(t, int64(900), b.TotalCents())
		assert.True(t, b.BelongsTo(userID))
		assert.False(t, b.BelongsTo(uuid.New()))
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), uuid.New(), contact, nil, booking.Quote{
			SubtotalCents: 100,
			DiscountCents: 200,
			TotalCents:    -100,
		}, time.Now())
		require.ErrorIs(t, err, booking.ErrNegativeTotal)
	})
}
