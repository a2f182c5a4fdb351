//go:build unit

package experience_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripslot/internal/domain/experience"
)

func TestNewExperience(t *testing.T) {
	cases := []struct {
		name       string
		expName    string
		priceCents int64
		errIs      error
	}{
		{name: "valid experience", expName: "Sunset Kayak Tour", priceCents: 4500},
		{name: "empty name", expName: "", priceCents: 4500, errIs: experience.ErrInvalidName},
		{name: "zero price", expName: "Sunset Kayak Tour", priceCents: 0, errIs: experience.ErrInvalidPrice},
		{name: "negative price", expName: "Sunset Kayak Tour", priceCents: -100, errIs: experience.ErrInvalidPrice},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := experience.NewExperience(uuid.New(), c.expName, c.priceCents, "Udupi")
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expName, e.Name())
			assert.Equal(t, c.priceCents, e.PriceCents())
		})
	}
}

func TestSlot(t *testing.T) {
	expID := uuid.New()

	t.Run("availability follows remaining seats", func(t *testing.T) {
		available, err := experience.NewSlot(uuid.New(), expID, "2026-09-01", "09:00", 1, 10)
		require.NoError(t, err)
		assert.True(t, available.HasAvailability())

		exhausted, err := experience.NewSlot(uuid.New(), expID, "2026-09-01", "10:00", 0, 10)
		require.NoError(t, err)
		assert.False(t, exhausted.HasAvailability())
	})

	t.Run("ownership check", func(t *testing.T) {
		slot, err := experience.NewSlot(uuid.New(), expID, "2026-09-01", "09:00", 5, 10)
		require.NoError(t, err)

		assert.True(t, slot.BelongsTo(expID))
		assert.False(t, slot.BelongsTo(uuid.New()))
	})

	t.Run("negative seats rejected", func(t *testing.T) {
		_, err := experience.NewSlot(uuid.New(), expID, "2026-09-01", "09:00", -1, 10)
		require.ErrorIs(t, err, experience.ErrNegativeSeatCount)
	})
}
