//go:build unit

package schedule_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripslot/internal/domain/experience"
	"tripslot/internal/domain/schedule"
)

func makeSlot(t *testing.T, experienceID uuid.UUID, date, timeOfDay string) *experience.Slot {
	t.Helper()
	slot, err := experience.NewSlot(uuid.New(), experienceID, date, timeOfDay, 5, 10)
	require.NoError(t, err)
	return slot
}

func newSelection(t *testing.T) *schedule.Selection {
	t.Helper()
	expID := uuid.New()
	return schedule.NewSelection([]*experience.Slot{
		makeSlot(t, expID, "2026-09-02", "14:00"),
		makeSlot(t, expID, "2026-09-01", "10:00"),
		makeSlot(t, expID, "2026-09-01", "09:00"),
		makeSlot(t, expID, "2026-09-03", "11:30"),
	})
}

func TestSelection(t *testing.T) {
	t.Run("dates and times come back ordered", func(t *testing.T) {
		sel := newSelection(t)

		assert.Equal(t, []string{"2026-09-01", "2026-09-02", "2026-09-03"}, sel.Dates())
		assert.Equal(t, []string{"09:00", "10:00"}, sel.TimesFor("2026-09-01"))
	})

	t.Run("time cannot be selected before a date", func(t *testing.T) {
		sel := newSelection(t)

		require.ErrorIs(t, sel.SelectTime("09:00"), schedule.ErrNoDateSelected)
		assert.Equal(t, schedule.NoneSelected, sel.State())
	})

	t.Run("confirm requires both date and time", func(t *testing.T) {
		sel := newSelection(t)

		_, err := sel.Confirm()
		require.ErrorIs(t, err, schedule.ErrNoTimeSelected)

		require.NoError(t, sel.SelectDate("2026-09-01"))
		_, err = sel.Confirm()
		require.ErrorIs(t, err, schedule.ErrNoTimeSelected)

		require.NoError(t, sel.SelectTime("09:00"))
		slotID, err := sel.Confirm()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, slotID)
		assert.Equal(t, schedule.Confirmed, sel.State())
	})

	t.Run("selecting a new date clears the chosen time", func(t *testing.T) {
		sel := newSelection(t)

		require.NoError(t, sel.SelectDate("2026-09-01"))
		require.NoError(t, sel.SelectTime("09:00"))
		require.NotNil(t, sel.Slot())

		require.NoError(t, sel.SelectDate("2026-09-02"))
		assert.Equal(t, schedule.DateSelected, sel.State())
		assert.Nil(t, sel.Slot())

		_, err := sel.Confirm()
		require.ErrorIs(t, err, schedule.ErrNoTimeSelected)
	})

	t.Run("unknown date is rejected", func(t *testing.T) {
		sel := newSelection(t)

		require.ErrorIs(t, sel.SelectDate("2026-12-25"), schedule.ErrDateHasNoSlots)
	})

	t.Run("time from another date is rejected", func(t *testing.T) {
		sel := newSelection(t)

		require.NoError(t, sel.SelectDate("2026-09-02"))
		require.ErrorIs(t, sel.SelectTime("09:00"), schedule.ErrTimeNotOnDate)
	})
}
