//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tripslot/internal/infra"
	"tripslot/internal/usecase/queries"
	"tripslot/tests/common/builder"
	queriesmock "tripslot/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockBookingViewRepo(ctrl)
	q := queries.NewBookingQueries(repo)

	owner := uuid.New()
	view := builder.NewBookingBuilder().WithUserID(owner).BuildView()

	t.Run("owner can read their booking", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), owner, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("foreign booking reads as not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), uuid.New(), view.ID)

		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("missing booking reads as not found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil))

		_, err := q.GetByID(context.Background(), owner, id)

		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueries_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockBookingViewRepo(ctrl)
	q := queries.NewBookingQueries(repo)

	userID := uuid.New()
	items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}

	tests := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{name: "zero limit falls back to default", limit: 0, wantLimit: 50},
		{name: "negative limit falls back to default", limit: -3, wantLimit: 50},
		{name: "oversized limit falls back to default", limit: 500, wantLimit: 50},
		{name: "in-range limit passes through", limit: 10, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().FindByUserID(gomock.Any(), userID, tt.wantLimit).Return(items, nil)

			got, err := q.ListByUser(context.Background(), userID, tt.limit)

			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}
