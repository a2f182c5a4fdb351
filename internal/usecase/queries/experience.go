package queries

import (
	"context"

	"github.com/google/uuid"

	"tripslot/internal/infra"
	"tripslot/internal/pkg/errs"
)

var (
	ErrExperienceNotFound = errs.New("experience not found")
)

type ExperienceQueries interface {
	List(ctx context.Context, search string) ([]*ExperienceListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	ListSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotDayView, error)
}

type ExperienceViewRepo interface {
	FindAll(ctx context.Context, search string) ([]*ExperienceListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error)
	FindSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotView, error)
}

type experienceQueriesImpl struct {
	repo ExperienceViewRepo
}

func NewExperienceQueries(repo ExperienceViewRepo) ExperienceQueries {
	return &experienceQueriesImpl{repo: repo}
}

func (q *experienceQueriesImpl) List(ctx context.Context, search string) ([]*ExperienceListItem, error) {
	return q.repo.FindAll(ctx, search)
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ExperienceView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListSlots returns the experience's upcoming slots grouped by date in
// chronological order. The grouping exists so clients render a date picker
// first and a time picker second.
func (q *experienceQueriesImpl) ListSlots(ctx context.Context, experienceID uuid.UUID) ([]*SlotDayView, error) {
	if _, err := q.GetByID(ctx, experienceID); err != nil {
		return nil, err
	}

	slots, err := q.repo.FindSlots(ctx, experienceID)
	if err != nil {
		return nil, err
	}

	return groupSlotsByDate(slots), nil
}

// groupSlotsByDate preserves the repository's (date, time) ordering.
func groupSlotsByDate(slots []*SlotView) []*SlotDayView {
	days := make([]*SlotDayView, 0)
	var current *SlotDayView
	for _, s := range slots {
		if current == nil || current.Date != s.Date {
			current = &SlotDayView{Date: s.Date}
			days = append(days, current)
		}
		current.Slots = append(current.Slots, s)
	}
	return days
}
