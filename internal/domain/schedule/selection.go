package schedule

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"tripslot/internal/domain/experience"
)

var (
	ErrNoDateSelected = errors.New("a date must be selected first")
	ErrNoTimeSelected = errors.New("a time must be selected before confirming")
	ErrDateHasNoSlots = errors.New("selected date has no slots")
	ErrTimeNotOnDate  = errors.New("selected time does not exist on the chosen date")
)

type SelectionState int

const (
	NoneSelected SelectionState = iota
	DateSelected
	DateAndTimeSelected
	Confirmed
)

// Selection walks a visitor through picking a slot: first a date, then one
// of that date's times. Picking a new date discards any previously chosen
// time so a stale time can never be confirmed against a different date.
type Selection struct {
	state  SelectionState
	byDate map[string][]*experience.Slot
	date   string
	slot   *experience.Slot
}

func NewSelection(slots []*experience.Slot) *Selection {
	return &Selection{
		state:  NoneSelected,
		byDate: groupByDate(slots),
	}
}

func (s *Selection) State() SelectionState { return s.state }
func (s *Selection) Date() string          { return s.date }

func (s *Selection) Slot() *experience.Slot {
	if s.state < DateAndTimeSelected {
		return nil
	}
	return s.slot
}

// Dates returns the selectable dates in chronological order.
func (s *Selection) Dates() []string {
	dates := make([]string, 0, len(s.byDate))
	for d := range s.byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// TimesFor returns the times available on a date, earliest first.
func (s *Selection) TimesFor(date string) []string {
	slots := s.byDate[date]
	times := make([]string, 0, len(slots))
	for _, sl := range slots {
		times = append(times, sl.TimeOfDay())
	}
	return times
}

func (s *Selection) SelectDate(date string) error {
	if _, ok := s.byDate[date]; !ok {
		return ErrDateHasNoSlots
	}
	s.date = date
	s.slot = nil
	s.state = DateSelected
	return nil
}

func (s *Selection) SelectTime(timeOfDay string) error {
	if s.state < DateSelected {
		return ErrNoDateSelected
	}
	for _, sl := range s.byDate[s.date] {
		if sl.TimeOfDay() == timeOfDay {
			s.slot = sl
			s.state = DateAndTimeSelected
			return nil
		}
	}
	return ErrTimeNotOnDate
}

func (s *Selection) Confirm() (uuid.UUID, error) {
	if s.state < DateAndTimeSelected {
		return uuid.Nil, ErrNoTimeSelected
	}
	s.state = Confirmed
	return s.slot.ID(), nil
}

// groupByDate buckets slots by date with each bucket ordered by time.
func groupByDate(slots []*experience.Slot) map[string][]*experience.Slot {
	byDate := make(map[string][]*experience.Slot)
	for _, sl := range slots {
		byDate[sl.Date()] = append(byDate[sl.Date()], sl)
	}
	for _, bucket := range byDate {
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].TimeOfDay() < bucket[j].TimeOfDay()
		})
	}
	return byDate
}
