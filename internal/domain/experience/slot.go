package experience

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrSlotExhausted     = errors.New("slot has no remaining seats")
	ErrSlotWrongOwner    = errors.New("slot does not belong to experience")
	ErrNegativeSeatCount = errors.New("seat count cannot be negative")
)

// Slot is one date+time instance of an experience with finite capacity.
// remaining seats only ever decrease through the conditional decrement in
// the booking commit; this entity never performs a blind read-then-write.
type Slot struct {
	id             uuid.UUID
	experienceID   uuid.UUID
	date           string // YYYY-MM-DD
	timeOfDay      string // HH:MM
	remainingSeats int
	initialSeats   int
}

func NewSlot(id, experienceID uuid.UUID, date, timeOfDay string, remainingSeats, initialSeats int) (*Slot, error) {
	if remainingSeats < 0 || initialSeats < 0 {
		return nil, ErrNegativeSeatCount
	}
	return &Slot{
		id:             id,
		experienceID:   experienceID,
		date:           date,
		timeOfDay:      timeOfDay,
		remainingSeats: remainingSeats,
		initialSeats:   initialSeats,
	}, nil
}

func (s *Slot) ID() uuid.UUID           { return s.id }
func (s *Slot) ExperienceID() uuid.UUID { return s.experienceID }
func (s *Slot) Date() string            { return s.date }
func (s *Slot) TimeOfDay() string       { return s.timeOfDay }
func (s *Slot) RemainingSeats() int     { return s.remainingSeats }
func (s *Slot) InitialSeats() int       { return s.initialSeats }

func (s *Slot) HasAvailability() bool {
	return s.remainingSeats > 0
}

func (s *Slot) BelongsTo(experienceID uuid.UUID) bool {
	return s.experienceID == experienceID
}
