package experience

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errors.New("experience name is required")
	ErrInvalidPrice = errors.New("experience price must be positive")
)

// Experience is a bookable activity. Read-only from the booking flow's
// perspective: the commit path never mutates it.
type Experience struct {
	id         uuid.UUID
	name       string
	priceCents int64
	location   string
}

func NewExperience(id uuid.UUID, name string, priceCents int64, location string) (*Experience, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	return &Experience{
		id:         id,
		name:       name,
		priceCents: priceCents,
		location:   location,
	}, nil
}

func (e *Experience) ID() uuid.UUID     { return e.id }
func (e *Experience) Name() string      { return e.name }
func (e *Experience) PriceCents() int64 { return e.priceCents }
func (e *Experience) Location() string  { return e.location }
