package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyGuestName    = errors.New("guest name is required")
	ErrInvalidGuestEmail = errors.New("guest email format is invalid")
	ErrInvalidGuestPhone = errors.New("guest phone must be exactly 10 digits")
)

var (
	guestEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	guestPhoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// GuestContact is the contact block captured at checkout. Validation is
// intentionally shallow: format checks only, no deliverability probing.
type GuestContact struct {
	name  string
	email string
	phone string
}

func NewGuestContact(name, email, phone string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return GuestContact{}, ErrEmptyGuestName
	}
	if !guestEmailRegex.MatchString(email) {
		return GuestContact{}, ErrInvalidGuestEmail
	}
	if !guestPhoneRegex.MatchString(phone) {
		return GuestContact{}, ErrInvalidGuestPhone
	}

	return GuestContact{name: name, email: email, phone: phone}, nil
}

func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Email() string { return g.email }
func (g GuestContact) Phone() string { return g.phone }
