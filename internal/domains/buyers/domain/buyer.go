package domain

import (
	"errors"
	"strings"
)

// MaxFieldLength caps name, address, and email columns.
const MaxFieldLength = 100

var (
	ErrEmptyName      = errors.New("name is required")
	ErrNameTooLong    = errors.New("name must be at most 100 characters")
	ErrEmptyAddress   = errors.New("address is required")
	ErrAddressTooLong = errors.New("address must be at most 100 characters")
	ErrEmptyEmail     = errors.New("email is required")
	ErrEmailTooLong   = errors.New("email must be at most 100 characters")
	ErrInvalidEmail   = errors.New("email must contain '@'")
)

// Buyer represents a customer who places orders.
type Buyer struct {
	ID      int64
	Name    string
	Address string
	Email   string
}

// NewBuyer builds a buyer ensuring required invariants.
func NewBuyer(id int64, name, address, email string) (*Buyer, error) {
	buyer := &Buyer{ID: id}
	if err := buyer.SetName(name); err != nil {
		return nil, err
	}
	if err := buyer.SetAddress(address); err != nil {
		return nil, err
	}
	if err := buyer.SetEmail(email); err != nil {
		return nil, err
	}
	return buyer, nil
}

// SetName trims and validates the buyer name.
func (b *Buyer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxFieldLength {
		return ErrNameTooLong
	}
	b.Name = name
	return nil
}

// SetAddress trims and validates the buyer address.
func (b *Buyer) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyAddress
	}
	if len(address) > MaxFieldLength {
		return ErrAddressTooLong
	}
	b.Address = address
	return nil
}

// SetEmail trims and validates the buyer email. Uniqueness across buyers
// is a storage-level constraint, not checked here.
func (b *Buyer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > MaxFieldLength {
		return ErrEmailTooLong
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	b.Email = email
	return nil
}

// Validate re-applies core invariants for persistence.
func (b *Buyer) Validate() error {
	if err := b.SetName(b.Name); err != nil {
		return err
	}
	if err := b.SetAddress(b.Address); err != nil {
		return err
	}
	return b.SetEmail(b.Email)
}
