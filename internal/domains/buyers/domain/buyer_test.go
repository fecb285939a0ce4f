package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuyer(t *testing.T) {
	buyer, err := NewBuyer(1, "  Ada Lovelace  ", "12 Analytical Rd", "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), buyer.ID)
	require.Equal(t, "Ada Lovelace", buyer.Name)
	require.Equal(t, "12 Analytical Rd", buyer.Address)
	require.Equal(t, "ada@example.com", buyer.Email)
}

func TestNewBuyer_FieldInvariants(t *testing.T) {
	long := strings.Repeat("x", MaxFieldLength+1)

	cases := []struct {
		name    string
		buyer   func() (*Buyer, error)
		wantErr error
	}{
		{"empty name", func() (*Buyer, error) { return NewBuyer(0, "", "addr", "a@b.com") }, ErrEmptyName},
		{"name too long", func() (*Buyer, error) { return NewBuyer(0, long, "addr", "a@b.com") }, ErrNameTooLong},
		{"empty address", func() (*Buyer, error) { return NewBuyer(0, "Ada", "", "a@b.com") }, ErrEmptyAddress},
		{"address too long", func() (*Buyer, error) { return NewBuyer(0, "Ada", long, "a@b.com") }, ErrAddressTooLong},
		{"empty email", func() (*Buyer, error) { return NewBuyer(0, "Ada", "addr", "") }, ErrEmptyEmail},
		{"email too long", func() (*Buyer, error) { return NewBuyer(0, "Ada", "addr", long+"@b.com") }, ErrEmailTooLong},
		{"email without at sign", func() (*Buyer, error) { return NewBuyer(0, "Ada", "addr", "not-an-email") }, ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.buyer()
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuyer_Validate(t *testing.T) {
	buyer := &Buyer{ID: 7, Name: "Ada", Address: "addr", Email: "ada@example.com"}
	require.NoError(t, buyer.Validate())

	buyer.Email = "broken"
	require.ErrorIs(t, buyer.Validate(), ErrInvalidEmail)
}
