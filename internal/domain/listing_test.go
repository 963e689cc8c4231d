package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollection(t *testing.T) {
	for _, ok := range []string{"equipment", "materials", "contractors"} {
		c, err := ParseCollection(ok)
		require.NoError(t, err)
		assert.Equal(t, ok, c.String())
	}
	for _, bad := range []string{"users", "bookings", "accounts", "", "Equipment"} {
		_, err := ParseCollection(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseListingType(t *testing.T) {
	tests := map[string]Collection{
		"Equipment":  Equipments,
		"Material":   Materials,
		"Contractor": Contractors,
	}
	for in, want := range tests {
		got, err := ParseListingType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseListingType("material")
	assert.Error(t, err, "listing type enum is case-sensitive")
}
