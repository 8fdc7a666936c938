package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNationalID(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateNationalID("12345678"))
		assert.NoError(t, ValidateNationalID("00000000"))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, id := range []string{"", "1234567", "123456789", "1234567a", "12 45678", "12345678 "} {
			assert.ErrorIs(t, ValidateNationalID(id), ErrInvalidNationalID, "input %q", id)
		}
	})
}

func TestRosterFindByNationalID(t *testing.T) {
	roster := Roster{
		{ID: 1, NationalID: "11111111", FullName: "Ana Gomez"},
		{ID: 2, NationalID: "22222222", FullName: "Luis Paredes"},
	}

	t.Run("Found", func(t *testing.T) {
		c, err := roster.FindByNationalID("22222222")
		assert.NoError(t, err)
		assert.Equal(t, int32(2), c.ID)
	})

	t.Run("WellFormedButUnknown", func(t *testing.T) {
		_, err := roster.FindByNationalID("99999999")
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("MalformedIsValidationNotLookup", func(t *testing.T) {
		_, err := roster.FindByNationalID("9999999")
		assert.ErrorIs(t, err, ErrInvalidNationalID)
	})
}
