package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRole(t *testing.T) {
	cases := map[string]Role{
		"ADMIN":             RoleAdmin,
		"admin":             RoleAdmin,
		" ROLE_ADMIN ":      RoleAdmin,
		"role_receptionist": RoleReceptionist,
		"Trainer":           RoleTrainer,
		"ROLE_CLIENT":       RoleClient,
	}
	for input, want := range cases {
		got, err := CanonicalRole(input)
		assert.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	t.Run("Unknown", func(t *testing.T) {
		for _, s := range []string{"", "MANAGER", "ROLE_"} {
			_, err := CanonicalRole(s)
			assert.ErrorIs(t, err, ErrInvalidRole, "input %q", s)
		}
	})
}
