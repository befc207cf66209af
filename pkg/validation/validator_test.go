package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordOK(t *testing.T) {
	cases := []struct {
		name string
		pwd  string
		want bool
	}{
		{"valid with uppercase and special", "Passw0rd!", true},
		{"valid at minimum length", "Abcdef!g", true},
		{"valid at maximum length", "Abcdefghijklmno!", true},
		{"too short", "abc", false},
		{"too long", "Abcdefghijklmnop!", false},
		{"uppercase but no special char", "ALLUPPERNOSPEC1", false},
		{"special char but no uppercase", "alllower!234", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PasswordOK(tc.pwd))
		})
	}
}
