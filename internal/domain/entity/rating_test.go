package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundAverage(t *testing.T) {
	// [5,4] averages to 4.5
	assert.Equal(t, 4.5, RoundAverage(9, 2))
	// no ratings reports 0, never NaN
	assert.Equal(t, 0.0, RoundAverage(0, 0))
	// rounding to one decimal
	assert.Equal(t, 3.7, RoundAverage(11, 3))
	assert.Equal(t, 4.3, RoundAverage(13, 3))
	assert.Equal(t, 5.0, RoundAverage(5, 1))
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "user", "store_owner"} {
		r, err := ParseRole(s)
		assert.NoError(t, err)
		assert.True(t, r.Valid())
	}
	_, err := ParseRole("superuser")
	assert.Error(t, err)
	assert.False(t, Role("").Valid())
}
