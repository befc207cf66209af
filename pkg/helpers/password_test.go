package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, CompareHashAndPassword(hash, "Sup3rSecret!"))
	assert.False(t, CompareHashAndPassword(hash, "WrongSecret!"))
	// garbage hash reports false, no panic
	assert.False(t, CompareHashAndPassword("not-a-hash", "Sup3rSecret!"))
}

func TestHashPasswordCostFloor(t *testing.T) {
	// Costs below the bcrypt minimum fall back to the default.
	hash, err := HashPassword("Sup3rSecret!", 0)
	assert.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}
