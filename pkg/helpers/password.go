package helpers

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost keeps brute-forcing expensive. Kept at 12 rounds to
// match the cost the production deployment seeds with.
const DefaultBcryptCost = 12

// HashPassword hashes the plain text password using bcrypt at the given
// cost. Costs below the bcrypt minimum fall back to DefaultBcryptCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// It returns false on mismatch and never panics for a well-formed hash.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
