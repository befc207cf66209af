package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
