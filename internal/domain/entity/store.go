package entity

import "time"

// Store is created by admins only and never updated or deleted.
// OwnerID is empty for unowned stores.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"ownerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreWithAggregate is a store joined with its read-time rating
// aggregate. Stores without ratings carry AverageRating 0.
type StoreWithAggregate struct {
	Store
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

// StoreStats is the owner/admin view of a single store.
type StoreStats struct {
	Store         Store           `json:"store"`
	AverageRating float64         `json:"averageRating"`
	TotalRatings  int64           `json:"totalRatings"`
	Ratings       []RatingWithUser `json:"ratings"`
}

// Summary holds global entity counts for the admin dashboard.
type Summary struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
