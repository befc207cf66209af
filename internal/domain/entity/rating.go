package entity

import (
	"math"
	"time"
)

// Rating limits.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is a single user's rating of a store. At most one row exists
// per (UserID, StoreID); resubmissions overwrite Value.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StoreID   string    `json:"storeId"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingWithStore is a rating joined with its store, for the
// "my ratings" view.
type RatingWithStore struct {
	Rating
	Store Store `json:"store"`
}

// RatingWithUser is a rating joined with its author, for the store
// owner view.
type RatingWithUser struct {
	Rating
	User User `json:"user"`
}

// RatingAggregate is the read-time (average, count) pair for a store.
type RatingAggregate struct {
	Average float64 `json:"averageRating"`
	Count   int64   `json:"totalRatings"`
}

// RoundAverage computes the mean of sum over count rounded to one
// decimal place. A zero count yields 0, never NaN.
func RoundAverage(sum int64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}
