package entity

import "github.com/google/uuid"

// Like is membership of a user in a review's like set.
type Like struct {
	UserID   uuid.UUID `db:"user_id"`
	ReviewID uuid.UUID `db:"review_id"`
}
