package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple carries a time-ordered UUIDv7 id and an immutable creation time.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
