package entity

import "time"

// Turn is one entry in a conversation log. Logs are append-only for the life of
// a session and never persisted.
type Turn struct {
	Role      string
	Content   string
	CreatedAt time.Time
}
