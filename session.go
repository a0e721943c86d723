package parley

import "time"

// Session scopes one conversation's history on the backend. Exactly one
// Session is live per client instance; it is replaced only by an explicit
// conversation clear.
type Session struct {
	ID        string
	CreatedAt time.Time
}
