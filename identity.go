package parley

// Identity resolves the durable session identifier. Implementations never
// fail: when durable storage is unavailable they degrade to a fresh id held
// in memory, which orphans server-side history but keeps the client usable.
type Identity interface {
	// Resolve returns the current session id, generating and persisting a
	// fresh one if none exists. Between Resets the returned id must be
	// stable for the process lifetime even when persistence fails: the
	// Engine compares Resolve results to detect a clear during an
	// in-flight exchange.
	Resolve() string

	// Reset discards the current id and persists a newly generated one.
	// The previous id's server-side data becomes unreachable from this
	// client.
	Reset() string
}
