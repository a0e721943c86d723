package parley

import "sync"

// Store is the ordered conversation thread. Insertion order is display
// order. All mutation goes through the Engine (sends, hydration,
// clearing); consumers read immutable snapshots.
type Store struct {
	mu       sync.Mutex
	messages []Message
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a message to the end of the thread.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// ReplaceAll overwrites the thread with the given messages. Used only by
// hydration, which makes repeated hydration idempotent.
func (s *Store) ReplaceAll(msgs []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]Message, len(msgs))
	copy(s.messages, msgs)
}

// Clear empties the thread.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Messages returns a snapshot of the thread. The returned slice is a copy;
// later mutations are not visible through it.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the thread.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
