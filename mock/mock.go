// Package mock provides test doubles for parley interfaces using function fields.
package mock

import (
	"context"

	"github.com/mpasternak/parley"
)

// Interface compliance checks.
var (
	_ parley.Service  = (*Service)(nil)
	_ parley.Identity = (*Identity)(nil)
)

// Service is a test double for parley.Service.
// Set the function fields for the methods you need.
type Service struct {
	HistoryFn      func(ctx context.Context, sessionID string) ([]parley.Message, error)
	ChatFn         func(ctx context.Context, sessionID, message string) (parley.Reply, error)
	ClearSessionFn func(ctx context.Context, sessionID string) error
	ToolsFn        func(ctx context.Context) ([]parley.ToolInfo, error)
	HealthFn       func(ctx context.Context) (parley.Health, error)
}

// History delegates to HistoryFn.
func (s *Service) History(ctx context.Context, sessionID string) ([]parley.Message, error) {
	return s.HistoryFn(ctx, sessionID)
}

// Chat delegates to ChatFn.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (parley.Reply, error) {
	return s.ChatFn(ctx, sessionID, message)
}

// ClearSession delegates to ClearSessionFn.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.ClearSessionFn(ctx, sessionID)
}

// Tools delegates to ToolsFn.
func (s *Service) Tools(ctx context.Context) ([]parley.ToolInfo, error) {
	return s.ToolsFn(ctx)
}

// Health delegates to HealthFn.
func (s *Service) Health(ctx context.Context) (parley.Health, error) {
	return s.HealthFn(ctx)
}

// Identity is a test double for parley.Identity.
// Set ResolveFn and ResetFn before use.
type Identity struct {
	ResolveFn func() string
	ResetFn   func() string
}

// Resolve delegates to ResolveFn.
func (i *Identity) Resolve() string { return i.ResolveFn() }

// Reset delegates to ResetFn.
func (i *Identity) Reset() string { return i.ResetFn() }
