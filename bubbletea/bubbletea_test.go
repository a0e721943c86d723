package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mpasternak/parley"
	bt "github.com/mpasternak/parley/bubbletea"
	"github.com/mpasternak/parley/mock"
)

// newFixture builds an engine over the given mock service plus a model with
// an initialized 80x24 viewport.
func newFixture(t *testing.T, svc *mock.Service) (*parley.Engine, bt.Model) {
	t.Helper()
	if svc.HistoryFn == nil {
		svc.HistoryFn = func(ctx context.Context, sessionID string) ([]parley.Message, error) {
			return nil, nil
		}
	}
	id := &mock.Identity{
		ResolveFn: func() string { return "sess-1" },
		ResetFn:   func() string { return "sess-2" },
	}
	engine := parley.NewEngine(svc, id, parley.NewStore())
	m := bt.New(engine, svc, parley.DefaultTheme(), bt.Config{SessionID: "sess-1"})
	return engine, updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// hydrated marks resume-time hydration as finished so sends are unblocked.
func hydrated(t *testing.T, m bt.Model) bt.Model {
	t.Helper()
	return updateModel(t, m, bt.HydrateDoneMsg{})
}

// typeText enters text into the input one rune at a time.
func typeText(t *testing.T, m bt.Model, text string) bt.Model {
	t.Helper()
	for _, r := range text {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
