package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mpasternak/parley"
	"github.com/mpasternak/parley/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Chat(t *testing.T) {
	t.Parallel()
	t.Run("delegates to ChatFn", func(t *testing.T) {
		t.Parallel()
		s := mock.Service{
			ChatFn: func(ctx context.Context, sessionID, message string) (parley.Reply, error) {
				assert.Equal(t, "sess-1", sessionID)
				assert.Equal(t, "hello", message)
				return parley.Reply{Text: "hi"}, nil
			},
		}
		reply, err := s.Chat(context.Background(), "sess-1", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hi", reply.Text)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("backend down")
		s := mock.Service{
			ChatFn: func(ctx context.Context, sessionID, message string) (parley.Reply, error) {
				return parley.Reply{}, wantErr
			},
		}
		_, err := s.Chat(context.Background(), "sess-1", "hello")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestService_History(t *testing.T) {
	t.Parallel()
	s := mock.Service{
		HistoryFn: func(ctx context.Context, sessionID string) ([]parley.Message, error) {
			return []parley.Message{{Text: "hi", Sender: parley.SenderUser}}, nil
		},
	}
	msgs, err := s.History(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestIdentity(t *testing.T) {
	t.Parallel()
	id := mock.Identity{
		ResolveFn: func() string { return "a" },
		ResetFn:   func() string { return "b" },
	}
	assert.Equal(t, "a", id.Resolve())
	assert.Equal(t, "b", id.Reset())
}
