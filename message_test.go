package parley_test

import (
	"testing"
	"time"

	"github.com/mpasternak/parley"
	"github.com/stretchr/testify/assert"
)

func TestMessageConstructors(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	user := parley.NewUserMessage("hi", at)
	assert.Equal(t, parley.SenderUser, user.Sender)
	assert.Equal(t, at, user.Timestamp)
	assert.False(t, user.IsError)
	assert.Empty(t, user.ToolsUsed)

	reply := parley.NewAssistantMessage("hello", at, []string{"lookup"})
	assert.Equal(t, parley.SenderAssistant, reply.Sender)
	assert.Equal(t, []string{"lookup"}, reply.ToolsUsed)
	assert.False(t, reply.IsError)

	errMsg := parley.NewErrorMessage("oops", at)
	assert.Equal(t, parley.SenderAssistant, errMsg.Sender)
	assert.True(t, errMsg.IsError)
}
