package command_test

import (
	"testing"

	"github.com/mpasternak/parley/command"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  command.Kind
		isCmd bool
	}{
		{"clear", "/clear", command.Clear, true},
		{"clear with whitespace", "  /clear  ", command.Clear, true},
		{"tools", "/tools", command.Tools, true},
		{"health", "/health", command.Health, true},
		{"quit", "/quit", command.Quit, true},
		{"exit alias", "/exit", command.Quit, true},
		{"uppercase", "/CLEAR", command.Clear, true},
		{"unknown", "/frobnicate", command.Unknown, true},
		{"plain message", "hello there", 0, false},
		{"slash mid-sentence", "what does / mean", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd, ok := command.Parse(tt.input)
			assert.Equal(t, tt.isCmd, ok)
			if tt.isCmd {
				assert.Equal(t, tt.want, cmd.Kind)
			}
		})
	}
}
