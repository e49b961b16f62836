package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDestructiveAction(t *testing.T) {
	tests := []struct {
		name  string
		input string
		yes   bool
		want  bool
	}{
		{"flag", "", true, true},
		{"typed yes", "yes\n", false, true},
		{"typed yes without newline", "yes", false, true},
		{"typed no", "no\n", false, false},
		{"empty input", "", false, false},
		{"padded", "  yes  \n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirmDestructiveAction(strings.NewReader(tt.input), &out, tt.yes)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "run-check", "orders", "integrity"} {
		assert.True(t, names[want], want)
	}

	flag := runCheckCmd.Flags().Lookup("threshold")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "0", flag.DefValue)
	}
}
