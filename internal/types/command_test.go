package types

import (
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_String(t *testing.T) {
	cmd := Command{Name: "ledgerctl", Args: []string{"install", "-f", "app.json"}}
	assert.Equal(t, "ledgerctl install -f app.json", cmd.String())
	assert.Equal(t, []string{"ledgerctl", "install", "-f", "app.json"}, cmd.Argv())
}

func TestCommand_StringQuotesArguments(t *testing.T) {
	cmd := Command{Name: "python3", Args: []string{"-m", "ledgerctl", "install", "-f", "build/my app.json"}}

	words, err := shellquote.Split(cmd.String())
	require.NoError(t, err)
	assert.Equal(t, cmd.Argv(), words)
}

func TestRegion(t *testing.T) {
	r := Region{Start: 0x20000100, End: 0x20000500}
	assert.True(t, r.Validate())
	assert.Equal(t, uint64(1024), r.Size())
	assert.Equal(t, "[0x20000100, 0x20000500)", r.String())

	inverted := Region{Start: 0x20000500, End: 0x20000100}
	assert.False(t, inverted.Validate())
}
