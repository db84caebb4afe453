package shell_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/jump/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestSnippet_StartsWithMarker(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: "/usr/local/bin/jump"})
	assert.True(t, strings.HasPrefix(snippet, shell.Marker+"\n"))
}

func TestSnippet_DefaultFuncName(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: "/usr/local/bin/jump"})
	assert.Contains(t, snippet, "\nj() {\n")
}

func TestSnippet_CustomFuncName(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: "/usr/local/bin/jump", FuncName: "goto"})
	assert.Contains(t, snippet, "\ngoto() {\n")
	assert.Contains(t, snippet, "Usage: goto add <path> <alias>")
}

func TestSnippet_DispatchesVerbs(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: "/usr/local/bin/jump"})
	assert.Contains(t, snippet, `'/usr/local/bin/jump' add -- "$2" "$3"`)
	assert.Contains(t, snippet, `'/usr/local/bin/jump' rm -- "$2"`)
	assert.Contains(t, snippet, `ls|help|setup|doctor)`)
	assert.Contains(t, snippet, `_jump_dir=$('/usr/local/bin/jump' get -- "$1")`)
}

func TestSnippet_UnknownAliasMessage(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: "/usr/local/bin/jump"})
	assert.Contains(t, snippet, `echo "Unknown alias: $1" >&2`)
	assert.Contains(t, snippet, `cd -- "$_jump_dir"`)
}

func TestSnippet_Deterministic(t *testing.T) {
	opts := shell.Options{Executable: "/opt/jump/bin/jump", FuncName: "j"}
	assert.Equal(t, shell.Snippet(opts), shell.Snippet(opts))
}

func TestSnippet_QuotesExecutable(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: "/home/o'neil/my tools/jump"})
	assert.Contains(t, snippet, `'/home/o'\''neil/my tools/jump' get -- "$1"`)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/usr/bin/jump", `'/usr/bin/jump'`},
		{"", `''`},
		{"a b", `'a b'`},
		{"$HOME", `'$HOME'`},
		{"it's", `'it'\''s'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shell.Quote(tt.in))
	}
}

func TestInstructions(t *testing.T) {
	out := shell.Instructions(shell.Options{Executable: "/usr/local/bin/jump"})
	assert.Contains(t, out, "Setup Instructions")
	assert.Contains(t, out, "~/.bashrc or ~/.zshrc")
	assert.Contains(t, out, shell.Marker)
	assert.Contains(t, out, "source ~/.bashrc")
}
