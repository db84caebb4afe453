package shell_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/jump/internal/cmdexec"
	"github.com/hbjs97/jump/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJump writes a stand-in executable that knows a single alias "t".
func fakeJump(t *testing.T, target string) string {
	t.Helper()
	exe := filepath.Join(t.TempDir(), "jump")
	script := "#!/bin/sh\n" +
		"if [ \"$1\" = get ] && [ \"$2\" = --help ]; then echo 'Usage: jump get <alias>'; fi\n" +
		"if [ \"$1\" = get ] && [ \"$2\" = -- ] && [ \"$3\" = t ]; then printf '%s' " + shell.Quote(target) + "; fi\n" +
		"if [ \"$1\" = ls ] || [ \"$1\" = doctor ]; then echo \"$1 called with $#\"; fi\n" +
		"if [ \"$1\" = add ]; then echo \"add args: $2|$3|$4\"; fi\n"
	require.NoError(t, os.WriteFile(exe, []byte(script), 0755))
	return exe
}

func runSnippet(t *testing.T, snippet, body string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	out, _ := (&cmdexec.RealCommander{}).Run(context.Background(), "sh", "-c", snippet+"\n"+body)
	return string(out)
}

func TestSnippetExec_ChangesDirectory(t *testing.T) {
	target := t.TempDir()
	start := t.TempDir()
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, target)})

	out := runSnippet(t, snippet, "cd "+shell.Quote(start)+" && j t && pwd")
	assert.Equal(t, target, strings.TrimSpace(out))
}

func TestSnippetExec_UnknownAliasKeepsDirectory(t *testing.T) {
	target := t.TempDir()
	start := t.TempDir()
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, target)})

	out := runSnippet(t, snippet, "cd "+shell.Quote(start)+"; j nope; echo \"rc=$?\"; pwd")
	assert.Contains(t, out, "Unknown alias: nope")
	assert.Contains(t, out, "rc=1")
	assert.Contains(t, out, start)
	assert.NotContains(t, out, target)
}

func TestSnippetExec_ForwardsListArgs(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, t.TempDir())})

	out := runSnippet(t, snippet, "j ls 'w*'")
	assert.Contains(t, out, "ls called with 2")
}

func TestSnippetExec_AddUsage(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, t.TempDir())})

	out := runSnippet(t, snippet, "j add /tmp; echo \"rc=$?\"")
	assert.Contains(t, out, "Usage: j add <path> <alias>")
	assert.Contains(t, out, "rc=1")
}

func TestSnippetExec_FlagLikeAliasIsNotAFlag(t *testing.T) {
	start := t.TempDir()
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, t.TempDir())})

	out := runSnippet(t, snippet, "cd "+shell.Quote(start)+"; j --help; echo \"rc=$?\"; pwd")
	assert.Contains(t, out, "Unknown alias: --help")
	assert.Contains(t, out, "rc=1")
	assert.NotContains(t, out, "Usage: jump get")
	assert.Contains(t, out, start)
}

func TestSnippetExec_AddPassesDashedName(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, t.TempDir())})

	out := runSnippet(t, snippet, "j add /tmp -x")
	assert.Contains(t, out, "add args: --|/tmp|-x")
}

func TestSnippetExec_ForwardsDoctor(t *testing.T) {
	snippet := shell.Snippet(shell.Options{Executable: fakeJump(t, t.TempDir())})

	out := runSnippet(t, snippet, "j doctor")
	assert.Contains(t, out, "doctor called with 1")
	assert.NotContains(t, out, "Unknown alias")
}
