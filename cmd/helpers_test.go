package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/pwmutate/internal/adapter"
	"gooze.dev/pkg/pwmutate/internal/controller"
	"gooze.dev/pkg/pwmutate/internal/domain"
)

// newTestRootCmd builds a fresh command tree whose workflow prints to out.
func newTestRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newEstimateCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewLocalWordlistAdapter(), controller.NewSimpleUI(cmd))

	originalLogger := slog.Default()

	t.Cleanup(func() {
		workflow = originalWorkflow
		slog.SetDefault(originalLogger)
	})

	return cmd, out
}

// withLogFile keeps test logs out of the package directory.
func withLogFile(t *testing.T, args ...string) []string {
	t.Helper()
	return append(args, "--"+logFileFlagName, filepath.Join(t.TempDir(), "test.log"))
}

func writeWordlist(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.lst")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
