package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/userenv/pkg/paths"
)

// Isolate points the userenv config, data and state directories at a fresh
// temporary directory and clears USERENV_* configuration variables that
// would leak in from the developer's shell. It returns the root directory.
func Isolate(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv(paths.EnvConfigDir, filepath.Join(root, "config"))
	t.Setenv(paths.EnvDataDir, filepath.Join(root, "data"))
	t.Setenv(paths.EnvStateDir, filepath.Join(root, "state"))
	for _, name := range []string{
		"USERENV_BACKEND",
		"USERENV_FILE_PATH",
		"USERENV_FILE_LOCK",
		"USERENV_NOTIFY_ENABLED",
		"USERENV_NOTIFY_TIMEOUT",
		"USERENV_NOTIFY_CATEGORY",
		"USERENV_LOG_FILE",
	} {
		// t.Setenv registers the restore; the variable must then be
		// absent, not empty, for the env provider to skip it.
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}
	return root
}
