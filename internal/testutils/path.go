package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChTempDir changes the working directory to a fresh temporary directory for
// the duration of the test, returning the directory.
func ChTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
	return dir
}
