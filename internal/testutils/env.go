package testutils

import (
	"os"
	"strings"
	"testing"
)

// UnsetEnvWithPrefix unsets environment variables with the given prefix for
// the duration of a test.
func UnsetEnvWithPrefix(t *testing.T, prefix string) {
	t.Helper()

	for _, env := range os.Environ() {
		k, v, _ := strings.Cut(env, "=")
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		// Restores the variable once the test completes.
		t.Setenv(k, v)
		os.Unsetenv(k)
	}
}
