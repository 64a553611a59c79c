package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

// The logger is process-global (sync.Once), so all behavior is exercised
// against a single Init in one test.
func TestLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glint.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	SetEnabled(true)

	t.Run("writes structured entries", func(t *testing.T) {
		SetMinLevel(LevelDebug)

		Info(CatUI, "pattern changed", "pattern", `@\w+`, "matches", 3)
		Debug(CatWatcher, "reload")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out := string(data)
		require.Contains(t, out, "[INFO] [ui] pattern changed")
		require.Contains(t, out, `pattern=@\w+`)
		require.Contains(t, out, "matches=3")
		require.Contains(t, out, "[DEBUG] [watcher] reload")
	})

	t.Run("min level filters", func(t *testing.T) {
		SetMinLevel(LevelError)
		defer SetMinLevel(LevelDebug)

		Debug(CatCLI, "below threshold")
		ErrorErr(CatCLI, "boom", os.ErrNotExist)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotContains(t, string(data), "below threshold")
		require.Contains(t, string(data), "boom")
		require.Contains(t, string(data), "error=file does not exist")
	})

	t.Run("disabled drops everything", func(t *testing.T) {
		SetEnabled(false)
		defer SetEnabled(true)

		Warn(CatConfig, "while disabled")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotContains(t, string(data), "while disabled")
	})

	t.Run("odd field count is tolerated", func(t *testing.T) {
		Info(CatCLI, "odd fields", "orphan")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "orphan=<missing>")
	})
}
