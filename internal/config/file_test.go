package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/platform"
)

func TestLoadFile_Missing(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultWidgetID, f.WidgetID)
	assert.Equal(t, model.DefaultDurationLabel, f.DurationLabel())
	assert.Equal(t, platform.DefaultStatePath(), f.StatePath)
	assert.Equal(t, LogLevelInfo, f.Logging.Level)
	assert.Equal(t, LogFormatText, f.Logging.Format)
	assert.Empty(t, f.MetricsTextfile)
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POMODORO_TEST_STATE", filepath.Join(dir, "state.db"))

	path := filepath.Join(dir, "pomodoro.yaml")
	content := `
widget_id: desk
duration: "45m"
state_path: ${POMODORO_TEST_STATE}
metrics_textfile: ` + filepath.Join(dir, "pomodoro.prom") + `
logging:
  level: DEBUG
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "desk", f.WidgetID)
	assert.Equal(t, model.Duration45, f.DurationLabel())
	assert.Equal(t, filepath.Join(dir, "state.db"), f.StatePath)
	assert.Equal(t, filepath.Join(dir, "pomodoro.prom"), f.MetricsTextfile)
	assert.Equal(t, LogLevelDebug, f.Logging.Level)
	assert.Equal(t, LogFormatJSON, f.Logging.Format)
}

func TestParseFile_InvalidDuration(t *testing.T) {
	_, err := ParseFile([]byte("duration: \"15\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownDuration)
}

func TestParseFile_Malformed(t *testing.T) {
	_, err := ParseFile([]byte("duration: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestDefaultFile(t *testing.T) {
	f := DefaultFile()
	require.NoError(t, f.Validate())
	assert.Equal(t, "25", f.Duration)
}
