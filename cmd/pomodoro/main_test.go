package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/pomodoro-widget/internal/clock"
	"github.com/ytget/pomodoro-widget/internal/model"
)

func newTestGlobal(t *testing.T, yaml string) (*Global, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "pomodoro.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o600))

	var out bytes.Buffer
	g, err := newGlobal(&CLI{Config: configPath, State: filepath.Join(dir, "state", "state.db")}, &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g, &out
}

func TestNewGlobal_SeedsConfiguredDuration(t *testing.T) {
	g, _ := newTestGlobal(t, "widget_id: desk\nduration: \"10\"\n")

	record := g.Slots().Load()
	assert.Equal(t, model.Duration10, record.Label)
	assert.Equal(t, model.TenMinutesMs, record.DurationMs)
	assert.Equal(t, model.TenMinutesMs, record.RemainingMs)
	assert.False(t, record.IsRunning)
}

func TestNewGlobal_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "pomodoro.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("duration: \"15\"\n"), 0o600))

	_, err := newGlobal(&CLI{Config: configPath, State: filepath.Join(dir, "state.db")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownDuration)
}

func TestStatusCmd(t *testing.T) {
	g, out := newTestGlobal(t, "duration: \"45\"\n")

	require.NoError(t, (&StatusCmd{}).Run(g, nil))
	assert.Equal(t, "Pomodoro Timer 45:00 (Idle, 45 minutes)\n", out.String())

	out.Reset()
	require.NoError(t, (&StatusCmd{JSON: true}).Run(g, nil))

	var record model.TimerState
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, model.Duration45, record.Label)
	assert.Equal(t, model.FortyFiveMinutesMs, record.RemainingMs)
}

func TestResetCmd(t *testing.T) {
	g, out := newTestGlobal(t, "duration: \"25\"\n")

	record := model.NewTimerState(model.Duration25)
	record.RemainingMs = 60000
	record.IsRunning = true
	record.Arc = model.ArcFor(record.RemainingMs, record.DurationMs)
	g.Slots().Save(record)

	// A record saved as running resumes on load; keep its ticks off the wall clock
	g.Clock = clock.NewManual(time.Unix(0, 0))

	require.NoError(t, ResetCmd{}.Run(g, nil))

	got := g.Slots().Load()
	assert.Equal(t, model.TwentyFiveMinutesMs, got.RemainingMs)
	assert.False(t, got.IsRunning)
	assert.True(t, got.ArcConsistent())
	assert.Contains(t, out.String(), "Pomodoro Timer\n")
}

func TestSelectCmd(t *testing.T) {
	g, _ := newTestGlobal(t, "")

	require.NoError(t, (&SelectCmd{Duration: "5m"}).Run(g, nil))

	got := g.Slots().Load()
	assert.Equal(t, model.Duration5, got.Label)
	assert.Equal(t, model.FiveMinutesMs, got.DurationMs)
	assert.Equal(t, model.FiveMinutesMs, got.RemainingMs)
}

func TestSelectCmd_Unknown(t *testing.T) {
	g, _ := newTestGlobal(t, "")

	err := (&SelectCmd{Duration: "15"}).Run(g, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownDuration)
}

func TestRunCmd_Completes(t *testing.T) {
	g, out := newTestGlobal(t, "duration: \"5\"\n")
	manual := clock.NewManual(time.Unix(0, 0))
	g.Clock = manual

	textfile := filepath.Join(t.TempDir(), "pomodoro.prom")
	cmd := &RunCmd{Textfile: textfile}

	errCh := make(chan error, 1)
	go func() { errCh <- cmd.run(context.Background(), g) }()

	require.Eventually(t, func() bool { return manual.Pending() > 0 }, time.Second, time.Millisecond)
	manual.Advance(5 * time.Minute)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the countdown finished")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Pomodoro Timer 04:59", lines[0])
	assert.Equal(t, "Pomodoro Timer - Finished", lines[len(lines)-1])

	got := g.Slots().Load()
	assert.False(t, got.IsRunning)
	assert.LessOrEqual(t, got.RemainingMs, int64(0))

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pomodoro_ticks_total")
	assert.Contains(t, string(data), `transition="complete"`)
}

func TestRunCmd_InterruptPauses(t *testing.T) {
	g, out := newTestGlobal(t, "duration: \"25\"\n")
	manual := clock.NewManual(time.Unix(0, 0))
	g.Clock = manual

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- (&RunCmd{}).run(ctx, g) }()

	require.Eventually(t, func() bool { return manual.Pending() > 0 }, time.Second, time.Millisecond)
	manual.Advance(30 * time.Second)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}

	assert.Contains(t, out.String(), "Paused at 24:30\n")

	got := g.Slots().Load()
	assert.False(t, got.IsRunning)
	assert.Equal(t, int64(1470000), got.RemainingMs)
}
