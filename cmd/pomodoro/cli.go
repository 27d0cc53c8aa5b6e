package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ytget/pomodoro-widget/internal/clock"
	"github.com/ytget/pomodoro-widget/internal/config"
	"github.com/ytget/pomodoro-widget/internal/countdown"
	"github.com/ytget/pomodoro-widget/internal/metrics"
	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/platform"
	"github.com/ytget/pomodoro-widget/internal/state"
)

// CLI definition & global flags
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"pomodoro.yaml"`
	State   string           `short:"s" help:"State database path (overrides state_path)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run    RunCmd    `cmd:"" help:"Count down until finished or interrupted"`
	Status StatusCmd `cmd:"" help:"Print the persisted countdown"`
	Reset  ResetCmd  `cmd:"" help:"Stop the countdown and restore the full duration"`
	Select SelectCmd `cmd:"" help:"Switch to another duration (45, 25, 10 or 5 minutes)"`
}

// Global is the state shared by every command
type Global struct {
	Config   *config.File
	Logger   *slog.Logger
	Store    *state.SQLiteStore
	Clock    clock.Clock
	Out      io.Writer
	Registry *prometheus.Registry
	Recorder metrics.Recorder
}

// newGlobal loads the configuration, sets up logging and opens the store.
// A store without a record is seeded with the configured duration.
func newGlobal(cli *CLI, out io.Writer) (*Global, error) {
	cfg, err := config.LoadFile(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cli.State != "" {
		cfg.StatePath = cli.State
	}

	level := cfg.Logging.Level
	if cli.Verbose {
		level = config.LogLevelDebug
	}
	logger := config.NewLogger(os.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(logger)

	if err := platform.EnsureParentDir(cfg.StatePath); err != nil {
		return nil, err
	}
	store, err := state.NewSQLiteStore(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}

	slots := state.NewSlots(store, cfg.WidgetID)
	if !slots.Initialized() {
		logger.Info("Initializing countdown state", "path", cfg.StatePath, "duration", cfg.DurationLabel().String())
		slots.Save(model.NewTimerState(cfg.DurationLabel()))
	}

	reg := prometheus.NewRegistry()
	return &Global{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Clock:    clock.System,
		Out:      out,
		Registry: reg,
		Recorder: metrics.NewPrometheusRecorder(reg, cfg.WidgetID),
	}, nil
}

// Close releases the store
func (g *Global) Close() error {
	return g.Store.Close()
}

// Slots returns the configured widget's record
func (g *Global) Slots() *state.Slots {
	return state.NewSlots(g.Store, g.Config.WidgetID)
}

// NewTimer creates the configured widget's timer reporting labels through host
func (g *Global) NewTimer(host countdown.Host) *countdown.Timer {
	return countdown.New(g.Store, countdown.Options{
		ID:       g.Config.WidgetID,
		Clock:    g.Clock,
		Host:     host,
		Logger:   g.Logger,
		Recorder: g.Recorder,
	})
}

// printHost writes each distinct external label on its own line and signals
// completion
type printHost struct {
	out io.Writer

	mu   sync.Mutex
	last string

	once     sync.Once
	finished chan struct{}
}

func newPrintHost(out io.Writer) *printHost {
	return &printHost{out: out, finished: make(chan struct{})}
}

func (h *printHost) SetLabel(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if label == h.last {
		return
	}
	h.last = label
	fmt.Fprintln(h.out, label)
}

func (h *printHost) Reveal() {
	h.once.Do(func() { close(h.finished) })
}

// Finished is closed when the countdown completes
func (h *printHost) Finished() <-chan struct{} {
	return h.finished
}
