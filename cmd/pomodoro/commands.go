package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ytget/pomodoro-widget/internal/countdown"
	"github.com/ytget/pomodoro-widget/internal/metrics"
	"github.com/ytget/pomodoro-widget/internal/model"
)

// selectTimeout bounds how long select waits for the change to land
const selectTimeout = 5 * time.Second

// RunCmd implements the 'run' command.
type RunCmd struct {
	Textfile string `name:"textfile" help:"Write Prometheus metrics to this file on exit (overrides metrics_textfile)"`
}

func (r *RunCmd) Run(g *Global, _ *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.run(ctx, g)
}

func (r *RunCmd) run(ctx context.Context, g *Global) error {
	host := newPrintHost(g.Out)
	timer := g.NewTimer(host)
	defer timer.Close()

	timer.Start()
	g.Logger.Info("Countdown running", "widget_id", timer.ID(), "remaining", timer.Snapshot().Readout())

	select {
	case <-ctx.Done():
		timer.Pause()
		fmt.Fprintf(g.Out, "Paused at %s\n", timer.Snapshot().Readout())
	case <-host.Finished():
	}

	path := r.Textfile
	if path == "" {
		path = g.Config.MetricsTextfile
	}
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(g.Registry, path); err != nil {
		return err
	}
	g.Logger.Debug("Metrics written", "path", path)
	return nil
}

// StatusCmd implements the 'status' command.
type StatusCmd struct {
	JSON bool `help:"Print the record as JSON"`
}

func (s *StatusCmd) Run(g *Global, _ *CLI) error {
	record := g.Slots().Load()

	if s.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode status: %w", err)
		}
		return nil
	}

	fmt.Fprintf(g.Out, "%s %s (%s, %s)\n",
		countdown.Title, record.Readout(), record.Status(), record.Label.MenuText())
	return nil
}

// ResetCmd implements the 'reset' command.
type ResetCmd struct{}

func (ResetCmd) Run(g *Global, _ *CLI) error {
	timer := g.NewTimer(newPrintHost(g.Out))
	defer timer.Close()

	timer.ResetWith(0, 0)
	return nil
}

// SelectCmd implements the 'select' command.
type SelectCmd struct {
	Duration string `arg:"" help:"Duration label: 45, 25, 10 or 5 (an 'm' suffix is accepted)"`
}

func (s *SelectCmd) Run(g *Global, _ *CLI) error {
	label, err := model.ParseDurationLabel(s.Duration)
	if err != nil {
		return err
	}

	timer := g.NewTimer(newPrintHost(g.Out))
	defer timer.Close()

	applied := make(chan struct{}, 1)
	timer.SetUpdateCallback(func(st model.TimerState) {
		if st.Label == label && st.Status() == model.TimerStatusIdle {
			select {
			case applied <- struct{}{}:
			default:
			}
		}
	})

	timer.SelectDuration(label)

	select {
	case <-applied:
		return nil
	case <-time.After(selectTimeout):
		return fmt.Errorf("duration change to %s did not apply within %s", label, selectTimeout)
	}
}
