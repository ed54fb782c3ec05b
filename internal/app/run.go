package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/stepbar/internal/cli"
	"github.com/agbru/stepbar/internal/config"
	"github.com/agbru/stepbar/internal/estimate"
	"github.com/agbru/stepbar/internal/logging"
	"github.com/agbru/stepbar/internal/metrics"
	"github.com/agbru/stepbar/internal/progress"
	"github.com/agbru/stepbar/internal/tui"
)

// metricsShutdownGrace bounds how long a stopping run waits for the
// metrics listener to drain.
const metricsShutdownGrace = 2 * time.Second

// buildTracking constructs the process, its estimator and, when configured,
// the metrics observer. Everything is attached while the process is still in
// its initial state.
func (a *Application) buildTracking() (*progress.Process, *estimate.Estimator, *metrics.ProgressMetrics, error) {
	proc, err := progress.NewProcess(a.Config.TotalSteps)
	if err != nil {
		return nil, nil, nil, err
	}
	est, err := estimate.NewEstimator(proc)
	if err != nil {
		return nil, nil, nil, err
	}

	var pm *metrics.ProgressMetrics
	if a.Config.MetricsAddr != "" {
		pm = metrics.NewProgressMetrics()
		if err := pm.Attach(proc, est); err != nil {
			return nil, nil, nil, err
		}
	}
	return proc, est, pm, nil
}

// serveMetrics runs the Prometheus endpoint until gctx is canceled.
func (a *Application) serveMetrics(gctx context.Context, g *errgroup.Group, pm *metrics.ProgressMetrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", pm.Handler())
	srv := &http.Server{Addr: a.Config.MetricsAddr, Handler: mux}

	a.Logger.Info("serving metrics", logging.String("addr", a.Config.MetricsAddr))
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// runCLI drives the plain terminal render loop.
func (a *Application) runCLI(ctx context.Context, out io.Writer) error {
	proc, est, pm, err := a.buildTracking()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if pm != nil {
		a.serveMetrics(gctx, g, pm)
	}
	g.Go(func() error {
		defer cancel()
		return a.simulate(gctx, out, proc, est)
	})
	return g.Wait()
}

// runTUI drives the live full-screen view.
func (a *Application) runTUI(ctx context.Context, out io.Writer) error {
	proc, est, pm, err := a.buildTracking()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if pm != nil {
		a.serveMetrics(gctx, g, pm)
	}
	g.Go(func() error {
		defer cancel()
		return tui.Run(gctx, proc, est, a.Config, out)
	})
	return g.Wait()
}

// simulate advances the process batch by batch with the configured delay,
// redrawing the line after every update. Updates and rendering share one
// goroutine; the process sees strictly serialized access.
func (a *Application) simulate(ctx context.Context, out io.Writer, proc *progress.Process, est *estimate.Estimator) error {
	lw := cli.NewLineWriter(out)
	renderer := cli.NewRenderer(lw, config.DisplayConfig(a.Config), cli.RefreshRate)
	quiet := a.Config.Quiet

	if a.Config.Warmup > 0 && !quiet && lw.Interactive() {
		if err := a.warmUp(ctx); err != nil {
			return err
		}
	}

	a.Logger.Info("workload started",
		logging.Int("total_steps", proc.TotalSteps()),
		logging.Int("batch", a.Config.BatchSize),
		logging.Dur("delay", a.Config.StepDelay))

	total := proc.TotalSteps()
	for proc.CurrentStep() < total {
		if err := sleepCtx(ctx, a.Config.StepDelay); err != nil {
			return err
		}
		batch := a.Config.BatchSize
		if remaining := total - proc.CurrentStep(); batch > remaining {
			batch = remaining
		}
		if err := proc.Update(batch); err != nil {
			return err
		}
		if !quiet {
			renderer.Tick(proc, est)
		}
	}
	if !quiet {
		renderer.Done(proc, est)
	}

	if e, ok := est.Current(); ok {
		a.Logger.Info("workload finished",
			logging.Int("steps", proc.CurrentStep()),
			logging.Dur("avg_per_step", e.AveragePerStep))
	}
	return nil
}

// warmUp shows the indeterminate spinner for the configured duration, i.e.
// the phase before the first countable step exists.
func (a *Application) warmUp(ctx context.Context) error {
	label := a.Config.Label
	if label == "" {
		label = "preparing"
	}
	sp := cli.NewSpinner()
	sp.UpdateSuffix(" " + label)
	sp.Start()
	defer sp.Stop()
	return sleepCtx(ctx, a.Config.Warmup)
}

// sleepCtx waits for d or until ctx is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
