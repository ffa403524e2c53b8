package imports

import (
	"context"
	"log/slog"
	"time"

	"github.com/insurtech-mx/polizas-crm/internal/monitoring"
	"github.com/insurtech-mx/polizas-crm/internal/repository"
)

// StaleMessage is the fixed error_message written on imports reclaimed by
// the sweep. The UI surfaces it verbatim.
const StaleMessage = "tiempo de procesamiento agotado"

// Sweeper reclassifies imports whose worker died mid-flight: anything still
// processing with no heartbeat inside the window is declared failed.
type Sweeper struct {
	repo    repository.ImportRepository
	window  time.Duration
	metrics *monitoring.Metrics
	logger  *slog.Logger
}

func NewSweeper(repo repository.ImportRepository, window time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &Sweeper{repo: repo, window: window, metrics: monitoring.Get(), logger: logger}
}

// Sweep runs once and returns how many imports it reclaimed. It is
// idempotent: a second run over the same rows finds nothing to flip.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.window)
	n, err := s.repo.SweepStale(ctx, cutoff, StaleMessage)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.metrics.SweepReclaimed.Add(float64(n))
		s.logger.Warn("sweep reclaimed stuck imports", "count", n, "window", s.window)
	}
	return n, nil
}

// Run sweeps on a fixed interval until the context is cancelled. Intended
// for the daemon; the CLI calls Sweep directly.
func (s *Sweeper) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("sweep failed", "err", err)
			}
		}
	}
}
