package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tourpipe/internal/config"
	"tourpipe/internal/enrich"
	"tourpipe/internal/logging"
	"tourpipe/internal/runlog"
)

// ErrAlreadyRunning indicates another process holds the run lock.
var ErrAlreadyRunning = errors.New("another tourpipe run is already in progress")

// Options configures a Pipeline.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	// Ledger records completed runs when non-nil.
	Ledger *runlog.Store
	// Client overrides the enrichment HTTP client, for tests.
	Client *http.Client
	// Now overrides the clock, for tests.
	Now    func() time.Time
	DryRun bool
}

// Pipeline executes stage sequences against one configuration.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
	ledger *runlog.Store
	client *http.Client
	now    func() time.Time
	dryRun bool
}

// Result summarizes a completed run for console output and the ledger.
type Result struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	DryRun     bool

	Rows          int
	SkippedRows   int
	Tours         int
	Professionals int

	Enrich     enrich.Summary
	Removed    []string
	ReportPath string
}

// New constructs a Pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Config == nil {
		return nil, errors.New("pipeline requires a config")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		cfg:    opts.Config,
		logger: logging.NewComponentLogger(opts.Logger, "pipeline"),
		ledger: opts.Ledger,
		client: opts.Client,
		now:    now,
		dryRun: opts.DryRun,
	}, nil
}

// Build runs the full pipeline: ingest, merge, enrich, prune, derive, write.
func (p *Pipeline) Build(ctx context.Context) (*Result, error) {
	return p.run(ctx, "build", []Stage{
		p.loadSnapshots(),
		p.ingestCSV(),
		p.foldRows(),
		p.enrichTours(),
		p.pruneUnreadable(),
		p.deriveTables(),
		p.writeSnapshots(),
	})
}

// Enrich runs an enrichment-only pass over the current tour snapshot.
func (p *Pipeline) Enrich(ctx context.Context) (*Result, error) {
	return p.run(ctx, "enrich", []Stage{
		p.loadSnapshots(),
		p.enrichTours(),
		p.pruneUnreadable(),
		p.writeToursOnly(),
	})
}

// Derive recomputes the tag and carousel tables from the tour snapshot.
func (p *Pipeline) Derive(ctx context.Context) (*Result, error) {
	return p.run(ctx, "derive", []Stage{
		p.loadSnapshots(),
		p.deriveTables(),
		p.writeDerivedOnly(),
	})
}

func (p *Pipeline) run(ctx context.Context, kind string, stages []Stage) (*Result, error) {
	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(p.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			p.logger.Warn("failed to release run lock", logging.Error(unlockErr))
		}
	}()

	result := &Result{
		RunID:     uuid.NewString(),
		StartedAt: p.now().UTC(),
		DryRun:    p.dryRun,
	}
	p.logger.Info("run started",
		logging.String("run", result.RunID),
		logging.String("kind", kind),
		logging.Bool("dry_run", p.dryRun))

	state := &State{}
	for _, stage := range stages {
		stageStart := p.now()
		if err := stage.Run(ctx, state); err != nil {
			p.logger.Error("stage failed",
				logging.String("stage", stage.Name()),
				logging.Error(err))
			return nil, fmt.Errorf("%s: %w", stage.Name(), err)
		}
		p.logger.Info("stage complete",
			logging.String("stage", stage.Name()),
			logging.Duration("elapsed", p.now().Sub(stageStart)))
	}

	result.FinishedAt = p.now().UTC()
	result.Rows = state.FoldStats.Rows
	result.SkippedRows = state.FoldStats.Skipped
	result.Tours = state.Table.Len()
	if state.Pros != nil {
		result.Professionals = len(state.Pros.Professionals())
	}
	result.Enrich = state.EnrichSummary
	result.Removed = state.Removed
	result.ReportPath = state.ReportPath

	p.record(ctx, result)

	p.logger.Info("run finished",
		logging.String("run", result.RunID),
		logging.Int("tours", result.Tours),
		logging.Int("removed", len(result.Removed)),
		logging.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)))
	return result, nil
}

// record writes the run to the ledger. Ledger failures are logged, never
// fatal: the snapshots are already on disk and history is best-effort.
func (p *Pipeline) record(ctx context.Context, result *Result) {
	if p.ledger == nil {
		return
	}
	err := p.ledger.Record(ctx, runlog.Run{
		ID:            result.RunID,
		StartedAt:     result.StartedAt,
		FinishedAt:    result.FinishedAt,
		SourceCSV:     p.cfg.Paths.SourceCSV,
		DryRun:        result.DryRun,
		Rows:          result.Rows,
		Tours:         result.Tours,
		Professionals: result.Professionals,
		Fetched:       result.Enrich.Fetched,
		Cached:        result.Enrich.Cached,
		FetchFailed:   result.Enrich.FetchFailed,
		Downloaded:    result.Enrich.Downloaded,
		DownloadFail:  result.Enrich.DownloadFailed,
		Removed:       len(result.Removed),
		ReportPath:    result.ReportPath,
	}, result.Enrich.Outcomes)
	if err != nil {
		p.logger.Warn("failed to record run", logging.Error(err))
	}
}
