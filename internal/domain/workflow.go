package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/nego/internal/adapter"
	"github.com/mouse-blink/nego/internal/controller"
	"github.com/mouse-blink/nego/internal/domain/fuzzers"
	m "github.com/mouse-blink/nego/internal/model"
)

var (
	// ErrFailures is returned by Run when at least one case ended in an ERROR verdict.
	ErrFailures = errors.New("negative tests reported errors")
	// ErrNoFuzzers is returned when the include/exclude filters leave nothing to run.
	ErrNoFuzzers = errors.New("no fuzzers selected")
)

// RunArgs are the inputs of a fuzzing run. Zero values and nil pointers defer
// to the run configuration file.
type RunArgs struct {
	Target    m.Path
	Config    m.Path
	EnvFile   m.Path
	Reports   m.Path
	Parallel  int
	Timestamp *bool
	Stats     *bool
	Include   []string
	Exclude   []string
	Timeout   time.Duration
}

// ViewArgs select a previous report folder to re-display.
type ViewArgs struct {
	Reports m.Path
	Stats   bool
}

// ListArgs filter the fuzzer listing.
type ListArgs struct {
	Include []string
	Exclude []string
}

// ClassifyArgs are fuzz markers to classify, merged into an optional sample value.
type ClassifyArgs struct {
	Values   []string
	Supplied string
}

// Workflow defines the interface for negative testing operations.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	View(args ViewArgs) error
	ListFuzzers(args ListArgs) error
	Classify(args ClassifyArgs) error
}

// ReportStoreFactory builds the report store of one run.
type ReportStoreFactory func(config m.ReportConfig, logger *slog.Logger) adapter.ReportStore

// DefaultReportStoreFactory writes reports to the local filesystem.
func DefaultReportStoreFactory(config m.ReportConfig, logger *slog.Logger) adapter.ReportStore {
	return adapter.NewLocalReportStore(config, logger)
}

type workflow struct {
	loader   adapter.ConfigLoader
	caller   adapter.ServiceCaller
	journal  adapter.JournalStore
	ui       controller.UI
	registry *fuzzers.Registry
	logger   *slog.Logger
	newStore ReportStoreFactory
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	loader adapter.ConfigLoader,
	caller adapter.ServiceCaller,
	journal adapter.JournalStore,
	ui controller.UI,
	registry *fuzzers.Registry,
	logger *slog.Logger,
	newStore ReportStoreFactory,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	if registry == nil {
		registry = fuzzers.Default()
	}

	if newStore == nil {
		newStore = DefaultReportStoreFactory
	}

	return &workflow{
		loader:   loader,
		caller:   caller,
		journal:  journal,
		ui:       ui,
		registry: registry,
		logger:   logger,
		newStore: newStore,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	cfg, err := w.loader.LoadRunConfig(args.Config)
	if err != nil {
		return fmt.Errorf("failed to load run configuration: %w", err)
	}

	cfg = applyOverrides(cfg, args)

	target, err := w.loader.LoadTarget(args.Target, args.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to load target: %w", err)
	}

	selected := w.registry.Filter(cfg.Run.Include, cfg.Run.Exclude)
	if len(selected) == 0 {
		return ErrNoFuzzers
	}

	jobs, err := PlanJobs(target, selected)
	if err != nil {
		return err
	}

	store := w.newStore(cfg.Report, w.logger)
	store.Initialize()

	rec := &runRecorder{store: store, ui: w.ui}
	orch := NewOrchestrator(w.caller, rec, target, cfg.Run.Timeout.Duration, w.logger)

	total := 0
	for _, job := range jobs {
		total += job.CaseCount()
	}

	if err := w.ui.Start(controller.WithRunMode(total)); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}

	w.ui.DisplayRunInfo(controller.RunInfo{
		Jobs:     len(jobs),
		Cases:    total,
		Parallel: cfg.Run.Parallel,
		Dir:      store.Dir(),
	})

	w.logger.Debug("starting run", "jobs", len(jobs), "cases", total, "parallel", cfg.Run.Parallel)

	runErr := runJobs(ctx, orch, jobs, cfg.Run.Parallel)

	w.ui.Close()

	totals := rec.Totals()
	report := store.FinalizeSummary(totals)

	bundleErr := store.FinalizeReportBundle()

	if cfg.Report.ExecutionStatistics {
		w.ui.DisplayTimingStats(adapter.ComputeTimingStats(store.Cases()))
	} else {
		w.ui.DisplayStatsDisabled()
	}

	journalErr := w.journal.Save(store.Dir(), adapter.Journal{
		RunID:  report.RunID,
		Totals: totals,
		Stats:  cfg.Report.ExecutionStatistics,
		Cases:  store.Cases(),
	})
	if journalErr != nil {
		w.logger.Warn("failed to write case journal", "dir", store.Dir(), "error", journalErr)
	}

	if err := w.ui.DisplaySummary(report, store.Dir()); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	if bundleErr != nil {
		return fmt.Errorf("failed to write report bundle: %w", bundleErr)
	}

	if totals.Errors > 0 {
		return fmt.Errorf("%d of %d: %w", totals.Errors, totals.All, ErrFailures)
	}

	return nil
}

func (w *workflow) View(args ViewArgs) error {
	dir := args.Reports
	if dir == "" {
		dir = adapter.DefaultReportDir
	}

	journal, err := w.journal.Load(dir)
	if err != nil {
		return err
	}

	report := m.NewReport(journal.Cases, journal.Totals)
	report.RunID = journal.RunID

	if args.Stats || journal.Stats {
		w.ui.DisplayTimingStats(adapter.ComputeTimingStats(journal.Cases))
	}

	return w.ui.DisplaySummary(report, dir)
}

func (w *workflow) ListFuzzers(args ListArgs) error {
	selected := w.registry.Filter(args.Include, args.Exclude)

	infos := make([]m.FuzzerInfo, 0, len(selected))
	for _, f := range selected {
		infos = append(infos, f.Info())
	}

	return w.ui.DisplayFuzzers(infos)
}

func (w *workflow) Classify(args ClassifyArgs) error {
	items := make([]controller.Classification, 0, len(args.Values))

	for _, value := range args.Values {
		s := Classify(value)
		payload, _ := s.Data()

		items = append(items, controller.Classification{
			Input:    FormatValue(value),
			Kind:     s.Kind(),
			Payload:  FormatValue(payload),
			Supplied: FormatValue(args.Supplied),
			Merged:   FormatValue(Merge(value, args.Supplied)),
		})
	}

	return w.ui.DisplayClassifications(items)
}

// PlanJobs expands the selected fuzzers over every matching field and header
// of every operation, leaving out pairs the target's ignore lists exclude.
func PlanJobs(target m.Target, selected []fuzzers.Fuzzer) ([]Job, error) {
	var jobs []Job

	for _, op := range target.Operations {
		items, err := itemsOf(op)
		if err != nil {
			return nil, err
		}

		ignored := buildIgnoreIndex(target, op)

		for _, f := range selected {
			for _, item := range items {
				if item.Target() != f.Target || ignored.ignores(f, item) {
					continue
				}

				jobs = append(jobs, Job{Fuzzer: f, Operation: op, Item: item})
			}
		}
	}

	return jobs, nil
}

func itemsOf(op m.Operation) ([]fuzzers.Item, error) {
	items := make([]fuzzers.Item, 0, len(op.Fields)+len(op.Headers))

	for _, field := range op.Fields {
		item := fuzzers.Item{Name: field.Name, Value: field.Value, Required: field.Required}

		if field.Pattern != "" {
			pattern, err := regexp.Compile(field.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for %s %s field %s: %w", op.Method, op.Path, field.Name, err)
			}

			item.Pattern = pattern
		}

		items = append(items, item)
	}

	for _, header := range op.Headers {
		items = append(items, fuzzers.Item{
			Name:     header.Name,
			Value:    header.Value,
			Required: header.Required,
			Header:   true,
		})
	}

	return items, nil
}

func runJobs(ctx context.Context, orch Orchestrator, jobs []Job, parallel int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))

	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			orch.Execute(gctx, job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func applyOverrides(cfg m.RunConfig, args RunArgs) m.RunConfig {
	if args.Reports != "" {
		cfg.Report.Dir = string(args.Reports)
	}

	if args.Timestamp != nil {
		cfg.Report.Timestamp = *args.Timestamp
	}

	if args.Stats != nil {
		cfg.Report.ExecutionStatistics = *args.Stats
	}

	if args.Parallel > 0 {
		cfg.Run.Parallel = args.Parallel
	}

	if len(args.Include) > 0 {
		cfg.Run.Include = args.Include
	}

	if len(args.Exclude) > 0 {
		cfg.Run.Exclude = args.Exclude
	}

	if args.Timeout > 0 {
		cfg.Run.Timeout = m.Duration{Duration: args.Timeout}
	}

	return cfg
}

// runRecorder fans every case out to the report store and the UI and keeps the totals.
type runRecorder struct {
	store adapter.ReportStore
	ui    controller.UI

	mu     sync.Mutex
	totals m.Totals
}

func (r *runRecorder) RecordCase(tc m.TestCase) {
	r.store.RecordCase(tc)

	r.mu.Lock()
	r.totals.Add(tc)
	r.mu.Unlock()

	r.ui.DisplayCompletedCase(tc)
}

func (r *runRecorder) Totals() m.Totals {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.totals
}
