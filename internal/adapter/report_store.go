package adapter

import (
	"archive/zip"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	m "github.com/mouse-blink/nego/internal/model"
)

//go:generate sh -c "cd assets/report && zip -qrX ../report.zip ."

//go:embed assets/report.zip
var reportTemplate []byte

const (
	// DefaultReportDir is the report root used when none is configured.
	DefaultReportDir = "nego-report"
	// Placeholder is the token in index.html replaced by the per-case script includes.
	Placeholder = "PLACEHOLDER"

	summaryName = "summary"
	indexHTML   = "index.html"
	scriptExt   = ".js"
	scriptTag   = `<script type="text/javascript" src="%s"></script>`
)

// ReportStore aggregates executed test cases and writes the report bundle.
type ReportStore interface {
	Initialize()
	Dir() m.Path
	RecordCase(tc m.TestCase)
	Cases() []m.TestCase
	FinalizeSummary(totals m.Totals) m.Report
	FinalizeReportBundle() error
}

// LocalReportStore writes the report bundle to the local filesystem.
// RecordCase is safe for concurrent use; Initialize must return before any other call.
type LocalReportStore struct {
	config   m.ReportConfig
	logger   *slog.Logger
	template []byte
	now      func() time.Time
	runID    string

	dir string

	mu       sync.Mutex
	cases    map[string]m.TestCase
	order    []string
	included map[string]struct{}
	includes strings.Builder
}

// ReportStoreOption customizes a LocalReportStore.
type ReportStoreOption func(*LocalReportStore)

// WithTemplate replaces the embedded dashboard archive.
func WithTemplate(archive []byte) ReportStoreOption {
	return func(rs *LocalReportStore) {
		rs.template = archive
	}
}

// WithClock replaces time.Now, used for timestamped folders and the summary timestamp.
func WithClock(now func() time.Time) ReportStoreOption {
	return func(rs *LocalReportStore) {
		rs.now = now
	}
}

// NewLocalReportStore constructs a report store for one run. It does not touch the disk
// until Initialize is called.
func NewLocalReportStore(config m.ReportConfig, logger *slog.Logger, opts ...ReportStoreOption) *LocalReportStore {
	if config.Dir == "" {
		config.Dir = DefaultReportDir
	}

	if logger == nil {
		logger = slog.Default()
	}

	rs := &LocalReportStore{
		config:   config,
		logger:   logger,
		template: reportTemplate,
		now:      time.Now,
		runID:    uuid.NewString(),
		cases:    make(map[string]m.TestCase),
		included: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(rs)
	}

	return rs
}

// Initialize resolves the output directory, purges files left by a previous
// non-timestamped run and creates the directory. Failures are logged only.
func (rs *LocalReportStore) Initialize() {
	rs.dir = rs.config.Dir
	if rs.config.Timestamp {
		rs.dir = filepath.Join(rs.config.Dir, strconv.FormatInt(rs.now().UnixMilli(), 10))
	}

	if !rs.config.Timestamp {
		if err := purgeFiles(rs.dir); err != nil {
			rs.logger.Error("failed to clean report folder", "dir", rs.dir, "error", err)
		}
	}

	if err := os.MkdirAll(rs.dir, 0o755); err != nil {
		rs.logger.Error("exception while creating root test cases folder", "dir", rs.dir, "error", err)
	}
}

// Dir returns the resolved output directory.
func (rs *LocalReportStore) Dir() m.Path {
	return m.Path(rs.dir)
}

// RecordCase stores the case and writes it as "var <id> = <json>" to <id>.js.
// Recording an id again rewrites its file but keeps a single dashboard include.
// A failed write is logged and the case is left out of the dashboard includes.
func (rs *LocalReportStore) RecordCase(tc m.TestCase) {
	rs.mu.Lock()
	if _, exists := rs.cases[tc.ID]; !exists {
		rs.order = append(rs.order, tc.ID)
	}

	rs.cases[tc.ID] = tc
	rs.mu.Unlock()

	name := tc.FileName()

	data, err := marshalReport(tc)
	if err != nil {
		rs.logger.Warn("something went wrong while writing test case", "id", tc.ID, "error", err)
		return
	}

	path := filepath.Join(rs.dir, name+scriptExt)
	if !rs.write(tc.ID, path, assignment(name, data)) {
		return
	}

	rs.mu.Lock()
	if _, done := rs.included[tc.ID]; !done {
		rs.included[tc.ID] = struct{}{}
		fmt.Fprintf(&rs.includes, scriptTag+"\n", name+scriptExt)
	}
	rs.mu.Unlock()
}

// Cases returns the recorded cases in insertion order.
func (rs *LocalReportStore) Cases() []m.TestCase {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	out := make([]m.TestCase, 0, len(rs.order))
	for _, id := range rs.order {
		out = append(out, rs.cases[id])
	}

	return out
}

// FinalizeSummary writes summary.js for every non-skipped case. The counters
// are the caller's and are not derived from the number of recorded cases.
func (rs *LocalReportStore) FinalizeSummary(totals m.Totals) m.Report {
	report := m.NewReport(rs.Cases(), totals)
	report.Timestamp = rs.now().Format(time.RFC1123Z)
	report.RunID = rs.runID

	data, err := marshalReport(report)
	if err != nil {
		rs.logger.Warn("something went wrong while writing summary", "error", err)
		return report
	}

	rs.write(summaryName, filepath.Join(rs.dir, summaryName+scriptExt), assignment(summaryName, data))

	return report
}

// FinalizeReportBundle unpacks the dashboard template and replaces the placeholder
// in index.html with the accumulated script includes. Case and summary files
// already on disk are left untouched on failure.
func (rs *LocalReportStore) FinalizeReportBundle() error {
	if err := unpack(rs.template, rs.dir); err != nil {
		rs.logger.Error("unable to write reporting files", "dir", rs.dir, "error", err)
		return fmt.Errorf("failed to unpack report template: %w", err)
	}

	rs.mu.Lock()
	includes := rs.includes.String()
	rs.mu.Unlock()

	if err := patchIndex(filepath.Join(rs.dir, indexHTML), includes); err != nil {
		rs.logger.Error("unable to write reporting files", "dir", rs.dir, "error", err)
		return fmt.Errorf("failed to patch %s: %w", indexHTML, err)
	}

	return nil
}

func (rs *LocalReportStore) write(id, path string, content []byte) bool {
	if err := os.WriteFile(path, content, 0o600); err != nil {
		rs.logger.Warn("something went wrong while writing test case", "id", id, "error", err)
		return false
	}

	rs.logger.Debug("finish writing test case", "id", id, "file", path)

	return true
}

func marshalReport(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func assignment(name string, data []byte) []byte {
	out := make([]byte, 0, len(data)+len(name)+8)
	out = append(out, "var "...)
	out = append(out, name...)
	out = append(out, " = "...)

	return append(out, data...)
}

// purgeFiles deletes every non-directory entry of dir. A missing dir is not an error.
func purgeFiles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func unpack(archive []byte, dir string) error {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		if !filepath.IsLocal(file.Name) {
			return fmt.Errorf("archive entry %q escapes the report folder", file.Name)
		}

		target := filepath.Join(dir, filepath.FromSlash(file.Name))

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}

			continue
		}

		if err := extractFile(file, target); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}

// patchIndex replaces the placeholder in one pass. Every other byte of the file is kept.
func patchIndex(path, includes string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	patched := strings.ReplaceAll(string(content), Placeholder, includes)

	return os.WriteFile(path, []byte(patched), 0o644)
}

// ComputeTimingStats groups executed cases by (method, path) and returns statistics
// for every endpoint exercised more than once, sorted by endpoint.
func ComputeTimingStats(cases []m.TestCase) []m.TimingStats {
	groups := make(map[string][]m.TestCase)

	for _, tc := range cases {
		if tc.CountsForStats() {
			groups[tc.EndpointKey()] = append(groups[tc.EndpointKey()], tc)
		}
	}

	stats := make([]m.TimingStats, 0, len(groups))

	for endpoint, group := range groups {
		if len(group) < 2 {
			continue
		}

		sorted := slices.Clone(group)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Response.ResponseTimeMs < sorted[j].Response.ResponseTimeMs
		})

		var total int64
		for _, tc := range sorted {
			total += tc.Response.ResponseTimeMs
		}

		stats = append(stats, m.TimingStats{
			Endpoint:   endpoint,
			Average:    float64(total) / float64(len(sorted)),
			Best:       sorted[0],
			Worst:      sorted[len(sorted)-1],
			Executions: sorted,
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Endpoint < stats[j].Endpoint })

	return stats
}
