package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ytget/sheets-downloader/internal/config"
	"github.com/ytget/sheets-downloader/internal/drive"
	"github.com/ytget/sheets-downloader/internal/logging"
	"github.com/ytget/sheets-downloader/internal/model"
	"github.com/ytget/sheets-downloader/internal/platform"
	"github.com/ytget/sheets-downloader/internal/traverse"
)

// Options configures a pipeline
type Options struct {
	SaveDir    string
	TargetTabs []string
}

// Sink receives progress lines as they happen
type Sink func(model.LogEvent)

// Mirror copies a written CSV file somewhere else
type Mirror interface {
	Put(ctx context.Context, localPath string) error
}

// Pipeline exports the target tabs of every spreadsheet under a folder
type Pipeline struct {
	client drive.Client
	opts   Options
	sink   Sink
	mirror Mirror
	logger logging.Logger
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithMirror uploads every written file through m
func WithMirror(m Mirror) Option {
	return func(p *Pipeline) { p.mirror = m }
}

// WithLogger sets the process logger
func WithLogger(l logging.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline. A nil sink discards progress lines and
// empty TargetTabs fall back to config.DefaultTargetTabs.
func NewPipeline(client drive.Client, opts Options, sink Sink, options ...Option) *Pipeline {
	if len(opts.TargetTabs) == 0 {
		opts.TargetTabs = config.DefaultTargetTabs
	}
	if sink == nil {
		sink = func(model.LogEvent) {}
	}
	p := &Pipeline{
		client: client,
		opts:   opts,
		sink:   sink,
		logger: logging.NewNopLogger(),
	}
	for _, o := range options {
		o(p)
	}
	return p
}

func (p *Pipeline) emit(severity model.Severity, format string, args ...any) {
	p.sink(model.NewLogEvent(severity, format, args...))
}

// ClearDirectory removes the plain files in the save directory, creating it
// if needed. Failures are reported through the sink only.
func (p *Pipeline) ClearDirectory() {
	dir := p.opts.SaveDir
	p.emit(model.SeveritySystem, "Deleting existing files in '%s'...", dir)

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		p.emit(model.SeverityError, "Error while clearing folder: %v", err)
		p.logger.Error("create save directory", "dir", dir, "error", err)
		return
	}

	removed, err := platform.ClearFiles(dir)
	if err != nil {
		p.emit(model.SeverityError, "Error while clearing folder: %v", err)
		p.logger.Error("clear save directory", "dir", dir, "removed", removed, "error", err)
		return
	}
	p.emit(model.SeveritySystem, "Folder cleared (%d files removed).", removed)
	p.logger.Debug("save directory cleared", "dir", dir, "removed", removed)
}

// Run clears the save directory and exports every spreadsheet under rootID.
// The returned error is non-nil only for a fatal *RunError; the summary then
// has RunStatusFailed.
func (p *Pipeline) Run(ctx context.Context, rootID string) (summary model.RunSummary, err error) {
	summary = model.RunSummary{
		SaveDir: p.opts.SaveDir,
		Started: time.Now(),
	}

	defer func() {
		if r := recover(); r != nil {
			err = &RunError{Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			summary.Status = model.RunStatusFailed
			summary.Err = err
			summary.Message = err.Error()
			p.logger.Error("export aborted", "root", rootID, "error", err)
		}
		summary.Finished = time.Now()
	}()

	p.ClearDirectory()

	files := p.enumerate(ctx, rootID)
	if err := ctx.Err(); err != nil {
		return summary, &RunError{Err: err}
	}

	summary.Files = len(files)
	if len(files) == 0 {
		summary.Status = model.RunStatusEmpty
		summary.Message = "Done: no spreadsheets to download were found."
		return summary, nil
	}
	p.emit(model.SeverityInfo, "Found %d spreadsheet files.", len(files))
	p.logger.Info("spreadsheets found", "root", rootID, "count", len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, &RunError{Err: err}
		}
		p.emit(model.SeverityHighlight, "[%d/%d] Processing: '%s'", i+1, len(files), file.Name)
		summary.Exported += p.exportFile(ctx, file)
	}

	summary.Status = model.RunStatusCompleted
	summary.Message = fmt.Sprintf("All done! Downloaded %d sheets in total.", summary.Exported)
	p.logger.Info("export finished", "root", rootID, "files", summary.Files, "exported", summary.Exported)
	return summary, nil
}

// enumerate drains the folder walk. A spreadsheet linked from several
// folders is kept once.
func (p *Pipeline) enumerate(ctx context.Context, rootID string) []model.FileDescriptor {
	p.emit(model.SeverityInfo, "Searching for spreadsheet files in root folder (%s)...", rootID)

	res := traverse.Collect(ctx, p.client, rootID, func(msg string) {
		p.emit(model.SeverityError, "%s", msg)
		p.logger.Warn("folder listing failed", "detail", msg)
	})

	seen := make(map[string]struct{}, len(res.Files))
	files := make([]model.FileDescriptor, 0, len(res.Files))
	for _, f := range res.Files {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		files = append(files, f)
	}
	return files
}

// exportFile exports the target tabs of one spreadsheet and returns how many
// were written
func (p *Pipeline) exportFile(ctx context.Context, file model.FileDescriptor) int {
	tabs, err := p.client.ListTabNames(ctx, file.ID)
	if err != nil {
		p.emit(model.SeverityWarn, "-> Could not read the sheet list of '%s'. Skipping.", file.Name)
		p.logger.Warn("tab names unavailable", "file_id", file.ID, "error", err)
		return 0
	}

	matched := MatchTabs(tabs, p.opts.TargetTabs)
	if len(matched) == 0 {
		p.emit(model.SeverityWarn, "-> No %s sheet found in '%s'. (sheets found: [%s])",
			quoteJoin(p.opts.TargetTabs, " or "), file.Name, quoteJoin(tabs, ", "))
		return 0
	}

	exported := 0
	for _, tab := range matched {
		if p.exportTab(ctx, file, tab) {
			exported++
		}
	}
	return exported
}

func (p *Pipeline) exportTab(ctx context.Context, file model.FileDescriptor, tab string) bool {
	p.emit(model.SeverityInfo, "-> Downloading sheet '%s'...", tab)

	table, err := p.client.FetchTab(ctx, file.ID, tab)
	if err == nil {
		path := filepath.Join(p.opts.SaveDir, OutputFileName(file.Name, tab))
		if err = WriteCSV(path, table); err == nil {
			p.emit(model.SeveritySuccess, "   -> Saved: %s", path)
			p.mirrorFile(ctx, path)
			return true
		}
	}

	p.emit(model.SeverityError, "   -> Download failed: %s (file: %s)", tab, file.Name)
	p.emit(model.SeverityError, "   -> Error: %v", err)
	p.emit(model.SeverityError, "   -> Check the sheet naming convention and the sheet contents.")

	var fetchErr *drive.TabFetchError
	if errors.As(err, &fetchErr) {
		p.logger.Warn("tab fetch failed", "file_id", fetchErr.SpreadsheetID, "tab", fetchErr.TabName, "error", fetchErr.Err)
	} else {
		p.logger.Warn("tab write failed", "file_id", file.ID, "tab", tab, "error", err)
	}
	return false
}

func (p *Pipeline) mirrorFile(ctx context.Context, path string) {
	if p.mirror == nil {
		return
	}
	if err := p.mirror.Put(ctx, path); err != nil {
		p.emit(model.SeverityWarn, "   -> Mirror upload failed: %v", err)
		p.logger.Warn("mirror upload failed", "path", path, "error", err)
	}
}

// MatchTabs returns the targets present in tabs, in target order. Each
// target matches on its own; a spreadsheet with only one of them still
// exports that one. A target listed twice is matched once.
func MatchTabs(tabs, targets []string) []string {
	present := make(map[string]struct{}, len(tabs))
	for _, t := range tabs {
		present[t] = struct{}{}
	}

	var matched []string
	for _, target := range targets {
		if _, ok := present[target]; ok {
			matched = append(matched, target)
			delete(present, target)
		}
	}
	return matched
}

func quoteJoin(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, sep)
}
