package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/sheets-downloader/internal/auth"
	"github.com/ytget/sheets-downloader/internal/config"
	"github.com/ytget/sheets-downloader/internal/drive"
	"github.com/ytget/sheets-downloader/internal/export"
	"github.com/ytget/sheets-downloader/internal/logging"
	"github.com/ytget/sheets-downloader/internal/model"
)

// DefaultEventBuffer is the capacity of a run's event channel
const DefaultEventBuffer = 64

var (
	// ErrRunInProgress is returned by Start while another run is active
	ErrRunInProgress = errors.New("an export is already running")

	// ErrInvalidRequest is returned by Start for a request missing its
	// folder id or save directory
	ErrInvalidRequest = errors.New("folder id and save directory are required")
)

// Service handles export runs, one at a time
type Service struct {
	connect     ConnectFunc
	mirror      export.Mirror
	targetTabs  []string
	eventBuffer int

	mu      sync.Mutex
	running bool
}

// Option customizes a Service
type Option func(*Service)

// WithMirror copies every exported file through m
func WithMirror(m export.Mirror) Option {
	return func(s *Service) { s.mirror = m }
}

// WithTargetTabs sets the tabs exported when a request names none
func WithTargetTabs(tabs []string) Option {
	return func(s *Service) { s.targetTabs = tabs }
}

// NewService creates a new export service
func NewService(connect ConnectFunc, opts ...Option) *Service {
	s := &Service{
		connect:     connect,
		targetTabs:  config.DefaultTargetTabs,
		eventBuffer: DefaultEventBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GoogleConnector returns a ConnectFunc that authorizes with a and builds a
// Drive/Sheets client on the resulting HTTP client.
func GoogleConnector(a *auth.Authenticator, opts ...drive.ClientOption) ConnectFunc {
	return func(ctx context.Context) (drive.Client, error) {
		httpClient, err := a.Client(ctx)
		if err != nil {
			return nil, err
		}
		client, err := drive.NewGoogleClient(ctx, httpClient, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// Running reports whether a run is in progress
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start begins a run in the background
func (s *Service) Start(req Request) (<-chan model.Event, error) {
	req.FolderID = strings.TrimSpace(req.FolderID)
	req.SaveDir = strings.TrimSpace(req.SaveDir)
	if req.FolderID == "" || req.SaveDir == "" {
		return nil, ErrInvalidRequest
	}
	if len(req.TargetTabs) == 0 {
		req.TargetTabs = s.targetTabs
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	s.running = true
	s.mu.Unlock()

	events := make(chan model.Event, s.eventBuffer)
	go s.run(req, uuid.NewString(), events)
	return events, nil
}

func (s *Service) run(req Request, runID string, events chan<- model.Event) {
	logger := logging.WithRun(runID)
	started := time.Now()

	emit := func(ev model.LogEvent) {
		events <- model.Event{Log: &ev}
	}

	var summary model.RunSummary
	defer func() {
		if r := recover(); r != nil {
			summary = failedSummary(&export.RunError{Err: fmt.Errorf("panic: %v", r)}, req, started)
		}
		summary.RunID = runID
		logger.Info("run finished", "status", summary.Status, "exported", summary.Exported, "duration", summary.Duration())

		s.mu.Lock()
		s.running = false
		s.mu.Unlock()

		events <- model.Event{Done: &summary}
		close(events)
	}()

	logger.Info("run started", "folder_id", req.FolderID, "save_dir", req.SaveDir)
	ctx := context.Background()

	emit(model.NewLogEvent(model.SeverityInfo, "Starting Google API authentication..."))
	client, err := s.connect(ctx)
	if err != nil {
		logger.Error("authentication failed", "error", err)
		var authErr *auth.AuthError
		if !errors.As(err, &authErr) {
			err = &auth.AuthError{Op: "connect", Err: err}
		}
		summary = failedSummary(err, req, started)
		return
	}
	emit(model.NewLogEvent(model.SeveritySuccess, "Authentication succeeded."))

	opts := []export.Option{export.WithLogger(logger)}
	if s.mirror != nil {
		opts = append(opts, export.WithMirror(s.mirror))
	}
	pipeline := export.NewPipeline(client, export.Options{
		SaveDir:    req.SaveDir,
		TargetTabs: req.TargetTabs,
	}, emit, opts...)

	summary, _ = pipeline.Run(ctx, req.FolderID)
}

func failedSummary(err error, req Request, started time.Time) model.RunSummary {
	return model.RunSummary{
		Status:   model.RunStatusFailed,
		Message:  err.Error(),
		Err:      err,
		SaveDir:  req.SaveDir,
		Started:  started,
		Finished: time.Now(),
	}
}
