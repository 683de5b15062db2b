package download

import (
	"context"

	"github.com/ytget/sheets-downloader/internal/drive"
	"github.com/ytget/sheets-downloader/internal/model"
)

// Runner defines the interface for the export service.
type Runner interface {
	// Start begins a run and returns its event stream. The stream ends with
	// one terminal event and is then closed.
	Start(req Request) (<-chan model.Event, error)

	// Running reports whether a run is in progress
	Running() bool
}

// ConnectFunc authenticates and returns a remote client. It is called once
// per run before anything touches the save directory.
type ConnectFunc func(ctx context.Context) (drive.Client, error)

// Request describes one run
type Request struct {
	FolderID   string
	SaveDir    string
	TargetTabs []string
}
