package drive

import (
	"context"
	"iter"

	"github.com/ytget/sheets-downloader/internal/model"
)

// Lister lists the children of a folder. Pages are flattened into one
// sequence; a failure yields a *RemoteAccessError and ends the sequence.
type Lister interface {
	ListChildren(ctx context.Context, folderID string) iter.Seq2[model.RemoteItem, error]
}

// Client defines the remote operations used by the export pipeline.
type Client interface {
	Lister

	// ListTabNames returns the tab titles of a spreadsheet in sheet order.
	// Failures wrap ErrTabsUnavailable.
	ListTabNames(ctx context.Context, spreadsheetID string) ([]string, error)

	// FetchTab downloads one tab as a table. Failures are *TabFetchError.
	FetchTab(ctx context.Context, spreadsheetID, tabName string) (*model.Table, error)
}
