// Package traverse walks a Drive folder tree breadth-first and reports the
// spreadsheets it finds, one batch per folder.
package traverse

import (
	"context"
	"errors"
	"iter"

	"github.com/ytget/sheets-downloader/internal/drive"
	"github.com/ytget/sheets-downloader/internal/model"
)

// Walk lists rootID and every folder below it, breadth-first. Each folder is
// listed at most once even when reachable through several parents. A folder
// whose listing fails yields a log event and its subtree is abandoned;
// spreadsheets already seen in that folder are still reported.
func Walk(ctx context.Context, lister drive.Lister, rootID string) iter.Seq[model.TraversalEvent] {
	return func(yield func(model.TraversalEvent) bool) {
		pending := []string{rootID}
		visited := make(map[string]struct{})

		for len(pending) > 0 {
			if ctx.Err() != nil {
				return
			}

			folderID := pending[0]
			pending = pending[1:]

			if _, seen := visited[folderID]; seen {
				continue
			}
			visited[folderID] = struct{}{}

			var batch []model.FileDescriptor
			var listErr error
			for item, err := range lister.ListChildren(ctx, folderID) {
				if err != nil {
					listErr = err
					break
				}
				switch item.Kind {
				case model.KindFolder:
					pending = append(pending, item.ID)
				case model.KindSpreadsheet:
					batch = append(batch, item.Descriptor())
				case model.KindOther:
				}
			}

			if len(batch) > 0 {
				if !yield(model.TraversalEvent{Type: model.TraversalFiles, Files: batch, FolderID: folderID}) {
					return
				}
			}

			if listErr != nil {
				if !yield(model.TraversalEvent{Type: model.TraversalLog, Message: describe(folderID, listErr), FolderID: folderID}) {
					return
				}
			}
		}
	}
}

func describe(folderID string, err error) string {
	var accessErr *drive.RemoteAccessError
	if errors.As(err, &accessErr) {
		return accessErr.Error()
	}
	return (&drive.RemoteAccessError{FolderID: folderID, Err: err}).Error()
}

// Result is a fully drained traversal
type Result struct {
	Files  []model.FileDescriptor
	Errors []string
}

// Collect drains Walk. onLog, if set, is called for each failure as it
// happens so progress can be shown before the walk ends.
func Collect(ctx context.Context, lister drive.Lister, rootID string, onLog func(string)) Result {
	var res Result
	for ev := range Walk(ctx, lister, rootID) {
		switch ev.Type {
		case model.TraversalFiles:
			res.Files = append(res.Files, ev.Files...)
		case model.TraversalLog:
			res.Errors = append(res.Errors, ev.Message)
			if onLog != nil {
				onLog(ev.Message)
			}
		}
	}
	return res
}
