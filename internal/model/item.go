package model

// Drive MIME types that decide an item's kind
const (
	MimeTypeFolder      = "application/vnd.google-apps.folder"
	MimeTypeSpreadsheet = "application/vnd.google-apps.spreadsheet"
)

// ItemKind tells folders, spreadsheets and everything else apart
type ItemKind int

const (
	KindOther ItemKind = iota
	KindFolder
	KindSpreadsheet
)

// String returns a readable name for the kind
func (k ItemKind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindSpreadsheet:
		return "spreadsheet"
	default:
		return "other"
	}
}

// KindFromMimeType maps a Drive MIME type to an ItemKind
func KindFromMimeType(mimeType string) ItemKind {
	switch mimeType {
	case MimeTypeFolder:
		return KindFolder
	case MimeTypeSpreadsheet:
		return KindSpreadsheet
	default:
		return KindOther
	}
}

// RemoteItem is a single child of a Drive folder
type RemoteItem struct {
	ID   string
	Name string
	Kind ItemKind
}

// FileDescriptor identifies a spreadsheet to export
type FileDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Descriptor converts the item to a FileDescriptor
func (ri RemoteItem) Descriptor() FileDescriptor {
	return FileDescriptor{ID: ri.ID, Name: ri.Name}
}

// TraversalEventType distinguishes the two kinds of traversal output
type TraversalEventType string

const (
	// TraversalFiles carries the spreadsheets found in one folder
	TraversalFiles TraversalEventType = "files"

	// TraversalLog carries a folder access failure message
	TraversalLog TraversalEventType = "log"
)

// TraversalEvent is one element of the enumerator's output sequence
type TraversalEvent struct {
	Type     TraversalEventType
	Files    []FileDescriptor // set for TraversalFiles
	Message  string           // set for TraversalLog
	FolderID string           // folder the event belongs to
}

// Table is tabular sheet data with a header row
type Table struct {
	Header []string
	Rows   [][]string
}

// RowCount returns the number of data rows, header excluded
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
