package drive

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ytget/sheets-downloader/internal/model"
)

// Export endpoint and query constants
const (
	DefaultExportBaseURL = "https://docs.google.com/spreadsheets/d/"
	ExportPathFormat     = "%s%s/gviz/tq?tqx=out:csv&sheet=%s"
)

// Drive query constants
const (
	ChildrenQueryFormat = "'%s' in parents and trashed=false"
	ListFields          = "nextPageToken, files(id, name, mimeType)"
	TabTitleFields      = "sheets.properties.title"
	DefaultPageSize     = 100
)

// GoogleClient implements Client against the live Google APIs
type GoogleClient struct {
	files         *gdrive.Service
	sheets        *sheets.Service
	httpClient    *http.Client
	exportBaseURL string
	pageSize      int64
}

type clientOptions struct {
	driveEndpoint  string
	sheetsEndpoint string
	exportBaseURL  string
	pageSize       int64
}

// ClientOption customizes a GoogleClient
type ClientOption func(*clientOptions)

// WithDriveEndpoint overrides the Drive API base URL
func WithDriveEndpoint(endpoint string) ClientOption {
	return func(o *clientOptions) { o.driveEndpoint = endpoint }
}

// WithSheetsEndpoint overrides the Sheets API base URL
func WithSheetsEndpoint(endpoint string) ClientOption {
	return func(o *clientOptions) { o.sheetsEndpoint = endpoint }
}

// WithExportBaseURL overrides the spreadsheet export base URL
func WithExportBaseURL(base string) ClientOption {
	return func(o *clientOptions) { o.exportBaseURL = base }
}

// WithPageSize sets the folder listing page size
func WithPageSize(size int64) ClientOption {
	return func(o *clientOptions) { o.pageSize = size }
}

// NewGoogleClient creates a client on top of an authorized HTTP client
func NewGoogleClient(ctx context.Context, httpClient *http.Client, opts ...ClientOption) (*GoogleClient, error) {
	o := clientOptions{
		exportBaseURL: DefaultExportBaseURL,
		pageSize:      DefaultPageSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	driveOpts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if o.driveEndpoint != "" {
		driveOpts = append(driveOpts, option.WithEndpoint(o.driveEndpoint))
	}
	files, err := gdrive.NewService(ctx, driveOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}

	sheetsOpts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if o.sheetsEndpoint != "" {
		sheetsOpts = append(sheetsOpts, option.WithEndpoint(o.sheetsEndpoint))
	}
	sheetsSvc, err := sheets.NewService(ctx, sheetsOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &GoogleClient{
		files:         files,
		sheets:        sheetsSvc,
		httpClient:    httpClient,
		exportBaseURL: o.exportBaseURL,
		pageSize:      o.pageSize,
	}, nil
}

// ListChildren lists non-trashed children of folderID across all pages
func (c *GoogleClient) ListChildren(ctx context.Context, folderID string) iter.Seq2[model.RemoteItem, error] {
	return func(yield func(model.RemoteItem, error) bool) {
		query := fmt.Sprintf(ChildrenQueryFormat, escapeQueryValue(folderID))
		pageToken := ""

		for {
			call := c.files.Files.List().
				Q(query).
				Spaces("drive").
				Fields(ListFields).
				PageSize(c.pageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}

			resp, err := call.Do()
			if err != nil {
				yield(model.RemoteItem{}, &RemoteAccessError{FolderID: folderID, Err: err})
				return
			}

			for _, f := range resp.Files {
				item := model.RemoteItem{
					ID:   f.Id,
					Name: f.Name,
					Kind: model.KindFromMimeType(f.MimeType),
				}
				if !yield(item, nil) {
					return
				}
			}

			if resp.NextPageToken == "" {
				return
			}
			pageToken = resp.NextPageToken
		}
	}
}

// ListTabNames returns the tab titles of a spreadsheet
func (c *GoogleClient) ListTabNames(ctx context.Context, spreadsheetID string) ([]string, error) {
	resp, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields(TabTitleFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w (ID: %s): %v", ErrTabsUnavailable, spreadsheetID, err)
	}

	names := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh == nil || sh.Properties == nil {
			continue
		}
		names = append(names, sh.Properties.Title)
	}
	return names, nil
}

// FetchTab downloads one tab through the CSV export endpoint
func (c *GoogleClient) FetchTab(ctx context.Context, spreadsheetID, tabName string) (*model.Table, error) {
	wrap := func(err error) error {
		return &TabFetchError{SpreadsheetID: spreadsheetID, TabName: tabName, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ExportURL(spreadsheetID, tabName), nil)
	if err != nil {
		return nil, wrap(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrap(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, wrap(fmt.Errorf("export request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	// A login or error page comes back as HTML with status 200.
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(ct, "text/html") {
		return nil, wrap(fmt.Errorf("unexpected content type %q", ct))
	}

	table, err := ParseTable(resp.Body)
	if err != nil {
		return nil, wrap(err)
	}
	return table, nil
}

// ExportURL builds the CSV export address for one tab
func (c *GoogleClient) ExportURL(spreadsheetID, tabName string) string {
	return fmt.Sprintf(ExportPathFormat, c.exportBaseURL, url.PathEscape(spreadsheetID), url.QueryEscape(tabName))
}

// ErrEmptyTable is returned for an export with no header row
var ErrEmptyTable = errors.New("no columns to parse from export")

// ParseTable reads CSV with a header row. Rows must all have the header's
// width.
func ParseTable(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("malformed CSV header: %w", err)
	}

	table := &model.Table{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV: %w", err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// escapeQueryValue escapes a value for use inside a single-quoted Drive query string
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}
