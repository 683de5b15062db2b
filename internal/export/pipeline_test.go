package export

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sheets-downloader/internal/drive"
	"github.com/ytget/sheets-downloader/internal/model"
)

// fakeClient is an in-memory Drive: folders, spreadsheet tab lists and tab
// contents keyed by "id/tab".
type fakeClient struct {
	children  map[string][]model.RemoteItem
	failing   map[string]bool
	tabs      map[string][]string
	tables    map[string]*model.Table
	fetchErrs map[string]error
	panicOn   string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		children:  map[string][]model.RemoteItem{},
		failing:   map[string]bool{},
		tabs:      map[string][]string{},
		tables:    map[string]*model.Table{},
		fetchErrs: map[string]error{},
	}
}

func (c *fakeClient) addSheet(folderID, id, name string, tabs ...string) {
	c.children[folderID] = append(c.children[folderID], model.RemoteItem{ID: id, Name: name, Kind: model.KindSpreadsheet})
	c.tabs[id] = tabs
	for _, tab := range tabs {
		c.tables[id+"/"+tab] = &model.Table{
			Header: []string{"column", "type"},
			Rows:   [][]string{{"id", "int"}, {name, tab}},
		}
	}
}

func (c *fakeClient) addFolder(parentID, id string) {
	c.children[parentID] = append(c.children[parentID], model.RemoteItem{ID: id, Name: id, Kind: model.KindFolder})
}

func (c *fakeClient) ListChildren(_ context.Context, folderID string) iter.Seq2[model.RemoteItem, error] {
	return func(yield func(model.RemoteItem, error) bool) {
		if c.failing[folderID] {
			yield(model.RemoteItem{}, &drive.RemoteAccessError{FolderID: folderID, Err: errors.New("connection reset")})
			return
		}
		for _, item := range c.children[folderID] {
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (c *fakeClient) ListTabNames(_ context.Context, id string) ([]string, error) {
	if id == c.panicOn {
		panic("boom")
	}
	tabs, ok := c.tabs[id]
	if !ok {
		return nil, drive.ErrTabsUnavailable
	}
	return tabs, nil
}

func (c *fakeClient) FetchTab(_ context.Context, id, tab string) (*model.Table, error) {
	if err, ok := c.fetchErrs[id+"/"+tab]; ok {
		return nil, &drive.TabFetchError{SpreadsheetID: id, TabName: tab, Err: err}
	}
	return c.tables[id+"/"+tab], nil
}

type recorder struct {
	mu     sync.Mutex
	events []model.LogEvent
}

func (r *recorder) sink(ev model.LogEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) bySeverity(s model.Severity) []string {
	var out []string
	for _, ev := range r.events {
		if ev.Severity == s {
			out = append(out, ev.Message)
		}
	}
	return out
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRun_ExportsMatchedTabs(t *testing.T) {
	client := newFakeClient()
	client.addFolder("root", "sub")
	client.addSheet("root", "s1", "Orders", "Table", "Notes")
	client.addSheet("sub", "s2", "Users", "Schema", "Table")

	dir := t.TempDir()
	rec := &recorder{}
	p := NewPipeline(client, Options{SaveDir: dir}, rec.sink)

	summary, err := p.Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusCompleted, summary.Status)
	assert.Equal(t, 2, summary.Files)
	assert.Equal(t, 3, summary.Exported)
	assert.Contains(t, summary.Message, "3")
	assert.Equal(t, []string{"Orders_Table.csv", "Users_Schema.csv", "Users_Table.csv"}, listDir(t, dir))
	assert.Empty(t, rec.bySeverity(model.SeverityError))
	assert.Empty(t, rec.bySeverity(model.SeverityWarn))
	assert.Len(t, rec.bySeverity(model.SeveritySuccess), 3)
}

func TestRun_TargetOrderNotSheetOrder(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Users", "Schema", "Table")

	rec := &recorder{}
	dir := t.TempDir()
	_, err := NewPipeline(client, Options{SaveDir: dir}, rec.sink).Run(context.Background(), "root")
	require.NoError(t, err)

	saved := rec.bySeverity(model.SeveritySuccess)
	require.Len(t, saved, 2)
	assert.True(t, strings.HasSuffix(saved[0], "Users_Table.csv"))
	assert.True(t, strings.HasSuffix(saved[1], "Users_Schema.csv"))
}

func TestRun_CSVFormat(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table")
	client.tables["s1/Table"] = &model.Table{
		Header: []string{"name", "note"},
		Rows:   [][]string{{"a", "x,y"}, {"b", ""}},
	}

	dir := t.TempDir()
	_, err := NewPipeline(client, Options{SaveDir: dir}, nil).Run(context.Background(), "root")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Orders_Table.csv"))
	require.NoError(t, err)
	assert.Equal(t, "\ufeffname,note\na,\"x,y\"\nb,\n", string(data))
}

func TestRun_NoTargetTabsWarnsOnce(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Misc", "Notes", "Data")

	dir := t.TempDir()
	rec := &recorder{}
	summary, err := NewPipeline(client, Options{SaveDir: dir}, rec.sink).Run(context.Background(), "root")
	require.NoError(t, err)

	warns := rec.bySeverity(model.SeverityWarn)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "'Notes', 'Data'")
	assert.Equal(t, 0, summary.Exported)
	assert.Empty(t, listDir(t, dir))
}

func TestRun_TabsUnavailableSkipsFile(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Broken", "Table")
	delete(client.tabs, "s1")
	client.addSheet("root", "s2", "Fine", "Table")

	dir := t.TempDir()
	rec := &recorder{}
	summary, err := NewPipeline(client, Options{SaveDir: dir}, rec.sink).Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Exported)
	assert.Equal(t, []string{"Fine_Table.csv"}, listDir(t, dir))
	warns := rec.bySeverity(model.SeverityWarn)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "Broken")
}

func TestRun_TabFailureIsPerTab(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table", "Schema")
	client.fetchErrs["s1/Table"] = errors.New("status 400")

	dir := t.TempDir()
	rec := &recorder{}
	summary, err := NewPipeline(client, Options{SaveDir: dir}, rec.sink).Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusCompleted, summary.Status)
	assert.Equal(t, 1, summary.Exported)
	assert.Equal(t, []string{"Orders_Schema.csv"}, listDir(t, dir))

	errs := rec.bySeverity(model.SeverityError)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "Table")
	assert.Contains(t, errs[0], "Orders")
	assert.Contains(t, errs[1], "status 400")
}

func TestRun_FolderErrorLoggedAndContinues(t *testing.T) {
	client := newFakeClient()
	client.addFolder("root", "locked")
	client.addFolder("root", "open")
	client.addSheet("open", "s1", "Orders", "Table")
	client.failing["locked"] = true

	dir := t.TempDir()
	rec := &recorder{}
	summary, err := NewPipeline(client, Options{SaveDir: dir}, rec.sink).Run(context.Background(), "root")
	require.NoError(t, err)

	errs := rec.bySeverity(model.SeverityError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "locked")
	assert.Equal(t, 1, summary.Exported)
}

func TestRun_EmptyFolder(t *testing.T) {
	client := newFakeClient()
	client.addFolder("root", "sub")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.csv"), []byte("x"), 0644))

	summary, err := NewPipeline(client, Options{SaveDir: dir}, nil).Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, model.RunStatusEmpty, summary.Status)
	assert.Equal(t, 0, summary.Exported)
	assert.Contains(t, summary.Message, "no spreadsheets")
	assert.Empty(t, listDir(t, dir))
}

func TestRun_Idempotent(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table", "Schema")
	client.addFolder("root", "sub")
	client.addSheet("sub", "s2", "Users", "Table")

	dir := t.TempDir()
	p := NewPipeline(client, Options{SaveDir: dir}, nil)

	_, err := p.Run(context.Background(), "root")
	require.NoError(t, err)
	first := listDir(t, dir)

	_, err = p.Run(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, first, listDir(t, dir))
}

func TestRun_ClearKeepsSubdirectories(t *testing.T) {
	client := newFakeClient()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "keep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep", "inner.csv"), []byte("x"), 0644))

	_, err := NewPipeline(client, Options{SaveDir: dir}, nil).Run(context.Background(), "root")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "keep", "inner.csv"))
	assert.NoError(t, err)
}

func TestRun_CreatesMissingSaveDir(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table")

	dir := filepath.Join(t.TempDir(), "nested", "out")
	summary, err := NewPipeline(client, Options{SaveDir: dir}, nil).Run(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Exported)
}

func TestRun_DuplicateFileExportedOnce(t *testing.T) {
	client := newFakeClient()
	client.addFolder("root", "a")
	client.addSheet("root", "s1", "Orders", "Table")
	client.children["a"] = append(client.children["a"], model.RemoteItem{ID: "s1", Name: "Orders", Kind: model.KindSpreadsheet})

	summary, err := NewPipeline(client, Options{SaveDir: t.TempDir()}, nil).Run(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 1, summary.Exported)
}

func TestRun_PanicBecomesRunError(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table")
	client.addSheet("root", "s2", "Users", "Table")
	client.panicOn = "s1"

	dir := t.TempDir()
	summary, err := NewPipeline(client, Options{SaveDir: dir}, nil).Run(context.Background(), "root")

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, model.RunStatusFailed, summary.Status)
	assert.Contains(t, summary.Message, "boom")
	assert.Empty(t, listDir(t, dir))
}

func TestRun_CancelledContext(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewPipeline(client, Options{SaveDir: t.TempDir()}, nil).Run(ctx, "root")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, model.RunStatusFailed, summary.Status)
}

type fakeMirror struct {
	paths []string
	err   error
}

func (m *fakeMirror) Put(_ context.Context, path string) error {
	m.paths = append(m.paths, path)
	return m.err
}

func TestRun_Mirror(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table", "Schema")

	dir := t.TempDir()
	m := &fakeMirror{err: errors.New("bucket gone")}
	rec := &recorder{}
	summary, err := NewPipeline(client, Options{SaveDir: dir}, rec.sink, WithMirror(m)).Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Exported)
	assert.Equal(t, []string{
		filepath.Join(dir, "Orders_Table.csv"),
		filepath.Join(dir, "Orders_Schema.csv"),
	}, m.paths)
	assert.Len(t, rec.bySeverity(model.SeverityWarn), 2)
}

func TestMatchTabs(t *testing.T) {
	targets := []string{"Table", "Schema"}
	assert.Equal(t, []string{"Table"}, MatchTabs([]string{"Table", "Notes"}, targets))
	assert.Equal(t, []string{"Table", "Schema"}, MatchTabs([]string{"Schema", "x", "Table"}, targets))
	assert.Empty(t, MatchTabs([]string{"table", "schema"}, targets))
	assert.Empty(t, MatchTabs(nil, targets))
	assert.Equal(t, []string{"Table"}, MatchTabs([]string{"Table"}, []string{"Table", "Table"}))
}

func TestRun_RepeatedTargetExportedOnce(t *testing.T) {
	client := newFakeClient()
	client.addSheet("root", "s1", "Orders", "Table")

	dir := t.TempDir()
	rec := &recorder{}
	summary, err := NewPipeline(client, Options{SaveDir: dir, TargetTabs: []string{"Table", "Table"}}, rec.sink).
		Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Exported)
	assert.Equal(t, []string{"Orders_Table.csv"}, listDir(t, dir))
	assert.Len(t, rec.bySeverity(model.SeveritySuccess), 1)
}
