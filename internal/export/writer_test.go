package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/sheets-downloader/internal/model"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Q3/Report*", "Q3Report"},
		{"Orders 2024", "Orders 2024"},
		{"a_b-c", "a_b-c"},
		{"trailing   ", "trailing"},
		{"  leading", "  leading"},
		{"dots.and:colons?", "dotsandcolons"},
		{"주문 테이블", "주문 테이블"},
		{"***", ""},
		{"tab\tname", "tabname"},
		{"Q²½", "Q²½"},
		{"Part Ⅻ", "Part Ⅻ"},
	}

	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputFileName(t *testing.T) {
	if got := OutputFileName("Q3/Report* ", "Table"); got != "Q3Report_Table.csv" {
		t.Errorf("OutputFileName = %q", got)
	}
}

func TestWriteCSV_NilTable(t *testing.T) {
	if err := WriteCSV(filepath.Join(t.TempDir(), "x.csv"), nil); err == nil {
		t.Error("Expected error for nil table")
	}
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.csv")
	if err := WriteCSV(path, &model.Table{Header: []string{"a", "b"}}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "\ufeffa,b\n" {
		t.Errorf("Unexpected content %q", data)
	}
}

func TestWriteCSV_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "x.csv")
	if err := WriteCSV(path, &model.Table{Header: []string{"a"}}); err == nil {
		t.Error("Expected error for missing directory")
	}
}
