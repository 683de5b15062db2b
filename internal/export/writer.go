package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ytget/sheets-downloader/internal/model"
)

const (
	// utf8BOM lets spreadsheet applications detect the encoding
	utf8BOM = "\ufeff"

	// FileExtension of exported tabs
	FileExtension = ".csv"

	// DefaultFilePermissions for written CSV files
	DefaultFilePermissions = 0644
)

// SanitizeFileName keeps letters, numbers (including superscripts and
// fractions), spaces, underscores and hyphens and drops everything else. Trailing whitespace is trimmed.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r):
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// OutputFileName returns the file name for one exported tab
func OutputFileName(spreadsheetName, tabName string) string {
	return SanitizeFileName(spreadsheetName) + "_" + tabName + FileExtension
}

// WriteCSV writes table to path as comma separated UTF-8 with a BOM.
// The header row is written first; no index column is added.
func WriteCSV(path string, table *model.Table) error {
	if table == nil {
		return fmt.Errorf("nil table for %s", filepath.Base(path))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := writeTable(f, table); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func writeTable(f *os.File, table *model.Table) error {
	if _, err := f.WriteString(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return err
	}
	return w.Error()
}
