package model

import (
	"testing"
	"time"
)

func TestKindFromMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		expected ItemKind
	}{
		{MimeTypeFolder, KindFolder},
		{MimeTypeSpreadsheet, KindSpreadsheet},
		{"application/pdf", KindOther},
		{"", KindOther},
	}

	for _, test := range tests {
		result := KindFromMimeType(test.mimeType)
		if result != test.expected {
			t.Errorf("KindFromMimeType(%q) = %s, expected %s", test.mimeType, result, test.expected)
		}
	}
}

func TestRemoteItem_Descriptor(t *testing.T) {
	item := RemoteItem{ID: "abc", Name: "Report", Kind: KindSpreadsheet}
	fd := item.Descriptor()

	if fd.ID != "abc" || fd.Name != "Report" {
		t.Errorf("Descriptor() = %+v, expected id=abc name=Report", fd)
	}
}

func TestTable_RowCount(t *testing.T) {
	var nilTable *Table
	if nilTable.RowCount() != 0 {
		t.Error("Expected nil table to have 0 rows")
	}

	table := &Table{Header: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}}
	if table.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.RowCount())
	}
}

func TestRunSummary_Duration(t *testing.T) {
	start := time.Now()
	summary := &RunSummary{Started: start, Finished: start.Add(3 * time.Second)}
	if summary.Duration() != 3*time.Second {
		t.Errorf("Duration() = %v, expected 3s", summary.Duration())
	}

	if (&RunSummary{}).Duration() != 0 {
		t.Error("Expected zero duration for unfinished run")
	}
}

func TestEvent_IsTerminal(t *testing.T) {
	log := NewLogEvent(SeverityInfo, "step %d", 1)
	if (Event{Log: &log}).IsTerminal() {
		t.Error("Log event should not be terminal")
	}
	if log.Message != "step 1" {
		t.Errorf("Expected message 'step 1', got '%s'", log.Message)
	}
	if !(Event{Done: &RunSummary{}}).IsTerminal() {
		t.Error("Done event should be terminal")
	}
}
