package source

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"clientfeed/pkg/clientfeed/models"
)

func writeTestWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	build(f)

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "entityType")
		f.SetCellValue("Sheet1", "B1", "name")
		f.SetCellValue("Sheet1", "C1", "Duns Number")
		f.SetCellValue("Sheet1", "A2", "ORGANISATION")
		f.SetCellValue("Sheet1", "B2", "Acme Ltd")
		f.SetCellValue("Sheet1", "C2", 123456789)
		f.SetCellValue("Sheet1", "B3", "Jane Doe")
	})

	table, err := ReadWorkbook(path, "")
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if table.Sheet != "Sheet1" {
		t.Errorf("Expected sheet 'Sheet1', got %q", table.Sheet)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 data rows, got %d", len(table.Rows))
	}

	row := table.Rows[0]
	if c := row.Cell("entityType"); c.String() != "ORGANISATION" {
		t.Errorf("Expected 'ORGANISATION', got %q", c.String())
	}
	if c := row.Cell("Duns Number"); c.Kind() != models.CellNumber || c.Float() != 123456789 {
		t.Errorf("Expected numeric cell 123456789, got %v (kind %v)", c.Value(), c.Kind())
	}
	if c := table.Rows[1].Cell("entityType"); !c.IsAbsent() {
		t.Errorf("Expected absent cell for blank column, got %v", c.Value())
	}
}

func TestReadWorkbookSkipsLeadingBlankRows(t *testing.T) {
	path := writeTestWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A3", "name")
		f.SetCellValue("Sheet1", "A4", "Jane")
	})

	table, err := ReadWorkbook(path, "")
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	if len(table.Header) == 0 || table.Header[0] != "name" {
		t.Errorf("Expected header ['name'], got %v", table.Header)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 data row, got %d", len(table.Rows))
	}
}

func TestReadWorkbookSheetNotFound(t *testing.T) {
	path := writeTestWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "name")
	})

	_, err := ReadWorkbook(path, "Missing")
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestReadWorkbookNoHeader(t *testing.T) {
	path := writeTestWorkbook(t, func(f *excelize.File) {})

	_, err := ReadWorkbook(path, "")
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		kind  models.CellKind
	}{
		{"123", models.CellNumber},
		{"123.45", models.CellNumber},
		{"-100", models.CellNumber},
		{"hello", models.CellText},
		{"2024-01-15", models.CellText},
		// ParseFloat accepts these spellings, but they are not numbers
		{"Infinity", models.CellText},
		{"inf", models.CellText},
		{"+Inf", models.CellText},
		{"-Infinity", models.CellText},
		{"NaN", models.CellText},
	}

	for _, tt := range tests {
		if got := classify(tt.input).Kind(); got != tt.kind {
			t.Errorf("classify(%q) kind = %v, expected %v", tt.input, got, tt.kind)
		}
	}
}
