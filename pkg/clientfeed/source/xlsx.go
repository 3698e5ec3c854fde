// Package source reads tabular client rows out of xlsx workbooks. The
// first non-blank row of a sheet is the header; every following row
// becomes a models.Row keyed by the exact header strings.
package source

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"clientfeed/pkg/clientfeed/models"
)

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoHeader indicates the sheet has no header row to key columns by.
var ErrNoHeader = errors.New("sheet has no header row")

// Table is the ordered row batch read from one sheet.
type Table struct {
	// Sheet is the worksheet the rows came from.
	Sheet string
	// Header holds the column names in sheet order.
	Header []string
	// Rows holds the data rows, in sheet order.
	Rows []models.Row
}

// ReadWorkbook opens an xlsx file and reads the named sheet. An empty
// sheet name selects the first sheet in the workbook.
func ReadWorkbook(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return ReadSheet(f, sheet)
}

// ReadSheet reads rows from an already-open workbook.
func ReadSheet(f *excelize.File, sheet string) (*Table, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrNoSheets
		}
		sheet = list[0]
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
		}
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	header, dataStart := findHeader(raw)
	if header == nil {
		return nil, fmt.Errorf("%w: sheet %q", ErrNoHeader, sheet)
	}

	rows := make([]models.Row, 0, len(raw)-dataStart)
	for _, rawRow := range raw[dataStart:] {
		rows = append(rows, buildRow(header, rawRow))
	}

	return &Table{Sheet: sheet, Header: header, Rows: rows}, nil
}

// findHeader locates the first row with at least one non-blank cell and
// returns its trimmed cells plus the index of the first data row.
func findHeader(raw [][]string) ([]string, int) {
	for i, row := range raw {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		header := make([]string, len(row))
		for j, cell := range row {
			header[j] = strings.TrimSpace(cell)
		}
		return header, i + 1
	}
	return nil, 0
}

// buildRow keys a raw row by column name, classifying each cell into the
// Cell variant. Blank cells and cells past the header width are dropped.
func buildRow(header []string, rawRow []string) models.Row {
	row := make(models.Row, len(header))
	for i, value := range rawRow {
		if i >= len(header) || header[i] == "" {
			continue
		}
		if value == "" {
			continue
		}
		row[header[i]] = classify(value)
	}
	return row
}

// classify parses a raw cell string into the Cell variant: numeric if it
// parses as a finite float, text otherwise. ParseFloat also accepts
// spellings like "Infinity" and "NaN"; those are not numeric cell values
// and ±Inf cannot be JSON-encoded, so they stay text.
func classify(s string) models.Cell {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return models.Number(f)
		}
	}
	return models.Text(s)
}
