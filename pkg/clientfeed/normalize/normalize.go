// Package normalize provides the shared value-normalization helpers used
// by the record mapper: emptiness classification and coercion of loose
// spreadsheet scalars to strings, string lists, and epoch timestamps.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"clientfeed/pkg/clientfeed/models"
)

// excelEpoch is day zero of the 1900 date system. Numeric date cells are
// serial day counts from this instant, interpreted in UTC.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order when parsing textual date cells. All
// parses are anchored to UTC; a date-only cell maps to midnight UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"20060102",
}

// IsEmpty classifies a value as empty: nil, absent or NaN cells, strings
// that are blank after trimming, and empty lists or objects. Zero numbers
// and false booleans are not empty.
func IsEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case models.Cell:
		switch v.Kind() {
		case models.CellAbsent:
			return true
		case models.CellNumber:
			return math.IsNaN(v.Float())
		default:
			return strings.TrimSpace(v.String()) == ""
		}
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return math.IsNaN(v)
	case []string:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	case *models.Record:
		return v.Len() == 0
	case []*models.Record:
		return len(v) == 0
	default:
		return false
	}
}

// IdentifierString renders a cell as an identifier value. Whole-valued
// numeric cells render as integer strings, so a numeric 12345 never leaks
// a "12345.0" artifact from a spreadsheet numeric column.
func IdentifierString(c models.Cell) string {
	if c.Kind() == models.CellNumber {
		f := c.Float()
		if !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return c.String()
}

// StringList splits a cell into a list of strings. Text splits on commas
// with each piece trimmed and blank pieces dropped; any other non-empty
// value becomes a single-element list of its natural string form. Empty
// input yields nil.
func StringList(c models.Cell) []string {
	if IsEmpty(c) {
		return nil
	}
	if c.Kind() != models.CellText {
		return []string{c.String()}
	}

	var out []string
	for _, part := range strings.Split(c.String(), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EpochMillis converts a cell to milliseconds since the Unix epoch (UTC).
// Numeric cells are treated as Excel serial dates; textual cells are
// parsed against the known layouts. The second return is false for empty
// or unparseable input, which callers translate to field omission.
func EpochMillis(c models.Cell) (int64, bool) {
	if IsEmpty(c) {
		return 0, false
	}

	if c.Kind() == models.CellNumber {
		serial := c.Float()
		millis := excelEpoch.UnixMilli() + int64(math.Round(serial*86400000))
		return millis, true
	}

	s := strings.TrimSpace(c.String())
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}
