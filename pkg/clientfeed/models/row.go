package models

// Row is one input row, keyed by the exact spreadsheet header string.
// Rows are read-only inputs to the mapper.
type Row map[string]Cell

// Cell returns the value of the named column, or the absent cell when
// the column is missing. Column names are case-sensitive.
func (r Row) Cell(column string) Cell {
	if c, ok := r[column]; ok {
		return c
	}
	return Absent()
}
