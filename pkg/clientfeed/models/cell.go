// Package models defines the data structures exchanged between the row
// source, the record mapper, and the output sink.
package models

import (
	"math"
	"strconv"
)

// CellKind identifies the runtime shape of a spreadsheet cell value.
type CellKind int

const (
	// CellAbsent marks a missing or blank cell.
	CellAbsent CellKind = iota
	// CellNumber marks a numeric cell (integers arrive as whole floats).
	CellNumber
	// CellText marks a textual cell.
	CellText
)

// Cell is a closed variant over the loosely-typed scalar values a
// spreadsheet column can hold. The zero value is an absent cell.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Absent returns the absent cell.
func Absent() Cell {
	return Cell{kind: CellAbsent}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{kind: CellNumber, num: v}
}

// Text returns a textual cell.
func Text(s string) Cell {
	return Cell{kind: CellText, text: s}
}

// Kind returns the cell's variant.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsAbsent reports whether the cell is missing.
func (c Cell) IsAbsent() bool {
	return c.kind == CellAbsent
}

// Float returns the numeric value; zero for non-numeric cells.
func (c Cell) Float() float64 {
	return c.num
}

// Value returns the raw underlying value: nil, float64, or string.
func (c Cell) Value() interface{} {
	switch c.kind {
	case CellNumber:
		return c.num
	case CellText:
		return c.text
	default:
		return nil
	}
}

// String renders the cell's natural string form. Whole-valued numbers
// render without a fractional part, so a numeric 12345 never becomes
// "12345.0".
func (c Cell) String() string {
	switch c.kind {
	case CellNumber:
		if math.IsNaN(c.num) {
			return ""
		}
		if c.num == math.Trunc(c.num) && math.Abs(c.num) < 1e15 {
			return strconv.FormatInt(int64(c.num), 10)
		}
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case CellText:
		return c.text
	default:
		return ""
	}
}
