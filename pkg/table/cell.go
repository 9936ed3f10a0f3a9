// pkg/table/cell.go
package table

import (
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the value types a cell can hold after coercion.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is a single tabular value. Raw sheets carry only text cells;
// coercion rewrites them to numbers, dates or nulls.
type Cell struct {
	Kind Kind
	Num  float64
	Time time.Time
	Str  string
}

func Null() Cell            { return Cell{Kind: KindNull} }
func Text(s string) Cell    { return Cell{Kind: KindText, Str: s} }
func Number(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }

// Date builds a date cell truncated to midnight; any time-of-day
// component of t is discarded.
func Date(t time.Time) Cell {
	y, m, d := t.Date()
	return Cell{Kind: KindDate, Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// IsNull reports whether the cell should be treated as missing. Text
// cells holding common null spellings count as missing too.
func (c Cell) IsNull() bool {
	switch c.Kind {
	case KindNull:
		return true
	case KindText:
		switch strings.TrimSpace(c.Str) {
		case "", "nan", "NaN", "null", "NULL", "nil", "NIL":
			return true
		}
	}
	return false
}

// Encode renders the cell for CSV output. Nulls become empty fields,
// dates lose their time component.
func (c Cell) Encode() string {
	switch c.Kind {
	case KindNull:
		return ""
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindDate:
		return c.Time.Format("2006-01-02")
	default:
		return c.Str
	}
}
