// Package infer classifies JSON values into SQL column types.
//
// The classifier is a fixed-priority cascade: each rule is tried in order and
// the first match wins. Every path terminates in a concrete type; the final
// VARCHAR fallback guarantees totality, so classification never fails.
package infer

import "strconv"

// Kind enumerates the closed set of column types the classifier can produce.
type Kind uint8

const (
	Varchar Kind = iota
	Int
	Long
	Char1
	Boolean
	Date
	DateTime
)

// PaddingFactor is added to the observed text length when sizing a VARCHAR
// column, leaving headroom for longer values later in the dataset. The width
// is computed from the first observed value only; there is no cross-record
// widening.
const PaddingFactor = 12

// NullWidth is the VARCHAR width assigned to null values.
const NullWidth = 50

// ColumnType is a SQL column type tag. Width is meaningful for Varchar only.
type ColumnType struct {
	Kind  Kind
	Width int
}

// String renders the type the way it appears in the generated DDL.
func (t ColumnType) String() string {
	switch t.Kind {
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Char1:
		return "CHAR(1)"
	case Boolean:
		return "BOOLEAN"
	case Date:
		return "DATE"
	case DateTime:
		return "DATETIME"
	default:
		return "VARCHAR(" + strconv.Itoa(t.Width) + ")"
	}
}
