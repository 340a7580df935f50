package infer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Classify maps a decoded JSON value to its SQL column type.
//
// The cascade, first match wins:
//
//	 1. null                                  → VARCHAR(50)
//	 2. lossless 32-bit integer               → INT
//	 3. lossless 64-bit integer               → LONG
//	 4. textual rendering of length <= 1      → CHAR(1)
//	 5. "true"/"false", case-insensitive      → BOOLEAN
//	 6. strict yyyy-mm-dd date literal        → DATE
//	 7. common date-time layout               → DATETIME
//	 8. RFC-822 shaped date-time, lenient     → DATETIME
//	 9. m/d/yyyy H:M:S shaped, lenient        → DATETIME
//	10. yyyy-m-d shaped, lenient              → DATE
//	11. anything else                         → VARCHAR(len + PaddingFactor)
//
// Numeric rules apply only to JSON numeric values, never to strings; a
// numeric value always has a numeric-compatible textual form, so it must be
// resolved before any text rule. The boolean rule runs before the date rules
// so that "true"/"false" never reach a date parser.
func Classify(v any) ColumnType {
	if v == nil {
		return ColumnType{Kind: Varchar, Width: NullWidth}
	}

	if n, ok := losslessInt64(v); ok {
		if n >= math.MinInt32 && n <= math.MaxInt32 {
			return ColumnType{Kind: Int}
		}
		return ColumnType{Kind: Long}
	}

	s := Text(v)
	switch {
	case len(s) <= 1:
		return ColumnType{Kind: Char1}
	case strings.EqualFold(s, "true") || strings.EqualFold(s, "false"):
		return ColumnType{Kind: Boolean}
	case isStrictDate(s):
		return ColumnType{Kind: Date}
	case matchesCommonLayout(s):
		return ColumnType{Kind: DateTime}
	case isLenientRFC822(s):
		return ColumnType{Kind: DateTime}
	case isLenientSlashDateTime(s):
		return ColumnType{Kind: DateTime}
	case isLenientISODate(s):
		return ColumnType{Kind: Date}
	default:
		return ColumnType{Kind: Varchar, Width: len(s) + PaddingFactor}
	}
}

// Text returns the textual rendering used by the string-based rules: strings
// as-is, booleans as "true"/"false", numbers in their literal form, and
// objects/arrays as their compact JSON encoding.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// losslessInt64 reports whether v is a JSON numeric value that converts to an
// int64 without loss. Integral floats (e.g. 3.0) qualify; fractional values
// and strings do not.
func losslessInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integralInt64(f)
	case float64:
		return integralInt64(n)
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func integralInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
