package infer

import (
	"encoding/json"
	"testing"
)

// TestClassify walks the full cascade rule by rule.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		// Rule 1: null.
		{"null", nil, "VARCHAR(50)"},

		// Rules 2-3: lossless integers.
		{"small int", json.Number("1"), "INT"},
		{"negative int", json.Number("-42"), "INT"},
		{"int32 max", json.Number("2147483647"), "INT"},
		{"int32 min", json.Number("-2147483648"), "INT"},
		{"just past int32", json.Number("2147483648"), "LONG"},
		{"just below int32 min", json.Number("-2147483649"), "LONG"},
		{"int64 max", json.Number("9223372036854775807"), "LONG"},
		{"integral float", json.Number("3.0"), "INT"},
		{"float64 value", float64(7), "INT"},

		// Fractional numbers fall through to the text rules.
		{"fractional float", json.Number("3.5"), "VARCHAR(15)"},

		// Rule 4: short text.
		{"empty string", "", "CHAR(1)"},
		{"one char", "x", "CHAR(1)"},
		{"one digit string", "5", "CHAR(1)"},

		// Rule 5: booleans, native and textual.
		{"native true", true, "BOOLEAN"},
		{"native false", false, "BOOLEAN"},
		{"text true", "true", "BOOLEAN"},
		{"text TRUE", "TRUE", "BOOLEAN"},
		{"text False", "False", "BOOLEAN"},

		// Rule 6: strict date.
		{"iso date", "2021-01-05", "DATE"},
		{"iso date leap", "2020-02-29", "DATE"},

		// Rule 7: format guesser.
		{"space timestamp", "2021-01-05 10:11:12", "DATETIME"},
		{"t timestamp", "2021-01-05T10:11:12", "DATETIME"},
		{"rfc3339", "2021-01-05T10:11:12Z", "DATETIME"},

		// Rule 8: RFC-822 shape.
		{"rfc822", "Mon, 02 Jan 2006 15:04:05 -0700", "DATETIME"},
		{"rfc822 zone name", "Tue, 3 Feb 2009 01:02:03 GMT", "DATETIME"},

		// Rule 9: slash date-time shape, out-of-range tolerated.
		{"slash datetime", "10/20/2021 11:22:33", "DATETIME"},
		{"slash datetime rollover", "13/45/2021 25:70:99", "DATETIME"},

		// Rule 10: loose date shape catches what the strict rule rejected.
		{"rollover month", "2021-13-05", "DATE"},
		{"rollover day", "2021-02-30", "DATE"},
		{"single digit components", "2021-1-5", "DATE"},

		// Rule 11: the fallback.
		{"plain word", "Bob", "VARCHAR(15)"},
		{"sentence", "hello world", "VARCHAR(23)"},
		{"numeric-looking string", "12", "VARCHAR(14)"},
		{"not a date", "2021-01-05x", "VARCHAR(23)"},
		{"huge number literal", json.Number("92233720368547758080"), "VARCHAR(32)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.in).String(); got != tt.want {
				t.Fatalf("Classify(%#v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

// TestClassify_Containers: nested objects and arrays are classified from
// their compact JSON text.
func TestClassify_Containers(t *testing.T) {
	t.Parallel()

	obj := map[string]any{"a": json.Number("1")}
	got := Classify(obj)
	if got.Kind != Varchar {
		t.Fatalf("Classify(object).Kind = %v, want Varchar", got.Kind)
	}
	if want := len(`{"a":1}`) + PaddingFactor; got.Width != want {
		t.Fatalf("Classify(object).Width = %d, want %d", got.Width, want)
	}

	arr := []any{json.Number("1"), json.Number("2")}
	if got := Classify(arr).String(); got != "VARCHAR(17)" {
		t.Fatalf("Classify(array) = %s, want VARCHAR(17)", got)
	}
}

// TestClassify_Deterministic: same input, same answer.
func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, json.Number("5"), "2021-01-05", "whatever"} {
		a, b := Classify(v), Classify(v)
		if a != b {
			t.Fatalf("Classify(%v) not deterministic: %v vs %v", v, a, b)
		}
	}
}
