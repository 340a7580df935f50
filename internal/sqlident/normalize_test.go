package sqlident

import (
	"strings"
	"testing"
)

// TestNormalize verifies filename-to-table-name normalization: lowercasing,
// accent stripping, separator folding, and the empty fallback.
func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "orders", "orders"},
		{"uppercase lowered", "Orders", "orders"},
		{"accents stripped", "technické_prohlídky", "technicke_prohlidky"},
		{"spaces to underscore", "my data set", "my_data_set"},
		{"dots and dashes folded", "dump.2021-01-05", "dump_2021_01_05"},
		{"separator runs collapse", "a - b", "a_b"},
		{"edges trimmed", "_hidden_", "hidden"},
		{"nothing survives", "!!!", "tbl"},
		{"empty", "", "tbl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalize_Truncation checks the 63-byte cap keeps the head and tail of
// overlong names.
func TestNormalize_Truncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 40) + "_" + strings.Repeat("b", 40)
	got := Normalize(long)
	if len(got) != 63 {
		t.Fatalf("len(Normalize(long)) = %d, want 63", len(got))
	}
	if !strings.HasPrefix(got, strings.Repeat("a", 10)) {
		t.Errorf("truncated name %q does not keep the head", got)
	}
	if !strings.HasSuffix(got, strings.Repeat("b", 40)) {
		t.Errorf("truncated name %q does not keep the tail", got)
	}
}
