package ddl

import (
	"errors"
	"strings"
	"testing"

	"jsonddl/internal/infer"
)

// TestAssemble covers the statement format, per-field typing, and the edge
// cases around separators.
func TestAssemble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tableName string
		doc       string
		want      string
	}{
		{
			name:      "mixed field types",
			tableName: "people",
			doc:       `{"id": 1, "name": "Bob", "active": "true"}`,
			want:      "CREATE TABLE people ( id INT, name VARCHAR(15), active BOOLEAN  ) ",
		},
		{
			name:      "single field",
			tableName: "t",
			doc:       `{"id": 7}`,
			want:      "CREATE TABLE t ( id INT  ) ",
		},
		{
			name:      "zero fields",
			tableName: "empty",
			doc:       `{}`,
			want:      "CREATE TABLE empty (  ) ",
		},
		{
			name:      "null and date fields",
			tableName: "events",
			doc:       `{"note": null, "day": "2021-01-05", "at": "Mon, 02 Jan 2006 15:04:05 -0700"}`,
			want:      "CREATE TABLE events ( note VARCHAR(50), day DATE, at DATETIME  ) ",
		},
		{
			name:      "dirty field names cleaned",
			tableName: "t",
			doc:       `{"user.name:1": "Robert", "123abc": 5}`,
			want:      "CREATE TABLE t ( username1 VARCHAR(18), abc INT  ) ",
		},
		{
			name:      "nested object as text",
			tableName: "t",
			doc:       `{"meta": {"a": 1}}`,
			want:      "CREATE TABLE t ( meta VARCHAR(19)  ) ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Assemble(tt.tableName, []byte(tt.doc), "mysql")
			if err != nil {
				t.Fatalf("Assemble error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Assemble = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestAssemble_Malformed: invalid documents produce ErrMalformedJSON and no
// DDL.
func TestAssemble_Malformed(t *testing.T) {
	t.Parallel()

	docs := []string{
		`{not json`,
		``,
		`{"a": }`,
		`[1, 2, 3]`,
		`"just a string"`,
		`42`,
	}
	for _, doc := range docs {
		got, err := Assemble("t", []byte(doc), "")
		if !errors.Is(err, ErrMalformedJSON) {
			t.Errorf("Assemble(%q) error = %v, want ErrMalformedJSON", doc, err)
		}
		if got != "" {
			t.Errorf("Assemble(%q) = %q, want empty statement", doc, got)
		}
	}
}

// TestAssemble_Idempotent: identical input yields byte-identical output.
func TestAssemble_Idempotent(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"id": 1, "when": "2021-01-05", "who": "somebody"}`)
	a, err := Assemble("t", doc, "hive")
	if err != nil {
		t.Fatalf("first Assemble error: %v", err)
	}
	b, err := Assemble("t", doc, "hive")
	if err != nil {
		t.Fatalf("second Assemble error: %v", err)
	}
	if a != b {
		t.Fatalf("output not stable:\n%q\n%q", a, b)
	}
	if !strings.HasPrefix(a, "CREATE TABLE t ") {
		t.Fatalf("statement %q does not start with CREATE TABLE and table name", a)
	}
}

// TestFields_Order: fields come back in document order, with raw and clean
// names and types filled in.
func TestFields_Order(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"z": 1, "a": "2021-01-05", "m.x": "yes"}`)
	fields, err := Fields(doc)
	if err != nil {
		t.Fatalf("Fields error: %v", err)
	}

	want := []Field{
		{RawName: "z", CleanName: "z", Type: infer.ColumnType{Kind: infer.Int}},
		{RawName: "a", CleanName: "a", Type: infer.ColumnType{Kind: infer.Date}},
		{RawName: "m.x", CleanName: "mx", Type: infer.ColumnType{Kind: infer.Varchar, Width: 15}},
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, fields[i], want[i])
		}
	}
}
