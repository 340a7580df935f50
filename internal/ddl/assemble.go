// Package ddl infers a flat relational schema from a single JSON document and
// renders it as a CREATE TABLE statement.
//
// The package is a pure transformation: one call consumes one document and
// produces one immutable statement string. It keeps no state between calls
// and never retains the caller's buffers, so concurrent invocations need no
// locking. Only top-level fields are inspected; nested objects and arrays are
// classified from their JSON text.
package ddl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jsonddl/internal/infer"
	"jsonddl/internal/sqlident"
)

// ErrMalformedJSON reports that the input could not be parsed as a top-level
// JSON object. No DDL is produced in that case.
var ErrMalformedJSON = errors.New("ddl: malformed JSON document")

// Field is one inferred column: the raw JSON key, its sanitized identifier,
// and the classified SQL type.
type Field struct {
	RawName   string
	CleanName string
	Type      infer.ColumnType
}

// Fields parses doc and classifies every top-level field, preserving the
// document's original field order so repeated runs on the same input produce
// identical output.
func Fields(doc []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformedJSON)
	}

	var fields []Field
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
		key, _ := keyTok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedJSON, key, err)
		}

		fields = append(fields, Field{
			RawName:   key,
			CleanName: sqlident.Clean(key),
			Type:      infer.Classify(v),
		})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return fields, nil
}

// Assemble renders the CREATE TABLE statement for doc.
//
// tableType names the intended target database (hive, mysql, oracle,
// postgresql, phoenix). It is accepted and reserved for dialect-specific type
// mapping; the current type vocabulary is emitted for every target.
//
// The output format is historical and preserved byte for byte: entries are
// comma-separated, two spaces precede the closing parenthesis, and the
// statement ends with a trailing space. A document with zero top-level fields
// yields "CREATE TABLE <name> (  ) ".
func Assemble(tableName string, doc []byte, tableType string) (string, error) {
	fields, err := Fields(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(256)
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(tableName)
	sb.WriteString(" ( ")
	for _, f := range fields {
		sb.WriteString(f.CleanName)
		sb.WriteByte(' ')
		sb.WriteString(f.Type.String())
		sb.WriteString(", ")
	}

	stmt := sb.String()
	if strings.HasSuffix(stmt, ", ") {
		stmt = stmt[:len(stmt)-2] + " "
	}
	return stmt + " ) ", nil
}
