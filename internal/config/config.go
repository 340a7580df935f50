// Package config defines the canonical, JSON-serializable configuration model
// for batch DDL generation runs. It is intentionally small, explicit, and
// dependency-free so that pipelines can be loaded from disk (or other sources)
// and passed through the program without additional glue code.
//
// Design goals:
//
//  1. Stability: Changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: Field names in Go mirror the JSON structure used in pipeline
//     files under configs/pipelines/*.json.
//  3. Minimalism: No third-party config libraries; decoding is performed by
//     the standard library.
//
// Example (trimmed):
//
//	{
//	  "job":     "orders-nightly",
//	  "source":  { "kind": "dir", "path": "data/orders" },
//	  "table":   { "type": "TABLE" },
//	  "output":  { "dir": "out/ddl" },
//	  "storage": { "kind": "sqlite", "dsn": "file:out/schemas.db", "apply": true },
//	  "runtime": { "workers": 4 }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline describes a full DDL generation run in JSON. It is the top-level
// object decoded from a pipeline file (e.g., configs/pipelines/*.json).
type Pipeline struct {
	// Job names the run. It labels metrics and output logs.
	Job string `json:"job"`

	// Source describes where input JSON documents come from.
	Source Source `json:"source"`

	// Table controls table naming for generated statements.
	Table Table `json:"table"`

	// Output configures where generated DDL statements are written.
	Output Output `json:"output"`

	// Storage optionally names a database the generated DDL is applied to.
	Storage Storage `json:"storage"`

	// Runtime controls concurrency.
	Runtime Runtime `json:"runtime"`

	// Metrics selects an optional metrics backend for the run.
	Metrics Metrics `json:"metrics"`
}

// Source identifies where input documents come from.
type Source struct {
	// Kind selects the source implementation. Current values: "file" (a single
	// JSON document), "dir" (all *.json files directly under a directory), and
	// "list" (a text file naming one document path per line).
	Kind string `json:"kind"`

	// Path is the file, directory, or list path, depending on Kind.
	Path string `json:"path"`
}

// Table controls table naming for generated statements.
type Table struct {
	// Type names the intended target database (hive, mysql, oracle,
	// postgresql, phoenix). Reserved for dialect-specific type mapping.
	Type string `json:"type"`

	// Name forces a single table name for every document. When empty, each
	// document's table is named after its file basename.
	Name string `json:"name"`
}

// Output configures generated statement placement.
type Output struct {
	// Dir receives one <table>.sql file per processed document. Empty
	// disables file output.
	Dir string `json:"dir"`
}

// Storage names an optional destination database.
type Storage struct {
	// Kind selects the backend: "postgres", "mysql", "mssql", or "sqlite".
	Kind string `json:"kind"`

	// DSN is the backend-specific connection string.
	DSN string `json:"dsn"`

	// Apply executes each generated statement against the database when true.
	// When false the storage section is validated but unused.
	Apply bool `json:"apply"`
}

// Runtime controls concurrency for a run.
type Runtime struct {
	// Workers is the number of documents processed concurrently.
	// Zero or negative means 1.
	Workers int `json:"workers"`
}

// Metrics selects a metrics backend for the run.
type Metrics struct {
	// Backend is "", "prometheus", or "datadog". Empty disables metrics.
	Backend string `json:"backend"`

	// PushgatewayURL is required when Backend is "prometheus".
	PushgatewayURL string `json:"pushgateway_url"`

	// DatadogAddr is the DogStatsD address, required when Backend is
	// "datadog".
	DatadogAddr string `json:"datadog_addr"`

	// Namespace is an optional metric name prefix for the datadog backend.
	Namespace string `json:"namespace"`
}

// Load reads and decodes a Pipeline from a JSON file. Unknown fields are
// rejected so typos in pipeline files surface as errors instead of silently
// doing nothing.
func Load(path string) (Pipeline, error) {
	var p Pipeline

	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return p, nil
}
