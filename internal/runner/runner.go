// Package runner drives batch DDL generation: it fans a set of JSON document
// paths across a worker pool, deduplicates identical content by hash, writes
// one .sql file per table, and optionally applies each statement to a target
// database.
package runner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"jsonddl/internal/metrics"
	"jsonddl/internal/processor"
	"jsonddl/internal/sqlident"
	"jsonddl/internal/storage"
	"jsonddl/pkg/flowfile"
)

// Options configures a batch run.
type Options struct {
	// Paths are the JSON documents to process.
	Paths []string

	// TableName forces a single table name for every document. Empty means
	// each document is named after its file basename.
	TableName string

	// TableType names the intended target database; passed through to the
	// statement assembler.
	TableType string

	// OutDir receives one <table>.sql file per successful document. Empty
	// disables file output.
	OutDir string

	// Workers caps concurrent document processing. Values below 1 mean 1.
	Workers int

	// Repo, when non-nil, receives every generated statement via Exec.
	Repo storage.Repository

	// Job labels metrics and log lines for this run.
	Job string

	// Verbose enables per-document logging.
	Verbose bool
}

// Summary reports what a run did. Counts are per document.
type Summary struct {
	Processed   int
	Succeeded   int
	Failed      int
	Duplicates  int
	ApplyErrors int
}

// Run processes every path in opts. Document-level problems (unreadable file,
// malformed JSON, apply failure) are counted in the Summary and logged, not
// returned; Run fails only when the context is canceled or the output
// directory cannot be created.
func Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary
	if len(opts.Paths) == 0 {
		return sum, nil
	}

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return sum, fmt.Errorf("runner: create output dir: %w", err)
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	proc := processor.New(processor.Config{
		TableName: opts.TableName,
		TableType: opts.TableType,
	})

	var (
		mu   sync.Mutex
		seen = map[uint64]string{} // content hash → first path
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range opts.Paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcome := processOne(ctx, proc, path, opts, &mu, seen)

			mu.Lock()
			sum.Processed++
			switch outcome {
			case "success":
				sum.Succeeded++
			case "failure":
				sum.Failed++
			case "duplicate":
				sum.Duplicates++
			case "apply_error":
				sum.ApplyErrors++
			}
			mu.Unlock()

			metrics.RecordDocument(opts.Job, outcome)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return sum, err
	}
	return sum, nil
}

// processOne handles a single document end to end and returns its outcome
// status: "success", "failure", "duplicate", or "apply_error".
func processOne(ctx context.Context, proc *processor.Processor, path string, opts Options, mu *sync.Mutex, seen map[uint64]string) string {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("%s: read %s: %v", opts.Job, path, err)
		metrics.RecordStep(opts.Job, "read", err, time.Since(start))
		return "failure"
	}

	h := xxh3.Hash(content)
	mu.Lock()
	first, dup := seen[h]
	if !dup {
		seen[h] = path
	}
	mu.Unlock()
	if dup {
		if opts.Verbose {
			log.Printf("%s: skip %s: duplicate of %s", opts.Job, path, first)
		}
		return "duplicate"
	}

	f := flowfile.New(content)
	f.SetAttribute(flowfile.AttrFilename, tableNameFor(path))
	f.SetAttribute(flowfile.AttrFingerprint, fmt.Sprintf("%016x", h))

	route := proc.Process(f)
	metrics.RecordStep(opts.Job, "assemble", routeErr(f, route), time.Since(start))
	if route != processor.RouteSuccess {
		log.Printf("%s: %s: %s", opts.Job, path, f.Attribute(flowfile.AttrError))
		return "failure"
	}

	stmt := f.Attribute(flowfile.AttrDDL)
	table := strings.TrimSpace(opts.TableName)
	if table == "" {
		table = f.Attribute(flowfile.AttrFilename)
	}
	if opts.Verbose {
		log.Printf("%s: %s → %s", opts.Job, path, stmt)
	}

	if opts.OutDir != "" {
		out := filepath.Join(opts.OutDir, table+".sql")
		if err := os.WriteFile(out, []byte(stmt), 0o644); err != nil {
			log.Printf("%s: write %s: %v", opts.Job, out, err)
			return "failure"
		}
	}

	if opts.Repo != nil {
		applyStart := time.Now()
		err := opts.Repo.Exec(ctx, stmt)
		metrics.RecordStep(opts.Job, "apply", err, time.Since(applyStart))
		if err != nil {
			log.Printf("%s: apply %s: %v", opts.Job, table, err)
			return "apply_error"
		}
	}

	return "success"
}

// tableNameFor derives a table identifier from a document path: the file
// basename without extension, normalized for SQL use.
func tableNameFor(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return sqlident.Normalize(base)
}

// routeErr maps a failure route to an error value for metrics.
func routeErr(f *flowfile.File, route processor.Route) error {
	if route == processor.RouteSuccess {
		return nil
	}
	return fmt.Errorf("%s", f.Attribute(flowfile.AttrError))
}
