// Command jsonddl is the batch entry point. It loads a pipeline config,
// optionally initializes a metrics backend and a storage backend, and runs
// DDL generation over every configured document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jsonddl/internal/config"
	"jsonddl/internal/datasource/file"
	"jsonddl/internal/metrics"
	"jsonddl/internal/metrics/datadog"
	"jsonddl/internal/metrics/prompush"
	"jsonddl/internal/runner"
	"jsonddl/internal/storage"

	// register all backends with the storage factory.
	// config specifies which to use but we need to build in support for all of them.
	_ "jsonddl/internal/storage/all"
)

// main loads the pipeline config, wires metrics and storage, and executes the
// batch run.
func main() {
	var (
		cfgPath           string
		metricsBackendFlg string
		pushGatewayURLFlg string
		datadogAddrFlg    string
		validate          bool
	)

	flag.StringVar(&cfgPath, "config", "configs/pipelines/sample.json", "pipeline config JSON path")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend to use (pushgateway, datadog, none); overrides config")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.StringVar(&datadogAddrFlg, "datadog-addr", "", "DogStatsD address (overrides config)")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	p, err := config.Load(cfgPath)
	if err != nil {
		fatalf("%v", err)
	}

	issues := config.ValidatePipeline(p)
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if config.HasErrors(issues) {
		log.Printf("Configuration is invalid: %v", cfgPath)
		os.Exit(1)
	}
	if validate {
		log.Printf("Configuration is valid: %v", cfgPath)
		os.Exit(0)
	}

	setupMetrics(p, metricsBackendFlg, pushGatewayURLFlg, datadogAddrFlg, *verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths, err := resolvePaths(p.Source)
	if err != nil {
		fatalf("%v", err)
	}

	var repo storage.Repository
	if p.Storage.Apply {
		repo, err = storage.New(ctx, storage.Config{Kind: p.Storage.Kind, DSN: p.Storage.DSN})
		if err != nil {
			fatalf("storage: %v", err)
		}
		defer repo.Close()
	}

	start := time.Now()
	if *verbose {
		log.Printf("pipeline: job=%s source=%s docs=%d storage=%s apply=%t",
			p.Job, p.Source.Kind, len(paths), p.Storage.Kind, p.Storage.Apply)
	}

	sum, err := runner.Run(ctx, runner.Options{
		Paths:     paths,
		TableName: p.Table.Name,
		TableType: p.Table.Type,
		OutDir:    p.Output.Dir,
		Workers:   p.Runtime.Workers,
		Repo:      repo,
		Job:       p.Job,
		Verbose:   *verbose,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("processed=%d succeeded=%d failed=%d duplicates=%d apply_errors=%d in %s",
		sum.Processed, sum.Succeeded, sum.Failed, sum.Duplicates, sum.ApplyErrors,
		time.Since(start).Truncate(time.Millisecond))

	if sum.Failed > 0 || sum.ApplyErrors > 0 {
		os.Exit(1)
	}
}

// resolvePaths expands the configured source into a list of document paths.
func resolvePaths(s config.Source) ([]string, error) {
	switch s.Kind {
	case "file":
		return []string{s.Path}, nil
	case "dir":
		return file.ListJSON(s.Path)
	case "list":
		return file.ReadList(s.Path)
	default:
		return nil, fmt.Errorf("unsupported source.kind=%s", s.Kind)
	}
}

// setupMetrics decides the metrics backend: flag → config → disabled.
func setupMetrics(p config.Pipeline, backendFlg, gwURLFlg, ddAddrFlg string, verbose bool) {
	backendName := backendFlg
	if backendName == "" {
		switch p.Metrics.Backend {
		case "prometheus":
			backendName = "pushgateway"
		default:
			backendName = p.Metrics.Backend
		}
	}

	switch backendName {
	case "pushgateway":
		// Decide Pushgateway URL: flag → config → env → default.
		gwURL := gwURLFlg
		if gwURL == "" {
			gwURL = p.Metrics.PushgatewayURL
		}
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}

		jobName := p.Job
		if jobName == "" {
			jobName = "jsonddl_job"
		}

		b, err := prompush.NewBackend(jobName, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
		} else {
			log.Printf("metrics: url=%v, backend=%v, job_name=%v", gwURL, backendName, jobName)
			metrics.SetBackend(b)
		}

	case "datadog":
		addr := ddAddrFlg
		if addr == "" {
			addr = p.Metrics.DatadogAddr
		}
		b, err := datadog.NewBackend(datadog.Config{
			Addr:      addr,
			Namespace: p.Metrics.Namespace,
		})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
		} else {
			log.Printf("metrics: addr=%v, backend=%v", addr, backendName)
			metrics.SetBackend(b)
		}

	case "", "none":
		// metrics disabled; nop backend remains
		if verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
