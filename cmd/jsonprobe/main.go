// Command jsonprobe reads a single JSON document from a file or URL and
// prints the inferred CREATE TABLE statement to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"jsonddl/internal/datasource/file"
	"jsonddl/internal/datasource/httpds"
	"jsonddl/internal/ddl"
)

var (
	flagFile  = flag.String("file", "", "path of the JSON document to probe")
	flagURL   = flag.String("url", "", "URL of the JSON document to probe (used when -file is empty)")
	flagBytes = flag.Int64("bytes", 1<<20, "maximum number of bytes to read from the document")
	flagTable = flag.String("table", "mytable", "table name used in the generated statement")
	flagType  = flag.String("type", "", "target database (hive, mysql, oracle, postgresql, phoenix)")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	doc, err := readDocument(ctx)
	if err != nil {
		fatalf("%v", err)
	}

	stmt, err := ddl.Assemble(*flagTable, doc, *flagType)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(stmt)
}

// readDocument loads the document from -file or -url, capped at -bytes.
func readDocument(ctx context.Context) ([]byte, error) {
	switch {
	case *flagFile != "":
		rc, err := file.NewLocal(*flagFile).Open(ctx)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(io.LimitReader(rc, *flagBytes))

	case *flagURL != "":
		client := httpds.NewClient(httpds.Config{Timeout: 30 * time.Second, MaxRetries: 2})
		return client.Fetch(ctx, *flagURL, *flagBytes)

	default:
		return nil, fmt.Errorf("one of -file or -url is required")
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
