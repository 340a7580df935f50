// Command jsonprobe-web serves a small web form for interactive DDL
// generation: paste a JSON document, get the CREATE TABLE statement back.
package main

import (
	"flag"
	"log"

	"jsonddl/internal/webui"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address, e.g. :8080 or 127.0.0.1:8080")
	flag.Parse()

	srv := webui.NewServer(webui.Config{Addr: *addr})
	log.Printf("listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("%v", err)
	}
}
