// Package webui exposes a minimal HTTP server with an HTML form that lets you
// paste a JSON document and see the generated CREATE TABLE statement.
//
// Routes:
//
//	GET  /        → form
//	POST /ddl     → runs inference on the pasted document; renders inline
//	GET  /api/ddl → machine-friendly API, returns text/plain DDL
package webui

import (
	_ "embed"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"

	"jsonddl/internal/ddl"
)

// maxDocBytes caps how much request body the handlers will read.
const maxDocBytes = 1 << 20

// Config controls server startup.
type Config struct {
	Addr string
}

// Server wraps http.Server for convenience.
type Server struct {
	cfg  Config
	mux  *http.ServeMux
	tmpl *template.Template
}

// NewServer constructs a Server with routes and embedded template.
func NewServer(cfg Config) *Server {
	s := &Server{
		cfg: cfg,
		mux: http.NewServeMux(),
		// Parse the embedded template at init time.
		tmpl: template.Must(template.New("index").Parse(indexHTML)),
	}
	s.routes()
	return s
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// pageData carries form state and the generated statement into the template.
type pageData struct {
	Table      string
	TableType  string
	Doc        string
	ResultText string
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/ddl", s.handleDDL)
	s.mux.HandleFunc("/api/ddl", s.handleAPIDDL)
}

// handleIndex renders the input form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	_ = s.tmpl.Execute(w, pageData{})
}

// handleDDL processes the form and renders a results page.
func (s *Server) handleDDL(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
		return
	}
	table := strings.TrimSpace(r.FormValue("table"))
	tableType := strings.TrimSpace(r.FormValue("table_type"))
	doc := r.FormValue("doc")
	if table == "" {
		table = "mytable"
	}

	stmt, err := ddl.Assemble(table, []byte(doc), tableType)
	if err != nil {
		http.Error(w, "ddl failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	data := pageData{
		Table:      table,
		TableType:  tableType,
		Doc:        doc,
		ResultText: stmt,
	}
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Println("template error:", err)
	}
}

// handleAPIDDL returns text/plain so scripts can curl it easily. The document
// comes from the request body (POST) or the "doc" query parameter.
func (s *Server) handleAPIDDL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	table := strings.TrimSpace(q.Get("table"))
	tableType := strings.TrimSpace(q.Get("table_type"))
	if table == "" {
		table = "mytable"
	}

	var doc []byte
	if r.Method == http.MethodPost {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxDocBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		doc = body
	} else {
		doc = []byte(q.Get("doc"))
	}

	stmt, err := ddl.Assemble(table, doc, tableType)
	if err != nil {
		http.Error(w, "ddl failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(stmt))
}

// indexHTML is an embedded, minimal page with Tailwind-less vanilla styling.
//
//go:embed index.tmpl.html
var indexHTML string
