// Package processor adapts the DDL inference core to a flow-style host. It
// resolves the table name, runs the assembler over a flow file's content, and
// routes the file to success or failure with the generated DDL attached as an
// attribute.
package processor

import (
	"strings"

	"jsonddl/internal/ddl"
	"jsonddl/pkg/flowfile"
)

// Route identifies the outgoing channel for a processed flow file.
type Route string

const (
	RouteSuccess Route = "success"
	RouteFailure Route = "failure"
)

// Config carries the processor properties as a plain struct. TableName may be
// empty, in which case the flow file's "filename" attribute is used.
type Config struct {
	TableName string
	TableType string
}

// Processor converts JSON flow files into CREATE TABLE statements.
type Processor struct {
	cfg Config
}

// New returns a Processor bound to cfg.
func New(cfg Config) *Processor {
	return &Processor{cfg: cfg}
}

// Process classifies f's content and attaches the generated DDL.
//
// On success the "generatedddl" attribute is set and the file routes to
// success. When the content is not a valid JSON object, no DDL attribute is
// set, "jsonddl.error" carries the parse error, and the file routes to
// failure. The two outcomes are mutually exclusive: a caller never sees an
// empty DDL attribute with no error signaled.
func (p *Processor) Process(f *flowfile.File) Route {
	table := strings.TrimSpace(p.cfg.TableName)
	if table == "" {
		table = f.Attribute(flowfile.AttrFilename)
	}

	stmt, err := ddl.Assemble(table, f.Content, p.cfg.TableType)
	if err != nil {
		f.SetAttribute(flowfile.AttrError, err.Error())
		return RouteFailure
	}
	f.SetAttribute(flowfile.AttrDDL, stmt)
	return RouteSuccess
}
