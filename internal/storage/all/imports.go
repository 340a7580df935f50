// Package all wires every built-in storage backend into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) runs the init functions of each concrete backend, which register
// their factories with the storage package. After importing it, the kinds
// "postgres", "mysql", "mssql", and "sqlite" are available to storage.New.
//
// Binaries that only need a subset of backends can blank-import the specific
// backend packages instead.
package all

import (
	_ "jsonddl/internal/storage/mssql"
	_ "jsonddl/internal/storage/mysql"
	_ "jsonddl/internal/storage/postgres"
	_ "jsonddl/internal/storage/sqlite"
)
