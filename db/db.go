// Package db ships the SQL migration files with the binaries that apply them.
package db

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var files embed.FS

// Migrations returns the embedded migration files, rooted at the directory
// holding the *.sql files.
func Migrations() fs.FS {
	sub, err := fs.Sub(files, "migrations")
	if err != nil {
		panic(err)
	}

	return sub
}
