package duckdb

import (
	"database/sql"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

type Settings struct {
	// DbPath is the DuckDB database location. The survey dashboard keeps no
	// state of its own, so ":memory:" is the usual value.
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	path := settings.DbPath
	if path == "" {
		path = ":memory:"
	}

	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", path), nil)
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
