package sheet

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// sqliteDBName is the database file created under the data directory.
const sqliteDBName = "opsboard.db"

// NewSQLite opens a SQLite-backed store under dataDir, creating the directory
// if needed. Zero-setup local backend for single-machine deployments.
func NewSQLite(dataDir string) (*SQL, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, sqliteDBName))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQL{
		db:         db,
		quoteIdent: quoteSQLiteIdent,
		placeholder: func(i int) string {
			return "?"
		},
	}, nil
}

// quoteSQLiteIdent double-quotes an identifier, escaping embedded quotes.
func quoteSQLiteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
