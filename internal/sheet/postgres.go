package sheet

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// NewPostgres opens a Postgres-backed store. Each worksheet maps to one table
// in the connected database.
func NewPostgres(dsn string) (*SQL, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &SQL{
		db:         db,
		quoteIdent: pq.QuoteIdentifier,
		placeholder: func(i int) string {
			return fmt.Sprintf("$%d", i)
		},
	}, nil
}
