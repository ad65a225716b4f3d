package palette

import (
	"database/sql"
	"fmt"

	// Registers the postgres driver with database/sql.
	_ "github.com/lib/pq"
)

// LoadPostgres reads palette entries from a PostgreSQL database. The
// palette_entries table mirrors the file format: id, external_id,
// name, category and hex_color columns.
func LoadPostgres(connStr string) (*Index, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	rows, err := db.Query(`SELECT id, external_id, name, category, hex_color FROM palette_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query palette entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ExternalID, &e.Name, &e.Category, &e.HexColor); err != nil {
			return nil, fmt.Errorf("failed to scan palette entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read palette entries: %w", err)
	}

	return New(entries)
}
