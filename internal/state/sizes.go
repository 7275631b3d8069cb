package state

import (
	"database/sql"
	"time"
)

func loadSizes(conn *sql.DB) (map[string]string, error) {
	rows, err := conn.Query(`SELECT key, value FROM panel_sizes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}

// saveSizes upserts values in a single transaction.
func saveSizes(conn *sql.DB, values map[string]string, now time.Time) error {
	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare(`
		INSERT INTO panel_sizes (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range values {
		if _, err := stmt.Exec(key, value, now.Unix()); err != nil {
			return err
		}
	}
	return tx.Commit()
}
