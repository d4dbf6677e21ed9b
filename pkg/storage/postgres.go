package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

// PostgresStore keeps slots in a Postgres table. Selected by setting
// postgres_dsn in the config; useful when the task database should
// live on a shared host instead of a local file.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to Postgres and ensures the slots table exists.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE name = $1", name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStore) Set(name, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, value) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`,
		name, value,
	)
	return err
}

func (s *PostgresStore) Delete(name string) error {
	_, err := s.db.Exec("DELETE FROM slots WHERE name = $1", name)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
