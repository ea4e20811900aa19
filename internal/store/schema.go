package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const defaultSQLiteDSN = "file:scorecard.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open opens the dataset database and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName string
	switch driver {
	case DriverSQLite, "":
		driver = DriverSQLite
		drvName = "sqlite"
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
	case DriverPostgres:
		drvName = "pgx"
		if dsn == "" {
			dsn = "postgres://localhost:5432/scorecard?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if driver == DriverSQLite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	}

	schema := schemaSQLite
	if driver == DriverPostgres {
		schema = schemaPostgres
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLStore{db: db, driver: driver}, nil
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS uploads (
    id TEXT PRIMARY KEY,
    filename TEXT NOT NULL,
    students INTEGER NOT NULL,
    records INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS question_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id TEXT NOT NULL,
    section TEXT NOT NULL,
    is_correct INTEGER NOT NULL,
    upload_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_records_student ON question_records(student_id);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS uploads (
    id TEXT PRIMARY KEY,
    filename TEXT NOT NULL,
    students INTEGER NOT NULL,
    records INTEGER NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS question_records (
    id BIGSERIAL PRIMARY KEY,
    student_id TEXT NOT NULL,
    section TEXT NOT NULL,
    is_correct BOOLEAN NOT NULL,
    upload_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_records_student ON question_records(student_id);
`
