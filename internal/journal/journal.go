// Package journal provides an optional SQLite-backed record of driver
// presses.
//
// The journal lives entirely on the driver side: the core is stateless by
// design and never reads it. It exists so a solver can review which digits
// moved the observable binding across a long brute-force session.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Journal records presses durably in SQLite.
type Journal struct {
	db *sql.DB
}

// Press is one recorded driver input.
type Press struct {
	// Session groups the presses of one run.
	Session string

	// Seq is the 1-based position of the press within its session.
	Seq int64

	// Digit is the value delivered to the sink.
	Digit int

	// Binding is the observable state after the press was handled.
	Binding string

	// At is the wall-clock time of the press in Unix seconds.
	At int64
}

// Open creates or opens a journal database at the given path.
// Applies required pragmas and the schema automatically; safe to call on an
// existing journal.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect journal: %w", err)
	}

	// SQLite supports one writer at a time; the driver is sequential
	// anyway, so a single connection avoids SQLITE_BUSY entirely.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record inserts one press. Duplicate (session, seq) pairs are silently
// ignored for idempotency.
func (j *Journal) Record(ctx context.Context, p Press) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO presses (session, seq, digit, binding, at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session, seq) DO NOTHING
	`, p.Session, p.Seq, p.Digit, p.Binding, p.At)
	if err != nil {
		return fmt.Errorf("record press: %w", err)
	}
	return nil
}

// SessionsForTesting returns the distinct session tokens present in the
// journal. Not intended for production use.
func (j *Journal) SessionsForTesting(ctx context.Context) ([]string, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT DISTINCT session FROM presses ORDER BY session ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Session returns all presses of one session in seq order.
func (j *Journal) Session(ctx context.Context, session string) ([]Press, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT session, seq, digit, binding, at
		FROM presses
		WHERE session = ?
		ORDER BY seq ASC
	`, session)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	defer rows.Close()

	var presses []Press
	for rows.Next() {
		var p Press
		if err := rows.Scan(&p.Session, &p.Seq, &p.Digit, &p.Binding, &p.At); err != nil {
			return nil, fmt.Errorf("scan press: %w", err)
		}
		presses = append(presses, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return presses, nil
}
