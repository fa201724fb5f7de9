// Package persistence records the narrative of each run in a SQLite
// chronicle. It is append-only: nothing is ever loaded back into a simulation.
package persistence

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/splitting-world/internal/engine"
)

// Chronicle wraps a SQLite connection and buffers report lines of the
// current run until Flush.
type Chronicle struct {
	conn *sqlx.DB

	runID   string
	seq     int
	pending []Entry
}

// Entry is one stored report line.
type Entry struct {
	RunID  string `db:"run_id"`
	Seq    int    `db:"seq"`
	Indent int    `db:"indent"`
	Text   string `db:"text"`
}

// Run is one recorded simulation.
type Run struct {
	ID         string         `db:"id"`
	Seed       int64          `db:"seed"`
	MaxEra     int            `db:"max_era"`
	StartedAt  int64          `db:"started_at"`
	FinishedAt sql.NullInt64  `db:"finished_at"`
	Reason     sql.NullString `db:"reason"`
	FinalEra   int            `db:"final_era"`
	Turns      int            `db:"turns"`
	Entries    int            `db:"entries"`
}

// Started returns the start time.
func (r Run) Started() time.Time {
	return time.Unix(r.StartedAt, 0)
}

// Open opens or creates a chronicle at the given path.
func Open(path string) (*Chronicle, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open chronicle: %w", err)
	}

	c := &Chronicle{conn: conn}
	if err := c.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

// Close flushes pending lines and closes the connection.
func (c *Chronicle) Close() error {
	flushErr := c.Flush()
	if err := c.conn.Close(); err != nil {
		return err
	}
	return flushErr
}

func (c *Chronicle) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		max_era INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		finished_at INTEGER,
		reason TEXT,
		final_era INTEGER NOT NULL DEFAULT 0,
		turns INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS entries (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		indent INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	`
	_, err := c.conn.Exec(schema)
	return err
}

// BeginRun registers a new run and directs subsequent writes to it.
func (c *Chronicle) BeginRun(seed int64, cfg engine.Config) (string, error) {
	if err := c.Flush(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err := c.conn.Exec(
		"INSERT INTO runs (id, seed, max_era, started_at) VALUES (?, ?, ?, ?)",
		id, seed, cfg.MaxEra, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	c.runID = id
	c.seq = 0
	slog.Debug("chronicle run started", "run", id, "seed", seed)
	return id, nil
}

// Write implements world.Reporter. Lines written outside a run are dropped.
func (c *Chronicle) Write(indent int, text string) {
	if c.runID == "" {
		return
	}
	c.seq++
	c.pending = append(c.pending, Entry{RunID: c.runID, Seq: c.seq, Indent: indent, Text: text})
}

// Flush stores buffered lines in a single transaction.
func (c *Chronicle) Flush() error {
	if len(c.pending) == 0 {
		return nil
	}

	tx, err := c.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(
		"INSERT INTO entries (run_id, seq, indent, text) VALUES (:run_id, :seq, :indent, :text)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range c.pending {
		if _, err := stmt.Exec(e); err != nil {
			return fmt.Errorf("insert entry %d: %w", e.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Debug("chronicle flushed", "run", c.runID, "lines", len(c.pending))
	c.pending = c.pending[:0]
	return nil
}

// FinishRun flushes and stamps the run with its outcome.
func (c *Chronicle) FinishRun(out engine.Outcome) error {
	if c.runID == "" {
		return nil
	}
	if err := c.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	_, err := c.conn.Exec(
		"UPDATE runs SET finished_at = ?, reason = ?, final_era = ?, turns = ? WHERE id = ?",
		time.Now().Unix(), out.Reason.String(), out.Era, out.Turns, c.runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	c.runID = ""
	return nil
}

// Runs returns the most recent runs with their line counts.
func (c *Chronicle) Runs(limit int) ([]Run, error) {
	var runs []Run
	err := c.conn.Select(&runs, `
		SELECT r.id, r.seed, r.max_era, r.started_at, r.finished_at, r.reason,
		       r.final_era, r.turns,
		       (SELECT COUNT(*) FROM entries e WHERE e.run_id = r.id) AS entries
		FROM runs r
		ORDER BY r.started_at DESC, r.rowid DESC
		LIMIT ?`, limit)
	return runs, err
}

// Entries returns the stored lines of a run in order.
func (c *Chronicle) Entries(runID string) ([]Entry, error) {
	var entries []Entry
	err := c.conn.Select(&entries,
		"SELECT run_id, seq, indent, text FROM entries WHERE run_id = ? ORDER BY seq",
		runID,
	)
	return entries, err
}
