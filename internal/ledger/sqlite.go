package ledger

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	foundationerrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

const memoryPath = ":memory:"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the ledger database at dbPath.
// Use ":memory:" for an in-memory ledger.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath != memoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, ledgerError("create ledger directory", err, dbPath)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, ledgerError("open sqlite database", err, dbPath)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, now: time.Now}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, ledgerError("initialize schema", err, dbPath)
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		run_date TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		pages INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS run_paths (
		run_seq INTEGER NOT NULL REFERENCES runs(seq),
		path TEXT NOT NULL,
		PRIMARY KEY (run_seq, path)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun stores run and its paths in a single transaction.
func (s *SQLiteStore) RecordRun(ctx context.Context, run Run, paths []string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ledgerError("begin transaction", err, "")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	recordedAt := run.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (run_id, run_date, recorded_at, pages) VALUES (?, ?, ?, ?)",
		run.ID, run.RunDate.Format(time.DateOnly), recordedAt.Unix(), run.Pages,
	)
	if err != nil {
		return ledgerError("insert run", err, "")
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return ledgerError("read run sequence", err, "")
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO run_paths (run_seq, path) VALUES (?, ?)")
	if err != nil {
		return ledgerError("prepare path insert", err, "")
	}
	defer func() { _ = stmt.Close() }()
	for _, p := range paths {
		if _, err = stmt.ExecContext(ctx, seq, p); err != nil {
			return ledgerError("insert path", err, p)
		}
	}

	if err = tx.Commit(); err != nil {
		return ledgerError("commit run", err, "")
	}
	return nil
}

// Latest returns the newest run and its paths in ascending order.
func (s *SQLiteStore) Latest(ctx context.Context) (*Run, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		seq        int64
		run        Run
		runDate    string
		recordedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT seq, run_id, run_date, recorded_at, pages FROM runs ORDER BY seq DESC LIMIT 1",
	).Scan(&seq, &run.ID, &runDate, &recordedAt, &run.Pages)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, ledgerError("query latest run", err, "")
	}
	if run.RunDate, err = time.Parse(time.DateOnly, runDate); err != nil {
		return nil, nil, ledgerError("parse run date", err, "")
	}
	run.RecordedAt = time.Unix(recordedAt, 0)

	rows, err := s.db.QueryContext(ctx, "SELECT path FROM run_paths WHERE run_seq = ? ORDER BY path", seq)
	if err != nil {
		return nil, nil, ledgerError("query run paths", err, "")
	}
	defer func() { _ = rows.Close() }()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, nil, ledgerError("scan run path", err, "")
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, ledgerError("iterate run paths", err, "")
	}
	return &run, paths, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func ledgerError(msg string, cause error, path string) error {
	b := foundationerrors.LedgerError(msg).WithCause(cause)
	if path != "" {
		b = b.WithContext("path", path)
	}
	return b.Build()
}
