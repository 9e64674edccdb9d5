package plancache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/claude/planforge/internal/models"
)

// Store is the durable cache tier: a SQLite database shared by every process
// on the host. It also carries the generation locks that keep concurrent
// processes from generating the same plan twice.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite cache database at the given path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	// SQLite rejects concurrent writers; a single pooled connection
	// serializes access from this process.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS plans (
		key        TEXT PRIMARY KEY,
		plan_json  TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating plans table: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS locks (
		key         TEXT PRIMARY KEY,
		owner       TEXT NOT NULL,
		acquired_ms INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating locks table: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the cached plan for a key, or ok=false when absent.
func (s *Store) Get(ctx context.Context, key string) (models.WeeklyExercisePlan, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT plan_json FROM plans WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.WeeklyExercisePlan{}, false, nil
	}
	if err != nil {
		return models.WeeklyExercisePlan{}, false, fmt.Errorf("reading cached plan: %w", err)
	}

	var plan models.WeeklyExercisePlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return models.WeeklyExercisePlan{}, false, fmt.Errorf("decoding cached plan: %w", err)
	}
	return plan, true, nil
}

// Put writes a plan through to the durable tier. Generation is
// deterministic, so replacing an existing row is harmless.
func (s *Store) Put(ctx context.Context, key string, plan models.WeeklyExercisePlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO plans (key, plan_json) VALUES (?, ?)`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("writing cached plan: %w", err)
	}
	return nil
}

// TryLock attempts to take the generation lock for a key. A lock older than
// staleAfter is presumed abandoned (crashed process) and is stolen.
func (s *Store) TryLock(ctx context.Context, key, owner string, now time.Time, staleAfter time.Duration) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO locks (key, owner, acquired_ms) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET owner = excluded.owner, acquired_ms = excluded.acquired_ms
		 WHERE excluded.acquired_ms - locks.acquired_ms > ?`,
		key, owner, now.UnixMilli(), staleAfter.Milliseconds())
	if err != nil {
		return false, fmt.Errorf("acquiring lock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("acquiring lock: %w", err)
	}
	return n > 0, nil
}

// Unlock releases a lock, but only for its current owner: a lock that was
// stolen after going stale must not be released by the original holder.
func (s *Store) Unlock(ctx context.Context, key, owner string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM locks WHERE key = ? AND owner = ?`, key, owner)
	if err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}
	return nil
}

// Close closes the cache database.
func (s *Store) Close() error {
	return s.db.Close()
}
