// Package store persists user-defined calendar occasions in SQLite.
//
// The database runs in WAL mode so a long-running reader (a calendar view
// rendering a month) never blocks the CLI adding or removing occasions.
// Writes go through retryOnContention to ride out transient lock errors.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daviddao/persiancal/pkg/clock"
	"github.com/daviddao/persiancal/pkg/model"
	"github.com/daviddao/persiancal/pkg/persian"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no occasion has the requested ID.
var ErrNotFound = errors.New("occasion not found")

// Store manages all SQLite operations with WAL mode for concurrent access.
type Store struct {
	db  *sql.DB
	clk clock.Clock
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock AddOccasion stamps CreatedAt from. The default
// is clock.System.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clk = c }
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string, opts ...Option) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db, clk: clock.System{}}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// retryOnContention runs an occasion write under writeBackoff.
func retryOnContention(ctx context.Context, fn func() error) error {
	return retryOp(ctx, writeBackoff, fn)
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS occasions (
		id         TEXT PRIMARY KEY,
		year       INTEGER NOT NULL DEFAULT 0,
		month      INTEGER NOT NULL,
		day        INTEGER NOT NULL,
		title      TEXT NOT NULL,
		holiday    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_occasions_month_day ON occasions(month, day);
	CREATE INDEX IF NOT EXISTS idx_occasions_year ON occasions(year);
	`
	_, err := s.db.Exec(schema)
	return err
}

const occasionColumns = `id, year, month, day, title, holiday, created_at`

// AddOccasion validates o and inserts it. A nil ID is replaced with a
// fresh one and a zero CreatedAt with the store clock's current time.
func (s *Store) AddOccasion(ctx context.Context, o *model.Occasion) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.clk.Now().UTC()
	}
	if err := model.Validate(*o); err != nil {
		return err
	}
	return retryOnContention(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO occasions (`+occasionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			o.ID.String(), o.Year, o.Month, o.Day, o.Title, boolToInt(o.Holiday),
			o.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert occasion %s: %w", o.ID, err)
		}
		return nil
	})
}

// GetOccasion retrieves an occasion by ID.
func (s *Store) GetOccasion(ctx context.Context, id uuid.UUID) (*model.Occasion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+occasionColumns+` FROM occasions WHERE id = ?`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := scanOccasions(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &out[0], nil
}

// DeleteOccasion removes an occasion by ID.
func (s *Store) DeleteOccasion(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := retryOnContention(ctx, func() error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM occasions WHERE id = ?`, id.String())
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete occasion %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// ListOccasions returns every occasion in calendar order. Recurring
// occasions sort before dated ones on the same month and day.
func (s *Store) ListOccasions(ctx context.Context) ([]model.Occasion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+occasionColumns+` FROM occasions ORDER BY month, day, year, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOccasions(rows)
}

// OccasionsOn returns the occasions falling on d: recurring ones for its
// month and day plus those dated in d's year.
func (s *Store) OccasionsOn(ctx context.Context, d persian.Date) ([]model.Occasion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+occasionColumns+` FROM occasions
		 WHERE month = ? AND day = ? AND (year = 0 OR year = ?)
		 ORDER BY year, title`,
		int(d.Month()), d.Day(), d.Year())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOccasions(rows)
}

// OccasionsInMonth returns the occasions falling in ym ordered by day.
// A recurring Esfand 30 occasion is left out of common years.
func (s *Store) OccasionsInMonth(ctx context.Context, ym persian.YearMonth) ([]model.Occasion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+occasionColumns+` FROM occasions
		 WHERE month = ? AND day <= ? AND (year = 0 OR year = ?)
		 ORDER BY day, year, title`,
		int(ym.Month()), ym.Days(), ym.Year())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOccasions(rows)
}

// CountOccasions returns the total number of stored occasions.
func (s *Store) CountOccasions(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM occasions`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanOccasions(rows *sql.Rows) ([]model.Occasion, error) {
	var out []model.Occasion
	for rows.Next() {
		var o model.Occasion
		var idStr, createdStr string
		var holiday int
		if err := rows.Scan(&idStr, &o.Year, &o.Month, &o.Day, &o.Title, &holiday, &createdStr); err != nil {
			return nil, err
		}
		var parseErr error
		o.ID, parseErr = uuid.Parse(idStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parse id %q: %w", idStr, parseErr)
		}
		o.CreatedAt, parseErr = time.Parse(time.RFC3339Nano, createdStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parse created_at time for occasion %s: %w", o.ID, parseErr)
		}
		o.Holiday = holiday != 0
		out = append(out, o)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
