// Package ephemeris tabulates the scene positions of the bodies over a time
// range in a SQLite database.
package ephemeris

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/magi42/solarvibe"
	_ "github.com/mattn/go-sqlite3"
	"github.com/soniakeys/meeus/v3/julian"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	jd       REAL NOT NULL,
	body     TEXT NOT NULL,
	x        REAL NOT NULL,
	y        REAL NOT NULL,
	z        REAL NOT NULL,
	rotation REAL NOT NULL,
	PRIMARY KEY (body, jd));
`

const (
	insert     = `INSERT OR REPLACE INTO samples VALUES (?, ?, ?, ?, ?, ?);`
	queryRange = `SELECT jd, x, y, z FROM samples WHERE body = ? AND jd >= ? AND jd <= ? ORDER BY jd ASC;`
	queryBody  = `SELECT DISTINCT body FROM samples ORDER BY body ASC;`
	countRows  = `SELECT COUNT(*) FROM samples;`
)

// ErrStep is returned when a recording step is not positive.
var ErrStep = errors.New("step must be positive")

// Store is a table of sampled body positions.
type Store struct {
	db     *sql.DB
	logger kitlog.Logger
}

// Open opens, and creates if needed, the store in filename.
func Open(filename string, logger kitlog.Logger) (*Store, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	db, err := sql.Open("sqlite3", "file:"+filename+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, err
	}
	// Only one writer at a time.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create schema in %s: %w", filename, err)
	}
	return &Store{db: db, logger: kitlog.With(logger, "subsys", "ephemeris")}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores every body of the snapshot in a single transaction.
func (s *Store) Record(ctx context.Context, snap solarvibe.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, b := range snap.Bodies {
		if _, err = stmt.ExecContext(ctx, snap.JulianDay, b.ID, b.Position[0], b.Position[1], b.Position[2], b.Rotation); err != nil {
			return fmt.Errorf("could not record %s: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

// RecordRange steps the engine from from to to (inclusive) and records every
// frame. It returns the number of recorded frames.
func (s *Store) RecordRange(ctx context.Context, e *solarvibe.Engine, from, to time.Time, step time.Duration) (int, error) {
	if step <= 0 {
		return 0, ErrStep
	}
	frames := 0
	simDelta := 0.0
	for dt := from; !dt.After(to); dt = dt.Add(step) {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		e.Update(dt, simDelta)
		if err := s.Record(ctx, e.Snapshot()); err != nil {
			return frames, err
		}
		frames++
		simDelta = step.Seconds()
	}
	level.Info(s.logger).Log("status", "recorded", "frames", frames, "from", from.UTC(), "to", to.UTC(), "step", step)
	return frames, nil
}

// Query returns the samples of the body between from and to, in time order.
func (s *Store) Query(ctx context.Context, body string, from, to time.Time) ([]solarvibe.TrajectoryState, error) {
	rows, err := s.db.QueryContext(ctx, queryRange, body, julian.TimeToJD(from), julian.TimeToJD(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var states []solarvibe.TrajectoryState
	for rows.Next() {
		var st solarvibe.TrajectoryState
		var x, y, z float64
		if err := rows.Scan(&st.JD, &x, &y, &z); err != nil {
			return nil, err
		}
		st.Position = mgl64.Vec3{x, y, z}
		states = append(states, st)
	}
	return states, rows.Err()
}

// Bodies returns the identifiers of the recorded bodies.
func (s *Store) Bodies(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryBody)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Len returns the number of stored samples.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, countRows).Scan(&n)
	return n, err
}
