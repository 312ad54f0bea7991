// Package iocache persists imported benchmark samples in a local SQLite
// database so that plots can be regenerated without the original inputs.
package iocache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// Table names for sample storage.
const (
	runsTable    = "benchplot_runs"
	samplesTable = "benchplot_samples"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// ErrNoRuns is returned when the store holds nothing to load.
var ErrNoRuns = errors.New("iocache: no runs stored")

// SampleStoreImpl implements the SampleStore interface on SQLite.
type SampleStoreImpl struct {
	db  *sql.DB
	now func() time.Time
}

var _ contract.SampleStore = &SampleStoreImpl{} // Compile-time check

// OpenSampleStore opens (or creates) the database at dbPath and migrates it
// to the latest schema version.
func OpenSampleStore(dbPath string) (*SampleStoreImpl, error) {
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database at %q: %w", dbPath, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := migrateDB(db, -1); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SampleStoreImpl{db: db, now: time.Now}, nil
}

// Import implements the SampleStore interface.
func (s *SampleStoreImpl) Import(ctx context.Context, source string, curves []schema.Curve) (int64, error) {
	if len(curves) == 0 {
		return 0, errors.New("iocache: nothing to import")
	}
	rows, err := schema.RowsFromCurves(curves)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (source, imported_at, curve_count) VALUES (?, ?, ?)", runsTable),
		source, s.now().UnixNano(), len(curves))
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (run_id, curve, group_id, function_id, value_str, throughput_kind, throughput_count, title, measurement)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, samplesTable))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, runID, r.Curve, r.Group,
			nullString(r.Function), nullString(r.Value), nullString(r.ThroughputKind),
			nullInt(r.ThroughputCount), nullString(r.Title), r.Measurement); err != nil {
			return 0, fmt.Errorf("failed to insert sample of curve %d: %w", r.Curve, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return runID, nil
}

// Load implements the SampleStore interface.
func (s *SampleStoreImpl) Load(ctx context.Context, runID int64) ([]schema.Curve, error) {
	if runID <= 0 {
		latest, err := s.latestRun(ctx)
		if err != nil {
			return nil, err
		}
		runID = latest
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT curve, group_id, function_id, value_str, throughput_kind, throughput_count, title, measurement
		FROM %s WHERE run_id = ? ORDER BY sample_id`, samplesTable), runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples of run %d: %w", runID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.SampleRow
	for rows.Next() {
		var r schema.SampleRow
		var function, value, kind, title sql.NullString
		var count sql.NullInt64
		if err := rows.Scan(&r.Curve, &r.Group, &function, &value, &kind, &count, &title, &r.Measurement); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		r.Function = stringPtr(function)
		r.Value = stringPtr(value)
		r.ThroughputKind = stringPtr(kind)
		r.Title = stringPtr(title)
		if count.Valid {
			r.ThroughputCount = &count.Int64
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: run %d has no samples", ErrNoRuns, runID)
	}
	return schema.CurvesFromRows(out)
}

// Runs implements the SampleStore interface.
func (s *SampleStoreImpl) Runs(ctx context.Context) ([]schema.ImportRun, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT r.run_id, r.source, r.imported_at, r.curve_count, COUNT(s.sample_id)
		FROM %s r LEFT JOIN %s s ON s.run_id = r.run_id
		GROUP BY r.run_id ORDER BY r.run_id DESC`, runsTable, samplesTable))
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []schema.ImportRun
	for rows.Next() {
		var run schema.ImportRun
		var importedAt int64
		if err := rows.Scan(&run.ID, &run.Source, &importedAt, &run.Curves, &run.Rows); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.ImportedAt = time.Unix(0, importedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close implements the SampleStore interface.
func (s *SampleStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SampleStoreImpl) latestRun(ctx context.Context) (int64, error) {
	var runID sql.NullInt64
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT MAX(run_id) FROM %s", runsTable)).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to find latest run: %w", err)
	}
	if !runID.Valid {
		return 0, ErrNoRuns
	}
	return runID.Int64, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
