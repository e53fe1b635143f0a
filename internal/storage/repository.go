package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotConfigured indicates the storage pool was not initialised.
	ErrNotConfigured = errors.New("storage: pool not configured")
)

const (
	upsertMeasureSQL = `INSERT INTO risk_measures (
        symbol,
        name,
        doc,
        measure_type,
        asset_class,
        unit,
        shape,
        rendered,
        document,
        replaced_by,
        updated_at
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now()
    )
    ON CONFLICT (symbol) DO UPDATE
    SET
        name         = EXCLUDED.name,
        doc          = EXCLUDED.doc,
        measure_type = EXCLUDED.measure_type,
        asset_class  = EXCLUDED.asset_class,
        unit         = EXCLUDED.unit,
        shape        = EXCLUDED.shape,
        rendered     = EXCLUDED.rendered,
        document     = EXCLUDED.document,
        replaced_by  = EXCLUDED.replaced_by,
        updated_at   = now();`

	listMeasuresSQL = `SELECT
        symbol,
        name,
        doc,
        measure_type,
        asset_class,
        unit,
        shape,
        rendered,
        document,
        replaced_by,
        updated_at
    FROM risk_measures
    ORDER BY symbol
    LIMIT $1;`

	countMeasuresSQL = `SELECT COUNT(*) FROM risk_measures;`

	deleteMeasuresNotInSQL = `DELETE FROM risk_measures WHERE NOT (symbol = ANY($1));`

	tryAdvisoryLockSQL = `SELECT pg_try_advisory_lock($1);`
	advisoryUnlockSQL  = `SELECT pg_advisory_unlock($1);`
)

// MeasureStore defines operations for catalog publication.
type MeasureStore interface {
	UpsertMeasure(ctx context.Context, rec MeasureRecord) error
	ListMeasures(ctx context.Context, limit int) ([]MeasureRecord, error)
	CountMeasures(ctx context.Context) (int64, error)
	DeleteMeasuresNotIn(ctx context.Context, symbols []string) (int64, error)
}

// AdvisoryLocker exposes advisory lock helpers.
type AdvisoryLocker interface {
	TryAdvisoryLock(ctx context.Context, key int64) (unlock func(), acquired bool, err error)
}

// Store is the Postgres-backed MeasureStore.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wires a pgx pool into a Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// TryAdvisoryLock attempts to acquire a postgres advisory lock and returns a release func.
func (s *Store) TryAdvisoryLock(ctx context.Context, key int64) (func(), bool, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, false, err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire connection: %w", err)
	}

	var acquired bool
	if err := conn.QueryRow(ctx, tryAdvisoryLockSQL, key).Scan(&acquired); err != nil {
		conn.Release()
		return nil, false, fmt.Errorf("try advisory lock: %w", err)
	}
	if !acquired {
		conn.Release()
		return nil, false, nil
	}

	unlock := func() {
		ctxUnlock, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// best effort; the session lock also drops when the connection closes
		_, _ = conn.Exec(ctxUnlock, advisoryUnlockSQL, key)
		conn.Release()
	}
	return unlock, true, nil
}

func (s *Store) getPool() (*pgxpool.Pool, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNotConfigured
	}
	return s.pool, nil
}

// UpsertMeasure persists or updates a catalog entry.
func (s *Store) UpsertMeasure(ctx context.Context, rec MeasureRecord) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}

	document := rec.Document
	if len(document) == 0 {
		document = json.RawMessage("{}")
	}

	_, execErr := pool.Exec(ctx, upsertMeasureSQL,
		rec.Symbol,
		rec.Name,
		rec.Doc,
		rec.MeasureType,
		rec.AssetClass,
		rec.Unit,
		rec.Shape,
		rec.Rendered,
		[]byte(document),
		rec.ReplacedBy,
	)
	if execErr != nil {
		return fmt.Errorf("upsert measure %s: %w", rec.Symbol, execErr)
	}
	return nil
}

// ListMeasures lists published entries ordered by symbol.
func (s *Store) ListMeasures(ctx context.Context, limit int) ([]MeasureRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listMeasuresSQL, limit)
	if queryErr != nil {
		return nil, fmt.Errorf("list measures: %w", queryErr)
	}
	defer rows.Close()

	records := make([]MeasureRecord, 0, limit)
	for rows.Next() {
		rec, scanErr := scanMeasure(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// CountMeasures counts published entries.
func (s *Store) CountMeasures(ctx context.Context) (int64, error) {
	pool, err := s.getPool()
	if err != nil {
		return 0, err
	}
	var count int64
	if scanErr := pool.QueryRow(ctx, countMeasuresSQL).Scan(&count); scanErr != nil {
		return 0, fmt.Errorf("count measures: %w", scanErr)
	}
	return count, nil
}

// DeleteMeasuresNotIn prunes entries no longer in the catalog.
func (s *Store) DeleteMeasuresNotIn(ctx context.Context, symbols []string) (int64, error) {
	pool, err := s.getPool()
	if err != nil {
		return 0, err
	}
	tag, execErr := pool.Exec(ctx, deleteMeasuresNotInSQL, symbols)
	if execErr != nil {
		return 0, fmt.Errorf("delete measures: %w", execErr)
	}
	return tag.RowsAffected(), nil
}

func scanMeasure(rows pgx.Rows) (MeasureRecord, error) {
	var (
		rec        MeasureRecord
		assetClass sql.NullString
		unit       sql.NullString
		shape      sql.NullString
		replacedBy sql.NullString
	)

	if err := rows.Scan(
		&rec.Symbol,
		&rec.Name,
		&rec.Doc,
		&rec.MeasureType,
		&assetClass,
		&unit,
		&shape,
		&rec.Rendered,
		&rec.Document,
		&replacedBy,
		&rec.UpdatedAt,
	); err != nil {
		return MeasureRecord{}, fmt.Errorf("scan measure: %w", err)
	}

	rec.AssetClass = nullable(assetClass)
	rec.Unit = nullable(unit)
	rec.Shape = nullable(shape)
	rec.ReplacedBy = nullable(replacedBy)
	return rec, nil
}

func nullable(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

var (
	_ MeasureStore   = (*Store)(nil)
	_ AdvisoryLocker = (*Store)(nil)
)
