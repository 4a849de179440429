package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"weather-tool-service/internal/domain"
)

// SQLite-backed implementation of the LookupRepository port.
type SqliteLookupRepository struct{ DB *sql.DB }

func NewSqliteLookupRepository(db *sql.DB) *SqliteLookupRepository {
	return &SqliteLookupRepository{DB: db}
}

func (s *SqliteLookupRepository) RecordLookup(ctx context.Context, l *domain.Lookup) error {
	if s.DB == nil {
		return errors.New("sqlite lookup repository: DB is nil")
	}
	if l == nil {
		return errors.New("record lookup: lookup is nil")
	}

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	res, err := s.DB.ExecContext(ctx, `
	INSERT INTO lookups (
		location,
		lat,
		lon,
		description,
		temperature_f,
		reply,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`, l.Location, l.Lat, l.Lon, l.Description, l.TemperatureF, l.Reply, l.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record lookup: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record lookup: last insert id: %w", err)
	}
	l.ID = id

	return nil
}

// Return the most recent lookups, newest first.
func (s *SqliteLookupRepository) ListLookups(ctx context.Context, limit int) ([]*domain.Lookup, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite lookup repository: DB is nil")
	}

	query := `
	SELECT
		id,
		location,
		lat,
		lon,
		description,
		temperature_f,
		reply,
		created_at
	FROM lookups
	ORDER BY id DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookups: query lookups table: %w", err)
	}
	defer rows.Close()

	lookups := make([]*domain.Lookup, 0, limit)
	for rows.Next() {
		var l domain.Lookup
		var createdAt string
		if err := rows.Scan(&l.ID, &l.Location, &l.Lat, &l.Lon, &l.Description, &l.TemperatureF, &l.Reply, &createdAt); err != nil {
			return nil, fmt.Errorf("list lookups: scan row: %w", err)
		}

		l.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list lookups: parse created_at id=%d: %w", l.ID, err)
		}
		lookups = append(lookups, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lookups: row iteration: %w", err)
	}

	return lookups, nil
}
