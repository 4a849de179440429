package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/platform/obs"
)

const (
	pgInsertLookup = `
	INSERT INTO lookups (location, lat, lon, description, temperature_f, reply, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id;
	`

	pgListLookups = `
	SELECT id, location, lat, lon, description, temperature_f, reply, created_at
	FROM lookups
	ORDER BY id DESC
	LIMIT $1;
	`
)

// Postgres-backed implementation of the LookupRepository port.
type SQLLookupRepository struct{ DB *sql.DB }

func NewSQLLookupRepository(db *sql.DB) *SQLLookupRepository {
	return &SQLLookupRepository{DB: db}
}

func (s *SQLLookupRepository) RecordLookup(ctx context.Context, l *domain.Lookup) (err error) {
	defer obs.Time(ctx, "lookups.Record")(&err)

	if s.DB == nil {
		return errors.New("sql lookup repository: DB is nil")
	}
	if l == nil {
		return errors.New("record lookup: lookup is nil")
	}

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	err = s.DB.QueryRowContext(ctx, pgInsertLookup, l.Location, l.Lat, l.Lon, l.Description, l.TemperatureF, l.Reply, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("record lookup: insert: %w", err)
	}

	return nil
}

func (s *SQLLookupRepository) ListLookups(ctx context.Context, limit int) (_ []*domain.Lookup, err error) {
	defer obs.Time(ctx, "lookups.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql lookup repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, pgListLookups, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookups: query lookups table: %w", err)
	}
	defer rows.Close()

	lookups := make([]*domain.Lookup, 0, limit)
	for rows.Next() {
		var l domain.Lookup
		if err := rows.Scan(&l.ID, &l.Location, &l.Lat, &l.Lon, &l.Description, &l.TemperatureF, &l.Reply, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("list lookups: scan row: %w", err)
		}
		lookups = append(lookups, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lookups: row iteration: %w", err)
	}

	return lookups, nil
}
