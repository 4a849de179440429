package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
	"weather-tool-service/internal/domain"
	"weather-tool-service/internal/platform/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := InitSchema(conn, "sqlite"); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return conn
}

func TestSqliteLookupRepositoryRecordAndList(t *testing.T) {
	repo := NewSqliteLookupRepository(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, loc := range []string{"Boston", "Denver", "Miami"} {
		l := &domain.Lookup{
			Location:     loc,
			Lat:          40 + float64(i),
			Lon:          -70 - float64(i),
			Description:  "Cloudy",
			TemperatureF: 50,
			Reply:        "reply " + loc,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.RecordLookup(ctx, l); err != nil {
			t.Fatalf("record %s: %v", loc, err)
		}
		if l.ID == 0 {
			t.Fatalf("expected id to be assigned for %s", loc)
		}
	}

	got, err := repo.ListLookups(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 lookups, got %d", len(got))
	}
	if got[0].Location != "Miami" || got[1].Location != "Denver" {
		t.Fatalf("order = [%s %s], want [Miami Denver]", got[0].Location, got[1].Location)
	}
	if !got[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("created_at = %v, want %v", got[0].CreatedAt, base.Add(2*time.Minute))
	}
	if got[0].Reply != "reply Miami" {
		t.Fatalf("reply = %q", got[0].Reply)
	}
}

func TestSqliteLookupRepositoryDefaultsCreatedAt(t *testing.T) {
	repo := NewSqliteLookupRepository(openTestDB(t))

	l := &domain.Lookup{Location: "Boston", Lat: 42.36, Lon: -71.06}
	if err := repo.RecordLookup(context.Background(), l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestInitSchemaRejectsUnknownDriver(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(conn, "mysql"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

type recordingStationCache struct {
	m map[string][]string
}

func (c *recordingStationCache) Get(ctx context.Context, point string) ([]string, bool, error) {
	ids, ok := c.m[point]
	return ids, ok, nil
}

func (c *recordingStationCache) Put(ctx context.Context, point string, ids []string) error {
	c.m[point] = ids
	return nil
}

func TestSeedStationsFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.json")
	body := `[{"point":"42.3601,-71.0589","station_ids":["KBOS","KOWD"]}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	c := &recordingStationCache{m: map[string][]string{}}
	if err := SeedStationsFromJSON(context.Background(), c, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := c.m["42.3601,-71.0589"]
	if len(ids) != 2 || ids[0] != "KBOS" {
		t.Fatalf("seeded ids = %v, want [KBOS KOWD]", ids)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"point":"","station_ids":["X"]}]`), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedStationsFromJSON(context.Background(), c, bad); err == nil {
		t.Fatalf("expected error for empty point")
	}
}
