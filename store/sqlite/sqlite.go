/*
Package sqlite provides a SQLite-backed implementation of the catalog
and quote-audit storage.

PURPOSE:
  Persists buildings with their ordered unit inventories, and keeps an
  append-only log of every quote the service produced. In production the
  same patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  buildings: One row per property, with the base-price fallback
  units:     Inventory rows; `position` preserves feed insertion order,
             which the resolver depends on for fallback selection
  quotes:    Append-only audit of priced quotes (no UPDATE, no DELETE;
             a quote is a fact about what was shown to a tenant)

WAL MODE:
  SQLite is opened with WAL for better concurrency: multiple readers
  don't block, single writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/movein.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/openhaus/movein-engine/catalog"
)

// ErrBuildingNotFound is returned when a building id has no row.
var ErrBuildingNotFound = errors.New("building not found")

// Store implements catalog and quote persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS buildings (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		comuna TEXT NOT NULL,
		base_price INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS units (
		id TEXT PRIMARY KEY,
		building_id TEXT NOT NULL REFERENCES buildings(id),
		position INTEGER NOT NULL,
		typology TEXT NOT NULL,
		monthly_rent INTEGER NOT NULL DEFAULT 0,
		available INTEGER NOT NULL DEFAULT 0,
		bedrooms INTEGER NOT NULL DEFAULT 0,
		bathrooms INTEGER NOT NULL DEFAULT 0,
		m2 REAL NOT NULL DEFAULT 0,
		floor INTEGER NOT NULL DEFAULT 0,
		orientation TEXT NOT NULL DEFAULT '',
		has_parking INTEGER NOT NULL DEFAULT 0,
		has_storage INTEGER NOT NULL DEFAULT 0,
		furnished INTEGER NOT NULL DEFAULT 0,
		pet_friendly INTEGER NOT NULL DEFAULT 0,
		internal_code TEXT NOT NULL DEFAULT ''
	);

	-- Feed insertion order is load-bearing: the resolver picks the
	-- first available unit in this order as the fallback.
	CREATE INDEX IF NOT EXISTS idx_units_building_position
		ON units(building_id, position);

	-- Append-only quote audit log.
	CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		building_id TEXT NOT NULL,
		unit_id TEXT,
		requested_unit_id TEXT,
		outcome TEXT NOT NULL,
		move_in TEXT NOT NULL,
		parking INTEGER NOT NULL,
		storage INTEGER NOT NULL,
		monthly_rent INTEGER NOT NULL,
		total_first_payment INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_quotes_building
		ON quotes(building_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// BUILDINGS
// =============================================================================

// SaveBuilding upserts a building and replaces its unit inventory,
// preserving the order of b.Units.
func (s *Store) SaveBuilding(ctx context.Context, b catalog.Building) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO buildings (id, name, comuna, base_price, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			comuna = excluded.comuna,
			base_price = excluded.base_price`,
		b.ID, b.Name, b.Comuna, b.BasePrice, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save building: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM units WHERE building_id = ?`, b.ID); err != nil {
		return fmt.Errorf("clear units: %w", err)
	}

	for i, u := range b.Units {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO units (
				id, building_id, position, typology, monthly_rent, available,
				bedrooms, bathrooms, m2, floor, orientation,
				has_parking, has_storage, furnished, pet_friendly, internal_code
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, b.ID, i, u.Typology, u.MonthlyRent, u.Available,
			u.Bedrooms, u.Bathrooms, u.M2, u.Floor, u.Orientation,
			u.HasParking, u.HasStorage, u.Furnished, u.PetFriendly, u.InternalCode)
		if err != nil {
			return fmt.Errorf("save unit %s: %w", u.ID, err)
		}
	}

	return tx.Commit()
}

// GetBuilding loads one building with its units in insertion order.
func (s *Store) GetBuilding(ctx context.Context, id catalog.BuildingID) (catalog.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b catalog.Building
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, comuna, base_price FROM buildings WHERE id = ?`, id).
		Scan(&b.ID, &b.Name, &b.Comuna, &b.BasePrice)
	if err == sql.ErrNoRows {
		return catalog.Building{}, ErrBuildingNotFound
	}
	if err != nil {
		return catalog.Building{}, fmt.Errorf("get building: %w", err)
	}

	units, err := s.unitsFor(ctx, id)
	if err != nil {
		return catalog.Building{}, err
	}
	b.Units = units
	return b, nil
}

// ListBuildings returns all buildings with their unit inventories.
func (s *Store) ListBuildings(ctx context.Context) ([]catalog.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, comuna, base_price FROM buildings ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()

	var buildings []catalog.Building
	for rows.Next() {
		var b catalog.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Comuna, &b.BasePrice); err != nil {
			return nil, err
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range buildings {
		units, err := s.unitsFor(ctx, buildings[i].ID)
		if err != nil {
			return nil, err
		}
		buildings[i].Units = units
	}
	return buildings, nil
}

func (s *Store) unitsFor(ctx context.Context, id catalog.BuildingID) (catalog.UnitCatalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, building_id, typology, monthly_rent, available,
		       bedrooms, bathrooms, m2, floor, orientation,
		       has_parking, has_storage, furnished, pet_friendly, internal_code
		FROM units WHERE building_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units catalog.UnitCatalog
	for rows.Next() {
		var u catalog.Unit
		err := rows.Scan(
			&u.ID, &u.BuildingID, &u.Typology, &u.MonthlyRent, &u.Available,
			&u.Bedrooms, &u.Bathrooms, &u.M2, &u.Floor, &u.Orientation,
			&u.HasParking, &u.HasStorage, &u.Furnished, &u.PetFriendly, &u.InternalCode)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// =============================================================================
// QUOTE AUDIT LOG
// =============================================================================

// QuoteRecord is one audit row: what was quoted, for what inputs.
type QuoteRecord struct {
	ID                string
	BuildingID        catalog.BuildingID
	UnitID            catalog.UnitID
	RequestedUnitID   catalog.UnitID
	Outcome           string
	MoveIn            string
	Parking           bool
	Storage           bool
	MonthlyRent       int64
	TotalFirstPayment int64
	CreatedAt         time.Time
}

// SaveQuote appends one audit row. Quotes are never updated or deleted.
func (s *Store) SaveQuote(ctx context.Context, q QuoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (
			id, building_id, unit_id, requested_unit_id, outcome,
			move_in, parking, storage, monthly_rent, total_first_payment, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.BuildingID, q.UnitID, q.RequestedUnitID, q.Outcome,
		q.MoveIn, q.Parking, q.Storage, q.MonthlyRent, q.TotalFirstPayment,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save quote: %w", err)
	}
	return nil
}

// ListQuotes returns the most recent audit rows, newest first.
func (s *Store) ListQuotes(ctx context.Context, limit int) ([]QuoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, building_id, unit_id, requested_unit_id, outcome,
		       move_in, parking, storage, monthly_rent, total_first_payment, created_at
		FROM quotes ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var records []QuoteRecord
	for rows.Next() {
		var q QuoteRecord
		var createdAt string
		err := rows.Scan(
			&q.ID, &q.BuildingID, &q.UnitID, &q.RequestedUnitID, &q.Outcome,
			&q.MoveIn, &q.Parking, &q.Storage, &q.MonthlyRent, &q.TotalFirstPayment,
			&createdAt)
		if err != nil {
			return nil, err
		}
		q.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, q)
	}
	return records, rows.Err()
}
