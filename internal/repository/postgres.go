package repository

import (
	"context"
	"errors"
	"fmt"

	"billboard-locations/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS billboard_locations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		province TEXT NOT NULL,
		region TEXT NOT NULL,
		size TEXT NOT NULL,
		dimensions TEXT NOT NULL,
		show_times TEXT NOT NULL,
		timing TEXT NOT NULL,
		address TEXT NOT NULL,
		description TEXT NOT NULL,
		traffic TEXT NOT NULL,
		viewers_per_day BIGINT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS billboard_locations_geom_idx ON billboard_locations USING GIST (geom);
	CREATE INDEX IF NOT EXISTS billboard_locations_region_idx ON billboard_locations (region);
	ALTER TABLE billboard_locations ALTER COLUMN latitude DROP NOT NULL;
	ALTER TABLE billboard_locations ALTER COLUMN longitude DROP NOT NULL;
`

const selectColumns = `
	id,
	name,
	province,
	region,
	latitude,
	longitude,
	size,
	dimensions,
	show_times,
	timing,
	address,
	description,
	traffic,
	viewers_per_day
`

var copyColumns = []string{
	"id", "name", "province", "region", "latitude", "longitude", "size", "dimensions",
	"show_times", "timing", "address", "description", "traffic", "viewers_per_day",
}

// Repository stores billboard locations in PostgreSQL/PostGIS
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the locations table and its indexes if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplaceLocations swaps the stored locations for the given set in one transaction
func (r *Repository) ReplaceLocations(ctx context.Context, locations []models.Location) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE billboard_locations"); err != nil {
		return 0, fmt.Errorf("repository: failed to clear locations: %w", err)
	}

	// Use CopyFrom for bulk insert
	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"billboard_locations"},
		copyColumns,
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			l := locations[i]
			return []any{
				l.ID, l.Name, l.Province, string(l.Region),
				nullableCoordinate(l.Latitude, l.HasLatitude),
				nullableCoordinate(l.Longitude, l.HasLongitude),
				string(l.Size), l.Dimensions, l.ShowTimes, l.Timing, l.Address,
				l.Description, string(l.Traffic), l.ViewersPerDay,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}

	// Rows without coordinates get no point.
	_, err = tx.Exec(ctx, `
		UPDATE billboard_locations
		SET geom = ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	`)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to set geometries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit: %w", err)
	}
	return n, nil
}

// ListLocations returns stored locations ordered by id, narrowed by the filter
func (r *Repository) ListLocations(ctx context.Context, filter models.Filter) ([]models.Location, error) {
	sql := `SELECT` + selectColumns + `
		FROM billboard_locations
		WHERE ($1::text = '' OR region = $1)
		  AND ($2::text = '' OR size = $2)
		  AND ($3::text = '' OR traffic = $3)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, string(filter.Region), string(filter.Size), string(filter.Traffic))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// FindNearestLocation performs a spatial query to find the nearest billboard to the given coordinates.
// It returns nil when nothing lies within 10km.
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error) {
	sql := `SELECT` + selectColumns + `
		FROM billboard_locations
		WHERE geom IS NOT NULL
		  AND ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, 10000) -- Within 10km
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	loc, err := scanLocation(r.db.QueryRow(ctx, sql, lat, lon))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &loc, nil
}

func scanLocation(row pgx.Row) (models.Location, error) {
	var loc models.Location
	var region, size, traffic string
	var lat, lon *float64
	err := row.Scan(
		&loc.ID,
		&loc.Name,
		&loc.Province,
		&region,
		&lat,
		&lon,
		&size,
		&loc.Dimensions,
		&loc.ShowTimes,
		&loc.Timing,
		&loc.Address,
		&loc.Description,
		&traffic,
		&loc.ViewersPerDay,
	)
	loc.Region = models.Region(region)
	loc.Size = models.Size(size)
	loc.Traffic = models.Traffic(traffic)
	if lat != nil {
		loc.Latitude, loc.HasLatitude = *lat, true
	}
	if lon != nil {
		loc.Longitude, loc.HasLongitude = *lon, true
	}
	return loc, err
}

// nullableCoordinate stores a coordinate the sheet did not supply as NULL.
func nullableCoordinate(v float64, present bool) any {
	if !present {
		return nil
	}
	return v
}
