package service

import (
	"context"
	"errors"
	"fmt"

	"billboard-locations/internal/jsexport"
	"billboard-locations/internal/models"
)

var (
	// ErrInvalidFilter is returned when a filter value is not a known category.
	ErrInvalidFilter = errors.New("service: invalid filter")
	// ErrInvalidCoordinates is returned when latitude or longitude is out of range.
	ErrInvalidCoordinates = errors.New("service: invalid coordinates")
)

// LocationRepository interface for dependency injection
type LocationRepository interface {
	ListLocations(ctx context.Context, filter models.Filter) ([]models.Location, error)
	FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// LocationService contains the business logic for querying billboard locations
type LocationService struct {
	repo   LocationRepository
	script jsexport.Options
}

// NewLocationService creates a new location service. script configures the
// JavaScript rendering served by Script.
func NewLocationService(repo LocationRepository, script jsexport.Options) *LocationService {
	return &LocationService{repo: repo, script: script}
}

// List returns the stored locations matching filter
func (s *LocationService) List(ctx context.Context, filter models.Filter) ([]models.Location, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	locations, err := s.repo.ListLocations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}

	return locations, nil
}

// Nearest finds the billboard closest to the given coordinates, or nil if none is in range
func (s *LocationService) Nearest(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %f", ErrInvalidCoordinates, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude %f", ErrInvalidCoordinates, lon)
	}

	location, err := s.repo.FindNearestLocation(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest location: %w", err)
	}

	return location, nil
}

// Script renders every stored location as the locations-data.js source
func (s *LocationService) Script(ctx context.Context) ([]byte, error) {
	locations, err := s.repo.ListLocations(ctx, models.Filter{})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}

	return jsexport.Render(locations, s.script), nil
}

func validateFilter(f models.Filter) error {
	if f.Region != "" && !f.Region.Valid() {
		return fmt.Errorf("%w: unknown region %q", ErrInvalidFilter, f.Region)
	}
	if f.Size != "" && !f.Size.Valid() {
		return fmt.Errorf("%w: unknown size %q", ErrInvalidFilter, f.Size)
	}
	if f.Traffic != "" && !f.Traffic.Valid() {
		return fmt.Errorf("%w: unknown traffic %q", ErrInvalidFilter, f.Traffic)
	}
	return nil
}
