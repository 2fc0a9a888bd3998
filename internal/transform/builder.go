package transform

import (
	"fmt"

	"billboard-locations/internal/models"
	"billboard-locations/internal/table"

	"github.com/rs/zerolog"
)

// Columns names the sheet headers each record field is read from. The header
// names are a contract with the sheet producer, gaps included.
type Columns struct {
	Region    string
	Province  string
	Media     string
	Location  string
	Latitude  string
	Longitude string
	Size      string
	ShowTimes string
	Timing    string
	Traffic   string
}

// DefaultColumns returns the headers of the published media-location sheet.
func DefaultColumns() Columns {
	return Columns{
		Region:    "Regions",
		Province:  "Unnamed: 1",
		Media:     "Media Locations",
		Location:  "Unnamed: 3",
		Latitude:  "Latitude",
		Longitude: "Longitude",
		Size:      "Size",
		ShowTimes: "Show Times",
		Timing:    "Timing",
		Traffic:   "Traffic/Mth",
	}
}

func (c Columns) names() []string {
	return []string{
		c.Region, c.Province, c.Media, c.Location, c.Latitude,
		c.Longitude, c.Size, c.ShowTimes, c.Timing, c.Traffic,
	}
}

// BuildStats summarises a build.
type BuildStats struct {
	Rows             int
	Emitted          int
	Skipped          int
	SizeFallbacks    int
	TrafficFallbacks int
	ViewerFallbacks  int
}

// Builder maps sheet rows onto location records.
type Builder struct {
	columns Columns
	logger  zerolog.Logger
}

// NewBuilder creates a builder reading the given columns.
func NewBuilder(columns Columns, logger zerolog.Logger) *Builder {
	return &Builder{columns: columns, logger: logger}
}

// Build maps every row of tbl in order. Rows without a media name or a
// location name are skipped; ids are the source row index plus one, so
// skipped rows leave gaps. An unparsable coordinate aborts the build.
func (b *Builder) Build(tbl *table.Table) ([]models.Location, BuildStats, error) {
	var stats BuildStats
	for _, name := range b.columns.names() {
		if !tbl.HasColumn(name) {
			return nil, stats, fmt.Errorf("transform: missing column %q", name)
		}
	}

	locations := make([]models.Location, 0, len(tbl.Rows))
	for i := range tbl.Rows {
		stats.Rows++
		rec := tbl.Record(i)
		if rec.Get(b.columns.Media).Missing || rec.Get(b.columns.Location).Missing {
			stats.Skipped++
			continue
		}

		loc, err := b.buildRow(i, rec, &stats)
		if err != nil {
			return nil, stats, err
		}
		locations = append(locations, loc)
		stats.Emitted++
	}

	return locations, stats, nil
}

func (b *Builder) buildRow(i int, rec table.Record, stats *BuildStats) (models.Location, error) {
	id := i + 1
	log := b.logger.With().Int("row", id).Logger()

	latCell, lonCell := rec.Get(b.columns.Latitude), rec.Get(b.columns.Longitude)
	lat, err := b.coordinate(latCell, b.columns.Latitude)
	if err != nil {
		return models.Location{}, fmt.Errorf("transform: row %d: %w", id, err)
	}
	lon, err := b.coordinate(lonCell, b.columns.Longitude)
	if err != nil {
		return models.Location{}, fmt.Errorf("transform: row %d: %w", id, err)
	}

	sizeCell := rec.Get(b.columns.Size)
	size := models.SizeMedium
	if !sizeCell.Missing {
		size, err = ParseSize(sizeCell.Text)
		if err != nil {
			stats.SizeFallbacks++
			log.Warn().Err(err).Str("size", sizeCell.Text).Msg("size not classifiable, using medium")
		}
	}

	trafficCell := rec.Get(b.columns.Traffic)
	traffic := models.TrafficMedium
	var viewers int64
	if !trafficCell.Missing {
		traffic, err = ParseTraffic(trafficCell.Text)
		if err != nil {
			stats.TrafficFallbacks++
			log.Warn().Err(err).Str("traffic", trafficCell.Text).Msg("traffic not classifiable, using medium")
		}
		viewers, err = ParseViewers(trafficCell.Text)
		if err != nil {
			stats.ViewerFallbacks++
			log.Warn().Err(err).Str("traffic", trafficCell.Text).Msg("viewer count not an integer, using 0")
		}
	}

	name := Clean(rec.Get(b.columns.Location))
	province := Clean(rec.Get(b.columns.Province))
	dimensions := Clean(sizeCell)

	return models.Location{
		ID:            id,
		Name:          name,
		Province:      province,
		Region:        ClassifyRegion(rec.Get(b.columns.Region)),
		Latitude:      lat,
		Longitude:     lon,
		Size:          size,
		Dimensions:    dimensions,
		ShowTimes:     Clean(rec.Get(b.columns.ShowTimes)),
		Timing:        Clean(rec.Get(b.columns.Timing)),
		Address:       name,
		Description:   Describe(dimensions, name, province),
		Traffic:       traffic,
		ViewersPerDay: viewers,
		HasLatitude:   !latCell.Missing,
		HasLongitude:  !lonCell.Missing,
	}, nil
}

func (b *Builder) coordinate(c table.Cell, column string) (float64, error) {
	if c.Missing {
		return 0, nil
	}
	v, err := ParseCoordinate(c.Text)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}

// Describe renders the Thai display sentence for a screen.
func Describe(dimensions, address, province string) string {
	return fmt.Sprintf("จอ LED %s ตั้งอยู่%s จังหวัด%s", dimensions, address, province)
}
