package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"billboard-locations/internal/models"
	"billboard-locations/internal/table"
)

// ErrNoDelimiter is returned by ParseSize when the text is not of the form WxH.
var ErrNoDelimiter = errors.New("transform: size has no 'x' delimiter")

var regionNames = map[string]models.Region{
	"ภาคเหนือ":    models.RegionNorth,
	"ภาคอีสาน":    models.RegionNortheast,
	"ภาคกลาง":     models.RegionCentral,
	"ภาคตะวันออก": models.RegionEast,
	"ภาคตะวันตก":  models.RegionWest,
	"ภาคใต้":      models.RegionSouth,
}

// Area thresholds in square metres.
const (
	xlargeArea = 80
	largeArea  = 50
	mediumArea = 20
)

// Monthly viewer thresholds.
const (
	veryHighTraffic = 3_000_000
	highTraffic     = 2_000_000
	mediumTraffic   = 1_000_000
)

// ClassifyRegion looks up the region key for a Thai region name. Matching is
// exact; anything unknown or missing is central.
func ClassifyRegion(c table.Cell) models.Region {
	if c.Missing {
		return models.RegionCentral
	}
	if r, ok := regionNames[c.Text]; ok {
		return r
	}
	return models.RegionCentral
}

// ClassifySize buckets a "WxH" size cell, defaulting to medium.
func ClassifySize(c table.Cell) models.Size {
	if c.Missing {
		return models.SizeMedium
	}
	size, _ := ParseSize(c.Text)
	return size
}

// ParseSize buckets a "WxH" size string by area. On error the returned size
// is medium. An empty height ("10x") counts as zero.
func ParseSize(text string) (models.Size, error) {
	s := strings.ToLower(text)
	if !strings.Contains(s, "x") {
		return models.SizeMedium, ErrNoDelimiter
	}

	parts := strings.Split(s, "x")
	width, err := parseFloat(parts[0])
	if err != nil {
		return models.SizeMedium, fmt.Errorf("transform: invalid width %q: %w", parts[0], err)
	}

	var height float64
	if h := strings.TrimSpace(parts[1]); h != "" {
		height, err = parseFloat(h)
		if err != nil {
			return models.SizeMedium, fmt.Errorf("transform: invalid height %q: %w", parts[1], err)
		}
	}

	area := width * height
	switch {
	case area >= xlargeArea:
		return models.SizeXLarge, nil
	case area >= largeArea:
		return models.SizeLarge, nil
	case area >= mediumArea:
		return models.SizeMedium, nil
	default:
		return models.SizeSmall, nil
	}
}

// ClassifyTraffic buckets a monthly traffic cell, defaulting to medium.
func ClassifyTraffic(c table.Cell) models.Traffic {
	if c.Missing {
		return models.TrafficMedium
	}
	traffic, _ := ParseTraffic(c.Text)
	return traffic
}

// ParseTraffic buckets a monthly viewer count such as "3,500,000". On error
// the returned level is medium.
func ParseTraffic(text string) (models.Traffic, error) {
	v, err := parseFloat(stripGrouping(text))
	if err != nil {
		return models.TrafficMedium, fmt.Errorf("transform: invalid traffic %q: %w", text, err)
	}

	switch {
	case v >= veryHighTraffic:
		return models.TrafficVeryHigh, nil
	case v >= highTraffic:
		return models.TrafficHigh, nil
	case v >= mediumTraffic:
		return models.TrafficMedium, nil
	default:
		return models.TrafficLow, nil
	}
}

// ParseViewers reads the traffic cell as a whole viewer count.
func ParseViewers(text string) (int64, error) {
	s := strings.TrimSpace(stripGrouping(text))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("transform: invalid viewer count %q: %w", text, err)
	}
	return n, nil
}

// ParseCoordinate reads a latitude or longitude cell.
func ParseCoordinate(text string) (float64, error) {
	v, err := parseFloat(text)
	if err != nil {
		return 0, fmt.Errorf("transform: invalid coordinate %q: %w", text, err)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func stripGrouping(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
