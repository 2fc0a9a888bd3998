package jsexport

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"billboard-locations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLocations() []models.Location {
	return []models.Location{
		{
			ID:            1,
			Name:          "สยามพารากอน",
			Province:      "กรุงเทพมหานคร",
			Region:        models.RegionCentral,
			Latitude:      13.7462,
			Longitude:     100.5347,
			Size:          models.SizeXLarge,
			Dimensions:    "12x8",
			ShowTimes:     "06:00-24:00",
			Timing:        "15 sec",
			Address:       "สยามพารากอน",
			Description:   "จอ LED 12x8 ตั้งอยู่สยามพารากอน จังหวัดกรุงเทพมหานคร",
			Traffic:       models.TrafficVeryHigh,
			ViewersPerDay: 3500000,
		},
		{
			ID:          4,
			Name:        `5" LED \ ป้าย`,
			Province:    "ชลบุรี",
			Region:      models.RegionEast,
			Latitude:    13,
			Size:        models.SizeMedium,
			Address:     `5" LED \ ป้าย`,
			Description: "จอ LED  ตั้งอยู่ จังหวัดชลบุรี",
			Traffic:     models.TrafficMedium,
		},
	}
}

func TestRender_Layout(t *testing.T) {
	out := string(Render(sampleLocations()[:1], Options{}))

	expected := `// PP Cloud Media - LED Billboard Locations Data
// Generated from data.csv

const locationsData = [
    {
        id: 1,
        name: "สยามพารากอน",
        province: "กรุงเทพมหานคร",
        region: "central",
        latitude: 13.7462,
        longitude: 100.5347,
        size: "xlarge",
        dimensions: "12x8",
        showTimes: "06:00-24:00",
        timing: "15 sec",
        address: "สยามพารากอน",
        description: "จอ LED 12x8 ตั้งอยู่สยามพารากอน จังหวัดกรุงเทพมหานคร",
        traffic: "very_high",
        viewersPerDay: 3500000,
    }
];
`
	assert.Equal(t, expected, out)
}

func TestRender_TrailingCommaOnlyBetweenObjects(t *testing.T) {
	out := string(Render(sampleLocations(), Options{}))

	assert.Equal(t, 1, strings.Count(out, "    },\n"))
	assert.True(t, strings.HasSuffix(out, "    }\n];\n"))
}

func TestRender_Options(t *testing.T) {
	out := string(Render(nil, Options{Variable: "screens", Source: "media.xlsx"}))

	assert.Equal(t, "// PP Cloud Media - LED Billboard Locations Data\n// Generated from media.xlsx\n\nconst screens = [\n];\n", out)
}

func TestRender_EscapesStrings(t *testing.T) {
	out := string(Render(sampleLocations()[1:], Options{}))

	assert.Contains(t, out, `name: "5\" LED \\ ป้าย",`)
	assert.Contains(t, out, "latitude: 13.0,")
	assert.Contains(t, out, "longitude: 0,")
}

func TestRender_ZeroCoordinates(t *testing.T) {
	present := sampleLocations()[1]
	present.Latitude, present.HasLatitude = 0, true
	present.Longitude, present.HasLongitude = math.Copysign(0, -1), true
	missing := sampleLocations()[1]
	missing.Latitude = 0

	out := string(Render([]models.Location{present}, Options{}))
	assert.Contains(t, out, "latitude: 0.0,")
	assert.Contains(t, out, "longitude: -0.0,")

	out = string(Render([]models.Location{missing}, Options{}))
	assert.Contains(t, out, "latitude: 0,")
	assert.Contains(t, out, "longitude: 0,")
}

func TestRender_Idempotent(t *testing.T) {
	assert.Equal(t, Render(sampleLocations(), Options{}), Render(sampleLocations(), Options{}))
}

var (
	unquotedKey   = regexp.MustCompile(`(?m)^(\s+)(\w+): `)
	trailingComma = regexp.MustCompile(`,(\s*)}`)
)

// toJSON turns the rendered script into a JSON array: it drops the header and
// declaration, quotes keys and removes the trailing comma inside each object.
func toJSON(t *testing.T, script string) []byte {
	t.Helper()
	start := strings.Index(script, "[")
	end := strings.LastIndex(script, "]")
	require.True(t, start >= 0 && end > start)

	body := script[start : end+1]
	body = unquotedKey.ReplaceAllString(body, `$1"$2": `)
	body = trailingComma.ReplaceAllString(body, "$1}")
	return []byte(body)
}

func TestRender_RoundTrip(t *testing.T) {
	locations := sampleLocations()
	locations[0].Latitude = 13.746212345678901

	var decoded []models.Location
	require.NoError(t, json.Unmarshal(toJSON(t, string(Render(locations, Options{}))), &decoded))

	assert.Equal(t, locations, decoded)
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{13.7563, "13.7563"},
		{100, "100.0"},
		{-33.5, "-33.5"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFloat(tt.in))
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations-data.js")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, sampleLocations(), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(sampleLocations(), Options{}), data)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be cleaned up")
}
