package inspect

import (
	"bytes"
	"strings"
	"testing"

	"billboard-locations/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheet = `Regions,,Media Locations,Size
ภาคเหนือ,เชียงใหม่,CNX-01,12x8
ภาคใต้,ภูเก็ต,,N/A
ภาคกลาง,กรุงเทพมหานคร,BKK-01,5x5
ภาคกลาง,นนทบุรี,NBI-01,3x3
`

func load(t *testing.T, data string) *table.Table {
	t.Helper()
	tbl, err := table.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	return tbl
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, load(t, sheet), Options{}))
	out := buf.String()

	assert.Contains(t, out, "Columns: ['Regions', 'Unnamed: 1', 'Media Locations', 'Size']\n")
	assert.Contains(t, out, "Shape: (4, 4)\n")
	assert.Contains(t, out, "\nFirst row data:\n0: Regions = ภาคเหนือ\n1: Unnamed: 1 = เชียงใหม่\n2: Media Locations = CNX-01\n3: Size = 12x8\n")
	assert.Contains(t, out, "\nFirst 3 rows:\n")

	preview := out[strings.Index(out, "First 3 rows:"):]
	lines := strings.Split(strings.TrimRight(preview, "\n"), "\n")
	require.Len(t, lines, 5, "title, header and three rows")
	assert.Contains(t, lines[3], "NaN")
	assert.NotContains(t, preview, "NBI-01")
}

func TestReport_PreviewRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, load(t, sheet), Options{PreviewRows: 4}))

	assert.Contains(t, buf.String(), "First 4 rows:")
	assert.Contains(t, buf.String(), "NBI-01")
}

func TestReport_NoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, load(t, "a,b\n"), Options{}))

	assert.Contains(t, buf.String(), "Shape: (0, 2)\n")
	assert.Contains(t, buf.String(), "(no rows)\n")
}
