// Package transform maps raw sheet rows onto billboard location records.
//
// The classifiers never fail: unrecognised or unparsable input falls back to
// a documented default category. The Parse* variants expose the underlying
// error for callers that want to report the fallback.
package transform

import (
	"strings"

	"billboard-locations/internal/table"
)

var cleanReplacer = strings.NewReplacer("\n", " ", "\r", "", `"`, "'")

// Clean normalises a text cell so it can sit inside a double-quoted literal.
// Missing cells become the empty string.
func Clean(c table.Cell) string {
	if c.Missing {
		return ""
	}
	return cleanReplacer.Replace(strings.TrimSpace(c.Text))
}
