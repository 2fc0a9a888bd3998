// Package jsexport renders location records as a JavaScript source file that
// the media-location site loads with a plain <script> tag.
//
// The layout is a compatibility contract with that page: a comment header, a
// single const declaration, unquoted keys in a fixed order and no trailing
// comma after the final object.
package jsexport

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"billboard-locations/internal/models"
)

const (
	DefaultVariable = "locationsData"
	DefaultSource   = "data.csv"

	objectIndent = "    "
	fieldIndent  = "        "
)

// Options controls the file header and the declared variable.
type Options struct {
	// Variable is the name of the declared array. Defaults to locationsData.
	Variable string
	// Source is the input file name quoted in the header comment.
	Source string
}

func (o Options) withDefaults() Options {
	if o.Variable == "" {
		o.Variable = DefaultVariable
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	return o
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Render returns the JavaScript source for locations.
func Render(locations []models.Location, opts Options) []byte {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	buf.WriteString("// PP Cloud Media - LED Billboard Locations Data\n")
	fmt.Fprintf(&buf, "// Generated from %s\n\n", opts.Source)
	fmt.Fprintf(&buf, "const %s = [\n", opts.Variable)

	for i, loc := range locations {
		buf.WriteString(objectIndent + "{\n")
		for _, f := range loc.Fields() {
			buf.WriteString(fieldIndent)
			buf.WriteString(f.Key)
			buf.WriteString(": ")
			buf.WriteString(formatValue(f.Value))
			buf.WriteString(",\n")
		}
		if i < len(locations)-1 {
			buf.WriteString(objectIndent + "},\n")
		} else {
			buf.WriteString(objectIndent + "}\n")
		}
	}

	buf.WriteString("];\n")
	return buf.Bytes()
}

// Write renders locations to w.
func Write(w io.Writer, locations []models.Location, opts Options) error {
	if _, err := w.Write(Render(locations, opts)); err != nil {
		return fmt.Errorf("jsexport: failed to write output: %w", err)
	}
	return nil
}

// WriteFile renders locations to path. The file is replaced atomically so an
// aborted run leaves any previous output untouched.
func WriteFile(path string, locations []models.Location, opts Options) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("jsexport: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, locations, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("jsexport: failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsexport: failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("jsexport: failed to replace %s: %w", path, err)
	}
	return nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return `"` + stringEscaper.Replace(v) + `"`
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return FormatFloat(v)
	default:
		return fmt.Sprint(v)
	}
}

// FormatFloat writes f as the shortest literal that reads back to the same
// value. Integral values, zero included, keep a ".0" suffix.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
