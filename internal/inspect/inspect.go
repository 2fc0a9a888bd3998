// Package inspect prints a quick diagnostic summary of a loaded sheet.
package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"billboard-locations/internal/table"

	"github.com/gookit/color"
)

// DefaultPreviewRows is how many rows the preview table shows.
const DefaultPreviewRows = 3

// Options tunes the report.
type Options struct {
	// PreviewRows defaults to DefaultPreviewRows.
	PreviewRows int
	// Color highlights section headings.
	Color bool
}

var heading = color.New(color.FgCyan, color.OpBold)

// Report writes the column list, shape, first row and a preview table of tbl to w.
func Report(w io.Writer, tbl *table.Table, opts Options) error {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}
	title := func(s string) string {
		if opts.Color {
			return heading.Sprint(s)
		}
		return s
	}

	rows, cols := tbl.Shape()
	quoted := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		quoted[i] = "'" + c + "'"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", title("Columns:"), strings.Join(quoted, ", "))
	fmt.Fprintf(&b, "%s (%d, %d)\n", title("Shape:"), rows, cols)

	fmt.Fprintf(&b, "\n%s\n", title("First row data:"))
	if rows == 0 {
		b.WriteString("(no rows)\n")
	} else {
		for i, c := range tbl.Columns {
			fmt.Fprintf(&b, "%d: %s = %s\n", i, c, tbl.Rows[0][i])
		}
	}

	fmt.Fprintf(&b, "\n%s\n", title(fmt.Sprintf("First %d rows:", opts.PreviewRows)))
	if err := preview(&b, tbl, opts.PreviewRows); err != nil {
		return err
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("inspect: failed to write report: %w", err)
	}
	return nil
}

func preview(w io.Writer, tbl *table.Table, n int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(tbl.Columns, "\t"))
	for i := 0; i < n && i < len(tbl.Rows); i++ {
		cells := make([]string, len(tbl.Rows[i]))
		for j, c := range tbl.Rows[i] {
			cells[j] = oneLine(c.String())
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", strconv.Itoa(i), strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("inspect: failed to render preview: %w", err)
	}
	return nil
}

func oneLine(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ", "\t", " ").Replace(s)
}
