package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/nhle/assignment-tracker/internal/dateutil"
	"github.com/nhle/assignment-tracker/internal/tracker"
	"github.com/nhle/assignment-tracker/internal/urgency"
)

var bold = color.New(color.Bold)

// urgencyColor maps a bucket's palette onto a terminal color. Unclassified
// rows print uncolored.
func urgencyColor(b urgency.Bucket) *color.Color {
	p, ok := urgency.Colors(b)
	if !ok {
		return color.New(color.Reset)
	}
	c := color.New()
	if r, g, bl, ok := hexRGB(p.Background); ok {
		c.AddBgRGB(r, g, bl)
	}
	if r, g, bl, ok := hexRGB(p.Foreground); ok {
		c.AddRGB(r, g, bl)
	}
	return c
}

// hexRGB parses "#rrggbb".
func hexRGB(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func printRows(w io.Writer, rows []tracker.Row) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Assignment Title"), bold.Sprint("Due Date"), bold.Sprint("Status"), bold.Sprint("Urgency"))
	for _, r := range rows {
		c := urgencyColor(r.Bucket)
		tbl.AddRow(r.ID, r.Title, r.DueDate, string(r.Status), c.Sprint(" "+r.Bucket.Label()+" "))
	}
	tbl.RightAlign(0)
	fmt.Fprintln(w, tbl)
}

func printDashboard(w io.Writer, entries []tracker.DashboardEntry) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Tab"), bold.Sprint("Assignment Title"), bold.Sprint("Due Date"))
	for _, e := range entries {
		c := urgencyColor(e.Bucket)
		tbl.AddRow(e.TabName, e.Title, c.Sprint(" "+dateutil.Format(e.Due)+" "))
	}
	fmt.Fprintln(w, tbl)
}

func printLegend(w io.Writer) {
	parts := make([]string, 0, len(urgency.Buckets))
	for _, b := range urgency.Buckets {
		parts = append(parts, urgencyColor(b).Sprint(" "+b.Label()+" "))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
