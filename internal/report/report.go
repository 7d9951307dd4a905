// Package report renders human-readable summaries of stored sites for
// the CLI.
package report

import (
	"fmt"
	"strings"

	"xtal/internal/crystal"
	"xtal/internal/library"
	"xtal/pkg/sci"
	"xtal/pkg/timeutil"
)

// Site generates a markdown summary of one stored site: coordinates,
// the atom table with thermal factors in both conventions, and the
// occupancy sum check.
func Site(rec *library.SiteRecord) string {
	var b strings.Builder
	site := &rec.Site

	b.WriteString(fmt.Sprintf("# Site %s\n\n", rec.Name))
	if rec.UpdatedAt != 0 {
		b.WriteString(fmt.Sprintf("**Updated:** %s\n", timeutil.FormatTimestampFull(rec.UpdatedAt)))
	}
	b.WriteString(fmt.Sprintf("**Fractional coords:** (%s, %s, %s)\n",
		sci.Format(site.FractionalCoords[0]),
		sci.Format(site.FractionalCoords[1]),
		sci.Format(site.FractionalCoords[2])))
	b.WriteString(fmt.Sprintf("**Total occupancy:** %s\n\n", sci.Format(site.TotalOccupancy)))

	if len(site.Atoms) > 0 {
		b.WriteString("| Atom | Occupancy | U | B |\n")
		b.WriteString("|------|-----------|---|---|\n")
		for _, a := range site.Atoms {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				a.Symbol,
				sci.Format(a.Occupancy),
				sci.Format(a.U),
				sci.Format(a.U*crystal.UToB)))
		}
		b.WriteString("\n")
	}

	sum := crystal.OccupancySum(site)
	if crystal.OccupanciesValid(site) {
		b.WriteString(fmt.Sprintf("Occupancy sum %s matches the declared total.\n", sci.Format(sum)))
	} else {
		b.WriteString(fmt.Sprintf("⚠ Occupancy sum %s does not match total %s: %s.\n",
			sci.Format(sum), sci.Format(site.TotalOccupancy), crystal.InvalidOccupancyMessage))
	}

	return b.String()
}
