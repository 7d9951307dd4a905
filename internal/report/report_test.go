package report

import (
	"strings"
	"testing"

	"xtal/internal/crystal"
	"xtal/internal/library"
)

func TestSiteReportValid(t *testing.T) {
	rec := &library.SiteRecord{
		Name: "spinel-a",
		Site: crystal.Site{
			TotalOccupancy:   1.0,
			FractionalCoords: [3]float64{0.125, 0.125, 0.125},
			Atoms: []crystal.Atom{
				{Symbol: "Mg", Occupancy: 0.5, U: 0.01},
				{Symbol: "Al", Occupancy: 0.5, U: 0.01},
			},
		},
	}

	out := Site(rec)
	for _, want := range []string{
		"# Site spinel-a",
		"| Mg | 0.5 |",
		"| Al | 0.5 |",
		"(0.125, 0.125, 0.125)",
		"matches the declared total",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestSiteReportInvalid(t *testing.T) {
	rec := &library.SiteRecord{
		Name: "broken",
		Site: crystal.Site{
			TotalOccupancy: 1.0,
			Atoms:          []crystal.Atom{{Symbol: "Fe", Occupancy: 0.25}},
		},
	}

	out := Site(rec)
	if !strings.Contains(out, crystal.InvalidOccupancyMessage) {
		t.Errorf("invalid site report should carry the advisory message:\n%s", out)
	}
}
