// Package elements provides the periodic-table catalogue backing the
// atom-type selection surface. The table ships as an embedded text
// asset read through pkg/resource.
package elements

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"xtal/pkg/resource"
)

//go:embed elements.txt
var assets embed.FS

func init() {
	resource.Register("elements", assets)
}

// Element is one entry in the periodic table.
type Element struct {
	Number int
	Symbol string
	Name   string
}

// Load parses the embedded periodic table, ordered by atomic number.
func Load() ([]Element, error) {
	text, err := resource.Text("elements", "elements.txt")
	if err != nil {
		return nil, err
	}

	var elems []Element
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("parsing element table line %d: %q", lineNo+1, line)
		}
		number, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parsing element table line %d: %w", lineNo+1, err)
		}

		elems = append(elems, Element{
			Number: number,
			Symbol: fields[1],
			Name:   strings.Join(fields[2:], " "),
		})
	}
	return elems, nil
}

// BySymbol returns the element with the given symbol, if present.
func BySymbol(elems []Element, symbol string) (Element, bool) {
	for _, e := range elems {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Element{}, false
}
