package pattern

import (
	"sort"

	"github.com/pkg/errors"
)

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	Row int
	Col int
}

// Pattern is a named set of offsets stamped onto a grid at an anchor
// position. Patterns are immutable: Lookup hands out copies.
type Pattern struct {
	Name    string
	Offsets []Offset
}

// The classic pattern catalog. Offsets are relative to the anchor cell,
// row first.
var library = map[string][]Offset{
	"glider": {
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	},
	"blinker": {
		{0, 0}, {0, 1}, {0, 2},
	},
	"block": {
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	},
	"toad": {
		{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2},
	},
	"spaceship": {
		{0, 1}, {0, 4}, {1, 0}, {2, 0}, {2, 4}, {3, 0}, {3, 1}, {3, 2}, {3, 3},
	},
	"beacon": {
		{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3},
	},
	"pulsar": {
		{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
		{2, 0}, {2, 5}, {2, 7}, {2, 12},
		{3, 0}, {3, 5}, {3, 7}, {3, 12},
		{4, 0}, {4, 5}, {4, 7}, {4, 12},
		{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
		{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10},
		{8, 0}, {8, 5}, {8, 7}, {8, 12},
		{9, 0}, {9, 5}, {9, 7}, {9, 12},
		{10, 0}, {10, 5}, {10, 7}, {10, 12},
		{12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
	},
	"pentadecathlon": {
		{0, 2}, {1, 2}, {2, 1}, {2, 3}, {3, 2}, {4, 2}, {5, 2}, {6, 2},
		{7, 1}, {7, 3}, {8, 2}, {9, 2},
	},
	"glider_gun": {
		{0, 24}, {1, 22}, {1, 24}, {2, 12}, {2, 13}, {2, 20}, {2, 21}, {2, 34}, {2, 35},
		{3, 11}, {3, 15}, {3, 20}, {3, 21}, {3, 34}, {3, 35}, {4, 0}, {4, 1}, {4, 10},
		{4, 16}, {4, 20}, {4, 21}, {5, 0}, {5, 1}, {5, 10}, {5, 14}, {5, 16}, {5, 17},
		{5, 22}, {5, 24}, {6, 10}, {6, 16}, {6, 24}, {7, 11}, {7, 15}, {8, 12}, {8, 13},
	},
}

// Lookup returns a copy of the named pattern. An unknown name is an
// error, never a silent no-op.
func Lookup(name string) (Pattern, error) {
	offsets, ok := library[name]
	if !ok {
		return Pattern{}, errors.Errorf("[Lookup] pattern %q not found", name)
	}
	return Pattern{
		Name:    name,
		Offsets: append([]Offset(nil), offsets...),
	}, nil
}

// Names returns the catalog's pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
