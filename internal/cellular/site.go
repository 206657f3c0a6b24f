// Package cellular implements Worley (cellular) noise: one jittered site per
// unit cell of an infinite grid, nearest-site queries over the 3x3 block
// around a point, and an engine that turns those queries into crystallize,
// pointillize and texture pixels.
//
// Everything here is a pure function of its configuration. Sites come from a
// hash of the cell coordinates and seed, so any cell can be visited in any
// order and always yields the same point.
package cellular

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Grid selects how sites are placed inside their cells.
type Grid uint8

const (
	// GridSquare centers each site in its cell at randomness 0.
	GridSquare Grid = iota

	// GridHexagonal shifts every odd column by half a cell so that at
	// randomness 0 the sites form a hexagonal lattice.
	GridHexagonal

	gridCount
)

// String returns the grid name.
func (g Grid) String() string {
	switch g {
	case GridSquare:
		return "Square"
	case GridHexagonal:
		return "Hexagonal"
	default:
		return "Unknown"
	}
}

// IsValid reports whether g is a known grid.
func (g Grid) IsValid() bool {
	return g < gridCount
}

// Site returns the position of the site owned by cell (cellX, cellY) as a
// fraction of the cell, with fx and fy in [0, 1).
//
// randomness must be in [0, 1]: 0 places the site at the grid point, 1 lets
// it roam anywhere inside the cell.
func Site(cellX, cellY int, seed uint64, randomness float64, grid Grid) (fx, fy float64) {
	u, v := cellHash(cellX, cellY, seed)
	if grid == GridHexagonal {
		base := 0.25
		if cellX&1 != 0 {
			base = 0.75
		}
		return 0.5 + randomness*(u-0.5), base + 0.5*randomness*(v-0.5)
	}
	return 0.5 + randomness*(u-0.5), 0.5 + randomness*(v-0.5)
}

// cellHash returns two independent uniform values in [0, 1) for a cell.
func cellHash(cellX, cellY int, seed uint64) (u, v float64) {
	var key [25]byte
	binary.LittleEndian.PutUint64(key[0:], uint64(cellX))
	binary.LittleEndian.PutUint64(key[8:], uint64(cellY))
	binary.LittleEndian.PutUint64(key[16:], seed)

	u = unitFloat(xxhash.Sum64(key[:]))
	key[24] = 1
	v = unitFloat(xxhash.Sum64(key[:]))
	return u, v
}

// unitFloat maps the top 53 bits of h onto [0, 1).
func unitFloat(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}
