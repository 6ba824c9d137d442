// Package worldmap provides the hex grid and terrain for the realm map.
// Kingdoms occupy seats on the grid; terrain shades their starting
// strength and wealth. Uses axial coordinates (q, r).
package worldmap

import "fmt"

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	dirs := [6]HexCoord{
		{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
		{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
	}
	var result [6]HexCoord
	for i, d := range dirs {
		result[i] = HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

// Terrain types for hex tiles.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Fertile lowlands
	TerrainForest                  // Timber and game
	TerrainMountain                // Defensible highlands
	TerrainDesert                  // Harsh, sparse
	TerrainTundra                  // Frozen margins
	TerrainOcean                   // No seat may be placed here
)

// TerrainName returns a display name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainForest:
		return "forest"
	case TerrainMountain:
		return "mountain"
	case TerrainDesert:
		return "desert"
	case TerrainTundra:
		return "tundra"
	case TerrainOcean:
		return "ocean"
	}
	return "unknown"
}

// Hex represents a single tile on the realm map.
type Hex struct {
	Coord       HexCoord `json:"coord"`
	Terrain     Terrain  `json:"terrain"`
	Elevation   float64  `json:"elevation"`   // 0.0 (sea level) to 1.0 (peak)
	Rainfall    float64  `json:"rainfall"`    // 0.0 (arid) to 1.0 (tropical)
	Temperature float64  `json:"temperature"` // 0.0 (frozen) to 1.0 (hot)
}

// Map holds the complete hex grid.
type Map struct {
	Hexes  map[HexCoord]*Hex `json:"-"`
	Radius int               `json:"radius"`
}

// NewMap creates an empty map with the given radius.
// A hex grid of radius R contains hexes where max(|q|, |r|, |s|) <= R.
func NewMap(radius int) *Map {
	return &Map{
		Hexes:  make(map[HexCoord]*Hex),
		Radius: radius,
	}
}

// Get returns the hex at the given coordinate, or nil if out of bounds.
func (m *Map) Get(coord HexCoord) *Hex {
	return m.Hexes[coord]
}

// Set places a hex at the given coordinate.
func (m *Map) Set(hex *Hex) {
	m.Hexes[hex.Coord] = hex
}

// HexCount returns the total number of hexes in the map.
func (m *Map) HexCount() int {
	return len(m.Hexes)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(radius=%d, hexes=%d)", m.Radius, m.HexCount())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
