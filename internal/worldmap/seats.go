// Kingdom seat placement — finds a suitable land hex for a new kingdom,
// keeping seats spread apart.
package worldmap

import (
	"sort"

	"github.com/talgya/crowncourt/internal/entropy"
)

// minSeatDist is the minimum hex distance between two kingdom seats.
const minSeatDist = 4

// PlaceSeat picks a land hex for a new kingdom seat, at least minSeatDist
// away from every taken seat. Returns false if no hex qualifies.
func PlaceSeat(m *Map, rng entropy.Source, taken []HexCoord) (HexCoord, Terrain, bool) {
	type scored struct {
		coord HexCoord
		score float64
	}
	var candidates []scored

	for coord, hex := range m.Hexes {
		if hex.Terrain == TerrainOcean {
			continue
		}
		if tooClose(coord, taken) {
			continue
		}
		candidates = append(candidates, scored{coord, seatScore(hex)})
	}
	if len(candidates) == 0 {
		return HexCoord{}, TerrainOcean, false
	}

	// Deterministic order before the random pick: map iteration is not.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		a, b := candidates[i].coord, candidates[j].coord
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		return a.R < b.R
	})

	// Pick among the best few so repeated discoveries spread out.
	top := len(candidates)
	if top > 5 {
		top = 5
	}
	pick := candidates[rng.Intn(top)]
	return pick.coord, m.Get(pick.coord).Terrain, true
}

// seatScore rates a hex's desirability as a capital seat.
func seatScore(hex *Hex) float64 {
	score := 1.0
	switch hex.Terrain {
	case TerrainPlains:
		score += 2.0
	case TerrainForest:
		score += 1.2
	case TerrainMountain:
		score += 0.8
	case TerrainTundra, TerrainDesert:
		score += 0.2
	}
	// Temperate, watered land is preferred.
	score += hex.Rainfall*0.5 + (1.0-absf(hex.Temperature-0.5))*0.5
	return score
}

func tooClose(coord HexCoord, taken []HexCoord) bool {
	for _, t := range taken {
		if Distance(coord, t) < minSeatDist {
			return true
		}
	}
	return false
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
