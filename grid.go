package impact

import (
	"math"
	"sort"
)

// Pair is a broad-phase candidate: two bodies whose bounding boxes share at
// least one grid cell. A is always the body with the smaller id.
type Pair struct {
	A, B *Body
}

type cell struct {
	x, y int64
}

// SpatialGrid is the uniform-cell broad phase. It holds no state across
// steps: the engine clears and refills it every step, then asks for the
// candidate pairs.
type SpatialGrid struct {
	cellSize float64
	cells    map[cell][]*Body
	bbs      map[*Body]BB
}

func NewSpatialGrid(cellSize float64) *SpatialGrid {
	assert(cellSize > 0, "Grid cell size must be positive")
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    map[cell][]*Body{},
		bbs:      map[*Body]BB{},
	}
}

func (grid *SpatialGrid) CellSize() float64 {
	return grid.cellSize
}

func (grid *SpatialGrid) Clear() {
	for key := range grid.cells {
		delete(grid.cells, key)
	}
	for body := range grid.bbs {
		delete(grid.bbs, body)
	}
}

// Insert adds the body to every cell its bounding box overlaps. The box is
// cached so Pairs can filter candidates without recomputing it.
func (grid *SpatialGrid) Insert(body *Body) {
	bb := body.shape.BB(body.Position)
	grid.bbs[body] = bb

	l := int64(math.Floor(bb.L / grid.cellSize))
	r := int64(math.Floor(bb.R / grid.cellSize))
	b := int64(math.Floor(bb.B / grid.cellSize))
	t := int64(math.Floor(bb.T / grid.cellSize))

	for x := l; x <= r; x++ {
		for y := b; y <= t; y++ {
			key := cell{x, y}
			grid.cells[key] = append(grid.cells[key], body)
		}
	}
}

// Pairs returns every unordered pair of bodies whose bounding boxes overlap,
// exactly once each. Sharing a cell only makes a pair a candidate; large
// cells lump distant bodies together, so each candidate is checked against
// the cached boxes before it is emitted. A body straddling multiple cells
// would otherwise repeat its pairs, so pairs are deduplicated on the
// symmetric (id, id) key. The result is sorted by id so resolution order is
// stable across runs.
func (grid *SpatialGrid) Pairs() []Pair {
	seen := map[[2]int]struct{}{}
	var pairs []Pair

	for _, bucket := range grid.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if a.id > b.id {
					a, b = b, a
				}

				key := [2]int{a.id, b.id}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				if !grid.bbs[a].Intersects(grid.bbs[b]) {
					continue
				}
				pairs = append(pairs, Pair{a, b})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A.id != pairs[j].A.id {
			return pairs[i].A.id < pairs[j].A.id
		}
		return pairs[i].B.id < pairs[j].B.id
	})
	return pairs
}
