package leveldata

import "github.com/yohamta/donburi/features/math"

// grid is a row-major occupancy map in Tiled order: row 0 is the top row.
type grid struct {
	w, h  int
	cells []bool
}

func (g grid) solid(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return true
	}
	return g.cells[y*g.w+x]
}

// interior reports whether every neighbour of the cell is solid. Such cells
// can never be touched and get no body.
func (g grid) interior(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !g.solid(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

// mergeWalls turns the solid cells of g into horizontal runs, skipping
// interior cells. mapHeight flips rows into y-up world space.
func mergeWalls(g grid, tile, mapHeight float64) []Rect {
	var rects []Rect
	for y := 0; y < g.h; y++ {
		start := -1
		flush := func(end int) {
			if start < 0 {
				return
			}
			n := float64(end - start)
			rects = append(rects, Rect{
				Center: math.Vec2{
					X: float64(start)*tile + n*tile/2,
					Y: mapHeight - float64(y)*tile - tile/2,
				},
				Half: math.Vec2{X: n * tile / 2, Y: tile / 2},
			})
			start = -1
		}
		for x := 0; x < g.w; x++ {
			edge := g.cells[y*g.w+x] && !g.interior(x, y)
			switch {
			case edge && start < 0:
				start = x
			case !edge:
				flush(x)
			}
		}
		flush(g.w)
	}
	return rects
}
