package physics

import (
	stdmath "math"
	"slices"

	"github.com/yohamta/donburi/features/math"
)

// broadphaseMargin pads query regions so bodies sitting exactly on a cell
// border are still considered.
const broadphaseMargin = 1.0

// CastShape sweeps a box through the world and returns the first body it
// meets. Equal times of impact resolve to the lowest body handle.
// Rotated boxes are approximated by their axis-aligned bounds.
func (w *World) CastShape(c ShapeCast) (Hit, bool) {
	half := rotatedHalfExtents(c.HalfExtents, c.Rotation)
	start := boxAt(c.Origin, half)
	return w.sweepBox(start, c.Velocity, c.MaxTOI, c.Filter)
}

func (w *World) sweepBox(start aabb, vel math.Vec2, maxTOI float64, f Filter) (Hit, bool) {
	end := start.translate(math.Vec2{X: vel.X * maxTOI, Y: vel.Y * maxTOI})
	region := start.union(end)
	region = aabb{
		MinX: region.MinX - broadphaseMargin,
		MinY: region.MinY - broadphaseMargin,
		MaxX: region.MaxX + broadphaseMargin,
		MaxY: region.MaxY + broadphaseMargin,
	}

	var best Hit
	found := false
	for _, b := range w.candidates(region) {
		if !f.accepts(b) {
			continue
		}
		toi, normal, ok := sweep(start, vel, b.bounds(), maxTOI)
		if !ok {
			continue
		}
		if !found || toi < best.TOI || (toi == best.TOI && b.id < best.Body) {
			best = Hit{Body: b.id, Data: b.data, TOI: toi, Normal: normal}
			found = true
		}
	}
	return best, found
}

// CastRay casts a ray from origin along dir. A ray starting inside a body hits
// it at zero when solid is true, and where it leaves the body otherwise.
func (w *World) CastRay(origin, dir math.Vec2, maxTOI float64, solid bool, f Filter) (RayHit, bool) {
	start := aabb{MinX: origin.X, MinY: origin.Y, MaxX: origin.X, MaxY: origin.Y}
	end := start.translate(math.Vec2{X: dir.X * maxTOI, Y: dir.Y * maxTOI})
	region := start.union(end)
	region = aabb{
		MinX: region.MinX - broadphaseMargin,
		MinY: region.MinY - broadphaseMargin,
		MaxX: region.MaxX + broadphaseMargin,
		MaxY: region.MaxY + broadphaseMargin,
	}

	var best RayHit
	found := false
	for _, b := range w.candidates(region) {
		if !f.accepts(b) {
			continue
		}
		bounds := b.bounds()
		toi, _, ok := sweep(start, dir, bounds, maxTOI)
		if !ok {
			continue
		}
		if toi == 0 && !solid && contains(bounds, origin) {
			toi = exitTime(origin, dir, bounds)
			if stdmath.IsInf(toi, 1) || toi > maxTOI {
				continue
			}
		}
		if !found || toi < best.TOI || (toi == best.TOI && b.id < best.Body) {
			best = RayHit{
				Body:  b.id,
				Data:  b.data,
				TOI:   toi,
				Point: math.Vec2{X: origin.X + dir.X*toi, Y: origin.Y + dir.Y*toi},
			}
			found = true
		}
	}
	return best, found
}

// Overlapping returns every body overlapping the box, in handle order.
func (w *World) Overlapping(center, half math.Vec2, f Filter) []BodyID {
	box := boxAt(center, half)
	var ids []BodyID
	for _, b := range w.candidates(box) {
		if f.accepts(b) && box.overlaps(b.bounds()) {
			ids = append(ids, b.id)
		}
	}
	slices.Sort(ids)
	return ids
}

func contains(b aabb, p math.Vec2) bool {
	return p.X > b.MinX && p.X < b.MaxX && p.Y > b.MinY && p.Y < b.MaxY
}
