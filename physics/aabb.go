package physics

import (
	stdmath "math"

	"github.com/automoto/scaaale/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// overlapEps keeps touching boxes from counting as overlapping.
const overlapEps = 1e-6

type aabb struct {
	MinX, MinY, MaxX, MaxY float64
}

func boxAt(center, half math.Vec2) aabb {
	return aabb{
		MinX: center.X - half.X,
		MinY: center.Y - half.Y,
		MaxX: center.X + half.X,
		MaxY: center.Y + half.Y,
	}
}

// rotatedHalfExtents returns the half extents of the axis-aligned bounds of a
// box rotated by rot radians.
func rotatedHalfExtents(half math.Vec2, rot float64) math.Vec2 {
	if rot == 0 {
		return half
	}
	c, s := stdmath.Abs(stdmath.Cos(rot)), stdmath.Abs(stdmath.Sin(rot))
	return math.Vec2{
		X: c*half.X + s*half.Y,
		Y: s*half.X + c*half.Y,
	}
}

func (a aabb) translate(d math.Vec2) aabb {
	return aabb{a.MinX + d.X, a.MinY + d.Y, a.MaxX + d.X, a.MaxY + d.Y}
}

func (a aabb) union(b aabb) aabb {
	return aabb{
		MinX: stdmath.Min(a.MinX, b.MinX),
		MinY: stdmath.Min(a.MinY, b.MinY),
		MaxX: stdmath.Max(a.MaxX, b.MaxX),
		MaxY: stdmath.Max(a.MaxY, b.MaxY),
	}
}

func (a aabb) overlaps(b aabb) bool {
	return a.MinX < b.MaxX-overlapEps && a.MaxX > b.MinX+overlapEps &&
		a.MinY < b.MaxY-overlapEps && a.MaxY > b.MinY+overlapEps
}

// axisTimes returns the entry and exit times of a moving interval against a
// fixed one. ok is false when a stationary interval never overlaps.
func axisTimes(aMin, aMax, bMin, bMax, v float64) (entry, exit float64, ok bool) {
	switch {
	case v > 0:
		return (bMin - aMax) / v, (bMax - aMin) / v, true
	case v < 0:
		return (bMax - aMin) / v, (bMin - aMax) / v, true
	}
	if aMin < bMax-overlapEps && aMax > bMin+overlapEps {
		return stdmath.Inf(-1), stdmath.Inf(1), true
	}
	return 0, 0, false
}

// sweep returns the time of impact of box a travelling v against box b, within
// [0, maxTOI].
func sweep(a aabb, v math.Vec2, b aabb, maxTOI float64) (float64, math.Vec2, bool) {
	ex, xx, ok := axisTimes(a.MinX, a.MaxX, b.MinX, b.MaxX, v.X)
	if !ok {
		return 0, math.Vec2{}, false
	}
	ey, xy, ok := axisTimes(a.MinY, a.MaxY, b.MinY, b.MaxY, v.Y)
	if !ok {
		return 0, math.Vec2{}, false
	}

	entry := stdmath.Max(ex, ey)
	exit := stdmath.Min(xx, xy)
	if entry >= exit || exit <= 0 || entry > maxTOI {
		return 0, math.Vec2{}, false
	}
	if entry <= 0 {
		return 0, math.Vec2{}, true
	}

	var normal math.Vec2
	if ex > ey {
		normal.X = -gamemath.Sign(v.X)
	} else {
		normal.Y = -gamemath.Sign(v.Y)
	}
	return entry, normal, true
}

// exitTime is the time at which a point travelling v leaves box b.
func exitTime(p, v math.Vec2, b aabb) float64 {
	t := stdmath.Inf(1)
	if v.X > 0 {
		t = stdmath.Min(t, (b.MaxX-p.X)/v.X)
	} else if v.X < 0 {
		t = stdmath.Min(t, (b.MinX-p.X)/v.X)
	}
	if v.Y > 0 {
		t = stdmath.Min(t, (b.MaxY-p.Y)/v.Y)
	} else if v.Y < 0 {
		t = stdmath.Min(t, (b.MinY-p.Y)/v.Y)
	}
	return t
}

// penetration returns the smallest push that separates a from b.
func penetration(a, b aabb) math.Vec2 {
	left := a.MaxX - b.MinX
	right := b.MaxX - a.MinX
	down := a.MaxY - b.MinY
	up := b.MaxY - a.MinY

	push := math.Vec2{X: -left}
	best := left
	if right < best {
		best, push = right, math.Vec2{X: right}
	}
	if down < best {
		best, push = down, math.Vec2{Y: -down}
	}
	if up < best {
		push = math.Vec2{Y: up}
	}
	return push
}
