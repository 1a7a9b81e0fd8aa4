package physics

import (
	stdmath "math"

	"github.com/automoto/scaaale/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// maxDepenetration bounds how many overlapping bodies Move pushes out of
// before moving.
const maxDepenetration = 4

// Move resolves a desired translation for a body against every fixed and
// kinematic body, one axis at a time: horizontal first, then vertical. The body
// stops Skin short of whatever blocks it. After the move the controller probes
// GroundProbe below the body to decide whether it is grounded.
func (w *World) Move(id BodyID, translation math.Vec2) MoveResult {
	b := w.body(id)
	if b == nil || !b.enabled {
		return MoveResult{}
	}

	solids := Filter{Flags: ExcludeSensors, Exclude: id}
	w.depenetrate(b, solids)

	var res MoveResult
	res.Translation.X = w.moveAxis(b, math.Vec2{X: translation.X}, solids, &res)
	res.Translation.Y = w.moveAxis(b, math.Vec2{Y: translation.Y}, solids, &res)

	if translation.Y <= 0 {
		if ground, ok := w.sweepBox(b.bounds(), math.Vec2{Y: -w.GroundProbe}, 1, solids); ok {
			res.Grounded = true
			if !res.CollidedWith(ground.Body) {
				res.Collisions = append(res.Collisions, Collision{Body: ground.Body, Data: ground.Data})
			}
		}
	}
	return res
}

func (w *World) moveAxis(b *body, delta math.Vec2, f Filter, res *MoveResult) float64 {
	dist := stdmath.Abs(delta.X) + stdmath.Abs(delta.Y)
	if dist == 0 {
		return 0
	}

	moved := delta
	if hit, ok := w.sweepBox(b.bounds(), delta, 1, f); ok {
		scale := stdmath.Max(0, hit.TOI*dist-w.Skin) / dist
		moved = math.Vec2{X: delta.X * scale, Y: delta.Y * scale}
		res.Collisions = append(res.Collisions, Collision{
			Body:      hit.Body,
			Data:      hit.Data,
			Remaining: math.Vec2{X: delta.X - moved.X, Y: delta.Y - moved.Y},
		})
	}

	b.obj.X += moved.X
	b.obj.Y += moved.Y
	b.obj.Update()
	return moved.X + moved.Y
}

// depenetrate pushes the body out of solids it already overlaps, which happens
// when a kinematic body moves into it.
func (w *World) depenetrate(b *body, f Filter) {
	for i := 0; i < maxDepenetration; i++ {
		bounds := b.bounds()
		var push math.Vec2
		for _, other := range w.candidates(bounds) {
			if !f.accepts(other) || !bounds.overlaps(other.bounds()) {
				continue
			}
			push = penetration(bounds, other.bounds())
			break
		}
		if push.X == 0 && push.Y == 0 {
			return
		}
		b.obj.X += push.X + gamemath.Sign(push.X)*w.Skin
		b.obj.Y += push.Y + gamemath.Sign(push.Y)*w.Skin
		b.obj.Update()
	}
}
