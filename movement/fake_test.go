package movement

import (
	"github.com/automoto/scaaale/physics"
	"github.com/yohamta/donburi/features/math"
)

// fakeWorld answers queries from test-controlled hooks and records them.
type fakeWorld struct {
	pos      math.Vec2
	casts    []physics.ShapeCast
	hitCast  func(c physics.ShapeCast) bool
	hitRay   bool
	grounded bool
	moves    []math.Vec2
}

func (f *fakeWorld) Position(physics.BodyID) math.Vec2 {
	return f.pos
}

func (f *fakeWorld) CastShape(c physics.ShapeCast) (physics.Hit, bool) {
	f.casts = append(f.casts, c)
	if f.hitCast != nil && f.hitCast(c) {
		return physics.Hit{Body: 99}, true
	}
	return physics.Hit{}, false
}

func (f *fakeWorld) CastRay(origin, dir math.Vec2, maxTOI float64, solid bool, filter physics.Filter) (physics.RayHit, bool) {
	return physics.RayHit{}, f.hitRay
}

func (f *fakeWorld) Move(id physics.BodyID, t math.Vec2) physics.MoveResult {
	f.moves = append(f.moves, t)
	f.pos.X += t.X
	f.pos.Y += t.Y
	return physics.MoveResult{Translation: t, Grounded: f.grounded}
}

func always(physics.ShapeCast) bool { return true }

func pressed() Button      { return Button{Pressed: true} }
func justPressed() Button  { return Button{Pressed: true, JustPressed: true} }
func justReleased() Button { return Button{JustReleased: true} }

func newTestActor() (*Actor, Params) {
	p := DefaultParams()
	return NewActor(1, p), p
}
