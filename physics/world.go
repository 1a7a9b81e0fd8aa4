package physics

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

const (
	// DefaultSkin is the gap the controller leaves between a moving body and
	// whatever stopped it.
	DefaultSkin = 0.01
	// DefaultGroundProbe is how far below the body the controller looks for
	// ground after a move.
	DefaultGroundProbe = 0.1
)

// BodyDef describes a body to add to the world.
type BodyDef struct {
	Kind        Kind
	Center      math.Vec2
	HalfExtents math.Vec2
	Tags        []string
	// Data is returned with every hit on this body.
	Data any
}

type body struct {
	id      BodyID
	kind    Kind
	half    math.Vec2
	tags    []string
	data    any
	obj     *resolv.Object
	enabled bool
}

func (b *body) center() math.Vec2 {
	return math.Vec2{X: b.obj.X + b.half.X, Y: b.obj.Y + b.half.Y}
}

func (b *body) bounds() aabb {
	return boxAt(b.center(), b.half)
}

func (b *body) hasTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, t := range b.tags {
			if t == want {
				return true
			}
		}
	}
	return false
}

// World owns every body of a level. Bodies live in an index-based arena and are
// mirrored as resolv objects for broadphase lookups.
type World struct {
	space       *resolv.Space
	bodies      []*body
	Skin        float64
	GroundProbe float64
}

// NewWorld creates a world covering [0,width) x [0,height) split into cells of
// cellWidth x cellHeight.
func NewWorld(width, height, cellWidth, cellHeight int) *World {
	return &World{
		space:       resolv.NewSpace(width, height, cellWidth, cellHeight),
		Skin:        DefaultSkin,
		GroundProbe: DefaultGroundProbe,
	}
}

// Add creates a body and returns its handle.
func (w *World) Add(def BodyDef) BodyID {
	id := BodyID(len(w.bodies) + 1)
	tags := append([]string{def.Kind.tag()}, def.Tags...)
	box := boxAt(def.Center, def.HalfExtents)
	obj := resolv.NewObject(box.MinX, box.MinY, def.HalfExtents.X*2, def.HalfExtents.Y*2, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))

	b := &body{
		id:      id,
		kind:    def.Kind,
		half:    def.HalfExtents,
		tags:    def.Tags,
		data:    def.Data,
		obj:     obj,
		enabled: true,
	}
	obj.Data = b
	w.bodies = append(w.bodies, b)
	w.space.Add(obj)
	return id
}

func (w *World) body(id BodyID) *body {
	i := int(id) - 1
	if i < 0 || i >= len(w.bodies) {
		return nil
	}
	return w.bodies[i]
}

// Remove deletes a body. Its handle stays invalid afterwards.
func (w *World) Remove(id BodyID) {
	b := w.body(id)
	if b == nil {
		return
	}
	if b.enabled {
		w.space.Remove(b.obj)
	}
	w.bodies[int(id)-1] = nil
}

// Valid reports whether id refers to a live body.
func (w *World) Valid(id BodyID) bool {
	return w.body(id) != nil
}

// SetEnabled takes a body out of (or back into) every query.
func (w *World) SetEnabled(id BodyID, enabled bool) {
	b := w.body(id)
	if b == nil || b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if enabled {
		w.space.Add(b.obj)
		b.obj.Update()
	} else {
		w.space.Remove(b.obj)
	}
}

func (w *World) Enabled(id BodyID) bool {
	b := w.body(id)
	return b != nil && b.enabled
}

// Position returns the body's center.
func (w *World) Position(id BodyID) math.Vec2 {
	b := w.body(id)
	if b == nil {
		return math.Vec2{}
	}
	return b.center()
}

func (w *World) HalfExtents(id BodyID) math.Vec2 {
	b := w.body(id)
	if b == nil {
		return math.Vec2{}
	}
	return b.half
}

func (w *World) Kind(id BodyID) Kind {
	b := w.body(id)
	if b == nil {
		return Fixed
	}
	return b.kind
}

// Teleport places the body's center at pos without collision checks.
func (w *World) Teleport(id BodyID, pos math.Vec2) {
	b := w.body(id)
	if b == nil {
		return
	}
	b.obj.X = pos.X - b.half.X
	b.obj.Y = pos.Y - b.half.Y
	if b.enabled {
		b.obj.Update()
	}
}

// Translate shifts the body by delta without collision checks. Kinematic
// bodies are moved this way.
func (w *World) Translate(id BodyID, delta math.Vec2) {
	b := w.body(id)
	if b == nil {
		return
	}
	b.obj.X += delta.X
	b.obj.Y += delta.Y
	if b.enabled {
		b.obj.Update()
	}
}

// candidates returns the enabled bodies whose resolv cells touch region.
func (w *World) candidates(region aabb) []*body {
	width := region.MaxX - region.MinX
	height := region.MaxY - region.MinY
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	probe := resolv.NewObject(region.MinX, region.MinY, width, height)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0)
	if check == nil {
		return nil
	}

	found := make([]*body, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if b, ok := obj.Data.(*body); ok && b.enabled {
			found = append(found, b)
		}
	}
	return found
}

func (f Filter) accepts(b *body) bool {
	if b.id == f.Exclude {
		return false
	}
	if f.Has(ExcludeSensors) && b.kind == Sensor {
		return false
	}
	if f.Has(ExcludeSolids) && b.kind != Sensor {
		return false
	}
	if f.Has(OnlyFixed) && b.kind != Fixed {
		return false
	}
	return b.hasTag(f.Tags)
}
