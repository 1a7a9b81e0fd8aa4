// Package leveldata parses Tiled TMX levels into plain world-space data. World
// space is y-up with the origin at the bottom-left of the map; every rectangle
// is stored as a center and half extents. The package has no dependency on
// ebiten or the physics world.
package leveldata

import (
	"errors"

	"github.com/yohamta/donburi/features/math"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

// Object group and layer names recognised in a TMX file.
const (
	LayerWalls       = "walls"
	GroupSpawn       = "SpawnPoint"
	GroupCheckpoints = "Checkpoints"
	GroupSpikes      = "Spikes"
	GroupPins        = "Pins"
	GroupExits       = "Exits"
	GroupElevators   = "Elevators"
	GroupPlatforms   = "Platforms"
	GroupSharpeners  = "Sharpeners"
)

// DefaultHalfExtents is used for point objects, which carry no size.
var DefaultHalfExtents = map[string]math.Vec2{
	GroupCheckpoints: {X: 8, Y: 8},
	GroupSpikes:      {X: 10, Y: 3},
	GroupPins:        {X: 4.5, Y: 4.5},
	GroupExits:       {X: 12, Y: 24},
	GroupElevators:   {X: 16, Y: 5.5},
	GroupPlatforms:   {X: 12, Y: 5.5},
	GroupSharpeners:  {X: 4.5, Y: 4.5},
}

type Rect struct {
	Center math.Vec2
	Half   math.Vec2
}

type Checkpoint struct {
	Rect
	ID int
	// Active marks the checkpoint used before any other is touched.
	Active bool
}

type Pin struct {
	Rect
	ID int
}

type Exit struct {
	Rect
	RequiredPins int
}

type Elevator struct {
	Rect
	// Span is how far the elevator travels either side of its start, in
	// world units.
	Span float64
	// Horizontal elevators travel along X; the default is vertical.
	Horizontal bool
}

type Sharpener struct {
	Rect
	// PointToX is the far end of the patrol.
	PointToX float64
}

// Level is one parsed map.
type Level struct {
	Name     string
	Width    float64
	Height   float64
	TileSize float64

	Spawn       math.Vec2
	Walls       []Rect
	Checkpoints []Checkpoint
	Spikes      []Rect
	Pins        []Pin
	Exits       []Exit
	Elevators   []Elevator
	Platforms   []Rect
	Sharpeners  []Sharpener
}

// RequiredPins is the largest pin requirement of any exit in the level.
func (l *Level) RequiredPins() int {
	n := 0
	for _, e := range l.Exits {
		n = max(n, e.RequiredPins)
	}
	return n
}
