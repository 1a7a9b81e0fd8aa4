package systems

import (
	"github.com/automoto/scaaale/components"
	"github.com/automoto/scaaale/physics"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// riderTolerance is how far the player's feet may sit below a platform's top
// and still count as standing on it.
const riderTolerance = 1.0

func spaceOf(w donburi.World) (*physics.World, bool) {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry).World, true
}

func playerOf(w donburi.World) (*donburi.Entry, *components.PlayerData, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Player.Get(entry), true
}

func levelOf(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// isRider reports whether the player's last move ended on top of body.
func isRider(space *physics.World, player *components.PlayerData, body physics.BodyID) bool {
	if player == nil || player.Actor == nil || !player.Last.CollidedWith(body) {
		return false
	}
	feet := space.Position(player.Body).Y - space.HalfExtents(player.Body).Y
	top := space.Position(body).Y + space.HalfExtents(body).Y
	return feet >= top-riderTolerance
}

// moveKinematic translates a kinematic body and carries the player along if
// it is riding it.
func moveKinematic(space *physics.World, body physics.BodyID, delta math.Vec2, player *components.PlayerData) {
	if isRider(space, player, body) {
		space.Translate(player.Body, delta)
	}
	space.Translate(body, delta)
}
