package systems

import (
	"math"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gamemath"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player body by this frame's velocity, resolves
// it against walls and thin platforms, and records the contacts the
// movement rules read on the next frame.
func UpdateCollisions(ecs *ecs.ECS) {
	if levelIsComplete(ecs) {
		return
	}
	room := currentRoom(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		s := &player.State

		dt := frameSeconds()
		resolveHorizontal(s, obj.Object, s.VelocityX*dt)
		resolveVertical(player, obj.Object, s.VelocityY*dt)

		if room != nil {
			if obj.Y > room.Height {
				logger.Debug("fell out of room", "x", obj.X, "y", obj.Y)
				hitHazard(ecs, e)
				return
			}
			keepInsideRoom(s, obj.Object, room.Width)
		}
		obj.Update()

		player.Contacts = probeWallContacts(obj.Object)
		s.X, s.Y = obj.X, obj.Y
		s.JustLanded = !player.WasOnGround && s.OnGround
		player.WasOnGround = s.OnGround

		if s.JustLanded {
			onLanded(ecs, e, player.LandingSpeed)
		}
	})
}

// resolveHorizontal moves obj by dx, stopping flush against the nearest
// solid that shares its vertical span.
func resolveHorizontal(s *gameplay.PlayerState, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return
	}

	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !gamemath.Overlaps(obj.X+dx, obj.Y, obj.W, obj.H, solid.X, solid.Y, solid.W, solid.H) {
			continue
		}
		if dx > 0 {
			dx = math.Max(0, math.Min(dx, solid.X-(obj.X+obj.W)))
		} else {
			dx = math.Min(0, math.Max(dx, solid.X+solid.W-obj.X))
		}
		blocked = true
	}

	if blocked {
		s.VelocityX = 0
	}
	obj.X += dx
}

// resolveVertical moves obj by dy. While falling or resting the probe
// reaches one unit further so a body standing on a surface stays grounded.
func resolveVertical(player *components.PlayerData, obj *resolv.Object, dy float64) {
	s := &player.State
	s.OnGround = false

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return
	}

	if dy < 0 {
		obj.Y += handleCeiling(s, obj, check, dy)
		return
	}

	if gap, ok := findLanding(s, obj, check, checkDistance); ok {
		player.LandingSpeed = s.VelocityY
		s.OnGround = true
		s.VelocityY = 0
		dy = gap
	}
	obj.Y += dy
}

func handleCeiling(s *gameplay.PlayerState, obj *resolv.Object, check *resolv.Collision, dy float64) float64 {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsX(obj, solid) || solid.Y+solid.H > obj.Y {
			continue
		}
		if limit := solid.Y + solid.H - obj.Y; limit > dy {
			dy = limit
			s.VelocityY = 0
		}
	}
	return dy
}

// findLanding returns the distance to the closest surface under obj within
// reach. Thin platforms only count when the collision predicate allows it,
// which lets a dripping body fall through them.
func findLanding(s *gameplay.PlayerState, obj *resolv.Object, check *resolv.Collision, reach float64) (float64, bool) {
	bottom := obj.Y + obj.H
	best, found := math.Inf(1), false

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		gap := solid.Y - bottom
		if !overlapsX(obj, solid) || gap < 0 || gap > reach {
			continue
		}
		if gap < best {
			best, found = gap, true
		}
	}

	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		if !overlapsX(obj, platform) {
			continue
		}
		if !gameplay.ShouldThinPlatformCollide(s.IsDripping, bottom, platform.Y, s.VelocityY) {
			continue
		}
		gap := platform.Y - bottom
		if gap > reach {
			continue
		}
		if gap < best {
			best, found = gap, true
		}
	}

	return best, found
}

// probeWallContacts looks one probe distance to each side of obj. A solid
// there is touching; it is also blocking when it spans the body's mid-height.
func probeWallContacts(obj *resolv.Object) gameplay.Contacts {
	probe := cfg.Physics.ContactProbe
	midY := obj.Y + obj.H/2

	var c gameplay.Contacts
	c.TouchingLeft, c.BlockedLeft = probeSide(obj, -probe, midY)
	c.TouchingRight, c.BlockedRight = probeSide(obj, probe, midY)
	return c
}

func probeSide(obj *resolv.Object, dx, midY float64) (touching, blocked bool) {
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return false, false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !gamemath.Overlaps(obj.X+dx, obj.Y, obj.W, obj.H, solid.X, solid.Y, solid.W, solid.H) {
			continue
		}
		touching = true
		if solid.Y <= midY && midY <= solid.Y+solid.H {
			blocked = true
		}
	}
	return touching, blocked
}

// keepInsideRoom clamps the body to the room's side and top edges.
func keepInsideRoom(s *gameplay.PlayerState, obj *resolv.Object, width float64) {
	x := gamemath.Clamp(obj.X, 0, math.Max(0, width-obj.W))
	if x != obj.X {
		obj.X = x
		s.VelocityX = 0
	}
	if obj.Y < 0 {
		obj.Y = 0
		s.VelocityY = math.Max(s.VelocityY, 0)
	}
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

// onLanded plays the touchdown feedback for a landing at speed.
func onLanded(ecs *ecs.ECS, e *donburi.Entry, speed float64) {
	TriggerSquashStretch(e, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)

	if shake, ok := gameplay.ShakeForImpact(speed); ok && screenShakeEnabled(ecs) {
		TriggerScreenShake(ecs, shake.Intensity, shake.Duration)
	}
}
