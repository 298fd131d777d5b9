package systems

import (
	"math"

	"github.com/automoto/squishroom/components"
	"github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/decor"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	room := currentRoom(e)
	if room == nil {
		return
	}

	targetX, targetY := cameraTarget(playerObject.CenterX(), playerObject.Y+playerObject.H/2, room.Width, room.Height)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	camera.Parallax = dmath.NewVec2(
		decor.ParallaxOffset(playerObject.CenterX(), room.Width/2, config.Camera.ParallaxFactor, config.Camera.ParallaxMax),
		decor.ParallaxOffset(playerObject.Y+playerObject.H/2, room.Height/2, config.Camera.ParallaxFactor, config.Camera.ParallaxMax),
	)
}

// cameraTarget constrains a follow point so the room always fills the
// screen. Rooms smaller than the screen stay centered on that axis.
func cameraTarget(x, y, roomWidth, roomHeight float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	return constrainAxis(x, roomWidth, screenWidth), constrainAxis(y, roomHeight, screenHeight)
}

func constrainAxis(v, room, screen float64) float64 {
	if room <= screen {
		return room / 2
	}
	return math.Max(screen/2, math.Min(room-screen/2, v))
}

// SnapCamera moves the camera onto its follow target with no smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	room := currentRoom(e)
	if room == nil {
		return
	}
	obj := components.Object.Get(playerEntry)
	x, y := cameraTarget(obj.CenterX(), obj.Y+obj.H/2, room.Width, room.Height)
	components.Camera.Get(cameraEntry).Position = dmath.NewVec2(x, y)
}

// updateScreenShake sets the shake offset for this frame and removes the
// shake once its duration has run out.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake = dmath.Vec2{}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Linear falloff to zero over the duration
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Shake = dmath.NewVec2(
		math.Sin(float64(shake.Elapsed)*config.ScreenShake.FrequencyX)*currentIntensity,
		math.Cos(float64(shake.Elapsed)*config.ScreenShake.FrequencyY)*currentIntensity,
	)

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// screenShakeEnabled reads the accessibility toggle. Shake stays on when no
// settings entity exists.
func screenShakeEnabled(ecs *ecs.ECS) bool {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return true
	}
	return components.Settings.Get(entry).ScreenShakeEnabled
}
