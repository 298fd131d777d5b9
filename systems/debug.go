package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/squishroom/components"
	"github.com/automoto/squishroom/fonts"
	"github.com/automoto/squishroom/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision body and prints the player's movement
// state when debug drawing is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).Debug {
		return
	}

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlatform):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(tags.ResolvHazard):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvExit):
				c = color.RGBA{255, 255, 0, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			}

			vector.StrokeRect(screen,
				float32(obj.X+v.offsetX), float32(obj.Y+v.offsetY),
				float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	s, c := player.State, player.Contacts
	lines := []string{
		fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f", s.X, s.Y, s.VelocityX, s.VelocityY),
		fmt.Sprintf("ground %v  drip %v  slide %v %s", s.OnGround, s.IsDripping, s.IsWallSliding, s.WallSide),
		fmt.Sprintf("blocked L%v R%v  touching L%v R%v", c.BlockedLeft, c.BlockedRight, c.TouchingLeft, c.TouchingRight),
		fmt.Sprintf("anim %s", s.Animation),
	}
	face := fonts.Small.Get()
	x := screen.Bounds().Dx() - 240
	for i, line := range lines {
		text.Draw(screen, line, face, x, 16+i*12, color.White)
	}
}
