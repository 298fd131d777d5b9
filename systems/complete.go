package systems

import (
	"fmt"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RunStats summarises a finished run for the completion screen.
type RunStats struct {
	Rooms  int
	Splats int
}

// NewUpdateComplete creates the completion screen system. Jump or restart
// starts a new run from the first room.
func NewUpdateComplete(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if input.Action(cfg.ActionJump).JustPressed || input.Action(cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// NewDrawComplete creates the completion screen renderer for stats.
func NewDrawComplete(stats RunStats) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Render.BackgroundColor)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		titleFont := fonts.Title.Get()
		title := "Squished it!"
		text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)-24, cfg.Yellow)

		bodyFont := fonts.Bold.Get()
		body := fmt.Sprintf("%d rooms cleared with %d splats", stats.Rooms, stats.Splats)
		text.Draw(screen, body, bodyFont, centerTextX(body, bodyFont, width), int(height/2)+12, cfg.White)

		hintFont := fonts.Small.Get()
		hint := "Press Space or R to play again"
		text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+44, cfg.Render.HUDTextColor)
	}
}

// Stats reads the run totals from a platformer world.
func Stats(e *ecs.ECS) RunStats {
	var stats RunStats
	if levelEntry, ok := components.Level.First(e.World); ok {
		stats.Rooms = len(components.Level.Get(levelEntry).Rooms)
	}
	if playerEntry, ok := components.Player.First(e.World); ok {
		stats.Splats = components.Player.Get(playerEntry).Respawns
	}
	return stats
}
