package systems

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// CompleteRoom marks the current room cleared. Repeated calls while the
// banner is showing are ignored so the event fires once per room.
func CompleteRoom(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	l := components.Level.Get(levelEntry)
	lc := components.LevelComplete.Get(levelEntry)
	if lc.IsComplete {
		return
	}

	lc.IsComplete = true
	lc.Won = l.IsFinal()
	lc.Frames = 0

	RoomCleared.Publish(e.World, RoomClearedEvent{
		Index: l.Index,
		Name:  RoomName(l),
		Final: lc.Won,
	})
}

// UpdateLevelComplete counts down the room clear banner and then loads the
// next room. After the final room it waits for the scene to switch.
func UpdateLevelComplete(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lc := components.LevelComplete.Get(levelEntry)
	if !lc.IsComplete {
		return
	}

	lc.Frames++
	if lc.Won || lc.Frames < cfg.Level.ClearDelayFrames {
		return
	}
	LoadRoom(e, components.Level.Get(levelEntry).Index+1)
}

// IsGameWon reports whether the final room's banner has run its course.
func IsGameWon(e *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	lc := components.LevelComplete.Get(levelEntry)
	return lc.IsComplete && lc.Won && lc.Frames >= cfg.Level.ClearDelayFrames
}

// levelIsComplete checks if the current room has been cleared
func levelIsComplete(e *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	return components.LevelComplete.Get(levelEntry).IsComplete
}

// DrawLevelComplete renders the room clear banner
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lc := components.LevelComplete.Get(levelEntry)
	if !lc.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "Room clear!"
	if lc.Won {
		title = "All rooms clear!"
	}
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2), cfg.Yellow)

	msgFont := fonts.Regular.Get()
	msg := RoomName(components.Level.Get(levelEntry))
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height/2)+28, cfg.White)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
