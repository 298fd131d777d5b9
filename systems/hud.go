package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudPanelWidth = 180
)

var hudPanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 110}

// DrawHUD renders the room name, the respawn counter and the screen-shake
// state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	l := components.Level.Get(levelEntry)

	lines := []string{
		fmt.Sprintf("Room %d/%d  %s", l.Index+1, len(l.Rooms), RoomName(l)),
	}
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("Splats: %d", components.Player.Get(playerEntry).Respawns))
	}
	shake := "on"
	if !screenShakeEnabled(ecs) {
		shake = "off"
	}
	lines = append(lines, "Shake: "+shake)

	vector.FillRect(screen,
		float32(hudMargin-4), float32(hudMargin-4),
		float32(hudPanelWidth), float32(len(lines)*hudLineHeight+8),
		hudPanelColor, false)

	face := fonts.Regular.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, cfg.Render.HUDTextColor)
	}

	hint := controlsHint(getOrCreateInput(ecs).LastInputMethod)
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, hudMargin, cfg.C.Height-hudMargin, cfg.Render.HUDTextColor)
}

// controlsHint returns the control summary for the last used device.
func controlsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Stick move  Cross jump  Down drip  Options restart"
	case components.InputXbox:
		return "Stick move  A jump  Down drip  Start restart"
	}
	return "Arrows/WASD move  Space jump  Down drip  R restart  K shake  H contrast  V skin"
}
