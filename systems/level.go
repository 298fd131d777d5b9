package systems

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground clears the screen to the room background color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)
}

// DrawLevel draws every visible tile with the active skin and palette.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	skin, palette := cfg.Render.Skin, cfg.Render.Palette
	if settingsEntry, ok := components.Settings.First(ecs.World); ok {
		settings := components.Settings.Get(settingsEntry)
		skin, palette = settings.Skin, settings.Palette
	}

	grid := levelData.Grid()
	t := levelData.Current.TileSize
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.RowLen(row); col++ {
			g, _ := grid.At(row, col)
			style, ok := cfg.TileStyleFor(g, skin, palette)
			if !ok {
				continue
			}
			x, y, w, h := tileRect(g, style, float64(col)*t, float64(row)*t, t)
			if !v.visible(x, y, w, h) {
				continue
			}
			drawTile(screen, style, x+v.offsetX, y+v.offsetY, w, h)
		}
	}
}

// tileRect places a scaled tile inside its cell the same way the collision
// bodies sit: platforms hug the top, hazards and the exit rest on the floor.
func tileRect(g level.Glyph, s cfg.TileStyle, cellX, cellY, t float64) (x, y, w, h float64) {
	w, h = t*s.WidthScale, t*s.HeightScale
	x = cellX + (t-w)/2
	switch g {
	case level.ThinPlatform:
		y = cellY
	case level.Hazard, level.Exit:
		y = cellY + t - h
	default:
		y = cellY + (t-h)/2
	}
	return x, y, w, h
}

func drawTile(screen *ebiten.Image, s cfg.TileStyle, x, y, w, h float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Hex(s.Fill, s.Alpha), false)
	if s.EdgeScale > 0 {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h*s.EdgeScale), cfg.Hex(s.Edge, s.Alpha), false)
	}
	if s.StrokeWidth > 0 {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(s.StrokeWidth), cfg.Hex(s.Stroke, s.Alpha), false)
	}
}
