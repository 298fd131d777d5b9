package systems

import (
	"image/color"
	"math"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips draw calls for anything off-screen. A small
// padding keeps shapes from popping in at the edges.
const cullPadding = 64.0

// view maps world coordinates to the screen for one frame.
type view struct {
	offsetX, offsetY float64
	minX, maxX       float64
	minY, maxY       float64
	parallaxX        float64
	parallaxY        float64
}

func (v view) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

// cameraView builds the world-to-screen mapping, including shake.
func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return view{
		offsetX:   width/2 - camera.Position.X + camera.Shake.X,
		offsetY:   height/2 - camera.Position.Y + camera.Shake.Y,
		minX:      camera.Position.X - width/2 - cullPadding,
		maxX:      camera.Position.X + width/2 + cullPadding,
		minY:      camera.Position.Y - height/2 - cullPadding,
		maxY:      camera.Position.Y + height/2 + cullPadding,
		parallaxX: camera.Parallax.X,
		parallaxY: camera.Parallax.Y,
	}, true
}

// DrawDecals renders the background decorations with the parallax drift.
func DrawDecals(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}

	for _, d := range components.Level.Get(levelEntry).Decals {
		x, y := d.X+v.parallaxX, d.Y+v.parallaxY
		if !v.visible(x-d.Radius, y-d.Radius, d.Radius*2, d.Radius*2) {
			continue
		}
		vector.FillCircle(screen,
			float32(x+v.offsetX), float32(y+v.offsetY), float32(d.Radius),
			cfg.Hex(d.Color, d.Alpha), true)
	}
}

// DrawParticles renders drip and trail particles fading over their life.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	size := cfg.Emission.Size

	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if !v.visible(p.X, p.Y, size, size) {
			return
		}
		vector.FillRect(screen,
			float32(p.X-size/2+v.offsetX), float32(p.Y-size/2+v.offsetY),
			float32(size), float32(size), fadeColor(p.Color, p.Alpha()), false)
	})
}

// fadeColor scales c's opacity by alpha.
func fadeColor(c color.RGBA, alpha float64) color.NRGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}

// DrawPlayer renders the player as a mushroom: a cap over a stem, scaled by
// the running squash/stretch and splat effects around its bottom center.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		anim := components.Animation.Get(e)

		sx, sy := DrawScale(e)
		w := cfg.Player.SpriteWidth * sx
		h := cfg.Player.SpriteHeight * sy
		cx, _ := spriteCenter(obj)
		bottom := obj.Y - cfg.Player.BodyOffsetY + cfg.Player.SpriteHeight + bob(anim)

		left := cx - w/2 + v.offsetX
		top := bottom - h + v.offsetY

		capH := h * 0.55
		stemW := w * 0.5
		vector.FillRect(screen,
			float32(left+(w-stemW)/2), float32(top+capH), float32(stemW), float32(h-capH),
			stemColor, false)
		vector.FillRect(screen,
			float32(left), float32(top), float32(w), float32(capH),
			cfg.Player.Color, false)
		drawCapSpots(screen, left, top, w, capH)
		drawEyes(screen, components.Player.Get(e).State, left, top+capH, w, h-capH)
	})
}

var (
	stemColor = color.RGBA{R: 0xee, G: 0xe0, B: 0xc8, A: 255}
	spotColor = color.RGBA{R: 0xf6, G: 0xee, B: 0xdc, A: 255}
	eyeColor  = color.RGBA{R: 0x1a, G: 0x14, B: 0x10, A: 255}
)

// bob lifts the sprite on alternating run frames.
func bob(anim *components.AnimationData) float64 {
	if anim.Key != gameplay.AnimRun || anim.CurrentAnimation == nil {
		return 0
	}
	return -math.Abs(math.Sin(anim.CurrentAnimation.Progress() * 2 * math.Pi))
}

func drawCapSpots(screen *ebiten.Image, left, top, w, h float64) {
	r := float32(math.Max(1, w*0.08))
	vector.FillCircle(screen, float32(left+w*0.28), float32(top+h*0.45), r, spotColor, true)
	vector.FillCircle(screen, float32(left+w*0.68), float32(top+h*0.35), r, spotColor, true)
}

// drawEyes looks toward the wall while sliding, otherwise toward travel.
func drawEyes(screen *ebiten.Image, s gameplay.PlayerState, left, top, w, h float64) {
	look := 0.0
	switch {
	case s.IsWallSliding && s.WallSide == gameplay.WallLeft:
		look = -1
	case s.IsWallSliding && s.WallSide == gameplay.WallRight:
		look = 1
	case s.VelocityX < 0:
		look = -1
	case s.VelocityX > 0:
		look = 1
	}
	cx := left + w/2 + look*w*0.08
	y := top + h*0.35
	eyeH := h * 0.3
	if s.IsDripping {
		eyeH = h * 0.1 // squint
	}
	vector.FillRect(screen, float32(cx-w*0.14), float32(y), 2, float32(eyeH), eyeColor, false)
	vector.FillRect(screen, float32(cx+w*0.1), float32(y), 2, float32(eyeH), eyeColor, false)
}
