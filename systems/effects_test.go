package systems

import (
	"math"
	"testing"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var flatRoom = level.Grid{
	"########",
	"#......#",
	"#.S....#",
	"########",
}

func runEffects(w *ecs.ECS, frames int) {
	for i := 0; i < frames; i++ {
		UpdateEffects(w)
	}
}

func TestSplatSettlesBackToOne(t *testing.T) {
	w, player := newTestWorld(t, flatRoom)
	TriggerSplat(player, gameplay.SplatScale)

	if sx, sy := DrawScale(player); sx != 2 || sy != 2 {
		t.Fatalf("DrawScale = (%v,%v), want 2 right after the hit", sx, sy)
	}

	runEffects(w, 60)

	if player.HasComponent(components.Splat) {
		t.Error("splat should be removed once settled")
	}
	if sx, sy := DrawScale(player); sx != 1 || sy != 1 {
		t.Errorf("DrawScale = (%v,%v), want 1", sx, sy)
	}
}

func TestSquashStretchHandsOverToIdle(t *testing.T) {
	w, player := newTestWorld(t, flatRoom)
	TriggerSquashStretch(player, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)

	runEffects(w, 2)
	sx, sy := DrawScale(player)
	if sx <= 1 || sy >= 1 {
		t.Errorf("mid-pulse scale = (%v,%v), want wider and shorter", sx, sy)
	}

	runEffects(w, 30)
	if !player.HasComponent(components.SquashStretch) {
		t.Fatal("idle player should keep a wobble running")
	}
	if !components.SquashStretch.Get(player).Idle {
		t.Error("finished pulse should hand over to the idle wobble")
	}

	StopIdleWobble(player)
	if player.HasComponent(components.SquashStretch) {
		t.Error("StopIdleWobble should remove the wobble")
	}
}

func TestSquashStretchEndsWhenNotIdle(t *testing.T) {
	w, player := newTestWorld(t, flatRoom)
	components.Animation.Get(player).SetAnimation(gameplay.AnimRun)
	TriggerSquashStretch(player, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)

	runEffects(w, 30)

	if player.HasComponent(components.SquashStretch) {
		t.Error("pulse should be removed when the player is not idle")
	}
}

func TestIdleWobbleDoesNotInterruptPulse(t *testing.T) {
	_, player := newTestWorld(t, flatRoom)
	TriggerSquashStretch(player, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)

	TriggerIdleWobble(player)
	if components.SquashStretch.Get(player).Idle {
		t.Error("idle wobble replaced a running pulse")
	}

	StopIdleWobble(player)
	if !player.HasComponent(components.SquashStretch) {
		t.Error("StopIdleWobble removed a one-shot pulse")
	}
}

func TestScreenShakeRunsOut(t *testing.T) {
	w, _ := newTestWorld(t, flatRoom)
	cameraEntry, _ := components.Camera.First(w.World)

	TriggerScreenShake(w, 4, 10)
	TriggerScreenShake(w, 2, 30)
	if got := components.ScreenShake.Get(cameraEntry); got.Intensity != 4 || got.Duration != 10 {
		t.Errorf("weaker shake overrode the running one: %+v", got)
	}

	UpdateCamera(w)
	camera := components.Camera.Get(cameraEntry)
	if camera.Shake.X == 0 && camera.Shake.Y == 0 {
		t.Error("shake offset should be set while shaking")
	}
	if math.Abs(camera.Shake.X) > 4 || math.Abs(camera.Shake.Y) > 4 {
		t.Errorf("shake offset %v exceeds intensity", camera.Shake)
	}

	for i := 0; i < 10; i++ {
		UpdateCamera(w)
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Error("shake should be removed after its duration")
	}
	if camera.Shake.X != 0 || camera.Shake.Y != 0 {
		t.Errorf("shake offset = %v after the shake ended", camera.Shake)
	}
}

func TestLandingShakeRespectsSetting(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"enabled", true},
		{"disabled", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, player := newTestWorld(t, flatRoom)
			entry, _ := components.Settings.First(w.World)
			components.Settings.Get(entry).ScreenShakeEnabled = tt.enabled

			onLanded(w, player, 600)

			cameraEntry, _ := components.Camera.First(w.World)
			if got := cameraEntry.HasComponent(components.ScreenShake); got != tt.enabled {
				t.Errorf("shaking = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestConstrainAxis(t *testing.T) {
	tests := []struct {
		name            string
		v, room, screen float64
		want            float64
	}{
		{"small room centered", 10, 200, 640, 100},
		{"room equal to screen centered", 50, 640, 640, 320},
		{"clamped at start", 100, 1000, 640, 320},
		{"clamped at end", 990, 1000, 640, 680},
		{"follows in the middle", 500, 1000, 640, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := constrainAxis(tt.v, tt.room, tt.screen); got != tt.want {
				t.Errorf("constrainAxis(%v, %v, %v) = %v, want %v", tt.v, tt.room, tt.screen, got, tt.want)
			}
		})
	}
}

func TestTileRect(t *testing.T) {
	style := cfg.TileStyle{WidthScale: 0.5, HeightScale: 0.25}
	tests := []struct {
		glyph level.Glyph
		wantY float64
	}{
		{level.ThinPlatform, 0},
		{level.Hazard, 24},
		{level.Exit, 24},
		{level.Wall, 12},
	}
	for _, tt := range tests {
		t.Run(string(rune(tt.glyph)), func(t *testing.T) {
			x, y, w, h := tileRect(tt.glyph, style, 0, 0, 32)
			if x != 8 || w != 16 || h != 8 {
				t.Errorf("rect = (%v,_,%v,%v), want (8,_,16,8)", x, w, h)
			}
			if y != tt.wantY {
				t.Errorf("y = %v, want %v", y, tt.wantY)
			}
		})
	}
}

func TestSpawnBurstRespectsCap(t *testing.T) {
	saved := cfg.Emission.MaxParticles
	cfg.Emission.MaxParticles = 3
	t.Cleanup(func() { cfg.Emission.MaxParticles = saved })

	w := ecs.NewECS(donburi.NewWorld())
	burst := []gameplay.Particle{{X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}}

	if got := spawnBurst(w, burst, 1, cfg.Emission.DripColor); got != 2 {
		t.Errorf("spawnBurst made %d, want 2 under a cap of 3 with 1 live", got)
	}
	if got := spawnBurst(w, burst, 3, cfg.Emission.DripColor); got != 0 {
		t.Errorf("spawnBurst made %d at the cap, want 0", got)
	}
}

func TestParticlesAgeOut(t *testing.T) {
	w, player := newTestWorld(t, flatRoom)
	SeedParticles(7)
	components.Player.Get(player).State.IsDripping = true

	UpdateParticles(w)
	live := 0
	tags.Particle.Each(w.World, func(*donburi.Entry) { live++ })
	if live < gameplay.MinParticles {
		t.Fatalf("dripping spawned %d particles, want at least %d", live, gameplay.MinParticles)
	}

	components.Player.Get(player).State.IsDripping = false
	frames := int(cfg.Emission.LifetimeMs*float64(cfg.C.TPS)/1000) + 2
	for i := 0; i < frames; i++ {
		UpdateParticles(w)
	}
	live = 0
	tags.Particle.Each(w.World, func(*donburi.Entry) { live++ })
	if live != 0 {
		t.Errorf("%d particles outlived their lifetime", live)
	}
}

func TestFadeColor(t *testing.T) {
	c := cfg.Emission.DripColor
	if got := fadeColor(c, 0.5); got.A != c.A/2 || got.R != c.R {
		t.Errorf("fadeColor(0.5) = %+v", got)
	}
	if got := fadeColor(c, -1); got.A != 0 {
		t.Errorf("fadeColor(-1) alpha = %d, want 0", got.A)
	}
	if got := fadeColor(c, 2); got.A != c.A {
		t.Errorf("fadeColor(2) alpha = %d, want %d", got.A, c.A)
	}
}
