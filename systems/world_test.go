package systems

import (
	"testing"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/gameplay"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/systems/factory"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// newTestWorld builds a headless world over rooms with the player at the
// first room's spawn. Screen shake starts disabled.
func newTestWorld(t *testing.T, rooms ...level.Grid) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	SubscribeEvents(w)

	names := make([]string, len(rooms))
	for i := range rooms {
		names[i] = string(rune('a' + i))
	}
	factory.CreateLevel(w, rooms, names, 0)
	BuildRoom(w)

	room := currentRoom(w)
	player := factory.CreatePlayer(w, room.Spawn)
	factory.CreateCamera(w, room.Spawn.X, room.Spawn.Y)
	factory.CreateSettings(w, false)
	SnapCamera(w)
	return w, player
}

// moveBody teleports the player's body and keeps the state in sync.
func moveBody(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x, y
	obj.Update()
	s := &components.Player.Get(e).State
	s.X, s.Y = x, y
}

func stepFall(w *ecs.ECS, frames int) {
	for i := 0; i < frames; i++ {
		UpdatePhysics(w)
		UpdateCollisions(w)
	}
}

func TestCollisionsLandOnFloor(t *testing.T) {
	w, player := newTestWorld(t, level.Grid{
		"######",
		"#....#",
		"#.S..#",
		"######",
	})

	landings := 0
	for i := 0; i < 60; i++ {
		UpdatePhysics(w)
		UpdateCollisions(w)
		if components.Player.Get(player).State.JustLanded {
			landings++
		}
	}

	s := components.Player.Get(player).State
	obj := components.Object.Get(player)
	if !s.OnGround {
		t.Fatal("player should be grounded")
	}
	if got := obj.Bottom(); got != 96 {
		t.Errorf("body bottom = %v, want 96", got)
	}
	if s.VelocityY != 0 {
		t.Errorf("VelocityY = %v, want 0", s.VelocityY)
	}
	if landings != 1 {
		t.Errorf("JustLanded fired %d times, want 1", landings)
	}
	if s.Y != obj.Y {
		t.Errorf("state Y %v out of sync with body %v", s.Y, obj.Y)
	}
}

func TestCollisionsThinPlatform(t *testing.T) {
	room := level.Grid{
		"#####",
		"#.S.#",
		"#~~~#",
		"#...#",
		"#####",
	}

	tests := []struct {
		name       string
		dripping   bool
		wantBottom float64
	}{
		{"lands on top", false, 64},
		{"drip falls through", true, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, player := newTestWorld(t, room)
			components.Player.Get(player).State.IsDripping = tt.dripping

			stepFall(w, 120)

			if got := components.Object.Get(player).Bottom(); got != tt.wantBottom {
				t.Errorf("body bottom = %v, want %v", got, tt.wantBottom)
			}
			if !components.Player.Get(player).State.OnGround {
				t.Error("player should be grounded")
			}
		})
	}
}

func TestCollisionsWallContacts(t *testing.T) {
	w, player := newTestWorld(t, level.Grid{
		"#####",
		"#S..#",
		"#####",
	})
	components.Player.Get(player).State.VelocityX = -300

	UpdateCollisions(w)

	p := components.Player.Get(player)
	if got := components.Object.Get(player).X; got != 32 {
		t.Errorf("body X = %v, want flush at 32", got)
	}
	if p.State.VelocityX != 0 {
		t.Errorf("VelocityX = %v, want 0 after hitting the wall", p.State.VelocityX)
	}
	if !p.Contacts.BlockedLeft || !p.Contacts.TouchingLeft {
		t.Errorf("left contacts = %+v, want blocked and touching", p.Contacts)
	}
	if p.Contacts.BlockedRight || p.Contacts.TouchingRight {
		t.Errorf("right contacts = %+v, want none", p.Contacts)
	}
}

func TestRunAnimationAgainstWall(t *testing.T) {
	w, player := newTestWorld(t, level.Grid{
		"######",
		"#..S.#",
		"######",
	})
	getOrCreateInput(w).Current[cfg.ActionMoveRight] = true

	for i := 0; i < 90; i++ {
		UpdatePlayer(w)
		UpdatePhysics(w)
		UpdateCollisions(w)
		UpdateAnimation(w)
	}

	p := components.Player.Get(player)
	if !p.State.OnGround || !p.Contacts.BlockedRight {
		t.Fatalf("want grounded against the right wall, got state %+v contacts %+v", p.State, p.Contacts)
	}
	if p.State.VelocityX != 0 {
		t.Errorf("VelocityX = %v, want 0 while blocked", p.State.VelocityX)
	}
	if got := components.Animation.Get(player).Key; got != gameplay.AnimRun {
		t.Errorf("animation = %q, want %q while holding into the wall", got, gameplay.AnimRun)
	}
}

func TestFallingOutOfRoomRespawns(t *testing.T) {
	w, player := newTestWorld(t, level.Grid{
		"#.S.#",
		"#...#",
	})
	moveBody(player, 36, 70)

	UpdateCollisions(w)

	p := components.Player.Get(player)
	x, y := factory.BodyOrigin(p.Spawn)
	if p.State.X != x || p.State.Y != y {
		t.Errorf("state at (%v,%v), want spawn (%v,%v)", p.State.X, p.State.Y, x, y)
	}
	if p.Respawns != 1 {
		t.Errorf("Respawns = %d, want 1", p.Respawns)
	}
}

func TestHazardRespawnsPlayer(t *testing.T) {
	w, player := newTestWorld(t, level.Grid{
		"#####",
		"#S.^#",
		"#####",
	})

	hits := 0
	HazardHit.Subscribe(w.World, func(donburi.World, HazardHitEvent) { hits++ })

	components.Player.Get(player).State.VelocityX = 120
	components.Player.Get(player).State.IsDripping = true
	moveBody(player, 100, 44)

	UpdateHazards(w)
	events.ProcessAllEvents(w.World)

	p := components.Player.Get(player)
	x, y := factory.BodyOrigin(p.Spawn)
	if p.State.X != x || p.State.Y != y {
		t.Errorf("state at (%v,%v), want spawn (%v,%v)", p.State.X, p.State.Y, x, y)
	}
	if obj := components.Object.Get(player); obj.X != x || obj.Y != y {
		t.Errorf("body at (%v,%v), want spawn (%v,%v)", obj.X, obj.Y, x, y)
	}
	if p.State.VelocityX != 0 || p.State.VelocityY != 0 || p.State.IsDripping {
		t.Errorf("state not reset: %+v", p.State)
	}
	if hits != 1 {
		t.Errorf("hazard events = %d, want 1", hits)
	}
	if sx, sy := DrawScale(player); sx != 2 || sy != 2 {
		t.Errorf("DrawScale = (%v,%v), want splat scale 2", sx, sy)
	}

	particles := 0
	tags.Particle.Each(w.World, func(*donburi.Entry) { particles++ })
	if particles < 2 || particles > 4 {
		t.Errorf("splat burst spawned %d particles, want 2..4", particles)
	}
}

func TestHazardIgnoredWhenRoomComplete(t *testing.T) {
	w, player := newTestWorld(t, level.Grid{
		"#####",
		"#S.^#",
		"#####",
	})
	CompleteRoom(w)
	moveBody(player, 100, 44)

	UpdateHazards(w)

	if got := components.Player.Get(player).Respawns; got != 0 {
		t.Errorf("Respawns = %d, want 0 after the room is complete", got)
	}
}

func TestExitAdvancesRooms(t *testing.T) {
	room := level.Grid{
		"######",
		"#S..E#",
		"######",
	}
	w, player := newTestWorld(t, room, room)

	var cleared []RoomClearedEvent
	RoomCleared.Subscribe(w.World, func(_ donburi.World, ev RoomClearedEvent) {
		cleared = append(cleared, ev)
	})

	moveBody(player, 132, 40)
	UpdateHazards(w)
	UpdateHazards(w)
	events.ProcessAllEvents(w.World)

	if len(cleared) != 1 || cleared[0].Index != 0 || cleared[0].Final {
		t.Fatalf("cleared events = %+v, want one non-final clear of room 0", cleared)
	}
	if !levelIsComplete(w) {
		t.Fatal("room should be complete")
	}

	for i := 0; i < cfg.Level.ClearDelayFrames; i++ {
		UpdateLevelComplete(w)
	}

	levelEntry, _ := components.Level.First(w.World)
	if got := components.Level.Get(levelEntry).Index; got != 1 {
		t.Fatalf("room index = %d, want 1", got)
	}
	if levelIsComplete(w) {
		t.Error("next room should start incomplete")
	}
	p := components.Player.Get(player)
	if x, y := factory.BodyOrigin(p.Spawn); p.State.X != x || p.State.Y != y {
		t.Errorf("player at (%v,%v), want spawn (%v,%v)", p.State.X, p.State.Y, x, y)
	}

	moveBody(player, 132, 40)
	UpdateHazards(w)
	events.ProcessAllEvents(w.World)
	if len(cleared) != 2 || !cleared[1].Final {
		t.Fatalf("cleared events = %+v, want a final clear", cleared)
	}
	for i := 0; i < cfg.Level.ClearDelayFrames; i++ {
		if IsGameWon(w) {
			t.Fatalf("game won after %d frames, want %d", i, cfg.Level.ClearDelayFrames)
		}
		UpdateLevelComplete(w)
	}
	if !IsGameWon(w) {
		t.Error("game should be won after the final banner")
	}
	if got := Stats(w); got.Rooms != 2 {
		t.Errorf("Stats = %+v, want 2 rooms", got)
	}
}

func TestLoadRoomRebuildsGeometry(t *testing.T) {
	w, _ := newTestWorld(t,
		level.Grid{"#####", "#S.E#", "#####"},
		level.Grid{"#######", "#S.^.E#", "#######"},
	)

	count := func() (walls, hazards, spaces int) {
		tags.Wall.Each(w.World, func(*donburi.Entry) { walls++ })
		tags.Hazard.Each(w.World, func(*donburi.Entry) { hazards++ })
		components.Space.Each(w.World, func(*donburi.Entry) { spaces++ })
		return
	}

	LoadRoom(w, 1)
	walls, hazards, spaces := count()
	if hazards != 1 || spaces != 1 {
		t.Errorf("hazards=%d spaces=%d, want 1 and 1", hazards, spaces)
	}
	if walls == 0 {
		t.Error("room should have walls")
	}

	LoadRoom(w, 5)
	levelEntry, _ := components.Level.First(w.World)
	if got := components.Level.Get(levelEntry).Index; got != 1 {
		t.Errorf("out of range load changed room to %d", got)
	}
}

func TestUpdateSettingsToggles(t *testing.T) {
	store := newMemStore()
	SetSettingsStore(store)
	t.Cleanup(func() { SetSettingsStore(nil) })

	w, player := newTestWorld(t, level.Grid{
		"#####",
		"#S.E#",
		"#####",
	})
	entry, _ := components.Settings.First(w.World)
	settings := components.Settings.Get(entry)
	settings.Skin = cfg.SkinSkinned
	settings.Palette = cfg.PaletteNormal

	input := getOrCreateInput(w)
	input.Current[cfg.ActionToggleShake] = true
	input.Current[cfg.ActionToggleContrast] = true
	input.Current[cfg.ActionToggleSkin] = true
	input.Current[cfg.ActionRestart] = true

	moveBody(player, 60, 40)
	UpdateSettings(w)

	if !settings.ScreenShakeEnabled {
		t.Error("shake toggle should enable shaking")
	}
	if got := string(store.items[cfg.ScreenShakeStorageKey]); got != "true" {
		t.Errorf("persisted shake = %q, want \"true\"", got)
	}
	if settings.Palette != cfg.PaletteHighContrast {
		t.Errorf("palette = %v, want high-contrast", settings.Palette)
	}
	if settings.Skin != cfg.SkinClassic {
		t.Errorf("skin = %v, want classic", settings.Skin)
	}
	p := components.Player.Get(player)
	if x, y := factory.BodyOrigin(p.Spawn); p.State.X != x || p.State.Y != y {
		t.Errorf("restart left player at (%v,%v), want spawn (%v,%v)", p.State.X, p.State.Y, x, y)
	}
}

func TestToggleModes(t *testing.T) {
	if got := ToggleSkin(cfg.SkinClassic); got != cfg.SkinSkinned {
		t.Errorf("ToggleSkin(classic) = %v", got)
	}
	if got := ToggleSkin(cfg.SkinSkinned); got != cfg.SkinClassic {
		t.Errorf("ToggleSkin(skinned) = %v", got)
	}
	if got := TogglePalette(cfg.PaletteNormal); got != cfg.PaletteHighContrast {
		t.Errorf("TogglePalette(normal) = %v", got)
	}
	if got := TogglePalette(cfg.PaletteHighContrast); got != cfg.PaletteNormal {
		t.Errorf("TogglePalette(high-contrast) = %v", got)
	}
}

type sceneRecorder struct{ scene interface{} }

func (r *sceneRecorder) ChangeScene(scene interface{}) { r.scene = scene }

func TestUpdateCompleteRestarts(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	rec := &sceneRecorder{}
	update := NewUpdateComplete(rec, func() interface{} { return "next" })

	update(w)
	if rec.scene != nil {
		t.Fatal("scene changed without input")
	}

	getOrCreateInput(w).Current[cfg.ActionJump] = true
	update(w)
	if rec.scene != "next" {
		t.Errorf("scene = %v, want the new run", rec.scene)
	}
}
