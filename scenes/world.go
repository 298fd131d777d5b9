package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/shared/level"
	"github.com/automoto/squishroom/systems"
	factory2 "github.com/automoto/squishroom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

type SceneChanger = systems.SceneChanger

// RoomSet is the ordered list of rooms a run plays through.
type RoomSet struct {
	Rooms []level.Grid
	Names []string
	Start int // index of the first room played
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rooms        RoomSet
	once         sync.Once
}

// NewPlatformerScene creates a run over rooms
func NewPlatformerScene(sc SceneChanger, rooms RoomSet) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, rooms: rooms}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	events.ProcessAllEvents(ps.ecs.World)

	if systems.IsGameWon(ps.ecs) {
		ps.sceneChanger.ChangeScene(NewCompleteScene(ps.sceneChanger, ps.rooms, systems.Stats(ps.ecs)))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame order: input, gravity, movement rules, collision, then anything
	// that reads the settled contacts.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateHazards)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateLevelComplete)
	ecs.AddSystem(systems.UpdateSettings)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawDecals)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawLevelComplete)

	ps.ecs = ecs
	systems.SubscribeEvents(ps.ecs)

	// Create the level entity and load room data FIRST, then the space and
	// bodies sized from it.
	levelEntry := factory2.CreateLevel(ps.ecs, ps.rooms.Rooms, ps.rooms.Names, ps.rooms.Start)
	levelData := components.Level.Get(levelEntry)
	systems.BuildRoom(ps.ecs)

	spawn := levelData.Current.Spawn
	factory2.CreatePlayer(ps.ecs, spawn)
	factory2.CreateCamera(ps.ecs, spawn.X, spawn.Y)
	factory2.CreateSettings(ps.ecs, systems.LoadScreenShakeEnabled(systems.SettingsStore()))

	// Snap camera to the start position to prevent panning from (0,0)
	systems.SnapCamera(ps.ecs)
}
