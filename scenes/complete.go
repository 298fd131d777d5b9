package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CompleteScene is shown after the final room is cleared
type CompleteScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rooms        RoomSet
	stats        systems.RunStats
	once         sync.Once
}

// NewCompleteScene creates the completion scene for a finished run
func NewCompleteScene(sc SceneChanger, rooms RoomSet, stats systems.RunStats) *CompleteScene {
	return &CompleteScene{sceneChanger: sc, rooms: rooms, stats: stats}
}

func (cs *CompleteScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CompleteScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CompleteScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	// A new run always starts from the first room
	restart := cs.rooms
	restart.Start = 0
	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(cs.sceneChanger, restart)
	}

	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateComplete(cs.sceneChanger, createPlatformerScene))

	cs.ecs.AddRenderer(cfg.Default, systems.NewDrawComplete(cs.stats))
}
