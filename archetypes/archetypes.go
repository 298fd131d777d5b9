package archetypes

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	ThinPlatform = newArchetype(
		tags.ThinPlatform,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Emission,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
