package factory

import (
	"github.com/automoto/squishroom/archetypes"
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings creates the settings entity from the render config and the
// persisted screen-shake flag.
func CreateSettings(ecs *ecs.ECS, screenShake bool) *donburi.Entry {
	s := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(s, components.SettingsData{
		ScreenShakeEnabled: screenShake,
		Skin:               cfg.Render.Skin,
		Palette:            cfg.Render.Palette,
		Debug:              cfg.Debug.Enabled,
	})
	return s
}
