package systems

import (
	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/yohamta/donburi/ecs"
)

// settingsStore is where toggled settings persist. Nil disables saving.
var settingsStore ItemStore

// SetSettingsStore sets the store UpdateSettings persists to.
func SetSettingsStore(store ItemStore) {
	settingsStore = store
}

// SettingsStore returns the store set by SetSettingsStore.
func SettingsStore() ItemStore {
	return settingsStore
}

// UpdateSettings applies the in-game toggles and the room restart key.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	input := getOrCreateInput(e)

	if input.Action(cfg.ActionToggleShake).JustPressed {
		settings.ScreenShakeEnabled = !settings.ScreenShakeEnabled
		persistSettings(settingsStore, settings)
		logger.Info("screen shake toggled", "enabled", settings.ScreenShakeEnabled)
	}
	if input.Action(cfg.ActionToggleContrast).JustPressed {
		settings.Palette = TogglePalette(settings.Palette)
	}
	if input.Action(cfg.ActionToggleSkin).JustPressed {
		settings.Skin = ToggleSkin(settings.Skin)
	}

	if input.Action(cfg.ActionRestart).JustPressed && !levelIsComplete(e) {
		if levelEntry, ok := components.Level.First(e.World); ok {
			LoadRoom(e, components.Level.Get(levelEntry).Index)
		}
	}
}

// ToggleSkin flips between the classic and skinned tile renderers.
func ToggleSkin(m cfg.SkinMode) cfg.SkinMode {
	if m == cfg.SkinClassic {
		return cfg.SkinSkinned
	}
	return cfg.SkinClassic
}

// TogglePalette flips between the normal and high-contrast palettes.
func TogglePalette(p cfg.PaletteMode) cfg.PaletteMode {
	if p == cfg.PaletteHighContrast {
		return cfg.PaletteNormal
	}
	return cfg.PaletteHighContrast
}
