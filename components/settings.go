package components

import (
	cfg "github.com/automoto/squishroom/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores runtime toggles. Only the screen-shake flag persists.
type SettingsData struct {
	ScreenShakeEnabled bool
	Skin               cfg.SkinMode
	Palette            cfg.PaletteMode
	Debug              bool
}

var Settings = donburi.NewComponentType[SettingsData]()
