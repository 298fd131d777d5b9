package config

// ScreenShakeStorageKey is the persisted settings key for the screen-shake
// accessibility toggle.
const ScreenShakeStorageKey = "squishroom.screenShakeEnabled"

// SettingsConfig contains persisted settings configuration
type SettingsConfig struct {
	AppName string // gdata application directory name
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "squishroom",
	}
}
