package systems

import (
	"fmt"
	"strconv"

	"github.com/automoto/squishroom/components"
	cfg "github.com/automoto/squishroom/config"
	"github.com/quasilyte/gdata"
)

// ItemStore is the key/value surface of the settings storage.
// *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenSettingsStore opens the gdata store for this game's settings.
func OpenSettingsStore() (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return m, nil
}

// ParseScreenShakeSetting reads the stored flag. Only the exact text
// "false" disables shaking; anything else, including nothing, enables it.
func ParseScreenShakeSetting(value string) bool {
	return value != "false"
}

// LoadScreenShakeEnabled reads the screen-shake flag. A nil store or a
// failed read means enabled.
func LoadScreenShakeEnabled(store ItemStore) bool {
	if store == nil {
		return true
	}
	data, err := store.LoadItem(cfg.ScreenShakeStorageKey)
	if err != nil {
		logger.Warn("could not load screen shake setting", "error", err)
		return true
	}
	return ParseScreenShakeSetting(string(data))
}

// SaveScreenShakeEnabled writes the flag as "true" or "false". A nil store
// is a no-op.
func SaveScreenShakeEnabled(store ItemStore, enabled bool) error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(cfg.ScreenShakeStorageKey, []byte(strconv.FormatBool(enabled))); err != nil {
		return fmt.Errorf("save screen shake setting: %w", err)
	}
	return nil
}

// persistSettings saves the persisted subset of the runtime settings.
func persistSettings(store ItemStore, s *components.SettingsData) {
	if err := SaveScreenShakeEnabled(store, s.ScreenShakeEnabled); err != nil {
		logger.Warn("could not persist settings", "error", err)
	}
}
