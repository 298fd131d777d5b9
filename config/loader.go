package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// Tuning is the YAML overlay for the host configuration. Zero fields leave
// the matching global untouched.
type Tuning struct {
	Screen struct {
		Width    int     `yaml:"width"`
		Height   int     `yaml:"height"`
		TileSize float64 `yaml:"tile_size"`
	} `yaml:"screen"`
	Physics struct {
		Gravity      float64 `yaml:"gravity"`
		MaxFallSpeed float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`
	Player struct {
		BodyWidth   float64 `yaml:"body_width"`
		BodyHeight  float64 `yaml:"body_height"`
		BodyOffsetX float64 `yaml:"body_offset_x"`
		BodyOffsetY float64 `yaml:"body_offset_y"`
	} `yaml:"player"`
	Camera struct {
		FollowSmoothing float64 `yaml:"follow_smoothing"`
		ParallaxFactor  float64 `yaml:"parallax_factor"`
		ParallaxMax     float64 `yaml:"parallax_max"`
	} `yaml:"camera"`
	Particles struct {
		LifetimeMs float64 `yaml:"lifetime_ms"`
		Max        int     `yaml:"max"`
	} `yaml:"particles"`
}

// LoadTuning loads the tuning overlay and reports where it came from.
// Search order: customPath -> ~/.squishroom/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func LoadTuning(customPath string) (Tuning, string, error) {
	var t Tuning

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, "", fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return t, customPath, nil
	}

	// Try user config directory
	if p := userConfigPath("tuning.yaml"); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if err := yaml.Unmarshal(data, &t); err == nil {
				return t, p, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "tuning.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if err := yaml.Unmarshal(data, &t); err == nil {
			return t, local, nil
		}
	}

	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		return Tuning{}, "", fmt.Errorf("failed to parse embedded tuning: %w", err)
	}
	return t, "embedded", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".squishroom", filename)
}

// Apply writes the non-zero tuning values onto the global config.
func (t Tuning) Apply() {
	setInt(&C.Width, t.Screen.Width)
	setInt(&C.Height, t.Screen.Height)
	setFloat(&C.TileSize, t.Screen.TileSize)

	setFloat(&Physics.Gravity, t.Physics.Gravity)
	setFloat(&Physics.MaxFallSpeed, t.Physics.MaxFallSpeed)

	setFloat(&Player.BodyWidth, t.Player.BodyWidth)
	setFloat(&Player.BodyHeight, t.Player.BodyHeight)
	setFloat(&Player.BodyOffsetX, t.Player.BodyOffsetX)
	setFloat(&Player.BodyOffsetY, t.Player.BodyOffsetY)

	setFloat(&Camera.FollowSmoothing, t.Camera.FollowSmoothing)
	setFloat(&Camera.ParallaxFactor, t.Camera.ParallaxFactor)
	setFloat(&Camera.ParallaxMax, t.Camera.ParallaxMax)

	setFloat(&Emission.LifetimeMs, t.Particles.LifetimeMs)
	setInt(&Emission.MaxParticles, t.Particles.Max)
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
