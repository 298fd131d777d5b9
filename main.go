// squishroom is a small platformer about a mushroom that jumps, drips and
// wall-slides its way through a set of rooms.
//
// Usage:
//
//	squishroom                      - Play the built-in rooms
//	squishroom --level 3            - Start on the third room
//	squishroom --levels-dir ./maps  - Play the .tmx rooms in a directory
//
// Flags:
//
//	--tuning <path>    - YAML tuning overlay (physics, body, camera, particles)
//	--skin <mode>      - classic or skinned tiles
//	--contrast high    - High-contrast palette
//	--seed <value>     - Particle RNG seed (0 = time based)
//	--debug            - Draw collision bodies and movement state
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/squishroom/assets"
	"github.com/automoto/squishroom/config"
	"github.com/automoto/squishroom/fonts"
	"github.com/automoto/squishroom/scenes"
	"github.com/automoto/squishroom/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel     int
	flagTuning    string
	flagSkin      string
	flagContrast  string
	flagLevelsDir string
	flagSeed      uint64
	flagDebug     bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(rooms scenes.RoomSet) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, rooms)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "squishroom",
	Short: "Squishroom - a tiny mushroom platformer",
	Long: `Squishroom is a small platformer. Run, jump, drip through thin
platforms and slide down walls to reach each room's exit.

Controls:
  Arrows/WASD  - Move (Up/W also jumps)
  Space        - Jump
  Down/S       - Drip (fast fall through thin platforms)
  R            - Restart room
  K            - Toggle screen shake
  H            - Toggle high contrast
  V            - Toggle tile skin`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Room to start on (1-based)")
	rootCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.Flags().StringVar(&flagSkin, "skin", string(config.SkinSkinned), "Tile skin: classic or skinned")
	rootCmd.Flags().StringVar(&flagContrast, "contrast", "", "Set to \"high\" for the high-contrast palette")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of .tmx rooms to play instead of the built-in set")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Particle RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision bodies and movement state")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "squishroom",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	systems.SetLogger(logger)

	tuning, source, err := config.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	tuning.Apply()
	logger.Debug("tuning loaded", "source", source)

	config.Render.Skin = config.ResolveSkinMode(flagSkin, config.Render.Skin)
	config.Render.Palette = config.ResolvePaletteMode(flagContrast, config.Render.Palette)
	config.Debug.Enabled = flagDebug
	config.Level.Start = flagLevel - 1
	config.Level.TMXDir = flagLevelsDir
	config.Emission.Seed = flagSeed
	systems.SeedParticles(config.Emission.Seed)

	rooms, err := loadRooms(logger)
	if err != nil {
		return err
	}
	rooms.Start = config.Level.Start
	if rooms.Start < 0 || rooms.Start >= len(rooms.Rooms) {
		logger.Warn("starting room out of range, using the first", "level", flagLevel, "rooms", len(rooms.Rooms))
		rooms.Start = 0
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Initialize persistence; the game still runs with shake defaults without it
	store, err := systems.OpenSettingsStore()
	if err != nil {
		logger.Warn("could not initialize persistence", "error", err)
	} else {
		systems.SetSettingsStore(store)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(rooms))
}

// loadRooms reads the TMX directory when one is given, falling back to the
// built-in rooms if it cannot be used.
func loadRooms(logger *log.Logger) (scenes.RoomSet, error) {
	if dir := config.Level.TMXDir; dir != "" {
		grids, names, err := assets.LoadTMXRooms(dir)
		if err == nil {
			return scenes.RoomSet{Rooms: grids, Names: names}, nil
		}
		logger.Warn("could not load TMX rooms, using built-in rooms", "dir", dir, "error", err)
	}

	grids, names, err := assets.NewLevelLoader().LoadRooms()
	if err != nil {
		return scenes.RoomSet{}, fmt.Errorf("load built-in rooms: %w", err)
	}
	return scenes.RoomSet{Rooms: grids, Names: names}, nil
}
