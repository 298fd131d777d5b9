package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// GlyphLayer is the tile layer read from TMX rooms.
const GlyphLayer = "glyphs"

// glyphProperty names the tileset tile property holding the glyph character.
// Tiles without it are treated as walls and unrecognised values as empty.
const glyphProperty = "glyph"

// LoadTMXGrid reads a Tiled map and converts its glyph layer into a Grid so
// TMX rooms go through the same Parse path as text rooms. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadTMXGrid(fsys fs.FS, tmxPath string) (Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != GlyphLayer {
			continue
		}

		grid := make(Grid, levelMap.Height)
		row := make([]byte, levelMap.Width)
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				row[x] = byte(tileGlyph(layer.Tiles[y*levelMap.Width+x]))
			}
			grid[y] = string(row)
		}
		return grid, nil
	}

	return nil, fmt.Errorf("TMX %s: no %q layer", tmxPath, GlyphLayer)
}

func tileGlyph(tile *tiled.LayerTile) Glyph {
	if tile == nil || tile.IsNil() {
		return Empty
	}
	if tile.Tileset == nil {
		return Wall
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return Wall
	}
	value := tilesetTile.Properties.GetString(glyphProperty)
	if value == "" {
		return Wall
	}
	if g := Glyph(value[0]); g.Known() {
		return g
	}
	return Empty
}

// LoadAllTMX discovers all .tmx files in dir within fsys and returns their
// grids ordered by file name, plus the sorted stem names.
func LoadAllTMX(fsys fs.FS, dir string) ([]Grid, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	grids := make([]Grid, 0, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		grid, err := LoadTMXGrid(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		grids = append(grids, grid)
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}

	return grids, names, nil
}
