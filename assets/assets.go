// Package assets bundles the built-in rooms and loads room sets from disk.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/automoto/squishroom/shared/level"
)

var (
	//go:embed levels/*.txt
	assetFS embed.FS
)

// roomExt is the extension of text room files.
const roomExt = ".txt"

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the rooms embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewFSLevelLoader reads text rooms from dir within fsys.
func NewFSLevelLoader(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadRooms returns every room in the loader's directory ordered by file
// name, with display names taken from the file stems.
func (l *LevelLoader) LoadRooms() ([]level.Grid, []string, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read rooms directory %s: %w", l.dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == roomExt {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no room files found in %s", l.dir)
	}
	sort.Strings(files)

	grids := make([]level.Grid, 0, len(files))
	names := make([]string, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(l.fsys, path.Join(l.dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("read room %s: %w", name, err)
		}
		grids = append(grids, ParseRoom(string(data)))
		names = append(names, RoomTitle(name))
	}
	return grids, names, nil
}

// LoadTMXRooms reads every .tmx room in a directory on disk.
func LoadTMXRooms(dir string) ([]level.Grid, []string, error) {
	grids, names, err := level.LoadAllTMX(os.DirFS(dir), ".")
	if err != nil {
		return nil, nil, fmt.Errorf("load TMX rooms from %s: %w", dir, err)
	}
	for i, n := range names {
		names[i] = RoomTitle(n)
	}
	return grids, names, nil
}

// ParseRoom splits room text into grid rows. Carriage returns and trailing
// blank lines are dropped; interior rows are kept as written.
func ParseRoom(text string) level.Grid {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return level.Grid(lines)
}

// RoomTitle turns a file name like "room2-thin-ice.txt" into "thin ice".
// Names without a "roomN-" prefix keep their whole stem.
func RoomTitle(file string) string {
	stem := strings.TrimSuffix(path.Base(file), path.Ext(file))
	if prefix, rest, ok := strings.Cut(stem, "-"); ok && strings.HasPrefix(prefix, "room") {
		stem = rest
	}
	return strings.ReplaceAll(stem, "-", " ")
}
