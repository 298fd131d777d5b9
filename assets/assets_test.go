package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/squishroom/shared/level"
)

func TestEmbeddedRoomsParse(t *testing.T) {
	grids, names, err := NewLevelLoader().LoadRooms()
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 6 {
		t.Fatalf("rooms = %d, want 6", len(grids))
	}
	if names[0] != "first steps" || names[5] != "finale" {
		t.Errorf("names = %v", names)
	}
	for i, g := range grids {
		data := level.Parse(g, 32)
		if !data.HasExit() {
			t.Errorf("room %d (%s) has no exit", i, names[i])
		}
		if len(data.Walls) == 0 {
			t.Errorf("room %d (%s) has no walls", i, names[i])
		}
		if data.Width != float64(g.Cols())*32 {
			t.Errorf("room %d width = %v, want %v", i, data.Width, float64(g.Cols())*32)
		}
	}
}

func TestLoadRoomsOrderAndFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms/room2-b.txt":   {Data: []byte("###\n#E#\n")},
		"rooms/room1-a.txt":   {Data: []byte("###\r\n#S#\r\n\r\n")},
		"rooms/notes.md":      {Data: []byte("ignored")},
		"rooms/sub/room3.txt": {Data: []byte("#")},
	}
	grids, names, err := NewFSLevelLoader(fsys, "rooms").LoadRooms()
	if err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	if len(grids) != 2 {
		t.Fatalf("rooms = %d, want 2", len(grids))
	}
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if len(grids[0]) != 2 || grids[0][1] != "#S#" {
		t.Errorf("first grid = %q", grids[0])
	}
}

func TestLoadRoomsEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"rooms/readme": {Data: []byte("x")}}
	if _, _, err := NewFSLevelLoader(fsys, "rooms").LoadRooms(); err == nil {
		t.Error("expected an error for a directory without rooms")
	}
}

func TestRoomTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"room2-thin-ice.txt", "thin ice"},
		{"levels/room10-last.txt", "last"},
		{"cavern.tmx", "cavern"},
		{"big-cave", "big cave"},
	}
	for _, tt := range tests {
		if got := RoomTitle(tt.in); got != tt.want {
			t.Errorf("RoomTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
