package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/squishroom/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func newMemStore() *memStore { return &memStore{items: map[string][]byte{}} }

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestParseScreenShakeSetting(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"false", false},
		{"true", true},
		{"", true},
		{"FALSE", true},
		{"0", true},
	}
	for _, tt := range tests {
		if got := ParseScreenShakeSetting(tt.in); got != tt.want {
			t.Errorf("ParseScreenShakeSetting(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScreenShakeRoundTrip(t *testing.T) {
	store := newMemStore()
	if !LoadScreenShakeEnabled(store) {
		t.Error("missing setting should default to enabled")
	}

	if err := SaveScreenShakeEnabled(store, false); err != nil {
		t.Fatal(err)
	}
	if got := string(store.items[cfg.ScreenShakeStorageKey]); got != "false" {
		t.Errorf("stored value = %q, want \"false\"", got)
	}
	if LoadScreenShakeEnabled(store) {
		t.Error("saved false should load as disabled")
	}

	if err := SaveScreenShakeEnabled(store, true); err != nil {
		t.Fatal(err)
	}
	if !LoadScreenShakeEnabled(store) {
		t.Error("saved true should load as enabled")
	}
}

func TestScreenShakeStoreFailures(t *testing.T) {
	if !LoadScreenShakeEnabled(nil) {
		t.Error("nil store should load as enabled")
	}
	if err := SaveScreenShakeEnabled(nil, false); err != nil {
		t.Errorf("nil store save error = %v", err)
	}

	boom := errors.New("disk gone")
	store := &memStore{items: map[string][]byte{}, loadErr: boom, saveErr: boom}
	if !LoadScreenShakeEnabled(store) {
		t.Error("failed load should fall back to enabled")
	}
	if err := SaveScreenShakeEnabled(store, false); !errors.Is(err, boom) {
		t.Errorf("save error = %v, want wrapped %v", err, boom)
	}
}
