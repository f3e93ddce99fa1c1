package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/minigame-arcade/internal/core"
	"github.com/vovakirdan/minigame-arcade/internal/storage"
)

func TestNextCycles(t *testing.T) {
	names := Names()
	name := DefaultName
	for range names {
		name = Next(name).Name
	}
	if name != DefaultName {
		t.Errorf("after a full cycle got %q, want %q", name, DefaultName)
	}
	if got := Next("nope").Name; got != names[0] {
		t.Errorf("Next(unknown) = %q, want %q", got, names[0])
	}
}

func TestLoadDefaults(t *testing.T) {
	if got := Load(nil).Name; got != DefaultName {
		t.Errorf("Load(nil) = %q", got)
	}

	store := openStore(t)
	if got := Load(store).Name; got != DefaultName {
		t.Errorf("Load(empty) = %q", got)
	}

	if err := store.SetPreference(PreferenceKey, "plaid"); err != nil {
		t.Fatal(err)
	}
	if got := Load(store).Name; got != DefaultName {
		t.Errorf("Load(unknown) = %q", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	store := openStore(t)
	if err := Save(store, "ocean"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(store).Name; got != "ocean" {
		t.Errorf("Load = %q, want ocean", got)
	}
}

func TestSaveRejectsUnknown(t *testing.T) {
	store := openStore(t)
	err := Save(store, "plaid")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Save(unknown) error = %v", err)
	}
	if _, ok, _ := store.Preference(PreferenceKey); ok {
		t.Error("unknown theme was stored")
	}
}

func TestColorFallsBackToText(t *testing.T) {
	p := Default()
	if got := p.Color(core.ColorDefault).GetForeground(); got != p.Text {
		t.Errorf("default color = %v, want palette text", got)
	}
	if got := p.Color(core.ColorRed).GetForeground(); got == p.Text {
		t.Error("red rendered with the text color")
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
