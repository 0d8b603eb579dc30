package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestBuiltinLevelsLoad(t *testing.T) {
	lvls, err := Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(lvls) < 5 {
		t.Fatalf("expected at least 5 builtin levels, got %d", len(lvls))
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s before %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	for _, l := range lvls {
		if l.Breakable() == 0 {
			t.Errorf("level %s has nothing to break", l.ID)
		}
		if l.Cols() != 12 {
			t.Errorf("level %s: Cols() = %d, expected 12", l.ID, l.Cols())
		}
	}
}

func TestParseTile(t *testing.T) {
	tile, err := ParseTile("lightblue")
	if err != nil || tile != TileLightBlue {
		t.Errorf("ParseTile(lightblue) = (%v, %v)", tile, err)
	}
	if tile.String() != "lightblue" {
		t.Errorf("String() = %q, expected lightblue", tile.String())
	}

	if _, err := ParseTile("purple"); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("ParseTile(purple) err = %v, expected ErrUnknownTile", err)
	}
}

func TestUnknownTokenFailsLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/a.lvl": {Data: []byte(`{"width":2,"height":1,"tiles":[["red","blank"]]}`)},
		"lv/b.lvl": {Data: []byte(`{"width":2,"height":1,"tiles":[["red","purple"]]}`)},
	}

	_, err := NewLoader(fsys, "lv").LoadAll()
	if !errors.Is(err, ErrUnknownTile) {
		t.Errorf("LoadAll() err = %v, expected ErrUnknownTile", err)
	}
}

func TestDimensionMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"width":3,"height":1,"tiles":[["red","blank"]]}`)},
	}

	_, err := NewLoader(fsys, ".").LoadFile("a.json")
	if !errors.Is(err, ErrBadDimensions) {
		t.Errorf("LoadFile() err = %v, expected ErrBadDimensions", err)
	}
}

func TestYAMLLevelAndDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"x/99_custom.yaml": {Data: []byte("tiles:\n  - [gold, red]\n  - [silver, blank]\n")},
		"x/readme.txt":     {Data: []byte("ignored")},
	}

	lvls, err := NewLoader(fsys, "x").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(lvls) != 1 {
		t.Fatalf("expected 1 level, got %d", len(lvls))
	}

	l := lvls[0]
	if l.ID != "99_custom" || l.Name != "99_custom" {
		t.Errorf("ID/Name = %q/%q, expected 99_custom", l.ID, l.Name)
	}
	if l.Tiles[0][0] != TileGold || l.Tiles[1][0] != TileSilver {
		t.Errorf("unexpected tiles: %v", l.Tiles)
	}
	if l.Breakable() != 2 {
		t.Errorf("Breakable() = %d, expected 2 (red + silver)", l.Breakable())
	}
}

func TestDirLoaderAndEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := Dir(dir).LoadAll(); !errors.Is(err, ErrNoLevels) {
		t.Errorf("empty dir: err = %v, expected ErrNoLevels", err)
	}

	file := filepath.Join(dir, "one.lvl")
	if err := os.WriteFile(file, []byte(`{"tiles":[["pink"]]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	ids, err := Dir(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "one" {
		t.Errorf("ListIDs() = %v, expected [one]", ids)
	}

	l, err := LoadPath(file)
	if err != nil || l.Tiles[0][0] != TilePink {
		t.Errorf("LoadPath() = (%v, %v)", l.Tiles, err)
	}
}
