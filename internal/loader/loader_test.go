package loader

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/modernzork/adventure-engine/pkg/adventure"
)

const validYAML = `
id: tiny
title: Tiny
author: tests
initial_location: room
intro_text: Hello.
locations:
  room:
    name: Room
    description: A room.
`

const validJSON = `{
  "id": "tiny-json",
  "title": "Also Tiny",
  "author": "tests",
  "initial_location": "room",
  "intro_text": "Hello.",
  "locations": {
    "room": {"name": "Room", "description": "A room."}
  }
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func builtinFactory() *adventure.Adventure {
	return &adventure.Adventure{
		ID:              "builtin",
		Title:           "Built In",
		Author:          "tests",
		InitialLocation: "room",
		IntroText:       "Hi.",
		Locations: map[string]*adventure.Location{
			"room": {Name: "Room", Description: "A room."},
		},
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid yaml", func(t *testing.T) {
		path := writeFile(t, dir, "tiny.yaml", validYAML)
		adv, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if adv.ID != "tiny" || adv.Locations["room"] == nil {
			t.Errorf("decoded = %+v", adv)
		}
	})

	t.Run("valid json", func(t *testing.T) {
		path := writeFile(t, dir, "tiny.json", validJSON)
		adv, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if adv.ID != "tiny-json" {
			t.Errorf("decoded = %+v", adv)
		}
	})

	t.Run("unknown yaml field rejected", func(t *testing.T) {
		path := writeFile(t, dir, "typo.yaml", validYAML+"\nintro_txt: typo\n")
		if _, err := LoadFile(path); err == nil {
			t.Error("unknown field accepted")
		}
	})

	t.Run("unknown json field rejected", func(t *testing.T) {
		bad := `{"id":"x","title":"X","author":"y","initial_location":"room",
			"intro_text":"Hi.","bogus_field":true,
			"locations":{"room":{"name":"Room","description":"A room."}}}`
		path := writeFile(t, dir, "typo.json", bad)
		if _, err := LoadFile(path); err == nil {
			t.Error("unknown field accepted")
		}
	})

	t.Run("invalid world rejected", func(t *testing.T) {
		bad := `
id: broken
title: Broken
author: tests
initial_location: nowhere
intro_text: Hello.
locations:
  room:
    name: Room
    description: A room.
`
		path := writeFile(t, dir, "broken.yaml", bad)
		if _, err := LoadFile(path); err == nil {
			t.Error("invalid world accepted")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("missing file accepted")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "adventure.txt", "not an adventure")
		if _, err := LoadFile(path); err == nil {
			t.Error("unsupported extension accepted")
		}
	})
}

func TestLoaderListAndFactory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.yaml", validYAML)
	writeFile(t, dir, "broken.yaml", "id: broken\n") // Invalid, skipped

	l := New(dir, discardLogger())
	if err := l.Register(builtinFactory); err != nil {
		t.Fatalf("Register: %v", err)
	}

	infos := l.List()
	if len(infos) != 2 {
		t.Fatalf("List = %+v, want builtin + tiny", infos)
	}
	// Built-ins come first.
	if infos[0].ID != "builtin" || infos[1].ID != "tiny" {
		t.Errorf("List order = %+v", infos)
	}
	if infos[0].Path != "" || infos[1].Path == "" {
		t.Errorf("Path fields = %+v", infos)
	}

	f, err := l.Factory("tiny")
	if err != nil {
		t.Fatalf("Factory: %v", err)
	}
	adv := f()
	if adv == nil || adv.ID != "tiny" {
		t.Fatalf("factory produced %+v", adv)
	}

	// Each invocation is a pristine copy.
	adv.Locations["room"].Name = "Mutated"
	again := f()
	if again.Locations["room"].Name != "Room" {
		t.Error("file factory leaked mutations between playthroughs")
	}

	if _, err := l.Factory("missing"); err == nil {
		t.Error("unknown adventure id accepted")
	}
}

func TestLoaderBuiltinShadowsFile(t *testing.T) {
	dir := t.TempDir()
	shadowed := `
id: builtin
title: Impostor
author: tests
initial_location: room
intro_text: Hello.
locations:
  room:
    name: Room
    description: A room.
`
	writeFile(t, dir, "impostor.yaml", shadowed)

	l := New(dir, discardLogger())
	if err := l.Register(builtinFactory); err != nil {
		t.Fatal(err)
	}

	infos := l.List()
	if len(infos) != 1 {
		t.Fatalf("List = %+v", infos)
	}
	if infos[0].Title != "Built In" {
		t.Errorf("file shadowed the built-in: %+v", infos[0])
	}
}

func TestLoaderEmptyDataDir(t *testing.T) {
	l := New("", discardLogger())
	if err := l.Register(builtinFactory); err != nil {
		t.Fatal(err)
	}
	if infos := l.List(); len(infos) != 1 {
		t.Errorf("List = %+v", infos)
	}
}

func TestLoaderRegisterInvalid(t *testing.T) {
	l := New("", discardLogger())
	err := l.Register(func() *adventure.Adventure {
		return &adventure.Adventure{ID: "bad"}
	})
	if err == nil {
		t.Error("invalid built-in accepted")
	}

	err = l.Register(func() *adventure.Adventure { return nil })
	if err == nil {
		t.Error("nil built-in accepted")
	}
}

// TestBundledAdventureFiles validates every adventure file shipped in the
// repository's data directory.
func TestBundledAdventureFiles(t *testing.T) {
	dir := filepath.Join("..", "..", "data", "adventures")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Skipf("data directory not present: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			adv, err := LoadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				t.Fatalf("bundled adventure invalid: %v", err)
			}
			if adv.VictoryCondition == nil {
				t.Error("bundled adventure has no victory condition")
			}
		})
	}
}
