// Package loader discovers adventures: built-in Go-authored ones
// registered at startup, and data-only adventure files (JSON or YAML)
// found under the data directory. Every adventure is validated before it
// is offered; invalid files are skipped with a logged warning, never
// partially loaded.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modernzork/adventure-engine/pkg/adventure"
)

// Factory builds a pristine copy of an adventure. File-backed factories
// re-read and re-decode the file so world mutations from a previous
// playthrough never leak into the next.
type Factory func() *adventure.Adventure

// Info is a directory listing entry.
type Info struct {
	ID     string
	Title  string
	Author string
	Path   string // Empty for built-in adventures
}

// Loader aggregates built-in and file-based adventures.
type Loader struct {
	dataDir  string
	logger   *slog.Logger
	builtins map[string]Info
	factory  map[string]Factory
}

// New creates a loader. dataDir may be empty to disable file scanning.
func New(dataDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		dataDir:  dataDir,
		logger:   logger,
		builtins: make(map[string]Info),
		factory:  make(map[string]Factory),
	}
}

// Register adds a built-in adventure. The factory is invoked once to
// validate and read metadata; invalid adventures are rejected.
func (l *Loader) Register(factory Factory) error {
	adv := factory()
	if adv == nil {
		return fmt.Errorf("adventure factory returned nil")
	}
	if err := adv.Validate(); err != nil {
		return err
	}
	l.builtins[adv.ID] = Info{ID: adv.ID, Title: adv.Title, Author: adv.Author}
	l.factory[adv.ID] = factory
	return nil
}

// List returns all valid adventures, built-ins first, then file-based
// ones sorted by title. File adventures shadowed by a built-in with the
// same ID are skipped.
func (l *Loader) List() []Info {
	var out []Info
	for _, info := range l.builtins {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })

	files := l.scan()
	sort.Slice(files, func(i, j int) bool { return files[i].Title < files[j].Title })
	out = append(out, files...)
	return out
}

// Factory returns a pristine-world factory for an adventure ID, checking
// built-ins first, then the data directory.
func (l *Loader) Factory(id string) (Factory, error) {
	if f, ok := l.factory[id]; ok {
		return f, nil
	}
	for _, info := range l.scan() {
		if info.ID != id {
			continue
		}
		path := info.Path
		return func() *adventure.Adventure {
			adv, err := LoadFile(path)
			if err != nil {
				l.logger.Error("failed to reload adventure file", "path", path, "error", err)
				return nil
			}
			return adv
		}, nil
	}
	return nil, fmt.Errorf("adventure %q not found", id)
}

// scan walks the data directory for adventure files, validating each.
func (l *Loader) scan() []Info {
	if l.dataDir == "" {
		return nil
	}

	var out []Info
	err := filepath.WalkDir(l.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			return nil
		}

		adv, err := LoadFile(path)
		if err != nil {
			l.logger.Warn("skipping invalid adventure file", "path", path, "error", err)
			return nil
		}
		if _, shadowed := l.builtins[adv.ID]; shadowed {
			l.logger.Warn("adventure file shadowed by built-in, skipping", "path", path, "id", adv.ID)
			return nil
		}
		out = append(out, Info{ID: adv.ID, Title: adv.Title, Author: adv.Author, Path: path})
		return nil
	})
	if err != nil {
		l.logger.Warn("failed to walk data directory", "dir", l.dataDir, "error", err)
	}
	return out
}

// LoadFile reads, strictly decodes and validates one adventure file.
// Unknown fields are an error so author typos surface at load time
// instead of silently dropping behavior.
func LoadFile(path string) (*adventure.Adventure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read adventure file: %w", err)
	}

	var adv adventure.Adventure
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&adv); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&adv); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported adventure file extension: %s", path)
	}

	if err := adv.Validate(); err != nil {
		return nil, err
	}
	return &adv, nil
}
