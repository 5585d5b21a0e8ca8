package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

const ext = ".json"

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidName checks that name is one or more ASCII letters or digits.
func ValidName(name string) error {
	if !namePattern.MatchString(name) {
		return chesserrors.Wrapf(chesserrors.ErrInvalidName, "%q: use letters and digits only", name)
	}
	return nil
}

// NewName returns a fresh valid save name.
func NewName() string {
	return "game" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Dir is a directory of saved games, one <name>.json file each.
type Dir struct {
	path string
}

// NewDir returns the store rooted at path. The directory is created on the first Save.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the file a save name maps to.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.path, name+ext)
}

// Save writes g under name, replacing any save of that name.
func (d *Dir) Save(name string, g *chess.Game) error {
	if err := ValidName(name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(FromGame(g), "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", d.path)
	}

	// Write to a temporary file first so a failed save never truncates an old one.
	tmp, err := os.CreateTemp(d.path, name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "saving %s", name)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	return errors.Wrapf(os.Rename(tmp.Name(), d.Path(name)), "saving %s", name)
}

// Load reads and validates the save called name.
func (d *Dir) Load(name string) (*chess.Game, error) {
	if err := ValidName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.Path(name))
	if os.IsNotExist(err) {
		return nil, chesserrors.Wrapf(chesserrors.ErrSaveNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, "%s: %v", name, err)
	}
	g, err := s.Game()
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	return g, nil
}

// Exists reports whether a save called name exists.
func (d *Dir) Exists(name string) bool {
	if ValidName(name) != nil {
		return false
	}
	info, err := os.Stat(d.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// List returns the names of all saves in sorted order. A missing directory
// holds no saves.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", d.path)
	}

	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ext)
		if e.Type().IsRegular() && name != e.Name() && namePattern.MatchString(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
