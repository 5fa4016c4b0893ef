package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Prefs is a small key/value settings file in YAML.
// Every write replaces the file atomically and is synced before returning.
type Prefs struct {
	mu   sync.Mutex
	path string
}

// OpenPrefs prepares a preferences file at path. The file itself is created
// on the first write.
func OpenPrefs(path string) (*Prefs, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &Prefs{path: path}, nil
}

// Int returns the value stored under key, or 0 if it is not set.
func (p *Prefs) Int(key string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.load()
	if err != nil {
		return 0, err
	}
	return values[key], nil
}

// setInt stores value under key.
func (p *Prefs) setInt(key string, value int) error {
	return p.update(func(values map[string]int) bool {
		values[key] = value
		return true
	})
}

// HighScore returns the stored best score.
func (p *Prefs) HighScore() (int, error) {
	return p.Int(HighScoreKey)
}

// SetHighScoreIfGreater stores score if it beats the stored best.
func (p *Prefs) SetHighScoreIfGreater(score int) error {
	return p.update(func(values map[string]int) bool {
		if score <= values[HighScoreKey] {
			return false
		}
		values[HighScoreKey] = score
		return true
	})
}

// update applies fn to the stored values under the lock and saves them when
// fn reports a change.
func (p *Prefs) update(fn func(values map[string]int) bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.load()
	if err != nil {
		return err
	}
	if !fn(values) {
		return nil
	}
	return p.save(values)
}

var _ flappy.HighScoreStore = (*Prefs)(nil)

func (p *Prefs) load() (map[string]int, error) {
	values := make(map[string]int)

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read prefs: %w", err)
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("storage: cannot parse prefs %s: %w", p.path, err)
	}
	if values == nil {
		values = make(map[string]int)
	}
	return values, nil
}

func (p *Prefs) save(values map[string]int) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("storage: cannot encode prefs: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.path), ".prefs-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write prefs: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot sync prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("storage: cannot replace prefs: %w", err)
	}
	return syncDir(filepath.Dir(p.path))
}

// syncDir flushes a directory so a rename inside it survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("storage: cannot open %s: %w", dir, err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("storage: cannot sync %s: %w", dir, err)
	}
	return nil
}
