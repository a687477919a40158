package note

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the vault directory relative to the user's home.
var DefaultDir = filepath.Join("ObsidianVault", "Papers")

// Vault is a directory of notes.
type Vault struct {
	Dir string
}

// NewVault creates a Vault in dir, or in DefaultDir under the user's home
// if dir is empty. The directory itself is created on the first Save.
func NewVault(dir string) (*Vault, error) {
	if dir != "" {
		return &Vault{Dir: dir}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}

	return &Vault{Dir: filepath.Join(home, DefaultDir)}, nil
}

// Save writes the note under name, replacing an existing one.
// Returns the path of the written file.
func (v *Vault) Save(name, content string) (string, error) {
	if err := os.MkdirAll(v.Dir, 0o755); err != nil {
		return "", fmt.Errorf("make vault dir %s: %w", v.Dir, err)
	}

	path := filepath.Join(v.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write note %s: %w", path, err)
	}

	return path, nil
}

// Existing returns the front matter of the note stored under name.
// Returns false if there is no such note or it has no readable front matter.
func (v *Vault) Existing(name string) (Meta, bool) {
	bts, err := os.ReadFile(filepath.Join(v.Dir, name))
	if err != nil {
		return Meta{}, false
	}

	m, err := ReadMeta(string(bts))
	if err != nil {
		return Meta{}, false
	}

	return m, true
}
