package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func localName(name string) string {
	dir := filepath.Dir(name)
	base := filepath.Base(name)

	idx := strings.LastIndexByte(base, '.')
	if idx < 0 {
		return filepath.Join(dir, base+".local")
	}
	return filepath.Join(dir, fmt.Sprintf("%s.local.%s", base[:idx], base[idx+1:]))
}

// reads and decodes a single json5 file, reporting whether it existed
func readFile[T any](path string, out *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// ReadConfig reads a json5 configuration file. `name` should come with a
// file extension; a sibling `<name>.local.<ext>` is merged on top of it
// when present so machine-specific overrides stay out of version control.
// Returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T

	found, err := readFile(name, &out)
	if err != nil {
		return out, err
	}

	local := localName(name)
	var override T
	foundLocal, err := readFile(local, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", local)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig but it recursively goes up the filesystem until the root
// to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return zero, os.ErrNotExist
		}
		current = parent
	}
}
