package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// BuildConfig is the on-disk build manifest (co.toml) a project root may
// carry. Grounded on the teacher's project manifest (ModuleManifest), scoped
// down from multi-module dependency mapping — out of scope for a
// single-package codegen core — to three keys. cmd/cogen copies IntWidth into
// the BuildContext, but the type interner does not read it (int and uint
// always lower to 64-bit integers). Package and NoCache are decoded but not
// read by any build step.
type BuildConfig struct {
	Package  string `toml:"package"`
	IntWidth int    `toml:"int_width"`
	NoCache  bool   `toml:"no_cache"`
}

// DefaultBuildConfig returns the configuration used when no co.toml is
// found.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{IntWidth: DefaultIntWidth}
}

// LoadBuildConfig decodes a co.toml manifest from path.
func LoadBuildConfig(path string) (BuildConfig, error) {
	cfg := DefaultBuildConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load build config %s: %w", path, err)
	}
	if cfg.IntWidth == 0 {
		cfg.IntWidth = DefaultIntWidth
	}
	return cfg, nil
}

// FindBuildConfig walks upward from dir looking for a co.toml manifest,
// returning its path or "" if none is found before reaching the
// filesystem root.
func FindBuildConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "co.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
