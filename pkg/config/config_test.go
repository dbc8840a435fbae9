package config

import (
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	is.NoErr(err)
	is.Equal(cfg.ServerURL, DefaultServerURL)
}

func TestSaveThenLoad(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "nested", "config.json")
	is.NoErr(Save(path, &Config{ServerURL: "http://tasks.local:8080"}))

	cfg, err := LoadFrom(path)
	is.NoErr(err)
	is.Equal(cfg.ServerURL, "http://tasks.local:8080")
}
