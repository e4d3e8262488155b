// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Data   DataConfig        `toml:"data"`
	Cities map[string]string `toml:"cities"`
	Filter FilterConfig      `toml:"filter"`
	Pager  PagerConfig       `toml:"pager"`
}

// DataConfig maps dataset location settings.
type DataConfig struct {
	Dir *string `toml:"dir"`
}

// FilterConfig maps filter-related settings.
type FilterConfig struct {
	Months *int `toml:"months"`
}

// PagerConfig maps raw record pager settings.
type PagerConfig struct {
	PageSize *int `toml:"page-size"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return FileConfig{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// DefaultCityFiles returns the file name used for each city when the config does not override it.
func DefaultCityFiles() map[model.City]string {
	return map[model.City]string{
		model.Chicago:    "chicago.csv",
		model.NewYork:    "new_york_city.csv",
		model.Washington: "washington.csv",
	}
}

// CityFiles merges configured city files over the defaults and resolves
// relative paths against dataDir.
func (c FileConfig) CityFiles(dataDir string) (map[model.City]string, error) {
	files := DefaultCityFiles()
	names := make([]string, 0, len(c.Cities))
	for name := range c.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		city := model.City(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := files[city]; !ok {
			return nil, fmt.Errorf("unknown city %q in config", name)
		}
		path := strings.TrimSpace(c.Cities[name])
		if path == "" {
			return nil, fmt.Errorf("empty file for city %q in config", name)
		}
		files[city] = path
	}
	for city, path := range files {
		if !filepath.IsAbs(path) {
			files[city] = filepath.Join(dataDir, path)
		}
	}
	return files, nil
}
