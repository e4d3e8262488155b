package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/model"
)

func TestValidateConfig(t *testing.T) {
	valid := model.Config{DataDir: "/data", Months: 6, PageSize: 5}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]model.Config{
		"empty dir":      {DataDir: " ", Months: 6, PageSize: 5},
		"zero months":    {DataDir: "/data", Months: 0, PageSize: 5},
		"too many month": {DataDir: "/data", Months: 13, PageSize: 5},
		"zero page":      {DataDir: "/data", Months: 6, PageSize: 0},
	}
	for name, cfg := range cases {
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDefaultConfigTemplateLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if _, err := config.LoadConfig(path); err != nil {
		t.Fatalf("template should load: %v", err)
	}
}

func TestDefaultConfigTemplateUncommentedLoads(t *testing.T) {
	var lines []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		lines = append(lines, line)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("uncommented template should load: %v", err)
	}
	if cfg.Filter.Months == nil || *cfg.Filter.Months != defaultMonths {
		t.Fatalf("expected months %d, got %v", defaultMonths, cfg.Filter.Months)
	}
	if _, err := cfg.CityFiles("/data"); err != nil {
		t.Fatalf("city files: %v", err)
	}
}

func TestCitiesCmdReportsFileStatus(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte("Start Time,Trip Duration\n"), 0o644); err != nil {
		t.Fatalf("write trips: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cities", "--data-dir", dir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cities: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected one line per city, got %q", out.String())
	}
	want := []struct{ status, file string }{
		{"ok", "chicago.csv"},
		{"missing", "new_york_city.csv"},
		{"missing", "washington.csv"},
	}
	for i, w := range want {
		fields := strings.Fields(lines[i])
		if len(fields) < 2 || fields[len(fields)-2] != w.status || fields[len(fields)-1] != filepath.Join(dir, w.file) {
			t.Fatalf("line %d: got %q, want status %s for %s", i, lines[i], w.status, w.file)
		}
	}
}
