package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, projectDir, body string) {
	t.Helper()
	gardenDir := filepath.Join(projectDir, GardenDir)
	if err := os.MkdirAll(gardenDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(gardenDir, "config.yaml"), []byte(strings.TrimSpace(body)), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := Load(projectDir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if c.Interface() != InterfacePrompt {
		t.Fatalf("expected prompt interface, got %q", c.Interface())
	}
	if c.LogbookPath() != "" {
		t.Fatalf("logbook must be disabled by default, got %q", c.LogbookPath())
	}
	if _, err := os.Stat(filepath.Join(projectDir, GardenDir)); !os.IsNotExist(err) {
		t.Fatalf("Load must not create %s", GardenDir)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
version: 1
interface: " Picker "
logbook:
  enabled: true
`)
	c, err := Load(projectDir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Interface() != InterfacePicker {
		t.Fatalf("expected picker interface, got %q", c.Interface())
	}
	want := filepath.Join(projectDir, GardenDir, "logs", "session.log")
	if c.LogbookPath() != want {
		t.Fatalf("logbook path = %s, want %s", c.LogbookPath(), want)
	}
}

func TestLoadKeepsAbsoluteLogbookPath(t *testing.T) {
	projectDir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "garden.log")
	writeConfig(t, projectDir, "logbook:\n  enabled: true\n  path: "+abs+"\n")
	c, err := Load(projectDir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.LogbookPath() != abs {
		t.Fatalf("logbook path = %s, want %s", c.LogbookPath(), abs)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"interface": "interface: web\n",
		"version":   "version: -1\n",
		"syntax":    "interface: [prompt\n",
	}
	for name, body := range cases {
		projectDir := t.TempDir()
		writeConfig(t, projectDir, body)
		if _, err := Load(projectDir); err == nil {
			t.Fatalf("%s: expected validation error but got none", name)
		}
	}
}
