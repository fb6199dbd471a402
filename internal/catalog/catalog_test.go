package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if got := c.ResourceName("gold"); got != "Gold" {
		t.Errorf("expected Gold, got %q", got)
	}
	if got := c.ResourceName("mystery_goo"); got != "mystery_goo" {
		t.Errorf("unknown ids must fall back to the identifier, got %q", got)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ResourceName("grain") != "Grain" {
		t.Error("empty path must yield the default catalog")
	}
}

func TestLoadFileOverridesResources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := []byte("resources:\n  grain:\n    name: Rye\n    icon: \"*\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.ResourceName("grain"); got != "Rye" {
		t.Errorf("expected Rye, got %q", got)
	}
	if got := c.ResourceIcon("grain"); got != "*" {
		t.Errorf("expected *, got %q", got)
	}
	// The file replaced the resource set; defaults are gone.
	if got := c.ResourceName("gold"); got != "gold" {
		t.Errorf("expected identifier fallback, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
