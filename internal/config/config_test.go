package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Programs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("programs:\n  DETOX: DTX\n  SUD-PHP: PHP\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Programs) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(c.Programs))
	}
	if c.Programs["DETOX"] != "DTX" {
		t.Errorf("unexpected mapping for DETOX: %q", c.Programs["DETOX"])
	}
}

func TestLoadFromFile_EmptyKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("programs: {}\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	c.ApplyDefaults()
	if c.Programs["SUD-PHP"] != "PHP" {
		t.Errorf("default program table not applied: %v", c.Programs)
	}
	if len(c.Letterhead) != 5 {
		t.Errorf("expected 5 default letterhead lines, got %d", len(c.Letterhead))
	}
}

func TestLoadFromFile_Letterhead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("letterhead:\n  - Acme Recovery\n  - 1 Main St\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	c.ApplyDefaults()
	if len(c.Letterhead) != 2 || c.Letterhead[0] != "Acme Recovery" {
		t.Errorf("unexpected letterhead: %v", c.Letterhead)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_TargetPairs(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		month   int
		year    int
		wantErr bool
	}{
		{"both zero derives later", 0, 0, false},
		{"valid pair", 3, 2025, false},
		{"month only", 3, 0, true},
		{"year only", 0, 2025, true},
		{"month out of range", 13, 2025, true},
		{"year not 4-digit", 3, 25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{InputDir: dir, Month: tt.month, Year: tt.year}
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_InputDir(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing --input")
	}
	c.InputDir = "/nonexistent/dir"
	if err := c.Validate(); err == nil {
		t.Error("expected error for inaccessible input dir")
	}
}
