package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a censusgen run.
type Config struct {
	InputDir  string
	OutputDir string
	Month     int    // 1-12; 0 means "derive from the first input file"
	Year      int    // 4-digit; 0 means "derive from the first input file"
	LogFormat string // "text" or "json"

	// Programs maps attendance-sheet program labels to the display codes used
	// in the census grid. Unknown labels pass through verbatim.
	Programs map[string]string `yaml:"programs"`
	// Letterhead is the static block written to the top of the census sheet,
	// one line per row. The first line is rendered as the organization name.
	Letterhead []string `yaml:"letterhead"`
}

// defaultPrograms is the compiled-in program label → display code table.
// Most codes pass through unchanged; the SUD-/MH- prefixed labels collapse to
// their billing codes.
var defaultPrograms = map[string]string{
	"SUD-PHP": "PHP",
	"SUD-OP":  "OP",
	"MH-PHP":  "MHPHP",
	"MH-IOP":  "MHIOP",
	"PHP":     "PHP",
	"IOP":     "IOP",
	"OP":      "OP",
	"MHPHP":   "MHPHP",
	"MHIOP":   "MHIOP",
}

// defaultLetterhead matches the facility block the billing team expects.
var defaultLetterhead = []string{
	"Glass House Recovery LLC",
	"8318 Forrest st STE 100",
	"Ellicott City, MD 21043-5148",
	"Medical Director: Tetyana Evans CRNP",
	"Clinical Director: Allison Moberly, LCPC",
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Programs   map[string]string `yaml:"programs"`
	Letterhead []string          `yaml:"letterhead"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Absent keys keep their compiled-in defaults.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(yc.Programs) > 0 {
		c.Programs = yc.Programs
	}
	if len(yc.Letterhead) > 0 {
		c.Letterhead = yc.Letterhead
	}
	return nil
}

// ApplyDefaults fills the program table and letterhead when no config file
// (or an empty one) was given.
func (c *Config) ApplyDefaults() {
	if len(c.Programs) == 0 {
		c.Programs = defaultPrograms
	}
	if len(c.Letterhead) == 0 {
		c.Letterhead = defaultLetterhead
	}
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("--input is required")
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("input directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %s is not a directory", c.InputDir)
	}
	return c.validateTarget()
}

// validateTarget checks the month/year pair. Both zero is allowed (derived
// from the first input file later); a partial pair is not.
func (c *Config) validateTarget() error {
	if c.Month == 0 && c.Year == 0 {
		return nil
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", c.Month)
	}
	if c.Year < 1000 || c.Year > 9999 {
		return fmt.Errorf("year must be 4-digit, got %d", c.Year)
	}
	return nil
}
