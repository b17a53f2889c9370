package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sky-fighter/engine"
)

// DefaultPath is the override file looked up in the working directory
const DefaultPath = "levels.yaml"

//go:embed levels.yaml
var embeddedLevels []byte

// LoadAuto loads the catalog with priority: customPath > DefaultPath > embedded
func LoadAuto(customPath string) (*Catalog, error) {
	return loadAuto(customPath, DefaultPath)
}

func loadAuto(customPath, defaultPath string) (*Catalog, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Priority 2: Default external file
	if fileExists(defaultPath) {
		return LoadFile(defaultPath)
	}

	// Priority 3: Embedded fallback
	return Parse(embeddedLevels)
}

// LoadFile reads and parses a catalog file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels from %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("levels: loaded %d from %s", len(cat.Levels), path)
	return cat, nil
}

// Embedded parses the built-in catalog
func Embedded() (*Catalog, error) {
	return Parse(embeddedLevels)
}

// Parse decodes and validates a catalog, unknown keys are rejected
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidConfig, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks ids are unique and the first level exists
func (c *Catalog) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", engine.ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Levels))
	for i := range c.Levels {
		d := &c.Levels[i]
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateLevel, d.ID)
		}
		seen[d.ID] = true
	}

	if c.First == "" {
		c.First = c.Levels[0].ID
	}
	if !seen[c.First] {
		return fmt.Errorf("%w: first level %s", ErrUnknownLevel, c.First)
	}

	// Dangling next ids are reported when the transition happens
	for _, d := range c.Levels {
		if d.Next != "" && !seen[d.Next] {
			log.Printf("levels: %s names unknown next level %s", d.ID, d.Next)
		}
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
