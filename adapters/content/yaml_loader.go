package content

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/i-shreyansh/portfolio/pkg/logger"
)

// Load returns the built-in catalog when path is empty, otherwise the
// catalog described by the YAML file at path.
func Load(path string, log logger.Logger) (*Catalog, error) {
	if path == "" {
		log.Info("Using built-in portfolio content")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}

	log.Info("Loaded portfolio content",
		zap.String("path", path),
		zap.Int("experience", len(c.Experience)),
		zap.Int("projects", len(c.Projects)),
	)
	return c, nil
}

// Parse decodes a YAML catalog and validates it. Unknown keys are
// rejected so typos do not silently drop content.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
