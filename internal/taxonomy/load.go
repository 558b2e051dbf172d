package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/careernexus/career-engine/internal/schemas"
)

//go:embed taxonomy.schema.json
var overrideSchema []byte

// LoadFile builds a Taxonomy from a JSON override file. The document is
// validated against the taxonomy schema before construction, so a malformed
// override is a startup error rather than a silently empty catalog.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read override %s: %w", path, err)
	}

	if err := schemas.Validate(overrideSchema, data); err != nil {
		return nil, fmt.Errorf("taxonomy: override %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("taxonomy: parse override %s: %w", path, err)
	}

	return New(cfg)
}

// Load returns the taxonomy for the given override path, or the compiled-in
// defaults when the path is empty.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
