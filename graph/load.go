package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// graphFile is the on-disk graph schema.
type graphFile struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Load reads a graph data file (JSON or YAML by extension) and builds a
// validated immutable snapshot. The snapshot is only rebuilt on restart.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}

	var gf graphFile
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &gf); err != nil {
			return nil, fmt.Errorf("parsing graph JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &gf); err != nil {
			return nil, fmt.Errorf("parsing graph YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported graph file extension %q", ext)
	}

	g, err := New(gf.Nodes, gf.Edges)
	if err != nil {
		return nil, fmt.Errorf("validating graph %s: %w", path, err)
	}
	return g, nil
}
