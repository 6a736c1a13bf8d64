package mesh

import (
	"fmt"
	"os"

	"gonavquery/navmesh"
)

// LoadFromFile reads and decodes a serialized navmesh data file.
func LoadFromFile(path string) (*navmesh.NavMeshData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read navmesh %s: %w", path, err)
	}
	data := &navmesh.NavMeshData{}
	if err := data.FromBin(raw); err != nil {
		return nil, fmt.Errorf("decode navmesh %s: %w", path, err)
	}
	return data, nil
}

// SaveToFile encodes data and writes it to path.
func SaveToFile(path string, data *navmesh.NavMeshData) error {
	if err := os.WriteFile(path, data.ToBin(), 0o644); err != nil {
		return fmt.Errorf("write navmesh %s: %w", path, err)
	}
	return nil
}
