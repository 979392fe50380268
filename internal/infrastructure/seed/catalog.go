// Package seed loads the product catalog seed file.
package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogEntry is one product in configs/products.yaml.
type CatalogEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Active      *bool  `yaml:"active"`
}

// IsActive defaults to true when the file omits the flag.
func (e CatalogEntry) IsActive() bool {
	return e.Active == nil || *e.Active
}

type catalogFile struct {
	Products []CatalogEntry `yaml:"products"`
}

func LoadCatalogFile(path string) ([]CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return LoadCatalog(bytes.NewReader(data))
}

// LoadCatalog rejects unknown keys and duplicate ids.
func LoadCatalog(r io.Reader) ([]CatalogEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Products))
	for i, p := range file.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return file.Products, nil
}
