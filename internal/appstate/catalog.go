package appstate

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// ParseCatalog reads a demo catalog document.
func ParseCatalog(raw []byte) ([]Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	seen := make(map[string]bool, len(f.Products))
	for _, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product %q has no id", ErrInvalidCatalog, p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = true
	}
	return f.Products, nil
}

// DefaultCatalog is the embedded demo catalog.
func DefaultCatalog() []Product {
	products, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return products
}
