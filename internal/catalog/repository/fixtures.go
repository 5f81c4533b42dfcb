package repository

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/products.yaml
var fixturesYAML []byte

type fixtureFile struct {
	Products []Product `yaml:"products"`
}

// LoadFixtures parses the embedded product fixtures.
func LoadFixtures() ([]Product, error) {
	return ParseFixtures(fixturesYAML)
}

// ParseFixtures parses a YAML document with a top-level products list.
func ParseFixtures(data []byte) ([]Product, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog fixtures: %w", err)
	}
	for i, p := range file.Products {
		if p.Title == "" {
			return nil, fmt.Errorf("parse catalog fixtures: product %d has no title", i)
		}
		if p.PriceCents < 0 {
			return nil, fmt.Errorf("parse catalog fixtures: product %q has a negative price", p.Title)
		}
	}
	return file.Products, nil
}
