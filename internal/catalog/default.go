package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/failure_modes.json
var defaultFailureModes []byte

//go:embed data/categories.yaml
var defaultCategories []byte

// LoadDefault loads the embedded MASFT catalog with its category explanations.
func LoadDefault() (*Catalog, error) {
	descriptions, err := DefaultCategoryDescriptions()
	if err != nil {
		return nil, err
	}
	return Load(defaultFailureModes, WithCategoryDescriptions(descriptions))
}

// DefaultCategoryDescriptions returns the embedded category explanations.
func DefaultCategoryDescriptions() (map[string]string, error) {
	return ParseCategoryDescriptions(defaultCategories)
}

// ParseCategoryDescriptions decodes a YAML mapping of category name to explanation.
func ParseCategoryDescriptions(data []byte) (map[string]string, error) {
	descriptions := map[string]string{}
	if err := yaml.Unmarshal(data, &descriptions); err != nil {
		return nil, &LoadError{
			Code:    ErrCodeSyntax,
			Message: "invalid category descriptions",
			Err:     fmt.Errorf("parse category descriptions: %w", err),
		}
	}
	return descriptions, nil
}

// DefaultSource returns a copy of the embedded catalog source.
func DefaultSource() []byte {
	out := make([]byte, len(defaultFailureModes))
	copy(out, defaultFailureModes)
	return out
}
