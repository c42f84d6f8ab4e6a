package building

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawConfig mirrors Config with the dimensions left undecoded until the
// building type is known.
type rawConfig struct {
	Name       string            `yaml:"name"`
	Type       Type              `yaml:"type"`
	Dimensions yaml.Node         `yaml:"dimensions"`
	Parameters Parameters        `yaml:"parameters"`
	Openings   []Opening         `yaml:"openings"`
	Finishes   Finishes          `yaml:"finishes"`
	Metadata   map[string]string `yaml:"metadata"`
}

// UnmarshalYAML decodes a configuration, selecting the dimensions variant
// from the type field. Unknown types keep their tag so that the factory can
// report them; their dimensions are left nil.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*c = Config{
		Name:       raw.Name,
		Type:       raw.Type,
		Parameters: raw.Parameters,
		Openings:   raw.Openings,
		Finishes:   raw.Finishes,
		Metadata:   raw.Metadata,
	}

	if raw.Dimensions.Kind == 0 {
		return nil
	}
	dims, err := DecodeDimensions(raw.Type, &raw.Dimensions)
	if err != nil {
		return err
	}
	c.Dimensions = dims
	return nil
}

// DecodeDimensions decodes a YAML node into the variant of building type t.
// Without a type the variant is guessed from its distinctive key.
func DecodeDimensions(t Type, node *yaml.Node) (Dimensions, error) {
	if t == "" {
		t = guessType(node)
	}
	switch t {
	case TypeSloped:
		var d SlopedDimensions
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("decoding sloped dimensions: %w", err)
		}
		return d, nil
	case TypeCanopy:
		var d CanopyDimensions
		if err := node.Decode(&d); err != nil {
			return nil, fmt.Errorf("decoding canopy dimensions: %w", err)
		}
		return d, nil
	default:
		return nil, nil
	}
}

func guessType(node *yaml.Node) Type {
	if node.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case "height_wall":
			return TypeSloped
		case "clear_height":
			return TypeCanopy
		}
	}
	return ""
}
