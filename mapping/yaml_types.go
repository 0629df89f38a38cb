package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a single name or a sequence of names. An empty
// scalar or null decodes to an empty list.
func (s *StringOrArray) UnmarshalYAML(value *yaml.Node) error {
	var names []string

	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!null" && value.Value != "" {
			names = []string{value.Value}
		}
	case yaml.SequenceNode:
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
	default:
		return fmt.Errorf("line %d: expected string or array of strings", value.Line)
	}

	*s = names

	return nil
}

// MarshalYAML writes a single name as a scalar.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty reports whether no name is listed.
func (s StringOrArray) IsEmpty() bool { return len(s) == 0 }
