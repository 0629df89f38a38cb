package mapping

import (
	"fmt"
	"strings"

	"fieldline/internal/common"
	"fieldline/internal/match"
	"fieldline/primitive"
)

// TransformFunc converts an extracted value before it is written.
type TransformFunc func(any) (any, error)

// Registry holds named transforms and provides lookup.
type Registry struct {
	transforms map[string]TransformFunc
}

// NewRegistry creates a registry holding the built-in transforms:
//   - upper, lower, trim: string case and whitespace
//   - text: textual form of any primitive value
func NewRegistry() *Registry {
	r := &Registry{transforms: make(map[string]TransformFunc)}

	r.Register("upper", stringTransform(strings.ToUpper))
	r.Register("lower", stringTransform(strings.ToLower))
	r.Register("trim", stringTransform(strings.TrimSpace))
	r.Register("text", func(v any) (any, error) { return primitive.Format(v) })

	return r
}

// Register adds or replaces a transform.
func (r *Registry) Register(name string, fn TransformFunc) *Registry {
	r.transforms[name] = fn
	return r
}

// Get returns a transform by name, or nil if not found.
func (r *Registry) Get(name string) TransformFunc {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names, sorted.
func (r *Registry) Names() []string {
	return common.SortedKeys(r.transforms)
}

// Suggest returns known transform names close to an unknown one, best first.
func (r *Registry) Suggest(name string) []string {
	return match.RankNames(name, r.Names()).
		AboveThreshold(match.DefaultSuggestThreshold).
		Top(3).
		Names()
}

func stringTransform(fn func(string) string) TransformFunc {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			text, err := primitive.Format(v)
			if err != nil {
				return nil, fmt.Errorf("not a string: %w", err)
			}

			s = text
		}

		return fn(s), nil
	}
}
