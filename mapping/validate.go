package mapping

import (
	"fieldline/field"
	"fieldline/internal/common"
	"fieldline/internal/diagnostic"
	"fieldline/internal/match"
)

// Validate validates a mapping file against the transforms of registry. A nil
// registry stands for NewRegistry(). This is a structural validation step
// only; source types are resolved when pipelines run.
func Validate(mf *File, registry *Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.Errorf(diagnostic.Location{}, "mapping_is_nil", "mapping file is nil")
		return res
	}

	if registry == nil {
		registry = NewRegistry()
	}

	style, ok := field.ParseStyle(mf.Naming)
	if !ok {
		res.Errorf(diagnostic.Location{}, "invalid_naming", "unknown naming style %q", mf.Naming)
		res.Suggest(match.RankNames(mf.Naming, styleNames).AboveThreshold(match.DefaultSuggestThreshold).Top(1).Names()...)
	}

	names := make([]string, 0, len(mf.Mappings))

	for i := range mf.Mappings {
		m := &mf.Mappings[i]
		if m.Name == "" {
			res.Errorf(diagnostic.Location{}, "missing_name", "mapping #%d has no name", i+1)
			continue
		}

		names = append(names, m.Name)

		if len(m.OneToOne) == 0 && len(m.Fields) == 0 {
			res.Warnf(diagnostic.At(m.Name, ""), "empty_mapping", "mapping has no fields and produces empty targets")
		}

		v := validator{res: res, registry: registry, style: style, mapping: m.Name}
		v.level("", m.expanded())
	}

	for _, dup := range common.Duplicates(names) {
		res.Errorf(diagnostic.At(dup, ""), "duplicate_mapping", "duplicate mapping %q", dup)
	}

	return res
}

var styleNames = []string{"same", "camel", "pascal", "snake", "kebab"}

type validator struct {
	res      *diagnostic.Diagnostics
	registry *Registry
	style    field.Style
	mapping  string
}

// level validates sibling fields writing into the same map.
func (v *validator) level(prefix string, fields []FieldMapping) {
	targets := make([]string, 0, len(fields))

	for i := range fields {
		fm := &fields[i]
		v.field(prefix, fm)

		if name := fm.TargetName(v.style); name != "" {
			targets = append(targets, name)
		}
	}

	for _, dup := range common.Duplicates(targets) {
		v.res.Errorf(v.at(prefix), "duplicate_target", "target %q written more than once", dup)
	}
}

func (v *validator) field(prefix string, fm *FieldMapping) {
	where := joinPath(prefix, fm.Source)

	if fm.Source == "" {
		v.res.Errorf(v.at(prefix), "missing_source", "field mapping must specify source")
		return
	}

	fp, err := ParsePath(fm.Source)
	if err != nil {
		v.res.Errorf(v.at(where), "invalid_source_path", "invalid source path: %v", err)
		return
	}

	if fp.SliceCount() > 1 {
		v.res.Errorf(v.at(where), "nested_slice", "at most one [] segment is supported per path")
	}

	for _, name := range fm.Transform {
		if v.registry.Has(name) {
			continue
		}

		v.res.Errorf(v.at(where), "unknown_transform", "unknown transform %q", name)
		v.res.Suggest(v.registry.Suggest(name)...)
	}

	if len(fm.Fields) == 0 {
		return
	}

	if !fm.Transform.IsEmpty() || fm.OmitEmpty || fm.Default != nil {
		v.res.Errorf(v.at(where), "leaf_option_on_object",
			"transform, default and omit_empty apply to leaf values, not to mappings with fields")
	}

	v.level(where, fm.Fields)
}

func (v *validator) at(path string) diagnostic.Location {
	return diagnostic.At(v.mapping, path)
}

func joinPath(prefix, source string) string {
	if prefix == "" {
		return source
	}

	return prefix + "." + source
}
