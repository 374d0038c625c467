package dictionary

import (
	"fmt"
	"io/fs"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
)

// NewCUESource returns a Source reading .cue files from fsys.
//
// Each file is compiled on its own, so files need no package clause:
//
//	"en-GB": faker: address: {
//		city_suffix: ["ford", "ton", "bury"]
//	}
func NewCUESource(fsys fs.FS) Source {
	return &fsSource{
		fsys:   fsys,
		exts:   []string{".cue"},
		decode: decodeCUE,
	}
}

func decodeCUE(origin, locale string, data []byte) (Fragment, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(origin))
	if err := v.Err(); err != nil {
		return Fragment{}, err
	}

	roots, err := fieldValues(v)
	if err != nil {
		return Fragment{}, err
	}
	if len(roots) != 1 {
		return Fragment{}, shapeError("expected exactly one root locale entry")
	}
	if err := checkRoot(roots[0].label, locale); err != nil {
		return Fragment{}, err
	}

	faker := roots[0].value.LookupPath(cue.ParsePath("faker"))
	if !faker.Exists() || faker.Kind() != cue.StructKind {
		return Fragment{}, shapeError(`missing "faker" mapping`)
	}

	categories, err := fieldValues(faker)
	if err != nil {
		return Fragment{}, err
	}

	var f Fragment
	for _, cat := range categories {
		if cat.value.Kind() != cue.StructKind {
			return Fragment{}, fmt.Errorf("category %q: expected a struct, got %v", cat.label, cat.value.Kind())
		}
		entries, err := fieldValues(cat.value)
		if err != nil {
			return Fragment{}, fmt.Errorf("category %q: %w", cat.label, err)
		}

		c := NewCategory(cat.label)
		for _, e := range entries {
			if e.value.Kind() == cue.NullKind {
				continue
			}
			rv, err := rawValueFromCUE(e.value)
			if err != nil {
				return Fragment{}, fmt.Errorf("category %q key %q: %w", cat.label, e.label, err)
			}
			c.set(e.label, rv)
		}
		f.Categories = append(f.Categories, c)
	}
	return f, nil
}

type cueField struct {
	label string
	value cue.Value
}

// fieldValues lists regular struct fields in declaration order.
func fieldValues(v cue.Value) ([]cueField, error) {
	iter, err := v.Fields()
	if err != nil {
		return nil, err
	}
	var out []cueField
	for iter.Next() {
		out = append(out, cueField{label: iter.Label(), value: iter.Value()})
	}
	return out, nil
}

func rawValueFromCUE(v cue.Value) (RawValue, error) {
	switch v.Kind() {
	case cue.StructKind:
		fields, err := fieldValues(v)
		if err != nil {
			return nil, err
		}
		out := make(CandidateGroups, 0, len(fields))
		for _, f := range fields {
			if f.value.Kind() == cue.NullKind {
				continue
			}
			member, err := rawValueFromCUE(f.value)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", f.label, err)
			}
			out = append(out, G(f.label, member))
		}
		return out, nil

	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		var out Candidates
		for i := 0; iter.Next(); i++ {
			s, err := cueScalar(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("list item %d: %w", i, err)
			}
			out = append(out, s)
		}
		return out, nil

	default:
		s, err := cueScalar(v)
		if err != nil {
			return nil, err
		}
		return Literal(s), nil
	}
}

// cueScalar renders a concrete scalar as text. Numbers and booleans keep
// their CUE spelling.
func cueScalar(v cue.Value) (string, error) {
	switch v.Kind() {
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return "", err
		}
		return norm.NFC.String(s), nil
	case cue.IntKind, cue.FloatKind, cue.NumberKind, cue.BoolKind:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("expected a concrete scalar, got %v", v.Kind())
	}
}
