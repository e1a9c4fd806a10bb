package css

import (
	"iter"
	"maps"
	"slices"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/dom/style"
	"go.uber.org/multierr"
)

// Tag is the name of the element a stylesheet renders to.
const Tag = "style"

// Rule is a selector together with its declarations, e.g.
//
//	h1 { color: white; text-align: center; }
type Rule struct {
	Selector     string
	Declarations []style.KeyValue
}

// Select creates a rule for a selector.
func Select(selector string, decls ...style.KeyValue) Rule {
	return Rule{Selector: selector, Declarations: decls}
}

// Decl creates a declaration.
func Decl(property, value string) style.KeyValue {
	return style.KeyValue{Key: property, Value: style.Property(value)}
}

// Mapping is one source of rules, mapping selectors to declarations.
// Rules are taken in slice order. A selector occurring more than once
// is merged as if it came from separate mappings.
type Mapping []Rule

// Keywords are keyword-style declarations for New. They are merged after
// the positional argument, if any.
type Keywords []Rule

// FromGoMap converts a Go map to a Mapping. As Go maps are unordered,
// selectors and properties are sorted lexically to keep the result
// deterministic.
func FromGoMap(m map[string]map[string]string) Mapping {
	mapping := make(Mapping, 0, len(m))
	for _, sel := range slices.Sorted(maps.Keys(m)) {
		decls := m[sel]
		r := Rule{Selector: sel, Declarations: make([]style.KeyValue, 0, len(decls))}
		for _, prop := range slices.Sorted(maps.Keys(decls)) {
			r.Declarations = append(r.Declarations, Decl(prop, decls[prop]))
		}
		mapping = append(mapping, r)
	}
	return mapping
}

// New creates a stylesheet from untyped arguments. It accepts
//
//   - no positional argument at all, only Keywords
//   - a single mapping: a Mapping ([]Rule), a Rule, a *Stylesheet or a map[string]map[string]string
//   - a single sequence of mappings: []Mapping, []any, []map[string]map[string]string,
//     iter.Seq[Mapping] or iter.Seq[any]; lazy sequences are drained completely
//
// Arguments of type Keywords may appear anywhere in args; they are merged
// after the positional argument, in order.
//
// If there is more than one positional argument, if the positional
// argument is a nil sequence, or if it or any element of a sequence is not
// a mapping, New returns an error of kind markup.ErrWrongContent and a nil
// stylesheet. All offending elements of a sequence are reported.
func New(args ...any) (*Stylesheet, error) {
	var positional []any
	var kw []Rule
	for _, arg := range args {
		if k, ok := arg.(Keywords); ok {
			kw = append(kw, k...)
			continue
		}
		positional = append(positional, arg)
	}
	switch len(positional) {
	case 0:
		return merge(nil, kw), nil
	case 1:
	default:
		return nil, markup.WrongContent(Tag, positional, "at most one positional argument accepted")
	}
	sources, err := normalize(positional[0])
	if err != nil {
		return nil, err
	}
	return merge(slices.Values(sources), kw), nil
}

// normalize inspects the shape of a positional argument once and returns
// the mapping sources it consists of.
func normalize(arg any) ([]Mapping, error) {
	if m, ok := asMapping(arg); ok {
		return []Mapping{m}, nil
	}
	switch seq := arg.(type) {
	case []Mapping:
		return seq, nil
	case []map[string]map[string]string:
		sources := make([]Mapping, len(seq))
		for i, m := range seq {
			sources[i] = FromGoMap(m)
		}
		return sources, nil
	case []any:
		return collect(arg, slices.Values(seq))
	case iter.Seq[Mapping]:
		return collectMappings(arg, seq)
	case func(func(Mapping) bool):
		return collectMappings(arg, seq)
	case iter.Seq[any]:
		return collect(arg, seq)
	case func(func(any) bool):
		return collect(arg, seq)
	}
	return nil, markup.WrongContent(Tag, arg, "neither a mapping nor a sequence of mappings")
}

func collectMappings(arg any, seq iter.Seq[Mapping]) ([]Mapping, error) {
	if seq == nil {
		return nil, markup.WrongContent(Tag, arg, "nil sequence")
	}
	return slices.Collect(seq), nil
}

// collect drains a sequence of untyped elements, checking every one of them.
func collect(arg any, seq iter.Seq[any]) ([]Mapping, error) {
	if seq == nil {
		return nil, markup.WrongContent(Tag, arg, "nil sequence")
	}
	var sources []Mapping
	var err error
	i := 0
	for elem := range seq {
		if m, ok := asMapping(elem); ok {
			sources = append(sources, m)
		} else {
			err = multierr.Append(err, markup.WrongContent(Tag, elem, "sequence element is not a mapping"))
		}
		i++
	}
	if err != nil {
		tracer().Debugf("css: %d of %d sequence elements rejected", len(multierr.Errors(err)), i)
		return nil, err
	}
	return sources, nil
}

func asMapping(v any) (Mapping, bool) {
	switch m := v.(type) {
	case Mapping:
		return m, true
	case []Rule:
		return Mapping(m), true
	case Rule:
		return Mapping{m}, true
	case map[string]map[string]string:
		return FromGoMap(m), true
	case *Stylesheet:
		if m != nil && m.attrs != nil { // zero value is not a stylesheet
			return m.Mapping(), true
		}
	}
	return nil, false
}
