package css

import (
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom/douceuradapter"
)

// block holds the declarations of a selector, in order of first occurrence.
type block = orderedmap.OrderedMap[string, style.Property]

// Stylesheet is an inline stylesheet. It holds an ordered table of
// selectors, each with an ordered set of declarations.
//
// The zero value is not usable; create stylesheets with one of the
// constructors. A stylesheet is not modified after construction.
type Stylesheet struct {
	attrs *orderedmap.OrderedMap[string, *block]
}

// FromMapping creates a stylesheet from a single mapping. Keyword-style
// rules kw are merged after m.
func FromMapping(m Mapping, kw ...Rule) *Stylesheet {
	return merge(slices.Values([]Mapping{m}), kw)
}

// FromSequence creates a stylesheet from a sequence of mappings, merged in
// sequence order. Keyword-style rules kw are merged last.
func FromSequence(ms []Mapping, kw ...Rule) *Stylesheet {
	return merge(slices.Values(ms), kw)
}

// FromSeq creates a stylesheet from a lazily produced sequence of mappings.
// The sequence is drained completely, in a single pass. Keyword-style rules
// kw are merged last.
func FromSeq(seq iter.Seq[Mapping], kw ...Rule) *Stylesheet {
	return merge(seq, kw)
}

// FromKeywords creates a stylesheet from keyword-style rules only.
func FromKeywords(kw ...Rule) *Stylesheet {
	return merge(nil, kw)
}

// merge is the single place where sources are folded into a table.
// sources may be nil.
func merge(sources iter.Seq[Mapping], kw []Rule) *Stylesheet {
	sheet := &Stylesheet{attrs: orderedmap.NewOrderedMap[string, *block]()}
	n := 0
	if sources != nil {
		for m := range sources {
			for _, r := range m {
				sheet.mergeRule(r)
			}
			n++
		}
	}
	for _, r := range kw {
		sheet.mergeRule(r)
	}
	tracer().Debugf("css: merged %d sources and %d keyword rules into %d selectors",
		n, len(kw), sheet.Len())
	return sheet
}

// mergeRule inserts a fresh block for an unknown selector, or updates the
// existing block key by key. orderedmap keeps the position of an updated key.
func (sheet *Stylesheet) mergeRule(r Rule) {
	b, ok := sheet.attrs.Get(r.Selector)
	if !ok {
		b = orderedmap.NewOrderedMap[string, style.Property]()
		sheet.attrs.Set(r.Selector, b)
	}
	for _, kv := range r.Declarations {
		b.Set(kv.Key, kv.Value)
	}
}

// Len returns the number of selectors.
func (sheet *Stylesheet) Len() int {
	return sheet.attrs.Len()
}

// Empty is true for a stylesheet without any selectors.
func (sheet *Stylesheet) Empty() bool {
	return sheet.Len() == 0
}

// Selectors returns all selectors in order of first occurrence.
func (sheet *Stylesheet) Selectors() []string {
	sels := make([]string, 0, sheet.Len())
	for el := sheet.attrs.Front(); el != nil; el = el.Next() {
		sels = append(sels, el.Key)
	}
	return sels
}

// Declarations returns the declarations for a selector in order of first
// occurrence, or nil if the selector is unknown.
func (sheet *Stylesheet) Declarations(selector string) []style.KeyValue {
	b, ok := sheet.attrs.Get(selector)
	if !ok {
		return nil
	}
	return declarations(b)
}

// Lookup returns the value of a property for a selector.
func (sheet *Stylesheet) Lookup(selector, property string) (style.Property, bool) {
	b, ok := sheet.attrs.Get(selector)
	if !ok {
		return style.NullStyle, false
	}
	return b.Get(property)
}

// Mapping returns the merged table as a single mapping. The result is a copy.
func (sheet *Stylesheet) Mapping() Mapping {
	m := make(Mapping, 0, sheet.Len())
	for el := sheet.attrs.Front(); el != nil; el = el.Next() {
		m = append(m, Rule{Selector: el.Key, Declarations: declarations(el.Value)})
	}
	return m
}

// CSSOM returns the stylesheet as a cssom.StyleSheet, one rule per selector.
// The result is independent of sheet.
func (sheet *Stylesheet) CSSOM() *douceuradapter.CSSStyles {
	styles := douceuradapter.New()
	for el := sheet.attrs.Front(); el != nil; el = el.Next() {
		styles.AddRule(el.Key, declarations(el.Value))
	}
	return styles
}

func declarations(b *block) []style.KeyValue {
	kvs := make([]style.KeyValue, 0, b.Len())
	for el := b.Front(); el != nil; el = el.Next() {
		kvs = append(kvs, style.KeyValue{Key: el.Key, Value: el.Value})
	}
	return kvs
}
