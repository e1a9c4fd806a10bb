/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Rules are stored in douceur's CSS object model. Stylesheets may either be
assembled rule by rule (this is how markup constructs export their CSS) or
be read from <style> elements of an HTML parse tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'markup.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("markup.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// New creates an empty stylesheet.
func New() *CSSStyles {
	return &CSSStyles{css: *css.NewStylesheet()}
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse reads CSS text, e.g. the content of a <style> element, into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cssom: cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// AddRule appends a qualified rule for a selector, holding the given
// declarations in order.
func (sheet *CSSStyles) AddRule(selector string, decls []style.KeyValue) {
	r := css.NewRule(css.QualifiedRule)
	r.Prelude = selector
	r.Selectors = []string{selector}
	r.Declarations = make([]*css.Declaration, 0, len(decls))
	for _, kv := range decls {
		d := css.NewDeclaration()
		d.Property = kv.Key
		d.Value = kv.Value.String()
		r.Declarations = append(r.Declarations, d)
	}
	sheet.css.Rules = append(sheet.css.Rules, r)
}

// Stylesheet returns the underlying douceur stylesheet.
func (sheet *CSSStyles) Stylesheet() *css.Stylesheet {
	return &sheet.css
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of stylesheets
// not managed by this package are copied declaration by declaration.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.AddRule(r.Selector(), r.Declarations())
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i, r := range sheet.css.Rules {
		rules[i] = Rule{r}
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	if d := r.find(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.find(key); d != nil {
		return d.Important
	}
	return false
}

// Declarations returns the declarations of a rule as key-value pairs.
func (r Rule) Declarations() []style.KeyValue {
	decl := r.rule.Declarations
	kvs := make([]style.KeyValue, len(decl))
	for i, d := range decl {
		kvs[i] = style.KeyValue{Key: d.Property, Value: style.Property(d.Value)}
	}
	return kvs
}

// Last declaration wins, as in CSS.
func (r Rule) find(key string) *css.Declaration {
	decl := r.rule.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i]
		}
	}
	return nil
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css, err := extractStyles(head)
	if err != nil {
		return nil, err
	}
	css2, err := extractStyles(body)
	if err != nil {
		return nil, err
	}
	css = append(css, css2...)
	tracer().Debugf("extracted %d <style> elements", len(css))
	return css, nil
}

func extractStyles(h *html.Node) ([]*CSSStyles, error) {
	if h == nil {
		return nil, nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		if ch.FirstChild == nil { // <style></style>
			css = append(css, New())
			continue
		}
		c, err := Parse(ch.FirstChild.Data)
		if err != nil {
			return nil, err
		}
		css = append(css, c)
	}
	return css, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
