package css

import (
	"io"
	"strings"

	"github.com/npillmayer/markup/dom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render returns the stylesheet as a <style> element on a single line:
//
//	<style>SELECTOR { PROP: VALUE; PROP: VALUE; } SELECTOR { … } </style>
//
// Selectors and declarations appear in order of first occurrence.
// An empty stylesheet renders as "<style></style>".
func (sheet *Stylesheet) Render() string {
	var b strings.Builder
	b.WriteString("<" + Tag + ">")
	sheet.writeRules(&b)
	b.WriteString("</" + Tag + ">")
	return b.String()
}

// String is an alias for Render.
func (sheet *Stylesheet) String() string {
	return sheet.Render()
}

// WriteTo writes the rendered stylesheet to w.
func (sheet *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, sheet.Render())
	return int64(n), err
}

// Text returns the content of the <style> element, i.e. the rules without
// the wrapping tags.
func (sheet *Stylesheet) Text() string {
	var b strings.Builder
	sheet.writeRules(&b)
	return b.String()
}

func (sheet *Stylesheet) writeRules(b *strings.Builder) {
	for el := sheet.attrs.Front(); el != nil; el = el.Next() {
		b.WriteString(el.Key)
		b.WriteString(" { ")
		if decls := declarations(el.Value); len(decls) > 0 {
			b.WriteString(style.Declarations(decls))
			b.WriteByte(' ')
		}
		b.WriteString("} ")
	}
}

// Node returns the stylesheet as an element node, to be embedded into an
// HTML document tree. The rules are held by a single text child, which
// html.Render will output unescaped, as <style> is a raw text element.
// Rendering the node yields the same text as Render.
func (sheet *Stylesheet) Node() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     atom.Style.String(),
	}
	if text := sheet.Text(); text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

// Pretty returns the rules on multiple lines, one declaration per line,
// each indented by indent. The wrapping tags are omitted.
func (sheet *Stylesheet) Pretty(indent string) string {
	var b strings.Builder
	for el := sheet.attrs.Front(); el != nil; el = el.Next() {
		b.WriteString(el.Key)
		b.WriteString(" {\n")
		for _, kv := range declarations(el.Value) {
			b.WriteString(indent)
			b.WriteString(kv.String())
			b.WriteByte('\n')
		}
		b.WriteString("}\n")
	}
	return b.String()
}
