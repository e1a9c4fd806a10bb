package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestAddRule(t *testing.T) {
	sheet := douceuradapter.New()
	if !sheet.Empty() {
		t.Errorf("expected new stylesheet to be empty, isn't")
	}
	sheet.AddRule("h1", []style.KeyValue{
		{Key: "color", Value: "white"},
		{Key: "text-align", Value: "center"},
	})
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	r := rules[0]
	assert.Equal(t, "h1", r.Selector())
	assert.Equal(t, []string{"color", "text-align"}, r.Properties())
	assert.Equal(t, style.Property("center"), r.Value("text-align"))
	assert.Equal(t, style.NullStyle, r.Value("margin"))
	assert.False(t, r.IsImportant("color"))
	assert.Equal(t, "h1", sheet.Stylesheet().Rules[0].Prelude)
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse("p { margin: 0 !important; color: red; color: blue; }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	assert.True(t, rules[0].IsImportant("margin"))
	assert.Equal(t, style.Property("blue"), rules[0].Value("color"), "expected last declaration to win")
	assert.Len(t, rules[0].Declarations(), 3)
}

func TestAppendRules(t *testing.T) {
	a := douceuradapter.New()
	a.AddRule("html", []style.KeyValue{{Key: "color", Value: "black"}})
	b := douceuradapter.New()
	b.AddRule("div", []style.KeyValue{{Key: "color", Value: "blue"}})
	a.AppendRules(b)
	rules := a.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "div", rules[1].Selector())
}

func TestAppendForeignRules(t *testing.T) {
	src := douceuradapter.New()
	src.AddRule("p", []style.KeyValue{{Key: "margin", Value: "0"}})
	dst := douceuradapter.New()
	dst.AppendRules(wrapped{src})
	rules := dst.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, style.Property("0"), rules[0].Value("margin"))
}

// wrapped hides the concrete type, forcing the declaration-by-declaration copy.
type wrapped struct {
	*douceuradapter.CSSStyles
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>
<style>html { background-color: lightblue; } h1 { color: white; text-align: center; } </style>
</head><body><p>Hello</p><style></style></body></html>`))
	require.NoError(t, err)
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	rules := sheets[0].Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "html", rules[0].Selector())
	assert.Equal(t, "h1", rules[1].Selector())
	assert.Equal(t, []string{"color", "text-align"}, rules[1].Properties())
	assert.True(t, sheets[1].Empty())
}

func TestExtractWithoutBody(t *testing.T) {
	n := &html.Node{Type: html.DocumentNode}
	sheets, err := douceuradapter.ExtractStyleElements(n)
	require.NoError(t, err)
	assert.Empty(t, sheets)
}
