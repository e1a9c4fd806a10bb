package domdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/markup/dom/domdbg"
	"github.com/npillmayer/markup/dom/style"
	"github.com/npillmayer/markup/dom/style/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	sheet := douceuradapter.New()
	sheet.AddRule("html", []style.KeyValue{{Key: "background-color", Value: "lightblue"}})
	sheet.AddRule("h1", []style.KeyValue{
		{Key: "color", Value: "white"},
		{Key: "text-align", Value: "center"},
	})
	dump := domdbg.Dump(sheet)
	domdbg.Logf(t, sheet, "stylesheet with %d rules", 2)
	assert.True(t, strings.HasPrefix(dump, "StyleSheet(2 rules)"), "unexpected header: %q", dump)
	for _, s := range []string{"html", "background-color: lightblue", "h1", "color: white", "text-align: center"} {
		assert.Contains(t, dump, s)
	}
	assert.Less(t, strings.Index(dump, "html"), strings.Index(dump, "h1"), "expected rules in order")
}

func TestDumpImportant(t *testing.T) {
	sheet, err := douceuradapter.Parse("p { color: red !important; }")
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = domdbg.Fdump(&b, sheet); err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, b.String(), "color: red !important")
}

func TestDumpNil(t *testing.T) {
	assert.Equal(t, "StyleSheet(nil)\n", domdbg.Dump(nil))
}
