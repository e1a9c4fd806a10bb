/*
Package domdbg implements helpers to debug styles attached to a DOM.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"testing"

	"github.com/npillmayer/markup/dom/style/cssom"
	tp "github.com/xlab/treeprint"
)

// Dump returns a tree diagram of a stylesheet: one branch per rule,
// one leaf per declaration, e.g.
//
//	StyleSheet(2 rules)
//	├── html
//	│   └── background-color: lightblue
//	└── h1
//	    ├── color: white
//	    └── text-align: center
func Dump(sheet cssom.StyleSheet) string {
	if sheet == nil {
		return "StyleSheet(nil)\n"
	}
	rules := sheet.Rules()
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("StyleSheet(%d rules)", len(rules)))
	for _, r := range rules {
		branch := printer.AddBranch(r.Selector())
		for _, kv := range r.Declarations() {
			leaf := fmt.Sprintf("%s: %s", kv.Key, kv.Value)
			if r.IsImportant(kv.Key) {
				leaf += " !important"
			}
			branch.AddNode(leaf)
		}
	}
	return printer.String()
}

// Fdump writes the diagram produced by Dump to w.
func Fdump(w io.Writer, sheet cssom.StyleSheet) error {
	_, err := io.WriteString(w, Dump(sheet))
	return err
}

// Logf is a helper for testing. It writes the diagram of a stylesheet to
// the test log, prefixed by a message.
func Logf(t *testing.T, sheet cssom.StyleSheet, format string, args ...any) {
	t.Helper()
	t.Logf(format+"\n%s", append(args, Dump(sheet))...)
}
