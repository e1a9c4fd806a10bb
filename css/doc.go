/*
Package css implements the inline stylesheet construct: a <style> element
holding rules which are assembled from Go values.

# Status

Early draft—API may change frequently. Please stay patient.

# Overview

A Stylesheet is built from one or more mappings of selector to declarations.
Mappings are merged left to right into a single table: selectors keep the
position of their first occurrence, declarations for a selector seen before
are merged into its existing block, later values overwriting earlier ones in
place. Clients use one of the typed constructors

	sheet := css.FromMapping(css.Mapping{
	    css.Select("html", css.Decl("background-color", "lightblue")),
	    css.Select("h1", css.Decl("color", "white"), css.Decl("text-align", "center")),
	})

or, where input arrives untyped, New, which inspects the shape of its
arguments at runtime and fails with a markup.WrongContentError if they
cannot be read as mappings.

Rendering produces a single line of text, suitable as content of a
containing document:

	<style>html { background-color: lightblue; } h1 { color: white; text-align: center; } </style>

Stylesheets are never modified after construction and may be shared
between goroutines.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.css'.
func tracer() tracing.Trace {
	return tracing.Select("markup.css")
}
