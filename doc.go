/*
Package markup is the root of a small library for generating HTML markup
from Go values.

# Status

Early draft—API may change frequently. Please stay patient.

# Overview

Markup is assembled from constructs, each of which owns its attributes and
knows how to render itself to text. Constructs are built once, from one of
several equivalent input shapes, and are read-only afterwards. Rendering is
deterministic: the same construct will always produce byte-identical output.

The first construct is an inline stylesheet (package css), which is embedded
into documents as a <style> element. Packages under dom/style provide the
shared CSS vocabulary (properties, CSSOM interfaces and an adapter to
douceur's CSS object model).

# Errors

Errors which callers are expected to tell apart are defined in this package.
Clients should match them by kind, using errors.Is or errors.As, e.g.

	sheet, err := css.New("test", "wrong")
	if errors.Is(err, markup.ErrWrongContent) {
	    …
	}

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup'.
func tracer() tracing.Trace {
	return tracing.Select("markup")
}
