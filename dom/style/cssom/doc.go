/*
Package cssom provides interfaces for CSS object models.

# Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

# Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Markup
constructs hold their CSS in whatever form suits their construction rules
best; an inline stylesheet, for example, keeps an insertion-ordered table of
selectors and declarations. Interfaces StyleSheet and Rule decouple these
representations from code that just wants to walk rules and declarations.

This package does not parse CSS. A concrete implementation backed by
douceur's CSS model may be found in sub-package douceuradapter.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
