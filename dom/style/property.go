/*
Package style holds the CSS vocabulary shared by the markup constructs.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "strings"

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. Values are kept verbatim: no
// case-folding, trimming or unit checking is performed.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property, i.e. a CSS declaration.
type KeyValue struct {
	Key   string
	Value Property
}

// String returns the declaration as it appears inside a rule block,
// e.g. "color: white;".
func (kv KeyValue) String() string {
	var b strings.Builder
	kv.writeTo(&b)
	return b.String()
}

func (kv KeyValue) writeTo(b *strings.Builder) {
	b.WriteString(kv.Key)
	b.WriteString(": ")
	b.WriteString(string(kv.Value))
	b.WriteByte(';')
}

// Declarations formats a list of declarations, separated by a single space,
// e.g. "color: white; text-align: center;".
func Declarations(kvs []KeyValue) string {
	if len(kvs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range kvs {
		if i > 0 {
			b.WriteByte(' ')
		}
		kv.writeTo(&b)
	}
	return b.String()
}
