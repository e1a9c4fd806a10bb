package cssom

import "github.com/npillmayer/markup/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Markup constructs produce stylesheets in their own representation (e.g.,
// the ordered attribute table of package css), while consumers such as
// debugging tools or a styling engine want to iterate over rules without
// knowing about that representation. Concrete implementations live in
// sub-packages (see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in document order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string               // the prelude / selectors of the rule
	Properties() []string           // property keys in declaration order, e.g. "margin-top"
	Value(string) style.Property    // property value for key, e.g. "15px"
	IsImportant(string) bool        // is property key marked as important?
	Declarations() []style.KeyValue // all declarations of the rule, in order
}
