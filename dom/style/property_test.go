package style_test

import (
	"testing"

	"github.com/npillmayer/markup/dom/style"
)

func TestPropertyPredicates(t *testing.T) {
	if !style.Property("inherit").IsInherit() {
		t.Error("expected 'inherit' to be of inheritance-type inherit, isn't")
	}
	if !style.Property("initial").IsInitial() {
		t.Error("expected 'initial' to be of inheritance-type initial, isn't")
	}
	if !style.NullStyle.IsEmpty() || style.Property("0").IsEmpty() {
		t.Error("expected only the null-style to be empty")
	}
}

func TestKeyValueString(t *testing.T) {
	kv := style.KeyValue{Key: "text-align", Value: "center"}
	if kv.String() != "text-align: center;" {
		t.Errorf("expected 'text-align: center;', have %q", kv.String())
	}
	// values are kept verbatim
	kv = style.KeyValue{Key: "color", Value: "LightBlue"}
	if kv.String() != "color: LightBlue;" {
		t.Errorf("expected value to keep its case, have %q", kv.String())
	}
}

func TestDeclarations(t *testing.T) {
	if s := style.Declarations(nil); s != "" {
		t.Errorf("expected empty declarations to format as empty string, have %q", s)
	}
	s := style.Declarations([]style.KeyValue{
		{Key: "color", Value: "white"},
		{Key: "text-align", Value: "center"},
	})
	if s != "color: white; text-align: center;" {
		t.Errorf("unexpected declarations format: %q", s)
	}
}
