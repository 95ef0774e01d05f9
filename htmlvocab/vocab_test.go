package htmlvocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name            string
		tag             string
		void            bool
		optionalClosing bool
		mustClose       bool
	}{
		{name: "image", tag: "img", void: true},
		{name: "line break upper case", tag: "BR", void: true},
		{name: "padded name", tag: " hr ", void: true},
		{name: "wbr", tag: "wbr", void: true},
		{name: "list item", tag: "li", optionalClosing: true},
		{name: "list item mixed case", tag: "Li", optionalClosing: true},
		{name: "paragraph", tag: "p", mustClose: true},
		{name: "div", tag: "div", mustClose: true},
		{name: "custom element", tag: "my-widget", mustClose: true},
		{name: "empty name", tag: "", mustClose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.void, IsVoid(tt.tag), "IsVoid(%q)", tt.tag)
			assert.Equal(t, tt.optionalClosing, IsOptionalClosing(tt.tag), "IsOptionalClosing(%q)", tt.tag)
			assert.Equal(t, tt.mustClose, MustHaveClosingTag(tt.tag), "MustHaveClosingTag(%q)", tt.tag)
		})
	}
}

func TestMustHaveClosingTag_IsComplementOfVoidAndOptional(t *testing.T) {
	for _, tag := range []string{"a", "b", "img", "li", "ul", "input", "span", "source"} {
		want := !IsVoid(tag) && !IsOptionalClosing(tag)
		assert.Equal(t, want, MustHaveClosingTag(tag), tag)
	}
}
