package normalise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFoldCase tests Unicode-aware case folding across alphabets
func TestFoldCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "Hello World", "hello world"},
		{"cyrillic", "Таблица Умножения", "таблица умножения"},
		{"greek", "ΣΟΦΙΑ", "σοφια"},
		{"mixed", "Café LATTE", "café latte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldCase(tt.in))
		})
	}
}

// TestFoldCase_Symmetry tests that folded forms of both cases agree
func TestFoldCase_Symmetry(t *testing.T) {
	assert.Equal(t, FoldCase("СЛОВО"), FoldCase("слово"))
	assert.Equal(t, FoldCase("Straße"), FoldCase("STRASSE"))
}

// TestCollapseWhitespace tests run collapsing and trimming
func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"runs", "a  \t b\n\nc", "a b c"},
		{"nbsp", "a  b", "a b"},
		{"ideographic space", "a　b", "a b"},
		{"trim", "  padded  ", "padded"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseWhitespace(tt.in))
		})
	}
}

// TestPlainText_Pipeline tests the combined locale + strip + collapse path
func TestPlainText_Pipeline(t *testing.T) {
	markup := "{lang:en}<p>Hello</p>{lang}{lang:de}<p>Hallo</p>{lang}"

	assert.Equal(t, "Hello", PlainText(markup, "en"))
	assert.Equal(t, "Hallo", PlainText(markup, "de"))
}
