package render

import (
	"github.com/ted-editor/ted/highlight"
)

// Style maps span categories to SGR parameter strings ("1;34" etc.).
// An empty string means the terminal's default rendition.
type Style struct {
	BlockComment  string
	LineComment   string
	StringLiteral string
	Identifier    string
	Number        string
	Punctuation   string
}

// DefaultStyle returns the built-in category colors: dim block comments,
// dark line comments, bold yellow strings, bold blue identifiers.
func DefaultStyle() Style {
	return Style{
		BlockComment:  "2",
		LineComment:   "30",
		StringLiteral: "1;33",
		Identifier:    "1;34",
	}
}

// params returns the SGR parameter string for a category
func (s Style) params(cat highlight.Category) string {
	switch cat {
	case highlight.BlockComment:
		return s.BlockComment
	case highlight.LineComment:
		return s.LineComment
	case highlight.StringLiteral:
		return s.StringLiteral
	case highlight.Identifier:
		return s.Identifier
	case highlight.Number:
		return s.Number
	case highlight.Punctuation:
		return s.Punctuation
	}
	return ""
}
