// Package highlight lexes document content into styled spans for the
// renderer. The grammar is fixed: block and line comments, string
// literals, identifiers (ASCII letters only), digit runs and a small
// punctuation set, everything else whitespace or a recoverable error.
package highlight

import (
	"fmt"
)

// Category classifies a span for styling
type Category uint8

const (
	Plain Category = iota
	BlockComment
	LineComment
	StringLiteral
	Identifier
	Number
	Punctuation
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case Plain:
		return "plain"
	case BlockComment:
		return "block-comment"
	case LineComment:
		return "line-comment"
	case StringLiteral:
		return "string"
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case Punctuation:
		return "punctuation"
	}
	return "unknown"
}

// Span is a half-open byte range [Start, End) with one category. Spans are
// a transient projection of document content, produced fresh each pass.
type Span struct {
	Start int
	End   int
	Cat   Category
}

// ByteError reports a byte the grammar has no rule for. Recoverable: the
// scanner styles the byte as Plain and continues past it.
type ByteError struct {
	Byte   byte
	Offset int
}

func (e *ByteError) Error() string {
	return fmt.Sprintf("unable to parse byte %d (%q) at offset %d", e.Byte, e.Byte, e.Offset)
}
