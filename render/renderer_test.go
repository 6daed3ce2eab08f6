package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ted-editor/ted/highlight"
)

func frame(t *testing.T, r *Renderer, doc string, row, col, w, h int, lastInput []byte) string {
	t.Helper()
	var out bytes.Buffer
	r.w.Reset(&out)
	sc := highlight.NewScanner([]byte(doc))
	if err := r.Frame([]byte(doc), sc, row, col, w, h, lastInput); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	return out.String()
}

func newTestRenderer() *Renderer {
	return New(&bytes.Buffer{}, DefaultStyle())
}

func TestFrameContainsDocumentText(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "foo\nbar", 0, 0, 80, 24, nil)

	if !strings.Contains(out, "foo") {
		t.Errorf("Expected output to contain %q, got %q", "foo", out)
	}
	if !strings.Contains(out, "bar") {
		t.Errorf("Expected output to contain %q, got %q", "bar", out)
	}
}

func TestFrameStylesIdentifier(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "foo", 0, 0, 80, 24, nil)

	if !strings.Contains(out, "\x1b[1;34mfoo") {
		t.Errorf("Expected identifier styled with 1;34, got %q", out)
	}
	if !strings.Contains(out, "\x1b[0m") {
		t.Errorf("Expected attribute reset after styled span, got %q", out)
	}
}

func TestFrameStylesComment(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "// hi", 0, 0, 80, 24, nil)

	if !strings.Contains(out, "\x1b[30m// hi") {
		t.Errorf("Expected line comment styled with 30, got %q", out)
	}
}

func TestFramePositionsCursorLast(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "ab\ncd", 1, 1, 80, 24, nil)

	// Cursor lands at document (1, 1), window origin row 0: CSI 2;2H
	pos := strings.LastIndex(out, "\x1b[2;2H")
	show := strings.LastIndex(out, "\x1b[?25h")
	if pos == -1 {
		t.Fatalf("Expected cursor position sequence in %q", out)
	}
	if show < pos {
		t.Errorf("Expected cursor shown after positioning, got %q", out)
	}
}

func TestFrameStatusLineDumpsBytes(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "", 0, 0, 20, 5, []byte{0x1b, '[', 'A'})

	if !strings.Contains(out, `\x1b[A`) {
		t.Errorf("Expected hex-escaped escape byte and printable rest, got %q", out)
	}
	// Status line is drawn on the last row in reverse video
	if !strings.Contains(out, "\x1b[5;1H\x1b[7m") {
		t.Errorf("Expected reverse-video status on row 5, got %q", out)
	}
}

func TestFrameScrollsToKeepCursorVisible(t *testing.T) {
	r := newTestRenderer()
	doc := "a\nb\nc\nd\ne\nf"

	// 3 terminal rows leave 2 text rows; cursor on document row 5
	frame(t, r, doc, 5, 0, 80, 3, nil)
	if r.Top() != 4 {
		t.Errorf("Expected top row 4 after scrolling down, got %d", r.Top())
	}

	// Moving back up scrolls the window up
	frame(t, r, doc, 1, 0, 80, 3, nil)
	if r.Top() != 1 {
		t.Errorf("Expected top row 1 after scrolling up, got %d", r.Top())
	}
}

func TestFrameClipsCursorToWidth(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "abcdefghij", 0, 9, 5, 5, nil)

	if !strings.Contains(out, "\x1b[1;5H\x1b[?25h") {
		t.Errorf("Expected cursor clipped to last column, got %q", out)
	}
}

func TestFrameZeroSizeIsNoop(t *testing.T) {
	r := newTestRenderer()
	out := frame(t, r, "abc", 0, 0, 0, 0, nil)
	if out != "" {
		t.Errorf("Expected no output for zero-size window, got %q", out)
	}
}

func TestDefaultStyleParams(t *testing.T) {
	s := DefaultStyle()
	tests := []struct {
		cat  highlight.Category
		want string
	}{
		{highlight.BlockComment, "2"},
		{highlight.LineComment, "30"},
		{highlight.StringLiteral, "1;33"},
		{highlight.Identifier, "1;34"},
		{highlight.Number, ""},
		{highlight.Punctuation, ""},
		{highlight.Plain, ""},
	}
	for _, tt := range tests {
		if got := s.params(tt.cat); got != tt.want {
			t.Errorf("Expected params %q for %v, got %q", tt.want, tt.cat, got)
		}
	}
}
