// Package render paints the visible window of the document with one SGR
// style per highlight span, plus a status line showing the most recent raw
// input bytes, and finally parks the terminal cursor on the edit position.
package render

import (
	"bufio"
	"io"

	"github.com/ted-editor/ted/highlight"
	"github.com/ted-editor/ted/terminal"
)

// Renderer redraws frames into a terminal-shaped output stream. It keeps
// the top visible row across frames so vertical cursor motion scrolls the
// window instead of jumping it.
type Renderer struct {
	w     *bufio.Writer
	style Style
	top   int
}

// New creates a renderer writing to out.
func New(out io.Writer, style Style) *Renderer {
	return &Renderer{
		w:     bufio.NewWriterSize(out, 8192),
		style: style,
	}
}

// Top returns the first visible document row
func (r *Renderer) Top() int {
	return r.top
}

// Frame redraws the window. doc is the full document, sc a scanner whose
// spans cover it, (cursorRow, cursorCol) the cursor position in document
// coordinates, width/height the terminal size and lastInput the raw bytes
// of the most recent read for the status line.
func (r *Renderer) Frame(doc []byte, sc *highlight.Scanner, cursorRow, cursorCol, width, height int, lastInput []byte) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	textRows := height - 1 // bottom row is the status line
	if textRows < 1 {
		textRows = 1
	}

	// Keep the cursor row inside the window
	if cursorRow < r.top {
		r.top = cursorRow
	}
	if cursorRow >= r.top+textRows {
		r.top = cursorRow - textRows + 1
	}

	r.w.Write(terminal.CSICursorHide)
	r.w.Write(terminal.CSIClear)

	r.paintText(doc, sc, width, textRows)
	r.paintStatus(lastInput, width, height)

	// Cursor is positioned last so the terminal cursor lands exactly on
	// the edit position relative to the window origin
	x := cursorCol
	if x > width-1 {
		x = width - 1
	}
	terminal.WriteCursorPos(r.w, x, cursorRow-r.top)
	r.w.Write(terminal.CSICursorShow)

	return r.w.Flush()
}

func (r *Renderer) paintText(doc []byte, sc *highlight.Scanner, width, textRows int) {
	row, col := 0, 0
	placedRow := -1 // last row the output cursor was positioned on
	params := ""    // active SGR parameters

	for sp, ok := sc.Next(); ok; sp, ok = sc.Next() {
		want := r.style.params(sp.Cat)
		for i := sp.Start; i < sp.End; i++ {
			b := doc[i]
			if b == '\n' {
				row++
				col = 0
				continue
			}
			if b == '\r' {
				continue
			}
			if row < r.top || row >= r.top+textRows {
				col++
				continue
			}
			if col >= width {
				col++
				continue
			}
			if row != placedRow {
				terminal.WriteCursorPos(r.w, col, row-r.top)
				placedRow = row
			}
			if want != params {
				r.w.Write(terminal.CSISGR0)
				if want != "" {
					terminal.WriteSGR(r.w, want)
				}
				params = want
			}
			if b == '\t' {
				// Tabs render as one cell so screen columns keep byte
				// column parity
				r.w.WriteByte(' ')
			} else {
				r.w.WriteByte(b)
			}
			col++
		}
	}

	if params != "" {
		r.w.Write(terminal.CSISGR0)
	}
}

// paintStatus draws the diagnostic footer: the most recent input bytes,
// printable ones verbatim and the rest hex-escaped.
func (r *Renderer) paintStatus(lastInput []byte, width, height int) {
	terminal.WriteCursorPos(r.w, 0, height-1)
	terminal.WriteSGR(r.w, "7")

	n := 0
	for _, b := range lastInput {
		var cells int
		if b >= 0x20 && b <= 0x7e {
			cells = 1
		} else {
			cells = 4 // \xNN
		}
		if n+cells > width {
			break
		}
		if cells == 1 {
			r.w.WriteByte(b)
		} else {
			r.w.WriteString("\\x")
			r.w.WriteByte(hexDigit(b >> 4))
			r.w.WriteByte(hexDigit(b & 0x0f))
		}
		n += cells
	}
	for ; n < width; n++ {
		r.w.WriteByte(' ')
	}

	r.w.Write(terminal.CSISGR0)
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + v - 10
}
