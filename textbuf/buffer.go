// Package textbuf implements the editable document: a linear byte sequence
// plus the single edit cursor, tracked both as a byte offset and as a
// (row, col) screen position. The two representations are kept consistent
// by every mutation and motion.
package textbuf

import (
	"fmt"
)

// Direction is a cursor motion direction
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// OutOfRangeError reports a buffer operation given an offset outside the
// document. Callers treat it as a recoverable no-op, never a reason to
// terminate the session.
type OutOfRangeError struct {
	Offset int
	Len    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range (document length %d)", e.Offset, e.Len)
}

// Buffer is the document plus the edit cursor. The cursor offset o always
// satisfies 0 <= o <= len(data), and col always equals o minus the start
// of the line containing o.
type Buffer struct {
	data   []byte
	offset int
	col    int
}

// New creates a buffer seeded with the initial content. NUL bytes are
// dropped so the document is null-free internally; length alone marks the
// end of content.
func New(initial []byte) *Buffer {
	data := make([]byte, 0, len(initial))
	for _, c := range initial {
		if c != 0 {
			data = append(data, c)
		}
	}
	return &Buffer{data: data}
}

// Len returns the document length in bytes
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns a copy of the current document content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Offset returns the cursor's byte offset
func (b *Buffer) Offset() int {
	return b.offset
}

// Insert inserts one byte at the given offset, shifting trailing content.
func (b *Buffer) Insert(offset int, c byte) error {
	if offset < 0 || offset > len(b.data) {
		return &OutOfRangeError{Offset: offset, Len: len(b.data)}
	}
	b.data = append(b.data, 0)
	copy(b.data[offset+1:], b.data[offset:])
	b.data[offset] = c
	return nil
}

// DeleteBefore removes the byte immediately preceding the given offset
// (backspace semantics). No-op at offset 0.
func (b *Buffer) DeleteBefore(offset int) error {
	if offset < 0 || offset > len(b.data) {
		return &OutOfRangeError{Offset: offset, Len: len(b.data)}
	}
	if offset == 0 {
		return nil
	}
	copy(b.data[offset-1:], b.data[offset:])
	b.data = b.data[:len(b.data)-1]
	return nil
}

// LineStart returns the offset of the first byte of the line containing
// offset: one past the nearest preceding '\n', or 0.
func (b *Buffer) LineStart(offset int) int {
	for i := offset - 1; i >= 0; i-- {
		if b.data[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineEnd returns the offset of the line break terminating the line
// containing offset, or len(data) if the line is the last one.
func (b *Buffer) LineEnd(offset int) int {
	for i := offset; i < len(b.data); i++ {
		if b.data[i] == '\n' {
			return i
		}
	}
	return len(b.data)
}

// RowCol derives the (row, col) position of an offset by counting line
// breaks before it.
func (b *Buffer) RowCol(offset int) (int, int) {
	row := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if b.data[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return row, offset - lineStart
}

// OffsetAt converts a (row, col) position back to a byte offset, clamping
// col to the row's length.
func (b *Buffer) OffsetAt(row, col int) int {
	start := 0
	for r := 0; r < row; r++ {
		end := b.LineEnd(start)
		if end >= len(b.data) {
			break
		}
		start = end + 1
	}
	lineLen := b.LineEnd(start) - start
	if col > lineLen {
		col = lineLen
	}
	if col < 0 {
		col = 0
	}
	return start + col
}

// InsertAtCursor inserts a byte at the cursor and advances it.
func (b *Buffer) InsertAtCursor(c byte) error {
	if err := b.Insert(b.offset, c); err != nil {
		return err
	}
	b.offset++
	if c == '\n' {
		b.col = 0
	} else {
		b.col++
	}
	return nil
}

// DeleteBackAtCursor removes the byte before the cursor and moves it back.
// No-op at the start of the document.
func (b *Buffer) DeleteBackAtCursor() error {
	if b.offset == 0 {
		return nil
	}
	if err := b.DeleteBefore(b.offset); err != nil {
		return err
	}
	b.offset--
	b.col = b.offset - b.LineStart(b.offset)
	return nil
}

// Move applies one cursor motion. Motions that would leave the document
// are absorbed as no-ops. Vertical motion clamps the remembered column to
// the destination line's length; the clamped value becomes the new
// remembered column.
func (b *Buffer) Move(d Direction) {
	switch d {
	case Left:
		if b.col > 0 {
			b.offset--
			b.col--
		}

	case Right:
		// Stops at end of line; crossing to the next line is only via
		// Down or a newline insert
		if b.offset < len(b.data) && b.data[b.offset] != '\n' {
			b.offset++
			b.col++
		}

	case Up:
		start := b.LineStart(b.offset)
		if start == 0 {
			return
		}
		prevStart := b.LineStart(start - 1)
		prevLen := start - 1 - prevStart
		if b.col > prevLen {
			b.col = prevLen
		}
		b.offset = prevStart + b.col

	case Down:
		end := b.LineEnd(b.offset)
		if end >= len(b.data) {
			return
		}
		nextStart := end + 1
		nextLen := b.LineEnd(nextStart) - nextStart
		if b.col > nextLen {
			b.col = nextLen
		}
		b.offset = nextStart + b.col
	}
}
