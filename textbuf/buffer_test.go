package textbuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewStripsNulBytes(t *testing.T) {
	b := New([]byte("ab\x00cd\x00"))
	if got := string(b.Bytes()); got != "abcd" {
		t.Errorf("Expected NUL bytes to be stripped, got %q", got)
	}
	if b.Len() != 4 {
		t.Errorf("Expected length 4, got %d", b.Len())
	}
}

func TestInsertDeleteAreInverse(t *testing.T) {
	original := []byte("hello\nworld")
	b := New(original)

	for o := 0; o <= b.Len(); o++ {
		if err := b.Insert(o, 'X'); err != nil {
			t.Fatalf("Insert at %d failed: %v", o, err)
		}
		if err := b.DeleteBefore(o + 1); err != nil {
			t.Fatalf("DeleteBefore at %d failed: %v", o+1, err)
		}
		if !bytes.Equal(b.Bytes(), original) {
			t.Errorf("Expected original content restored after insert/delete at %d, got %q", o, b.Bytes())
		}
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := New([]byte("abc"))

	err := b.Insert(4, 'x')
	if err == nil {
		t.Fatal("Expected error for offset past end")
	}
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Expected OutOfRangeError, got %T", err)
	}
	if oor.Offset != 4 || oor.Len != 3 {
		t.Errorf("Expected offset 4 and len 3 in error, got %d and %d", oor.Offset, oor.Len)
	}

	if err := b.Insert(-1, 'x'); err == nil {
		t.Error("Expected error for negative offset")
	}
}

func TestDeleteBeforeAtZeroIsNoop(t *testing.T) {
	b := New([]byte("abc"))
	if err := b.DeleteBefore(0); err != nil {
		t.Fatalf("Expected no error at offset 0, got %v", err)
	}
	if got := string(b.Bytes()); got != "abc" {
		t.Errorf("Expected content unchanged, got %q", got)
	}
}

func TestLineBoundsBracketEveryOffset(t *testing.T) {
	b := New([]byte("ab\nc\n\nxyz"))

	for o := 0; o <= b.Len(); o++ {
		start := b.LineStart(o)
		end := b.LineEnd(o)
		if start > o || o > end {
			t.Errorf("Expected LineStart(%d)=%d <= %d <= LineEnd(%d)=%d", o, start, o, o, end)
		}
	}

	if b.LineStart(0) != 0 {
		t.Errorf("Expected line start 0 at document start, got %d", b.LineStart(0))
	}
	if b.LineEnd(b.Len()) != b.Len() {
		t.Errorf("Expected line end %d at document end, got %d", b.Len(), b.LineEnd(b.Len()))
	}
}

func TestRowColRoundTrip(t *testing.T) {
	b := New([]byte("ab\nc\n\nxyz"))

	for o := 0; o <= b.Len(); o++ {
		row, col := b.RowCol(o)
		back := b.OffsetAt(row, col)
		if back != o {
			t.Errorf("Expected round trip of offset %d via (%d, %d), got %d", o, row, col, back)
		}
		// col equals distance from the line start
		if want := o - b.LineStart(o); col != want {
			t.Errorf("Expected col %d at offset %d, got %d", want, o, col)
		}
	}
}

func TestInsertAtCursorTracksColumn(t *testing.T) {
	b := New(nil)

	for _, c := range []byte("ab") {
		if err := b.InsertAtCursor(c); err != nil {
			t.Fatalf("InsertAtCursor failed: %v", err)
		}
	}
	if row, col := b.RowCol(b.Offset()); row != 0 || col != 2 {
		t.Errorf("Expected cursor at (0, 2), got (%d, %d)", row, col)
	}

	if err := b.InsertAtCursor('\n'); err != nil {
		t.Fatalf("InsertAtCursor failed: %v", err)
	}
	if row, col := b.RowCol(b.Offset()); row != 1 || col != 0 {
		t.Errorf("Expected cursor at (1, 0) after newline, got (%d, %d)", row, col)
	}
}

func TestDeleteBackAcrossNewline(t *testing.T) {
	b := New(nil)
	for _, c := range []byte("ab\nc") {
		b.InsertAtCursor(c)
	}

	// Remove 'c' then the newline; cursor must land at the end of "ab"
	b.DeleteBackAtCursor()
	b.DeleteBackAtCursor()

	if got := string(b.Bytes()); got != "ab" {
		t.Errorf("Expected content %q, got %q", "ab", got)
	}
	if row, col := b.RowCol(b.Offset()); row != 0 || col != 2 {
		t.Errorf("Expected cursor at (0, 2), got (%d, %d)", row, col)
	}
}

func TestVerticalMotionClampsDirectionally(t *testing.T) {
	// Document "ab\nc\nxyz", cursor at column 2 of "xyz": Up clamps to
	// column 1 of "c", Down returns to column 1 of "xyz" - the clamped
	// column is the one remembered, not the original 2
	b := New([]byte("ab\nc\nxyz"))
	b.Move(Down)
	b.Move(Down)
	b.Move(Right)
	b.Move(Right)
	if row, col := b.RowCol(b.Offset()); row != 2 || col != 2 {
		t.Fatalf("Expected setup cursor at (2, 2), got (%d, %d)", row, col)
	}

	b.Move(Up)
	if row, col := b.RowCol(b.Offset()); row != 1 || col != 1 {
		t.Errorf("Expected Up to clamp to (1, 1), got (%d, %d)", row, col)
	}

	b.Move(Down)
	if row, col := b.RowCol(b.Offset()); row != 2 || col != 1 {
		t.Errorf("Expected Down to land at (2, 1), got (%d, %d)", row, col)
	}
}

func TestUpDownPreservesColumnBetweenEqualLines(t *testing.T) {
	b := New([]byte("abc\ndef"))
	b.Move(Right)
	b.Move(Right)
	b.Move(Down)
	if row, col := b.RowCol(b.Offset()); row != 1 || col != 2 {
		t.Errorf("Expected (1, 2) after Down, got (%d, %d)", row, col)
	}
	b.Move(Up)
	if row, col := b.RowCol(b.Offset()); row != 0 || col != 2 {
		t.Errorf("Expected (0, 2) after Up, got (%d, %d)", row, col)
	}
}

func TestMotionAbsorbsBoundaries(t *testing.T) {
	b := New([]byte("ab\ncd"))

	// Left at column 0
	b.Move(Left)
	if b.Offset() != 0 {
		t.Errorf("Expected Left at start to be a no-op, offset %d", b.Offset())
	}

	// Up on the first line
	b.Move(Up)
	if b.Offset() != 0 {
		t.Errorf("Expected Up on first line to be a no-op, offset %d", b.Offset())
	}

	// Right stops at the line break
	b.Move(Right)
	b.Move(Right)
	b.Move(Right)
	if row, col := b.RowCol(b.Offset()); row != 0 || col != 2 {
		t.Errorf("Expected Right to stop at end of line (0, 2), got (%d, %d)", row, col)
	}

	// Down on the last line
	b.Move(Down)
	b.Move(Down)
	if row, _ := b.RowCol(b.Offset()); row != 1 {
		t.Errorf("Expected Down past last line to be a no-op, row %d", row)
	}

	// Right at end of document
	b.Move(Right)
	b.Move(Right)
	b.Move(Right)
	if b.Offset() != b.Len() {
		t.Errorf("Expected Right to stop at document end, offset %d", b.Offset())
	}
	b.Move(Right)
	if b.Offset() != b.Len() {
		t.Errorf("Expected Right at document end to be a no-op, offset %d", b.Offset())
	}
}

func TestOffsetAtClampsColumn(t *testing.T) {
	b := New([]byte("ab\nc"))
	if got := b.OffsetAt(1, 10); got != 4 {
		t.Errorf("Expected column clamp to offset 4, got %d", got)
	}
	if got := b.OffsetAt(0, 10); got != 2 {
		t.Errorf("Expected column clamp to offset 2, got %d", got)
	}
}
