package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	CSIClear = []byte("\x1b[2J\x1b[H")
	CSIHome  = []byte("\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	CSISGR0  = []byte("\x1b[0m")

	// Cursor control
	CSICursorHide = []byte("\x1b[?25l")
	CSICursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Screen modes
	CSIAltScreenEnter = []byte("\x1b[?1049h")
	CSIAltScreenExit  = []byte("\x1b[?1049l")

	// Erase to end of line
	CSIEraseLine = []byte("\x1b[K")
)

// WriteInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [8]byte
	i := 7
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes a cursor positioning sequence (0-indexed input)
func WriteCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}

// WriteSGR writes a Select Graphic Rendition sequence from a parameter
// string such as "1;34". An empty parameter string resets attributes.
func WriteSGR(w *bufio.Writer, params string) {
	w.Write(csi)
	w.WriteString(params)
	w.WriteByte('m')
}
