package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2/terminfo"

	// Register terminfo descriptions for common terminals
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// ErrUnsupportedTerminal indicates the connected terminal does not speak
// the ANSI/VT100 escape dialect the editor emits. Fatal at startup, before
// any terminal mode change.
var ErrUnsupportedTerminal = errors.New("unsupported terminal")

// Check verifies that TERM names a terminal capable of ANSI-style cursor
// movement and attribute changes. It must be called before Session.Begin;
// a failure here leaves the terminal untouched.
func Check() error {
	name := os.Getenv("TERM")
	if name == "" {
		return fmt.Errorf("%w: TERM is not set - it should be set to `xterm'", ErrUnsupportedTerminal)
	}

	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return fmt.Errorf("%w: TERM is set to `%s': %v", ErrUnsupportedTerminal, name, err)
	}

	// Cursor addressing and attribute reset are the minimum the renderer
	// needs; terminals like "dumb" have neither.
	if ti.SetCursor == "" || ti.AttrOff == "" {
		return fmt.Errorf("%w: TERM is set to `%s' - should be `xterm'", ErrUnsupportedTerminal, name)
	}

	return nil
}
