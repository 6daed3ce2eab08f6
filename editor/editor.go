// Package editor wires the terminal session, text buffer, input decoder,
// lexer and renderer into the single-threaded edit loop.
package editor

import (
	"io"

	"github.com/rs/zerolog/log"

	"github.com/ted-editor/ted/highlight"
	"github.com/ted-editor/ted/input"
	"github.com/ted-editor/ted/render"
	"github.com/ted-editor/ted/textbuf"
)

// Terminal is the slice of the terminal session the edit loop needs: a
// blocking batch read, the window size, and the output stream.
type Terminal interface {
	io.Writer
	Read() ([]byte, error)
	Size() (width, height int)
}

// Editor owns the document and drives the blocking-read event loop. It is
// single-threaded by construction: each iteration reads one input batch,
// applies it, re-lexes and redraws before reading again.
type Editor struct {
	term Terminal
	buf  *textbuf.Buffer
	dec  *input.Decoder
	rend *render.Renderer

	lastInput []byte
}

// New creates an editor seeded with the initial document content.
func New(term Terminal, initial []byte, style render.Style) *Editor {
	return &Editor{
		term: term,
		buf:  textbuf.New(initial),
		dec:  input.NewDecoder(),
		rend: render.New(term, style),
	}
}

// Bytes returns the current document content, for the caller to persist
// after a normal quit.
func (e *Editor) Bytes() []byte {
	return e.buf.Bytes()
}

// Run executes the edit loop until a quit event or input stream closure.
// The caller owns terminal setup and teardown.
func (e *Editor) Run() error {
	if err := e.draw(); err != nil {
		return err
	}

	for {
		chunk, err := e.term.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		ev := e.dec.Decode(chunk)
		e.lastInput = ev.Raw

		if !e.apply(ev) {
			return nil
		}

		if err := e.draw(); err != nil {
			return err
		}
	}
}

// apply dispatches one event to the buffer. Returns false on quit. Every
// steady-state failure degrades to a logged no-op; only quit ends the
// session.
func (e *Editor) apply(ev input.Event) bool {
	switch ev.Kind {
	case input.KindQuit:
		log.Debug().Msg("quit requested")
		return false

	case input.KindInsertChar:
		e.insert(ev.Ch)

	case input.KindNewline:
		e.insert('\n')

	case input.KindDeleteBack:
		if err := e.buf.DeleteBackAtCursor(); err != nil {
			log.Warn().Err(err).Msg("delete ignored")
		}

	case input.KindMove:
		e.buf.Move(motionDirection(ev.Motion))

	case input.KindUnrecognized:
		log.Warn().Err(&input.UnrecognizedError{Bytes: ev.Raw}).Msg("input ignored")

	case input.KindNone:
	}
	return true
}

func (e *Editor) insert(c byte) {
	if err := e.buf.InsertAtCursor(c); err != nil {
		log.Warn().Err(err).Msg("insert ignored")
	}
}

func motionDirection(m input.Motion) textbuf.Direction {
	switch m {
	case input.MotionUp:
		return textbuf.Up
	case input.MotionDown:
		return textbuf.Down
	case input.MotionLeft:
		return textbuf.Left
	}
	return textbuf.Right
}

// draw re-lexes the document from the start and repaints the window.
// Comments and strings may span the whole buffer, so a full re-lex is the
// only restart point that never needs re-validation.
func (e *Editor) draw() error {
	width, height := e.term.Size()
	doc := e.buf.Bytes()

	sc := highlight.NewScanner(doc)
	sc.SetReporter(func(err error) {
		log.Debug().Err(err).Msg("highlight")
	})

	row, col := e.buf.RowCol(e.buf.Offset())
	return e.rend.Frame(doc, sc, row, col, width, height, e.lastInput)
}
