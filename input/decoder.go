// Package input classifies raw terminal byte batches into logical edit
// events. The decoder is a pure classifier: it never touches the document
// or cursor, and it emits exactly one event per batch read.
package input

import (
	"fmt"
)

// Kind distinguishes event categories
type Kind uint8

const (
	KindNone Kind = iota
	KindInsertChar
	KindDeleteBack
	KindNewline
	KindMove
	KindQuit
	KindUnrecognized
)

// Motion is a cursor movement request decoded from an arrow key
type Motion uint8

const (
	MotionNone Motion = iota
	MotionUp
	MotionDown
	MotionLeft
	MotionRight
)

// Event is one decoded input event. Raw always holds the originating
// bytes for diagnostics (status line, logging).
type Event struct {
	Kind   Kind
	Ch     byte   // KindInsertChar payload
	Motion Motion // KindMove payload
	Raw    []byte
}

// UnrecognizedError reports an input byte pattern the decoder has no
// mapping for. Recoverable: the caller logs it and continues the loop.
type UnrecognizedError struct {
	Bytes []byte
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("unrecognized input bytes % x", e.Bytes)
}

// decoder states
type state uint8

const (
	stateIdle state = iota
	stateEscape // inside an escape sequence; consumed counts bytes past ESC
)

// Decoder turns byte batches into events. It relies on the terminal
// delivering a full arrow sequence (ESC [ letter) in one read, so a lone
// ESC byte is a quit request rather than a sequence prefix; no timeout
// disambiguation is attempted.
type Decoder struct{}

// NewDecoder creates a decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode classifies one batch of raw bytes into a single event.
func (d *Decoder) Decode(chunk []byte) Event {
	ev := d.classify(chunk)
	ev.Raw = chunk
	return ev
}

func (d *Decoder) classify(chunk []byte) Event {
	if len(chunk) == 0 {
		return Event{Kind: KindNone}
	}

	st := stateIdle
	consumed := 0

	for i, b := range chunk {
		switch st {
		case stateIdle:
			if i != 0 {
				// A second key in the same batch (e.g. paste) has no
				// single-event mapping
				return Event{Kind: KindUnrecognized}
			}
			switch {
			case b == 0x1b:
				if len(chunk) == 1 {
					return Event{Kind: KindQuit}
				}
				st = stateEscape
				consumed = 0
			case b == 0x7f:
				return d.single(chunk, Event{Kind: KindDeleteBack})
			case b == '\n' || b == '\r':
				return d.single(chunk, Event{Kind: KindNewline})
			case b >= 0x20 && b <= 0x7e:
				return d.single(chunk, Event{Kind: KindInsertChar, Ch: b})
			default:
				return Event{Kind: KindUnrecognized}
			}

		case stateEscape:
			consumed++
			switch consumed {
			case 1:
				if b != '[' {
					return Event{Kind: KindUnrecognized}
				}
			case 2:
				if len(chunk) != 3 {
					return Event{Kind: KindUnrecognized}
				}
				switch b {
				case 'A':
					return Event{Kind: KindMove, Motion: MotionUp}
				case 'B':
					return Event{Kind: KindMove, Motion: MotionDown}
				case 'C':
					return Event{Kind: KindMove, Motion: MotionRight}
				case 'D':
					return Event{Kind: KindMove, Motion: MotionLeft}
				default:
					return Event{Kind: KindUnrecognized}
				}
			}
		}
	}

	// Escape sequence shorter than 3 bytes (ESC followed by one byte)
	return Event{Kind: KindUnrecognized}
}

// single returns ev if the batch is exactly one byte, otherwise the batch
// has no single-event mapping.
func (d *Decoder) single(chunk []byte, ev Event) Event {
	if len(chunk) != 1 {
		return Event{Kind: KindUnrecognized}
	}
	return ev
}
