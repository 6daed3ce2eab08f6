package highlight

// Scanner produces a lazy sequence of spans over src, scanning forward
// from its start offset. Spans cover every byte: callers iterate with Next
// until ok is false.
type Scanner struct {
	src    []byte
	pos    int
	report func(error)
}

// NewScanner creates a scanner over the whole input.
func NewScanner(src []byte) *Scanner {
	return NewScannerAt(src, 0)
}

// NewScannerAt creates a scanner restarting at the given offset. The
// caller is responsible for choosing a restart point that is not inside a
// multi-byte span; offset 0 is always safe.
func NewScannerAt(src []byte, offset int) *Scanner {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	return &Scanner{src: src, pos: offset}
}

// SetReporter installs a callback receiving one *ByteError per
// ungrammatical byte encountered. Nil disables reporting.
func (s *Scanner) SetReporter(fn func(error)) {
	s.report = fn
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLatin(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isPunct(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', '=', ',', ';', '*', '&':
		return true
	}
	return false
}

// Next returns the next span. ok is false once the input is exhausted.
func (s *Scanner) Next() (Span, bool) {
	if s.pos >= len(s.src) {
		return Span{}, false
	}

	start := s.pos
	c := s.src[s.pos]

	switch {
	case isSpace(c):
		// Whitespace runs stay unbroken inside one Plain span
		for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
			s.pos++
		}
		return Span{Start: start, End: s.pos, Cat: Plain}, true

	case c == '/':
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == '*' {
			s.pos += 2
			s.scanBlockComment()
			return Span{Start: start, End: s.pos, Cat: BlockComment}, true
		}
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
			s.pos += 2
			s.scanLineComment()
			return Span{Start: start, End: s.pos, Cat: LineComment}, true
		}
		// A lone slash is ordinary text
		s.pos++
		return Span{Start: start, End: s.pos, Cat: Plain}, true

	case c == '"':
		s.pos++
		s.scanStringLiteral()
		return Span{Start: start, End: s.pos, Cat: StringLiteral}, true

	case isLatin(c):
		// Digits and underscore deliberately end an identifier in this
		// grammar
		for s.pos < len(s.src) && isLatin(s.src[s.pos]) {
			s.pos++
		}
		return Span{Start: start, End: s.pos, Cat: Identifier}, true

	case isDigit(c):
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
		return Span{Start: start, End: s.pos, Cat: Number}, true

	case isPunct(c):
		s.pos++
		return Span{Start: start, End: s.pos, Cat: Punctuation}, true

	default:
		if s.report != nil {
			s.report(&ByteError{Byte: c, Offset: s.pos})
		}
		s.pos++
		return Span{Start: start, End: s.pos, Cat: Plain}, true
	}
}

// scanBlockComment consumes up to and including the closing star-slash;
// an unterminated comment extends to end of input.
func (s *Scanner) scanBlockComment() {
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

// scanLineComment consumes up to the line break, exclusive.
func (s *Scanner) scanLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' && s.src[s.pos] != '\r' {
		s.pos++
	}
}

// scanStringLiteral consumes up to and including the first unescaped
// closing quote; an unterminated literal extends to end of input. The
// opening quote has already been consumed.
func (s *Scanner) scanStringLiteral() {
	for s.pos < len(s.src) {
		if s.src[s.pos] == '"' && s.src[s.pos-1] != '\\' {
			s.pos++
			return
		}
		s.pos++
	}
}
