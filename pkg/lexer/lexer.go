// Package lexer implements a rewindable tokenizer for a small ML-style
// functional language. It is modeled after ccuetoh-maqui-lang's
// pkg/lexer.go (the bufio.Reader-backed character source, the
// per-state emission style) and gluon's lexer, which supplies the
// ring-buffer + offset rewind protocol this package implements
// literally.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/ondrik-lang/hindsight/pkg/pos"
	"github.com/ondrik-lang/hindsight/pkg/token"
	"github.com/ondrik-lang/hindsight/pkg/types"
)

// Lexer transforms a character stream into a lazy, rewindable token
// stream. A Lexer should never be reused across inputs and is not
// safe for concurrent use.
type Lexer struct {
	interner types.Interner
	gc       types.GC
	reader   *bufio.Reader

	peekRune rune
	peekOK   bool

	loc       pos.Location
	bufferStr strings.Builder

	buf    []token.Token
	offset int

	tracer func(token.Token)
}

// New constructs a Lexer over r, pre-reading one character of
// lookahead. It fails only if that first read errors with something
// other than io.EOF; the returned Lexer is always usable and, on
// failure, behaves as if the stream were immediately exhausted (yields
// EOF on every subsequent operation).
func New(interner types.Interner, gc types.GC, r io.Reader) (*Lexer, error) {
	l := &Lexer{
		interner: interner,
		gc:       gc,
		reader:   bufio.NewReader(r),
		loc:      pos.Location{Line: 1, Column: 1, Absolute: 0},
		tracer:   func(token.Token) {},
	}

	first, ok, err := readRawRune(l.reader)
	if err != nil {
		return l, err
	}

	l.peekRune, l.peekOK = first, ok
	return l, nil
}

// SetTracer installs a callback invoked once per freshly produced
// (non-replayed) token, mirroring the single `debug!("Token {:?}", ...)`
// trace point in the gluon original. NewDebugTracer wraps the standard
// `log` package, which is this repo's only standard-library-backed
// ambient concern — no example repo in the retrieval pack imports a
// structured logging library.
func (l *Lexer) SetTracer(fn func(token.Token)) {
	if fn == nil {
		fn = func(token.Token) {}
	}
	l.tracer = fn
}

// NewDebugTracer returns a tracer that logs every produced token via
// the standard logger, prefixed with prefix.
func NewDebugTracer(prefix string) func(token.Token) {
	return func(t token.Token) {
		log.Printf("%s token %s", prefix, t)
	}
}

// Location returns the current Location just past the most recently
// produced token, independent of any buffered rewind.
func (l *Lexer) Location() pos.Location {
	return l.loc
}

// Next advances the cursor and returns the next token. If the cursor
// had been rewound with Backtrack, it replays from the buffer instead
// of re-lexing.
func (l *Lexer) Next() token.Token {
	if l.offset > 0 {
		l.offset--
	} else {
		t := l.produceToken()
		l.buf = append(l.buf, t)
		l.tracer(t)
	}
	return l.Current()
}

// Peek returns the token one position ahead of the cursor without
// advancing it.
func (l *Lexer) Peek() token.Token {
	if l.offset != 0 && len(l.buf) != 0 {
		return l.buf[len(l.buf)-l.offset]
	}

	l.Next()
	l.Backtrack()
	return l.buf[len(l.buf)-1]
}

// Current returns the token most recently returned by Next.
func (l *Lexer) Current() token.Token {
	return l.buf[len(l.buf)-l.offset-1]
}

// Backtrack moves the cursor back by exactly one token. It may be
// called repeatedly up to the length of the already-produced buffer.
//
// TODO: cap the buffer and return an error on over-rewind instead of
// silently clamping; left open by the original (same TODO it carried).
func (l *Lexer) Backtrack() {
	if l.offset < len(l.buf) {
		l.offset++
	}
}

// Intern interns bytes via the injected Interner collaborator.
func (l *Lexer) Intern(data []byte) (types.InternedStr, error) {
	return l.interner.Intern(l.gc, data)
}

// produceToken classifies the next character and dispatches to the
// matching lex routine, returning the resulting token.
func (l *Lexer) produceToken() token.Token {
	l.resetBuffer()

	for {
		c, ok := l.peekChar()
		if !ok {
			start := l.loc
			return token.Token{Type: token.EOF, Span: pos.NewSpan(start, start)}
		}
		if !unicode.IsSpace(c) {
			break
		}
		l.readChar()
		l.resetBuffer()
	}

	start := l.loc
	c, _ := l.peekChar()

	switch {
	case token.IsOperatorChar(c):
		return l.lexOperator(start)
	case unicode.IsDigit(c):
		return l.lexNumber(start)
	case unicode.IsLetter(c) || c == '_':
		return l.lexIdentifier(start)
	case c == '"':
		return l.lexString(start)
	case c == '\'':
		return l.lexChar(start)
	default:
		return l.lexPunctuationOrError(start)
	}
}

func (l *Lexer) lexOperator(start pos.Location) token.Token {
	l.consumeWhile(token.IsOperatorChar)

	lexeme := l.currentText()
	if typ, ok := token.Distinguished[lexeme]; ok {
		return token.Token{Type: typ, Span: pos.NewSpan(start, l.loc), Raw: lexeme}
	}

	interned, err := l.intern(lexeme)
	if err != nil {
		return l.errorToken(start, "failed to intern operator: "+err.Error())
	}

	return token.Token{Type: token.Operator, Str: interned, Span: pos.NewSpan(start, l.loc), Raw: lexeme}
}

func (l *Lexer) lexNumber(start pos.Location) token.Token {
	l.consumeWhile(unicode.IsDigit)

	isFloat := false
	if c, ok := l.peekChar(); ok && c == '.' {
		l.readChar()
		isFloat = true
		l.consumeWhile(unicode.IsDigit)
	}

	text := l.currentText()
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			// Inputs reaching here are valid decimal literals by
			// construction; a parse failure is a bug in the lexer,
			// not a user-facing error.
			panic(fmt.Sprintf("lexer: unparsable float literal %q: %v", text, err))
		}
		return token.Token{Type: token.Float, Float: v, Span: pos.NewSpan(start, l.loc), Raw: text}
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("lexer: unparsable integer literal %q: %v", text, err))
	}
	return token.Token{Type: token.Integer, Int: v, Span: pos.NewSpan(start, l.loc), Raw: text}
}

func (l *Lexer) lexIdentifier(start pos.Location) token.Token {
	l.consumeWhile(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	})

	text := l.currentText()
	if kw, ok := token.Keywords[text]; ok {
		return token.Token{Type: kw, Span: pos.NewSpan(start, l.loc), Raw: text}
	}

	interned, err := l.intern(text)
	if err != nil {
		return l.errorToken(start, "failed to intern identifier: "+err.Error())
	}

	kind := token.Variable
	if first := []rune(text)[0]; unicode.IsUpper(first) {
		kind = token.Constructor
	}

	return token.Token{
		Type:  token.Identifier,
		Ident: kind,
		Str:   interned,
		Span:  pos.NewSpan(start, l.loc),
		Raw:   text,
	}
}

func (l *Lexer) lexString(start pos.Location) token.Token {
	l.readChar() // leading quote, not part of the contents

	var content strings.Builder
	for {
		c, ok := l.readChar()
		if !ok {
			return l.errorToken(start, "Unexpected EOF when lexing string literal")
		}
		if c == '"' {
			break
		}
		content.WriteRune(c)
	}

	interned, err := l.intern(content.String())
	if err != nil {
		return l.errorToken(start, "failed to intern string literal: "+err.Error())
	}

	return token.Token{Type: token.String, Str: interned, Span: pos.NewSpan(start, l.loc), Raw: l.currentText()}
}

func (l *Lexer) lexChar(start pos.Location) token.Token {
	l.readChar() // leading quote

	c, ok := l.readChar()
	if !ok {
		return l.errorToken(start, "Unexpected EOF when lexing char literal")
	}

	closing, ok := l.readChar()
	if !ok {
		return l.errorToken(start, "Unexpected EOF when lexing char literal")
	}
	if closing != '\'' {
		return l.errorToken(start, "Attempted to lex a character literal with multiple character")
	}

	return token.Token{Type: token.Char, Char: c, Span: pos.NewSpan(start, l.loc), Raw: l.currentText()}
}

func (l *Lexer) lexPunctuationOrError(start pos.Location) token.Token {
	c, _ := l.readChar()
	if typ, ok := token.Punctuation[c]; ok {
		return token.Token{Type: typ, Span: pos.NewSpan(start, l.loc), Raw: string(c)}
	}

	// An earlier revision mapped any unclassified character to EOF,
	// which can infinite-loop a caller that polls for EOF. Emitting a
	// lex error instead lets the caller observe the bad input and stop.
	return l.errorToken(start, fmt.Sprintf("invalid symbol %q", c))
}

func (l *Lexer) errorToken(start pos.Location, msg string) token.Token {
	return token.Token{Type: token.Error, Message: msg, Span: pos.NewSpan(start, l.loc), Raw: l.currentText()}
}

func (l *Lexer) intern(s string) (types.InternedStr, error) {
	return l.interner.Intern(l.gc, []byte(s))
}

func (l *Lexer) consumeWhile(pred func(rune) bool) {
	for {
		c, ok := l.peekChar()
		if !ok || !pred(c) {
			return
		}
		l.readChar()
	}
}

func (l *Lexer) currentText() string {
	return l.bufferStr.String()
}

func (l *Lexer) resetBuffer() {
	l.bufferStr.Reset()
}

// peekChar returns the next rune on the stream without consuming it.
func (l *Lexer) peekChar() (rune, bool) {
	return l.peekRune, l.peekOK
}

// readChar consumes and returns the next rune, advancing location
// bookkeeping: absolute and column always advance by one per consumed
// character; '\n' or '\r' resets column and advances the line; a '\r'
// immediately followed by '\n' consumes both but only advances the line
// once. A '\n' followed by '\r' is, by the same rule applied twice,
// treated as two separate line terminators.
func (l *Lexer) readChar() (rune, bool) {
	result, resultOK := l.peekRune, l.peekOK
	if !resultOK {
		return result, false
	}

	l.bufferStr.WriteRune(result)

	next, nextOK, _ := readRawRune(l.reader)
	l.peekRune, l.peekOK = next, nextOK

	l.loc.Absolute++
	l.loc.Column++

	if result == '\n' || result == '\r' {
		l.loc.Column = 0
		l.loc.Line++

		if result == '\r' && l.peekOK && l.peekRune == '\n' {
			nn, nnOK, _ := readRawRune(l.reader)
			l.peekRune, l.peekOK = nn, nnOK
			l.loc.Absolute++
		}
	}

	return result, true
}

// readRawRune reads one rune off r, translating io.EOF into (0, false,
// nil) and any other error into (0, false, err).
func readRawRune(r *bufio.Reader) (rune, bool, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	return c, true, nil
}
