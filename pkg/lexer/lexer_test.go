package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ondrik-lang/hindsight/internal/fixture"
	"github.com/ondrik-lang/hindsight/internal/testenv"
	"github.com/ondrik-lang/hindsight/pkg/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()

	in := testenv.NewInterner()
	l, err := New(in, testenv.GC{}, strings.NewReader(src))
	assert.NoError(t, err)

	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexBasicDeclaration(t *testing.T) {
	toks := lexAll(t, "main : () -> Int; main = { 1 + 2 }")

	want := []token.Type{
		token.Identifier, token.Colon, token.OpenParen, token.CloseParen,
		token.RArrow, token.Identifier, token.Semicolon,
		token.Identifier, token.Assign, token.OpenBrace,
		token.Integer, token.Operator, token.Integer, token.CloseBrace,
		token.EOF,
	}
	assert.Equal(t, want, typesOf(toks))

	assert.Equal(t, token.Variable, toks[0].Ident)
	assert.Equal(t, "main", toks[0].Str.String())
	assert.Equal(t, token.Constructor, toks[5].Ident)
	assert.Equal(t, "Int", toks[5].Str.String())
	assert.Equal(t, int64(1), toks[10].Int)
	assert.Equal(t, "+", toks[11].Str.String())
	assert.Equal(t, int64(2), toks[12].Int)
}

func TestLexString(t *testing.T) {
	toks := lexAll(t, `"hi"`)
	assert.Equal(t, []token.Type{token.String, token.EOF}, typesOf(toks))
	assert.Equal(t, "hi", toks[0].Str.String())
}

func TestLexCharMultiError(t *testing.T) {
	toks := lexAll(t, "'ab'")
	assert.Equal(t, token.Error, toks[0].Type)
	assert.Equal(t, "Attempted to lex a character literal with multiple character", toks[0].Message)
}

func TestLexUnterminatedString(t *testing.T) {
	toks := lexAll(t, `"unterminated`)
	assert.Equal(t, token.Error, toks[0].Type)
	assert.Equal(t, "Unexpected EOF when lexing string literal", toks[0].Message)
}

func TestLexUnterminatedChar(t *testing.T) {
	toks := lexAll(t, "'")
	assert.Equal(t, token.Error, toks[0].Type)
	assert.Equal(t, "Unexpected EOF when lexing char literal", toks[0].Message)
}

func TestLexFloat(t *testing.T) {
	toks := lexAll(t, "3.14")
	assert.Equal(t, token.Float, toks[0].Type)
	assert.Equal(t, 3.14, toks[0].Float)
}

func TestLexKeywordsAndVariables(t *testing.T) {
	toks := lexAll(t, "let x = match y { }")
	assert.Equal(t, []token.Type{
		token.Let, token.Identifier, token.Assign, token.Match,
		token.Identifier, token.OpenBrace, token.CloseBrace, token.EOF,
	}, typesOf(toks))
}

func TestLexUnrecognizedCharacterEmitsError(t *testing.T) {
	// An unclassified character is a lex error, not EOF.
	toks := lexAll(t, "@")
	assert.Equal(t, token.Error, toks[0].Type)
}

func TestLocationBookkeeping(t *testing.T) {
	in := testenv.NewInterner()
	l, err := New(in, testenv.GC{}, strings.NewReader("ab\ncd"))
	assert.NoError(t, err)

	assert.Equal(t, 1, l.Location().Line)
	assert.Equal(t, 1, l.Location().Column)

	tok := l.Next() // identifier "ab" -- letters only, stops before newline
	assert.Equal(t, token.Identifier, tok.Type)
	assert.Equal(t, "ab", tok.Str.String())
	assert.Equal(t, 1, l.Location().Line)
	assert.Equal(t, 3, l.Location().Column)

	tok = l.Next() // "cd" on line 2
	assert.Equal(t, "cd", tok.Str.String())
	assert.Equal(t, 2, tok.Span.Start.Line)
	assert.Equal(t, 3, tok.Span.Start.Absolute)
}

func TestCRLFCountsAsOneLineTerminator(t *testing.T) {
	in := testenv.NewInterner()
	l, err := New(in, testenv.GC{}, strings.NewReader("a\r\nb"))
	assert.NoError(t, err)

	l.Next() // a
	tok := l.Next() // b
	assert.Equal(t, 2, tok.Span.Start.Line)
}

func TestBacktrackThenNextReturnsSameToken(t *testing.T) {
	toks := []token.Token{}
	in := testenv.NewInterner()
	l, err := New(in, testenv.GC{}, strings.NewReader("a b c"))
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		toks = append(toks, l.Next())
	}

	before := l.Current()
	l.Backtrack()
	l.Backtrack()
	after1 := l.Next()
	after2 := l.Next()

	assert.Equal(t, toks[1], after1)
	assert.Equal(t, toks[2], after2)
	assert.Equal(t, before, l.Current())
}

func TestPeekDoesNotAdvanceCursor(t *testing.T) {
	in := testenv.NewInterner()
	l, err := New(in, testenv.GC{}, strings.NewReader("a b"))
	assert.NoError(t, err)

	first := l.Next()
	peeked := l.Peek()
	assert.Equal(t, first, l.Current())

	second := l.Next()
	assert.Equal(t, peeked, second)
}

func TestTokenLocationsAreNonDecreasing(t *testing.T) {
	toks := lexAll(t, fixture.RandomSource(200))

	for i := 1; i < len(toks); i++ {
		assert.True(t, toks[i-1].Span.Start.Absolute <= toks[i].Span.Start.Absolute)
	}
}

var benchResult []token.Token

func benchmarkLexer(size int, b *testing.B) {
	data := fixture.RandomSource(size)
	for n := 0; n < b.N; n++ {
		in := testenv.NewInterner()
		l, err := New(in, testenv.GC{}, strings.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}

		var toks []token.Token
		for {
			t := l.Next()
			toks = append(toks, t)
			if t.Type == token.EOF {
				break
			}
		}
		benchResult = toks
	}
}

func BenchmarkLexer100(b *testing.B)    { benchmarkLexer(100, b) }
func BenchmarkLexer1000(b *testing.B)   { benchmarkLexer(1000, b) }
func BenchmarkLexer10000(b *testing.B)  { benchmarkLexer(10000, b) }
