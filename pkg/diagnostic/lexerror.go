package diagnostic

import "github.com/ondrik-lang/hindsight/pkg/token"

// LexError is the diagnostic payload for a lex-error token: an
// unterminated string, an unterminated or multi-character char literal,
// or an unrecognized character.
type LexError struct {
	Message string
}

func (e LexError) String() string { return e.Message }
func (e LexError) Error() string  { return e.Message }

// FromLexToken converts a token.Error token into a Spanned[LexError],
// ready to append to an Errors[Spanned[LexError]] container. ok is
// false if tok is not an error token.
func FromLexToken(tok token.Token) (Spanned[LexError], bool) {
	if tok.Type != token.Error {
		return Spanned[LexError]{}, false
	}
	return Spanned[LexError]{Span: tok.Span, Err: LexError{Message: tok.Message}}, true
}
