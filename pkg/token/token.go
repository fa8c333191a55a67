// Package token defines the token vocabulary produced by pkg/lexer,
// following the TokenType/Token split in ccuetoh-maqui-lang's
// pkg/lexer.go, generalized to a small ML-style functional language's
// richer token set: keywords, literals, operators and punctuation.
package token

import (
	"fmt"

	"github.com/ondrik-lang/hindsight/pkg/pos"
	"github.com/ondrik-lang/hindsight/pkg/types"
)

// Type is an ID that correlates to the symbol a Token signifies.
type Type uint64

const (
	// Error denotes a lexing error; Message carries the diagnostic text.
	Error Type = iota
	// EOF marks the end of the token stream.
	EOF

	Integer // 64-bit signed integer literal
	Float   // 64-bit IEEE float literal
	String  // interned string literal (quotes stripped)
	Char    // single character literal

	// Keywords
	If
	Else
	While
	For
	Match
	Data
	Trait
	Impl
	Let
	True
	False

	// Identifier is sub-classified into Variable and Constructor by the
	// case of its first letter; the Token's Ident field reports which.
	Identifier

	Operator // any interned run of operator characters not matching a distinguished token below

	// Punctuation
	Semicolon
	Dot
	Comma
	Colon
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace

	// Distinguished operators
	Assign     // =
	RArrow     // ->
	MatchArrow // =>
	Lambda     // backslash
)

//go:generate stringer -type=Type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", t)
}

var typeNames = map[Type]string{
	Error:        "Error",
	EOF:          "EOF",
	Integer:      "Integer",
	Float:        "Float",
	String:       "String",
	Char:         "Char",
	If:           "If",
	Else:         "Else",
	While:        "While",
	For:          "For",
	Match:        "Match",
	Data:         "Data",
	Trait:        "Trait",
	Impl:         "Impl",
	Let:          "Let",
	True:         "True",
	False:        "False",
	Identifier:   "Identifier",
	Operator:     "Operator",
	Semicolon:    "Semicolon",
	Dot:          "Dot",
	Comma:        "Comma",
	Colon:        "Colon",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	OpenBrace:    "OpenBrace",
	CloseBrace:   "CloseBrace",
	Assign:       "Assign",
	RArrow:       "RArrow",
	MatchArrow:   "MatchArrow",
	Lambda:       "Lambda",
}

// IdentKind distinguishes a variable-case identifier from a
// constructor-case one, both carried under Type Identifier.
type IdentKind int

const (
	// NotIdent applies to tokens whose Type isn't Identifier.
	NotIdent IdentKind = iota
	Variable
	Constructor
)

// Keywords maps a lexeme to its keyword Token Type. Built-in
// identifiers are matched here before falling back to Variable/
// Constructor classification, exactly as ccuetoh-maqui-lang's
// keywordTable is consulted by identifierState.
var Keywords = map[string]Type{
	"if":     If,
	"else":   Else,
	"while":  While,
	"for":    For,
	"match":  Match,
	"data":   Data,
	"trait":  Trait,
	"impl":   Impl,
	"let":    Let,
	"true":   True,
	"false":  False,
}

// Distinguished maps an operator lexeme to its distinguished Token Type.
// Any operator-character run that doesn't match one of these is emitted
// as a generic, interned Operator token instead.
var Distinguished = map[string]Type{
	"=":  Assign,
	":":  Colon,
	"->": RArrow,
	".":  Dot,
	"=>": MatchArrow,
}

// Punctuation maps a single punctuation rune to its Token Type.
var Punctuation = map[rune]Type{
	';':  Semicolon,
	'(':  OpenParen,
	')':  CloseParen,
	'[':  OpenBracket,
	']':  CloseBracket,
	'{':  OpenBrace,
	'}':  CloseBrace,
	',':  Comma,
	'\\': Lambda,
}

// IsOperatorChar reports whether r can appear inside an operator
// lexeme ("+ - * / . $ : = < > | & !").
func IsOperatorChar(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '.', '$', ':', '=', '<', '>', '|', '&', '!':
		return true
	default:
		return false
	}
}

// Token is a tagged variant carrying its classification, decoded value
// and the Span it was lexed from.
type Token struct {
	Type Type
	Span pos.Span

	// Int, Float hold the decoded numeric value for Integer/Float tokens.
	Int   int64
	Float float64

	// Str holds the interned handle for String, Identifier and Operator
	// tokens. For a lex-error token it is nil and Message carries the
	// static error text instead.
	Str types.InternedStr

	// Char holds the decoded rune for a Char token.
	Char rune

	// Ident classifies an Identifier token as Variable or Constructor.
	Ident IdentKind

	// Message carries the static diagnostic for an Error token.
	Message string

	// Raw is the literal source text the token was lexed from, kept so
	// re-lexing its concatenation reproduces an equal token sequence.
	Raw string
}

func (t Token) String() string {
	switch t.Type {
	case Error:
		return fmt.Sprintf("Error(%s)", t.Message)
	case EOF:
		return "EOF"
	case Integer:
		return fmt.Sprintf("Integer(%d)", t.Int)
	case Float:
		return fmt.Sprintf("Float(%g)", t.Float)
	case String:
		return fmt.Sprintf("String(%q)", t.Str.String())
	case Char:
		return fmt.Sprintf("Char(%q)", t.Char)
	case Identifier:
		return fmt.Sprintf("Identifier(%s)", t.Str.String())
	case Operator:
		return fmt.Sprintf("Operator(%s)", t.Str.String())
	default:
		return t.Type.String()
	}
}

// IsValid reports whether t is neither an Error nor an EOF token,
// mirroring ccuetoh-maqui-lang's Token.isValid.
func (t Token) IsValid() bool {
	return t.Type != Error && t.Type != EOF
}
