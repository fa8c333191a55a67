// Package fixture generates synthetic source text for lexer benchmarks,
// the same role ccuetoh-maqui-lang's internal/test package plays for
// its own lexer (GetRandomTokens, consumed by pkg/lexer_test.go's
// BenchmarkLexer* family), retargeted at this language's richer token
// vocabulary.
package fixture

import (
	"math/rand"
	"strings"
)

var validLexemes = []string{
	"if", "else", "while", "for", "match", "data", "trait", "impl", "let",
	"true", "false",
	"main", "x", "y", "Option", "Point", "f",
	"\"a string literal\"", "\"\"", "'a'",
	"123", "3.14", "0",
	"+", "-", "*", "/", "==", "<=",
	"=", ":", "->", ".", "=>", "\\",
	"(", ")", "[", "]", "{", "}", ",", ";",
}

// RandomSource returns a whitespace-separated run of size random,
// individually-valid lexemes. It is not expected to parse as a program
// -- only to exercise the lexer's token-classification states at
// volume, the same purpose ccuetoh-maqui-lang's generator serves.
func RandomSource(size int) string {
	return RandomSourceWithSep(size, " ")
}

// RandomSourceWithSep is RandomSource with a caller-chosen separator
// between lexemes.
func RandomSourceWithSep(size int, sep string) string {
	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, validLexemes[rand.Intn(len(validLexemes))])
	}
	return strings.Join(toks, sep)
}
