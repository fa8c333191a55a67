// Package diagnostic implements an error-with-source-context reporting
// facility: an append-only Errors container, the SourceContext/InFile
// wrappers that attach original source lines to a spanned error, and a
// renderer that reproduces a span as a human readable caret/underline.
// It is the Go counterpart of gluon's base::error module, following its
// Errors<T>, SourceContext<E> and InFile<E> (and its Display impl)
// closely.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ondrik-lang/hindsight/pkg/pos"
)

// Errors is an append-only ordered sequence of error values of a
// uniform element type T, mirroring gluon's Errors<T>.
type Errors[T any] struct {
	items []T
}

// NewErrors constructs an empty Errors container.
func NewErrors[T any]() *Errors[T] {
	return &Errors[T]{}
}

// HasErrors reports whether any error has been appended.
func (e *Errors[T]) HasErrors() bool {
	return len(e.items) > 0
}

// Error appends t to the container.
func (e *Errors[T]) Error(t T) {
	e.items = append(e.items, t)
}

// All returns the appended errors in append order. The returned slice
// is owned by the caller's view only -- callers must not mutate it to
// preserve the container's append-only contract.
func (e *Errors[T]) All() []T {
	return e.items
}

// Spanned pairs an error value with the source Span where it occurred.
type Spanned[E any] struct {
	Span pos.Span
	Err  E
}

// SourceContext pairs a Spanned error with the source line text where
// it occurred.
type SourceContext[E any] struct {
	Line string
	Err  Spanned[E]
}

// InFile pairs a file name with the Errors that occurred in it,
// preserving each error's original span and caching the source line
// text needed to render it.
type InFile[E any] struct {
	File   string
	errors *Errors[SourceContext[E]]
}

// NewInFile splits contents into lines and, for each incoming spanned
// error, resolves the 1-based line its span starts on. A line number
// that falls outside the source (e.g. an upstream collaborator
// reporting a stale span) yields the literal string "N/A" rather than
// failing -- rendering never fails.
func NewInFile[E any](file, contents string, errs *Errors[Spanned[E]]) *InFile[E] {
	lines := splitLines(contents)

	out := NewErrors[SourceContext[E]]()
	for _, err := range errs.All() {
		out.Error(SourceContext[E]{
			Line: lineAt(lines, err.Span.Start.Line),
			Err:  err,
		})
	}

	return &InFile[E]{File: file, errors: out}
}

// Errors unwraps InFile back to the raw spanned errors it was built
// from, in the same order.
func (f *InFile[E]) Errors() *Errors[Spanned[E]] {
	out := NewErrors[Spanned[E]]()
	for _, sc := range f.errors.All() {
		out.Error(sc.Err)
	}
	return out
}

// SourceContexts exposes the line-annotated errors directly, for
// renderers that want the context without re-deriving it.
func (f *InFile[E]) SourceContexts() []SourceContext[E] {
	return f.errors.All()
}

func splitLines(contents string) []string {
	// Mirrors Rust's str::lines(): splits on '\n', and strips a
	// trailing '\r' from each line so CRLF sources still index
	// correctly.
	raw := strings.Split(contents, "\n")
	if raw[len(raw)-1] == "" {
		// A trailing '\n' ends the last line rather than starting a new one.
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func lineAt(lines []string, line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(lines) {
		return "N/A"
	}
	return lines[idx]
}

// Stringer is satisfied by any error payload renderable as a single
// diagnostic line.
type Stringer interface {
	String() string
}

// RenderOptions configures Render.
type RenderOptions struct {
	// Color, when true, renders the caret in bold red and the
	// underline in yellow via github.com/fatih/color instead of plain
	// text.
	Color bool
}

// Render formats every error in f as:
//
//	<path>:<error-display>
//	<line text>
//	<spaces><^><~~~>
//
// with the caret at the error's start column and tildes filling to one
// column before its end column. Rendering never fails.
func Render[E Stringer](f *InFile[E], opts RenderOptions) string {
	var sb strings.Builder

	for _, sc := range f.errors.All() {
		fmt.Fprintf(&sb, "%s:%s\n", f.File, sc.Err.Err.String())
		sb.WriteString(sc.Line)
		sb.WriteByte('\n')

		start := sc.Err.Span.Start.Column
		end := sc.Err.Span.End.Column

		sb.WriteString(strings.Repeat(" ", max(start-1, 0)))
		sb.WriteString(caret(opts))
		sb.WriteString(underline(opts, max(end-start-1, 0)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func caret(opts RenderOptions) string {
	if !opts.Color {
		return "^"
	}
	return color.New(color.FgRed, color.Bold).Sprint("^")
}

func underline(opts RenderOptions, n int) string {
	tildes := strings.Repeat("~", n)
	if !opts.Color || n == 0 {
		return tildes
	}
	return color.New(color.FgYellow).Sprint(tildes)
}
