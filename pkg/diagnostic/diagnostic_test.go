package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ondrik-lang/hindsight/pkg/pos"
)

func TestErrorsAppendOrderAndHasErrors(t *testing.T) {
	errs := NewErrors[string]()
	assert.False(t, errs.HasErrors())

	errs.Error("first")
	errs.Error("second")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, []string{"first", "second"}, errs.All())
}

func span(startLine, startCol, startAbs, endLine, endCol, endAbs int) pos.Span {
	return pos.NewSpan(
		pos.Location{Line: startLine, Column: startCol, Absolute: startAbs},
		pos.Location{Line: endLine, Column: endCol, Absolute: endAbs},
	)
}

func TestInFileResolvesSourceLineByStartLine(t *testing.T) {
	src := "aa\nbbbbbbbb\ncc"
	errs := NewErrors[Spanned[LexError]]()
	errs.Error(Spanned[LexError]{
		Span: span(2, 5, 7, 2, 8, 10),
		Err:  LexError{Message: "unexpected token"},
	})

	f := NewInFile[LexError]("input.lang", src, errs)

	contexts := f.SourceContexts()
	assert.Len(t, contexts, 1)
	assert.Equal(t, "bbbbbbbb", contexts[0].Line)
}

func TestInFileLineOutOfRangeFallsBackToNA(t *testing.T) {
	src := "only one line"
	errs := NewErrors[Spanned[LexError]]()
	errs.Error(Spanned[LexError]{
		Span: span(99, 1, 0, 99, 2, 1),
		Err:  LexError{Message: "stale span"},
	})

	f := NewInFile[LexError]("input.lang", src, errs)

	assert.Equal(t, "N/A", f.SourceContexts()[0].Line)
}

func TestInFileErrorsRoundTrips(t *testing.T) {
	src := "xyz"
	errs := NewErrors[Spanned[LexError]]()
	want := Spanned[LexError]{Span: span(1, 1, 0, 1, 2, 1), Err: LexError{Message: "boom"}}
	errs.Error(want)

	f := NewInFile[LexError]("input.lang", src, errs)

	assert.Equal(t, []Spanned[LexError]{want}, f.Errors().All())
}

func TestRenderProducesCaretAndUnderline(t *testing.T) {
	src := "aa\nbbbbbbbb\ncc"
	errs := NewErrors[Spanned[LexError]]()
	errs.Error(Spanned[LexError]{
		Span: span(2, 5, 7, 2, 8, 10),
		Err:  LexError{Message: "unexpected token"},
	})
	f := NewInFile[LexError]("input.lang", src, errs)

	out := Render[LexError](f, RenderOptions{})

	want := "input.lang:unexpected token\n" +
		"bbbbbbbb\n" +
		"    ^~~\n"
	assert.Equal(t, want, out)
}

func TestRenderHandlesZeroWidthSpan(t *testing.T) {
	src := "abc"
	errs := NewErrors[Spanned[LexError]]()
	errs.Error(Spanned[LexError]{
		Span: span(1, 1, 0, 1, 1, 0),
		Err:  LexError{Message: "here"},
	})
	f := NewInFile[LexError]("input.lang", src, errs)

	out := Render[LexError](f, RenderOptions{})
	want := "input.lang:here\nabc\n^\n"
	assert.Equal(t, want, out)
}

func TestRenderMultipleErrorsInOrder(t *testing.T) {
	src := "line one\nline two"
	errs := NewErrors[Spanned[LexError]]()
	errs.Error(Spanned[LexError]{Span: span(1, 1, 0, 1, 2, 1), Err: LexError{Message: "first"}})
	errs.Error(Spanned[LexError]{Span: span(2, 1, 9, 2, 2, 10), Err: LexError{Message: "second"}})
	f := NewInFile[LexError]("input.lang", src, errs)

	out := Render[LexError](f, RenderOptions{})
	want := "input.lang:first\n" +
		"line one\n" +
		"^\n" +
		"input.lang:second\n" +
		"line two\n" +
		"^\n"
	assert.Equal(t, want, out)
}
