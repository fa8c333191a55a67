// Package batch generalizes ccuetoh-maqui-lang's concurrent build
// pipeline (pkg/compiler.go's Compiler.build, which fans the IR-writer
// and the clang subprocess out onto an errgroup.Group) to this core's
// domain: running independent diagnostic or lexing passes over several
// source units in parallel. No component here holds process-wide
// state, so every unit can run on its own goroutine without locking.
package batch

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ondrik-lang/hindsight/pkg/diagnostic"
	"github.com/ondrik-lang/hindsight/pkg/lexer"
	"github.com/ondrik-lang/hindsight/pkg/token"
	"github.com/ondrik-lang/hindsight/pkg/types"
)

// Unit is one source file's worth of already-spanned upstream errors,
// ready to be wrapped with its source context.
type Unit[E any] struct {
	File   string
	Source string
	Errors *diagnostic.Errors[diagnostic.Spanned[E]]
}

// Diagnose runs diagnostic.NewInFile for every unit concurrently and
// returns the results in the same order as units. Each unit is
// independent -- no component shares state across goroutines -- so a
// failure of one does not prevent the others from completing; Diagnose
// itself only returns an error if ctx is canceled.
func Diagnose[E any](ctx context.Context, units []Unit[E]) ([]*diagnostic.InFile[E], error) {
	results := make([]*diagnostic.InFile[E], len(units))

	g, gctx := errgroup.WithContext(ctx)
	for i := range units {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u := units[i]
			results[i] = diagnostic.NewInFile[E](u.File, u.Source, u.Errors)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Source is one file to be tokenized: a name (used only for error
// reporting by the caller) and its reader.
type Source struct {
	Name   string
	Reader io.Reader
}

// LexResult is the outcome of lexing one Source to exhaustion.
type LexResult struct {
	Name   string
	Tokens []token.Token
}

// LexMany runs the Lexer over every source concurrently, each against
// its own Interner-sharing-but-otherwise-independent Lexer instance,
// and collects every token up to and including EOF (or the first Error
// token, which is appended before stopping). Results preserve input
// order regardless of completion order.
func LexMany(ctx context.Context, interner types.Interner, gc types.GC, sources []Source) ([]LexResult, error) {
	results := make([]LexResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i := range sources {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			src := sources[i]
			l, err := lexer.New(interner, gc, src.Reader)
			if err != nil {
				return err
			}

			var toks []token.Token
			for {
				t := l.Next()
				toks = append(toks, t)
				if t.Type == token.EOF || t.Type == token.Error {
					break
				}
			}

			results[i] = LexResult{Name: src.Name, Tokens: toks}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
