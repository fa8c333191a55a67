// Package locate implements a source-position-aware AST traversal
// engine: given a typed AST and a target Location, it descends to the
// smallest enclosing sub-expression and dispatches to a pluggable query
// Strategy. It is the direct generalization of the FindVisitor/OnFound
// design gluon's completion engine uses, adapted to Go's interface
// idiom in place of a trait.
package locate

import (
	"github.com/ondrik-lang/hindsight/pkg/ast"
	"github.com/ondrik-lang/hindsight/pkg/pos"
)

// Strategy is the capability set a query dispatches to once the
// smallest enclosing node for a target Location is identified. It is
// the Go interface analogue of gluon's OnFound trait.
type Strategy interface {
	// OnIdent is called for every identifier that enters lexical scope
	// along the path to the target (lambda arguments, let-binding
	// arguments).
	OnIdent(id *ast.LIdent)

	// OnPattern is called once per let-binding pattern, before the
	// binding bodies are inspected, so that a pattern's bound names are
	// visible to the let's own body.
	OnPattern(p ast.Pattern)

	// Expr is called when the target lies on an expression node.
	Expr(node *ast.LExpr)

	// Ident is called when the target lies on a sub-identifier that is
	// not itself an expression node: the operator of a BinOp, or the
	// field name of a FieldAccess. context is the enclosing expression.
	Ident(context *ast.LExpr, id *ast.LIdent)

	// Nothing is called when the target lies on whitespace or beyond
	// all children.
	Nothing()
}

// FindVisitor walks a typed AST toward a target Location, maintaining a
// lexical environment via Strategy.OnIdent/OnPattern along the way.
type FindVisitor struct {
	Target   pos.Location
	Strategy Strategy
}

// VisitExpr descends from current toward v.Target, invoking at most one
// of v.Strategy's Expr/Ident/Nothing callbacks once the smallest
// enclosing node is found. A Record whose initialized fields do not
// contain the target invokes none of them.
func (v *FindVisitor) VisitExpr(current *ast.LExpr) {
	switch e := current.Value.(type) {
	case *ast.Identifier, *ast.Literal:
		if current.Span.Containment(v.Target) == pos.Equal {
			v.Strategy.Expr(current)
		} else {
			v.Strategy.Nothing()
		}

	case *ast.Call:
		v.visitOne(append([]*ast.LExpr{e.Fn}, e.Args...))

	case *ast.IfElse:
		v.visitOne([]*ast.LExpr{e.Cond, e.Then, e.Else})

	case *ast.Match:
		children := make([]*ast.LExpr, 0, len(e.Alts)+1)
		children = append(children, e.Scrutinee)
		for _, alt := range e.Alts {
			children = append(children, alt.Expression)
		}
		v.visitOne(children)

	case *ast.BinOp:
		v.visitBinOp(current, e)

	case *ast.Let:
		v.visitLet(e)

	case *ast.TypeAlias:
		v.VisitExpr(e.Body)

	case *ast.FieldAccess:
		switch e.Expr.Span.Containment(v.Target) {
		case pos.Less, pos.Equal:
			v.VisitExpr(e.Expr)
		default:
			v.Strategy.Ident(current, e.Field)
		}

	case *ast.Array:
		v.visitOne(e.Items)

	case *ast.Record:
		var withValue []*ast.LExpr
		for _, f := range e.Fields {
			if f.Value != nil {
				withValue = append(withValue, f.Value)
			}
		}
		if selected, found := selectSpanned(v.Target, withValue, func(x *ast.LExpr) pos.Span { return x.Span }); found {
			v.VisitExpr(selected)
		}

	case *ast.Lambda:
		for _, arg := range e.Args {
			v.Strategy.OnIdent(arg)
		}
		v.VisitExpr(e.Body)

	case *ast.Tuple:
		v.visitOne(e.Items)

	case *ast.Block:
		v.visitOne(e.Exprs)
	}
}

func (v *FindVisitor) visitOne(children []*ast.LExpr) {
	if len(children) == 0 {
		v.Strategy.Nothing()
		return
	}
	selected, _ := selectSpanned(v.Target, children, func(x *ast.LExpr) pos.Span { return x.Span })
	v.VisitExpr(selected)
}

func (v *FindVisitor) visitBinOp(current *ast.LExpr, e *ast.BinOp) {
	lc := e.Left.Span.Containment(v.Target)
	rc := e.Right.Span.Containment(v.Target)

	switch {
	case lc == pos.Greater && rc == pos.Less:
		v.Strategy.Ident(current, e.Op)
	case rc == pos.Greater || rc == pos.Equal:
		v.VisitExpr(e.Right)
	default:
		v.VisitExpr(e.Left)
	}
}

func (v *FindVisitor) visitLet(e *ast.Let) {
	for i := range e.Bindings {
		v.Strategy.OnPattern(e.Bindings[i].Name)
	}

	selected, found := selectSpanned(v.Target, e.Bindings, func(b ast.Binding) pos.Span { return b.Expression.Span })
	if found {
		for _, arg := range selected.Arguments {
			v.Strategy.OnIdent(arg)
		}
		v.VisitExpr(selected.Expression)
		return
	}

	v.VisitExpr(e.Body)
}

// selectSpanned is the smallest-enclosing-child selection primitive
// shared by every multi-child descent rule. It walks items in order and
// returns:
//
//   - the first item whose span contains target (found=true), or
//   - the item immediately before one that starts past target
//     (found=true) -- target sits in the whitespace right after it, and
//     that previous item is the closest preceding construct, or
//   - the last item, once the list is exhausted without ever matching
//     (found=false) -- callers use this to fall through to a sibling
//     default (e.g. Let's own body) instead of descending further.
func selectSpanned[T any](target pos.Location, items []T, spanOf func(T) pos.Span) (T, bool) {
	var prev T
	havePrev := false

	for _, item := range items {
		switch spanOf(item).Containment(target) {
		case pos.Equal:
			return item, true
		case pos.Less:
			if havePrev {
				return prev, true
			}
		}
		prev = item
		havePrev = true
	}

	return prev, false
}
