package locate

import (
	"strings"

	"github.com/ondrik-lang/hindsight/pkg/ast"
	"github.com/ondrik-lang/hindsight/pkg/pos"
	"github.com/ondrik-lang/hindsight/pkg/types"
)

// noopHooks supplies default, no-op OnIdent/OnPattern implementations,
// the Go equivalent of OnFound's default trait methods in the gluon
// original.
type noopHooks struct{}

func (noopHooks) OnIdent(*ast.LIdent)  {}
func (noopHooks) OnPattern(ast.Pattern) {}

// getType is the "type-at-position" query strategy.
type getType struct {
	noopHooks
	env    types.TypeEnv
	result types.Type
}

func (g *getType) Expr(node *ast.LExpr) {
	g.result = node.EnvTypeOf(g.env)
}

func (g *getType) Ident(_ *ast.LExpr, id *ast.LIdent) {
	g.result = id.EnvTypeOf(g.env)
}

func (g *getType) Nothing() {}

// Find runs the location visitor with the GetType strategy and returns
// the type at target, or ok=false if no node was found there. A
// not-found result is a normal return value, never an error.
func Find(env types.TypeEnv, root *ast.LExpr, target pos.Location) (types.Type, bool) {
	strategy := &getType{env: env}
	(&FindVisitor{Target: target, Strategy: strategy}).VisitExpr(root)
	if strategy.result == nil {
		return nil, false
	}
	return strategy.result, true
}

// Suggestion is one completion candidate: an identifier and its type.
type Suggestion struct {
	Name string
	Type types.Type
}

// scopeEntry is one binding recorded by the Suggest strategy.
type scopeEntry struct {
	name string
	typ  types.Type
}

// scopedStack accumulates bindings along the single root-to-target path
// the visitor follows. Because VisitExpr only ever recurses into the one
// child selectSpanned chose, the path is linear, so a flat append-only
// stack already reflects exactly the bindings in scope at the target --
// no frame popping is required (see DESIGN.md for why this is
// equivalent to push/pop framing here).
type scopedStack struct {
	entries []scopeEntry
}

func (s *scopedStack) insert(name string, typ types.Type) {
	s.entries = append(s.entries, scopeEntry{name: name, typ: typ})
}

// suggest is the identifier-completion query strategy.
type suggest struct {
	display types.DisplayEnv
	env     types.TypeEnv
	alias   types.AliasResolver
	stack   scopedStack
	result  []Suggestion
}

func (s *suggest) OnIdent(id *ast.LIdent) {
	s.stack.insert(s.display.Name(id.Name), id.Typ)
}

func (s *suggest) OnPattern(p ast.Pattern) {
	switch pt := p.(type) {
	case *ast.RecordPattern:
		unaliased := s.alias.RemoveAliases(s.env, pt.ID.Typ)
		if rec, ok := unaliased.(types.RecordType); ok {
			fields := rec.Fields()
			for i, fp := range pt.Fields {
				if i >= len(fields) {
					break
				}
				s.stack.insert(fp.BoundName(), fields[i].Type)
			}
		}
	case *ast.IdentifierPattern:
		s.stack.insert(s.display.Name(pt.ID.Name), pt.ID.Typ)
	case *ast.ConstructorPattern:
		for _, arg := range pt.Args {
			s.stack.insert(s.display.Name(arg.Name), arg.Typ)
		}
	}
}

func (s *suggest) Expr(node *ast.LExpr) {
	id, ok := node.Value.(*ast.Identifier)
	if !ok {
		return
	}
	prefix := s.display.Name(id.Name)
	for _, e := range s.stack.entries {
		if strings.HasPrefix(e.name, prefix) {
			s.result = append(s.result, Suggestion{Name: e.name, Type: e.typ})
		}
	}
}

func (s *suggest) Ident(context *ast.LExpr, id *ast.LIdent) {
	fa, ok := context.Value.(*ast.FieldAccess)
	if !ok {
		return
	}

	receiver := s.alias.RemoveAliases(s.env, fa.Expr.EnvTypeOf(s.env))
	rec, ok := receiver.(types.RecordType)
	if !ok {
		return
	}

	prefix := s.display.Name(id.Name)
	for _, f := range rec.Fields() {
		if strings.HasPrefix(f.Name, prefix) {
			s.result = append(s.result, Suggestion{Name: f.Name, Type: f.Type})
		}
	}
}

func (s *suggest) Nothing() {
	for _, e := range s.stack.entries {
		s.result = append(s.result, Suggestion{Name: e.name, Type: e.typ})
	}
}

// Suggest runs the location visitor with the Suggest strategy and
// returns the accumulated completion candidates in the order the
// strategy produced them.
func Suggest(display types.DisplayEnv, env types.TypeEnv, alias types.AliasResolver, root *ast.LExpr, target pos.Location) []Suggestion {
	strategy := &suggest{display: display, env: env, alias: alias}
	(&FindVisitor{Target: target, Strategy: strategy}).VisitExpr(root)
	return strategy.result
}
