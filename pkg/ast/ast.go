// Package ast defines the shape of the already-typed expression tree the
// location visitor walks. Parsing and type inference are external
// collaborators' responsibility; this package only declares the node
// shapes pkg/locate needs to recurse over, the Go analogue of gluon's
// base::ast::Expr/Pattern enums.
package ast

import (
	"github.com/ondrik-lang/hindsight/pkg/pos"
	"github.com/ondrik-lang/hindsight/pkg/types"
)

// Expr is the sum type of expression node values. Concrete node types
// below each implement it via an unexported marker method, the
// idiomatic Go closed-sum-type pattern.
type Expr interface {
	exprNode()
}

// LExpr is a located expression: a Span plus the already-resolved Type
// the external type-inference collaborator attached to it, wrapping one
// concrete Expr value. It is the Go analogue of gluon's LExpr<TcIdent>.
type LExpr struct {
	Span  pos.Span
	Typ   types.Type
	Value Expr
}

// EnvTypeOf implements types.Typed. The node's type was already
// resolved by the upstream TypeEnv collaborator before the AST reached
// this package, so no further lookup against env is required -- it is
// accepted purely to satisfy the Typed interface.
func (e *LExpr) EnvTypeOf(_ types.TypeEnv) types.Type { return e.Typ }

// LIdent is a located identifier: a sub-identifier that carries its own
// Span distinct from its parent expression's, such as the operator of a
// BinOp or the field name of a FieldAccess.
type LIdent struct {
	Span pos.Span
	Name types.Ident
	Typ  types.Type
}

// EnvTypeOf implements types.Typed for the same reason as LExpr's.
func (i *LIdent) EnvTypeOf(_ types.TypeEnv) types.Type { return i.Typ }

// Identifier is a bare variable or constructor reference.
type Identifier struct {
	Name types.Ident
}

func (*Identifier) exprNode() {}

// LiteralKind classifies a Literal's payload.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	StringLiteral
	CharLiteral
	BoolLiteral
)

// Literal is a constant value.
type Literal struct {
	Kind LiteralKind
	Int  int64
	Flt  float64
	Str  types.InternedStr
	Char rune
	Bool bool
}

func (*Literal) exprNode() {}

// Call is a function application `fn(args...)`.
type Call struct {
	Fn   *LExpr
	Args []*LExpr
}

func (*Call) exprNode() {}

// IfElse is a conditional expression.
type IfElse struct {
	Cond *LExpr
	Then *LExpr
	Else *LExpr
}

func (*IfElse) exprNode() {}

// Alt is one alternative of a Match: a pattern and the expression it
// guards.
type Alt struct {
	Pattern    Pattern
	Expression *LExpr
}

// Match is a pattern match over a scrutinee expression.
type Match struct {
	Scrutinee *LExpr
	Alts      []Alt
}

func (*Match) exprNode() {}

// BinOp is a binary operator application. Op is itself a located
// identifier so the visitor can report a cursor landing directly on
// the operator token.
type BinOp struct {
	Left  *LExpr
	Op    *LIdent
	Right *LExpr
}

func (*BinOp) exprNode() {}

// Binding is one `let` clause: a (possibly destructuring) pattern
// naming what is bound, the formal arguments if the binding is
// function-shaped, and the bound expression.
type Binding struct {
	Name       Pattern
	Arguments  []*LIdent
	Expression *LExpr
}

// Let introduces one or more bindings, visible both to each other and
// to Body.
type Let struct {
	Bindings []Binding
	Body     *LExpr
}

func (*Let) exprNode() {}

// TypeAlias introduces a type alias and wraps the expression it scopes
// over.
type TypeAlias struct {
	Name string
	Body *LExpr
}

func (*TypeAlias) exprNode() {}

// FieldAccess projects a field out of a record-typed expression. Field
// is a located identifier distinct from Expr's own span.
type FieldAccess struct {
	Expr  *LExpr
	Field *LIdent
}

func (*FieldAccess) exprNode() {}

// Array is an array literal.
type Array struct {
	Items []*LExpr
}

func (*Array) exprNode() {}

// RecordField is one field of a Record expression. Value is nil for a
// punned field (e.g. `{ x }` instead of `{ x = x }`).
type RecordField struct {
	Name  string
	Value *LExpr
}

// Record is a record construction expression.
type Record struct {
	Fields []RecordField
}

func (*Record) exprNode() {}

// Lambda is an anonymous function.
type Lambda struct {
	Args []*LIdent
	Body *LExpr
}

func (*Lambda) exprNode() {}

// Tuple is a tuple literal.
type Tuple struct {
	Items []*LExpr
}

func (*Tuple) exprNode() {}

// Block is a sequence of expressions evaluated for their side effects,
// with the value of the last one escaping.
type Block struct {
	Exprs []*LExpr
}

func (*Block) exprNode() {}

// Pattern is the sum type of pattern node values.
type Pattern interface {
	patternNode()
}

// RecordFieldPattern binds one field of a RecordPattern, optionally
// under a different local name.
type RecordFieldPattern struct {
	Field  string
	Rename *string
}

// BoundName returns the local name this field pattern binds: Rename if
// present, otherwise Field itself.
func (f RecordFieldPattern) BoundName() string {
	if f.Rename != nil {
		return *f.Rename
	}
	return f.Field
}

// RecordPattern destructures a record, binding the record's own
// identifier (whose Typ resolves, via alias removal, to the record's
// structural type) plus a list of field patterns.
type RecordPattern struct {
	ID     *LIdent
	Fields []RecordFieldPattern
}

func (*RecordPattern) patternNode() {}

// IdentifierPattern binds a single identifier.
type IdentifierPattern struct {
	ID *LIdent
}

func (*IdentifierPattern) patternNode() {}

// ConstructorPattern matches a data constructor, binding its
// arguments.
type ConstructorPattern struct {
	Constructor types.Ident
	Args        []*LIdent
}

func (*ConstructorPattern) patternNode() {}
