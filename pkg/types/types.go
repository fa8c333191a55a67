// Package types declares the capabilities the lexer, AST and location
// visitor require of their injected collaborators. The core never
// constructs an interner, a garbage collector, a display environment or
// a type environment itself; it only consumes them through these
// interfaces, the same way ccuetoh-maqui-lang's Compiler is handed a
// Tokenizer and a SyntacticAnalyzer rather than building its own.
package types

// InternedStr is an opaque handle produced by an Interner. Two handles
// compare equal (by identity, i.e. ==) if and only if they were interned
// from equal byte sequences.
type InternedStr interface {
	// String returns the original bytes this handle was interned from.
	String() string
}

// GC is threaded through interning calls as a unique-borrowed context.
// The core treats it as opaque and never inspects or mutates it
// directly.
type GC interface{}

// Interner deduplicates byte sequences into InternedStr handles.
type Interner interface {
	Intern(gc GC, data []byte) (InternedStr, error)
}

// Ident is the identifier type the AST and the location visitor are
// parameterized over. Concrete ASTs typically use an InternedStr as the
// underlying identifier; the visitor only needs it to be comparable and
// displayable via DisplayEnv.
type Ident = InternedStr

// DisplayEnv supplies a printable name for an identifier. It has no
// span lookup: located expressions carry their own Span (ast.LExpr.Span),
// which pkg/locate reads directly.
type DisplayEnv interface {
	Name(id Ident) string
}

// Type is an opaque handle for an inferred type. The core never
// constructs or inspects one; it only carries it between TypeEnv and a
// query strategy's result.
type Type interface {
	String() string
}

// TypeEnv supplies a Type for an identifier, and resolves the type
// already attached to a typed AST node (EnvTypeOf mirrors gluon's
// `Typed::env_type_of`).
type TypeEnv interface {
	TypeOf(id Ident) (Type, bool)
}

// Typed is implemented by AST nodes that already carry an inferred type,
// so the GetType strategy can read it back without re-deriving it.
type Typed interface {
	EnvTypeOf(env TypeEnv) Type
}

// RecordType is the structural shape a Type can be unfolded to by an
// AliasResolver. Field order matches declaration order, since a
// record pattern zips its bound names against Fields() positionally.
type RecordType interface {
	Type
	Fields() []Field
}

// Field is one member of a RecordType.
type Field struct {
	Name string
	Type Type
}

// AliasResolver canonicalizes a type by recursively unfolding named type
// aliases until a structural form (record, function, ...) is reached.
type AliasResolver interface {
	RemoveAliases(env TypeEnv, t Type) Type
}
