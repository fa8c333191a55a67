// Package testenv provides in-memory collaborator doubles for exercising
// pkg/lexer and pkg/locate without a real symbol-interning service or
// type-inference engine. The map-backed Set/Get/Inherit shape follows
// ccuetoh-maqui-lang's ValueLookup (pkg/ir.go), generalized from LLVM
// values to interned strings and inferred types.
package testenv

import (
	"fmt"
	"sync"

	"github.com/ondrik-lang/hindsight/pkg/types"
)

// GC is a no-op garbage-collector double; the core only ever threads it
// through as an opaque context.
type GC struct{}

// Interned is the in-memory InternedStr: identity equality is simply Go
// pointer equality on the handle, since Interner guarantees one handle
// per distinct byte sequence.
type Interned struct {
	value string
}

func (i *Interned) String() string { return i.value }

// Interner deduplicates byte sequences into *Interned handles, mirroring
// ValueLookup's single map. It guards its map with a mutex purely so
// tests can share one instance across batch.LexMany's goroutines.
type Interner struct {
	mu      sync.Mutex
	handles map[string]*Interned
}

// NewInterner constructs an empty Interner.
func NewInterner() *Interner {
	return &Interner{handles: make(map[string]*Interned)}
}

// Intern returns the single handle for data, creating it on first use.
func (in *Interner) Intern(_ types.GC, data []byte) (types.InternedStr, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	s := string(data)
	if h, ok := in.handles[s]; ok {
		return h, nil
	}

	h := &Interned{value: s}
	in.handles[s] = h
	return h, nil
}

// DisplayEnv maps an identifier to its printable name. In this in-memory
// double the identifier already carries its own name, so Name simply
// unwraps it -- the real collaborator would additionally track spans for
// located expressions, but pkg/locate only ever calls DisplayEnv.Name.
type DisplayEnv struct{}

// NewDisplayEnv constructs a DisplayEnv double.
func NewDisplayEnv() DisplayEnv { return DisplayEnv{} }

func (DisplayEnv) Name(id types.Ident) string {
	if id == nil {
		return "<nil>"
	}
	return id.String()
}

// Type is the in-memory types.Type double: a name plus, for record
// types, a field list.
type Type struct {
	Name string
	// FieldList, when non-nil, makes this Type also satisfy
	// types.RecordType.
	FieldList []types.Field
}

func (t *Type) String() string { return t.Name }

// Fields implements types.RecordType.
func (t *Type) Fields() []types.Field { return t.FieldList }

// TypeEnv maps identifiers to types, mirroring ValueLookup's Get/Set and
// its Inherit-based scope composition (pkg/ir.go's NewValueLookup).
type TypeEnv struct {
	entries map[string]types.Type
}

// NewTypeEnv constructs an empty TypeEnv.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{entries: make(map[string]types.Type)}
}

// Set records the type of the identifier named name.
func (e *TypeEnv) Set(name string, t types.Type) {
	e.entries[name] = t
}

// Inherit copies every entry of other into e, the same shape as
// ValueLookup.Inherit.
func (e *TypeEnv) Inherit(other *TypeEnv) {
	for k, v := range other.entries {
		e.entries[k] = v
	}
}

// TypeOf implements types.TypeEnv by looking the identifier's name up
// via its own String(), which in this double is the declared name.
func (e *TypeEnv) TypeOf(id types.Ident) (types.Type, bool) {
	if id == nil {
		return nil, false
	}
	t, ok := e.entries[id.String()]
	return t, ok
}

// AliasResolver is the identity alias resolver: this double never
// introduces type aliases, so RemoveAliases is a no-op pass-through.
type AliasResolver struct{}

func (AliasResolver) RemoveAliases(_ types.TypeEnv, t types.Type) types.Type { return t }

// Intern is a convenience for tests that need an types.InternedStr
// without threading an Interner/GC pair through by hand.
func Intern(in *Interner, s string) types.InternedStr {
	h, err := in.Intern(GC{}, []byte(s))
	if err != nil {
		panic(fmt.Sprintf("testenv: unexpected intern error: %v", err))
	}
	return h
}
