// Package typereg maps type names to factories for the config asset and
// scene component types the catalog can instantiate.
//
// The registry replaces runtime reflection lookup with static registration:
// every installable type is registered by its catalog module at package init,
// so the registry and its consumers are always compiled together. A miss is
// still possible (a descriptor naming a type nothing registered) and is
// reported as not-found rather than an error; callers treat it as "warn and
// give up for this invocation".
package typereg

import "sort"

// Kind classifies a registered type.
type Kind string

const (
	// KindConfigAsset marks a persisted settings object type.
	KindConfigAsset Kind = "config"

	// KindComponent marks a scene behavior component type.
	KindComponent Kind = "component"
)

// Type is a resolvable type handle: a name plus a factory producing a
// default-constructed instance.
type Type struct {
	// Name is the registered type name, unique within a scope.
	Name string

	// Kind classifies the type.
	Kind Kind

	// New returns a default-constructed instance. The instance must be
	// serializable (JSON-tagged struct or map).
	New func() any
}

// Scope is a named registry of types. Scopes model the places a type can
// live: the game runtime, the editor-only tooling, and a global fallback.
type Scope struct {
	name  string
	types map[string]Type
}

// NewScope returns an empty scope with the given name.
func NewScope(name string) *Scope {
	return &Scope{
		name:  name,
		types: make(map[string]Type),
	}
}

// Name returns the scope name.
func (s *Scope) Name() string {
	return s.name
}

// Register adds a type to the scope. Registering the same name twice
// replaces the earlier entry; catalog init order decides.
func (s *Scope) Register(t Type) {
	s.types[t.Name] = t
}

// Lookup returns the type registered under name.
func (s *Scope) Lookup(name string) (Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

// Names returns the registered type names in sorted order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.types))
	for n := range s.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolver searches an ordered list of scopes, most-likely-first, stopping
// at the first hit.
type Resolver struct {
	scopes []*Scope
}

// NewResolver creates a resolver over the given scopes in search order.
func NewResolver(scopes ...*Scope) *Resolver {
	return &Resolver{scopes: scopes}
}

// Resolve looks up a type by name. The second return value is false when no
// scope has the type; that is a normal condition, not an error.
func (r *Resolver) Resolve(name string) (Type, bool) {
	for _, s := range r.scopes {
		if t, ok := s.Lookup(name); ok {
			return t, true
		}
	}
	return Type{}, false
}

// Default scopes, populated by catalog module registration at init.
var (
	// RuntimeScope holds types compiled into the game runtime.
	RuntimeScope = NewScope("runtime")

	// EditorScope holds editor-only types (build configuration).
	EditorScope = NewScope("editor")

	// GlobalScope is the bare fallback for anything else.
	GlobalScope = NewScope("global")
)

// DefaultResolver searches runtime, then editor, then global.
func DefaultResolver() *Resolver {
	return NewResolver(RuntimeScope, EditorScope, GlobalScope)
}
