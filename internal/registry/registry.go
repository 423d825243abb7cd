// Package registry holds the per-namespace name→entity tables used to
// resolve cross-references while binding a scenario. Each import run owns
// its own Set; there is no global state and no lifetime beyond the run.
package registry

import (
	"fmt"

	"github.com/vk/simscene/internal/model"
)

// UnresolvedReferenceError reports a name that does not resolve in its
// namespace at the point of lookup.
type UnresolvedReferenceError struct {
	Namespace string
	Name      string
}

// Error implements the error interface.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference: no %s named %q", e.Namespace, e.Name)
}

// Table is a single-namespace registry. Exactly one builder writes to each
// table; all later builders only read.
type Table[T any] struct {
	namespace string
	entries   map[string]T
}

// NewTable creates an empty table for the given namespace. The namespace
// string only appears in error messages.
func NewTable[T any](namespace string) *Table[T] {
	return &Table[T]{
		namespace: namespace,
		entries:   make(map[string]T),
	}
}

// Add inserts or replaces the entry under name. Replacement is deliberate:
// the surface-class builder relies on last-wins semantics for repeated
// class names.
func (t *Table[T]) Add(name string, v T) {
	t.entries[name] = v
}

// Lookup resolves name or fails with an *UnresolvedReferenceError. A miss
// is never a silent no-op.
func (t *Table[T]) Lookup(name string) (T, error) {
	v, ok := t.entries[name]
	if !ok {
		var zero T
		return zero, &UnresolvedReferenceError{Namespace: t.namespace, Name: name}
	}
	return v, nil
}

// Len reports the number of registered entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Set bundles the three namespaces a scenario binds against. The
// namespaces are independent; a species and a mesh object may share a
// name without colliding.
type Set struct {
	Species        *Table[*model.Species]
	Meshes         *Table[*model.MeshObject]
	SurfaceClasses *Table[*model.SurfaceClass]
}

// NewSet creates a fresh, empty registry set for one import run.
func NewSet() *Set {
	return &Set{
		Species:        NewTable[*model.Species]("species"),
		Meshes:         NewTable[*model.MeshObject]("mesh object"),
		SurfaceClasses: NewTable[*model.SurfaceClass]("surface class"),
	}
}
