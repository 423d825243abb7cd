// Package binder translates a format-agnostic scenario document into a
// fully resolved object graph, writing it into a simulation engine
// through its construction API.
//
// Binding is a single forward pass of strictly ordered builders: species,
// reactions, geometry, surface classes, surface-region modification,
// release sites, counts, visualization, initialization. Each builder
// consumes its document section plus the registries populated by earlier
// builders; exactly one builder writes to each registry. The order is
// sequential on purpose — deterministic error reporting matters more than
// parallel speedup at the entity counts this domain sees.
//
// The pass fails fast: the first error aborts the import, and nothing is
// committed to the engine.
package binder
