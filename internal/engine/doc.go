// Package engine defines the narrow construction API through which a
// bound scenario is handed to a simulation engine, plus an in-memory
// Recorder implementation.
//
// The protocol is one-directional: the binder only writes construction
// commands, it never reads engine state back. Region lookups during
// binding go against the registries owned by the binder, not the engine.
//
// The Recorder journals commands and exposes them only after Commit, so a
// failed import leaves no partially constructed scenario visible. It also
// serves as the test double for the builders.
package engine
