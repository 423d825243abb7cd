// Package model defines the domain entities of a resolved simulation
// scenario: molecular species, reaction rules, mesh geometry with named
// surface regions, surface classes, release sites, and run parameters.
//
// The types here are pure data. They are created by the binder, owned by
// the registries for the duration of one import run, and consumed by the
// engine through its construction API. Nothing in this package performs
// name resolution or I/O.
package model
