// Package config defines the format-agnostic scenario document model,
// along with the Loader interface for reading it from various sources.
//
// The config.Scenario is the single source of truth for the binder.
// Concrete loader implementations, such as for HCL and for the legacy
// JSON data model, are provided in separate packages. Scalar fields that
// the binder converts to numbers stay string-typed here: conversion
// failures are binder-level errors with document context, not decode
// errors.
package config
