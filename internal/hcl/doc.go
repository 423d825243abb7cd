// Package hcl implements the config.Loader interface for HCL scenario
// files, the native authoring format of this tool.
//
// Decoding is two-staged: gohcl decodes the file into HCL-specific schema
// structs, and a translate step converts those into the format-agnostic
// config.Scenario. Scalar numeric fields are decoded as cty values so
// authors may write them either as bare numbers or as quoted numeric
// strings, matching the legacy JSON data model.
package hcl
