// Package token implements the two embedded mini-languages of scenario
// documents as small, independently testable grammars:
//
//   - molecule tokens: a species name with an optional one-character
//     orientation suffix, as they appear in reactant/product strings and
//     release specifications ("A'", "B,", "C;", "D");
//   - object expressions: a mesh-object name with an optional bracketed
//     region ("Cell" or "Cell[Top]").
//
// The package only tokenizes; resolving the extracted names against the
// registries is the binder's job.
package token
