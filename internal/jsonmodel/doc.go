// Package jsonmodel implements the config.Loader interface for the
// legacy JSON data-model format: a nested document under a top-level
// "mcell" key, with sections such as define_molecules.molecule_list and
// geometrical_objects.object_list.
//
// Scalar numeric fields appear in the wild both as JSON strings and as
// JSON numbers; both decode to the string-typed config fields. Missing
// sections are permitted and yield empty scenario sections.
package jsonmodel
