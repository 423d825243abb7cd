package model

// SurfaceClass is a named surface behavior profile bound to one species.
// Type is the lowercased behavior tag, e.g. "reflective", "absorptive",
// "transparent".
type SurfaceClass struct {
	Name    string
	Type    string
	Species *Species
}
