package model

// ReleaseSite specifies where and how many molecules of a species are
// introduced at simulation start. A nil Region targets the whole object.
type ReleaseSite struct {
	Name     string
	Object   *MeshObject
	Region   *Region
	Species  *Species
	Quantity int
	Orient   bool
}
