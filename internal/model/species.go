package model

// Species is a molecular entity type. Surface is true for 2-D
// membrane-confined species and false for 3-D volumetric ones.
// A Species is immutable once created.
type Species struct {
	Name              string
	DiffusionConstant float64
	Surface           bool
}

// Orientation tags which side of a surface a molecule reference faces.
// The zero value is OrientMix, meaning "unspecified/either".
type Orientation int

const (
	OrientMix Orientation = iota
	OrientUp
	OrientDown
)

// String implements fmt.Stringer for log output.
func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "up"
	case OrientDown:
		return "down"
	default:
		return "mix"
	}
}

// MoleculeRef pairs a species with an orientation. It is produced
// transiently while binding reactant/product tokens and is not registered
// anywhere on its own.
type MoleculeRef struct {
	Species     *Species
	Orientation Orientation
}
