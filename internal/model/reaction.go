package model

// Reaction is a unidirectional reaction rule. Both Reactants and Products
// are non-empty; every referenced species exists in the species registry
// before the reaction is built.
type Reaction struct {
	Name      string // optional, empty when the document does not name it
	Reactants []MoleculeRef
	Products  []MoleculeRef
	FwdRate   float64
}
