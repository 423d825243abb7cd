package config

// Scenario is the unified, format-agnostic representation of one scenario
// document. Section order in the document does not matter; the binder
// imposes its own pass order.
type Scenario struct {
	Species              []SpeciesDef
	Reactions            []ReactionDef
	Objects              []ObjectDef
	SurfaceClasses       []SurfaceClassDef
	ModifySurfaceRegions []SurfaceRegionDef
	ReleaseSites         []ReleaseSiteDef
	Counts               []CountDef
	Viz                  VizDef
	Init                 InitDef
}

// SpeciesDef describes one molecular species.
type SpeciesDef struct {
	Name              string
	DiffusionConstant string
	Type              string // "2D" for surface-bound, anything else volumetric
	ExportViz         bool
}

// ReactionDef describes one reaction rule. Reactants and Products are
// " + "-joined molecule token strings. BkwdRate is carried through from
// the document but not bound; see the reaction builder.
type ReactionDef struct {
	Name      string
	FwdRate   string
	BkwdRate  string
	Reactants string
	Products  string
}

// ObjectDef describes one polygonal mesh object and its named regions.
type ObjectDef struct {
	Name     string
	Vertices [][]float64
	Faces    [][]int
	Regions  []RegionDef
}

// RegionDef names a subset of an object's faces.
type RegionDef struct {
	Name            string
	IncludeElements []int
}

// SurfaceClassDef describes a named surface class and its properties.
type SurfaceClassDef struct {
	Name       string
	Properties []SurfacePropertyDef
}

// SurfacePropertyDef is one property entry of a surface class. Molecule
// is only meaningful when AffectedMols selects a single molecule.
type SurfacePropertyDef struct {
	AffectedMols string
	Molecule     string
	ClassType    string
}

// SurfaceRegionDef assigns a surface class to a region of a mesh object.
type SurfaceRegionDef struct {
	ObjectName       string
	RegionName       string
	SurfaceClassName string
}

// ReleaseSiteDef describes a point/region release specification.
// ObjectExpr is either a bare object name or "Object[Region]".
type ReleaseSiteDef struct {
	Name       string
	ObjectExpr string
	Molecule   string
	Quantity   string
	Orient     bool
}

// CountDef requests population tracking of a species at world, object, or
// region scope.
type CountDef struct {
	Molecule   string
	Location   string // "World", "Object", or "Region"
	ObjectName string
	RegionName string
}

// VizDef holds the global visualization switches.
type VizDef struct {
	ExportAll bool
}

// InitDef holds the scalar run parameters.
type InitDef struct {
	Iterations string
	TimeStep   string
}
