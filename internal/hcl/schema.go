package hcl

import "github.com/zclconf/go-cty/cty"

// scenarioFile is the top-level structure of a scenario file for gohcl
// decoding. Every section is optional; a scenario need not use every
// feature.
type scenarioFile struct {
	Species              []*speciesBlock      `hcl:"species,block"`
	Reactions            []*reactionBlock     `hcl:"reaction,block"`
	Objects              []*objectBlock       `hcl:"object,block"`
	SurfaceClasses       []*surfaceClassBlock `hcl:"surface_class,block"`
	ModifySurfaceRegions []*modifyRegionBlock `hcl:"modify_surface_region,block"`
	ReleaseSites         []*releaseSiteBlock  `hcl:"release_site,block"`
	Counts               []*countBlock        `hcl:"count,block"`
	Viz                  *vizBlock            `hcl:"viz_output,block"`
	Init                 *initBlock           `hcl:"initialization,block"`
}

type speciesBlock struct {
	Name              string    `hcl:"name,label"`
	DiffusionConstant cty.Value `hcl:"diffusion_constant"`
	Type              string    `hcl:"type"`
	ExportViz         bool      `hcl:"export_viz,optional"`
}

type reactionBlock struct {
	Name      string    `hcl:"name,optional"`
	FwdRate   cty.Value `hcl:"fwd_rate"`
	BkwdRate  cty.Value `hcl:"bkwd_rate,optional"`
	Reactants string    `hcl:"reactants"`
	Products  string    `hcl:"products"`
}

type objectBlock struct {
	Name     string         `hcl:"name,label"`
	Vertices [][]float64    `hcl:"vertices"`
	Faces    [][]int        `hcl:"faces"`
	Regions  []*regionBlock `hcl:"region,block"`
}

type regionBlock struct {
	Name            string `hcl:"name,label"`
	IncludeElements []int  `hcl:"include_elements"`
}

type surfaceClassBlock struct {
	Name       string           `hcl:"name,label"`
	Properties []*propertyBlock `hcl:"property,block"`
}

type propertyBlock struct {
	AffectedMols string `hcl:"affected_mols"`
	Molecule     string `hcl:"molecule,optional"`
	ClassType    string `hcl:"type"`
}

type modifyRegionBlock struct {
	Object       string `hcl:"object"`
	Region       string `hcl:"region"`
	SurfaceClass string `hcl:"surface_class"`
}

type releaseSiteBlock struct {
	Name       string    `hcl:"name,label"`
	ObjectExpr string    `hcl:"object_expr"`
	Molecule   string    `hcl:"molecule"`
	Quantity   cty.Value `hcl:"quantity"`
	Orient     bool      `hcl:"orient,optional"`
}

type countBlock struct {
	Molecule string `hcl:"molecule"`
	Location string `hcl:"location"`
	Object   string `hcl:"object,optional"`
	Region   string `hcl:"region,optional"`
}

type vizBlock struct {
	ExportAll bool `hcl:"export_all,optional"`
}

type initBlock struct {
	Iterations cty.Value `hcl:"iterations"`
	TimeStep   cty.Value `hcl:"time_step"`
}
