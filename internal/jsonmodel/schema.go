package jsonmodel

import "encoding/json"

// scalar accepts either a JSON string or a JSON number and keeps the
// textual form; numeric conversion happens in the binder where failures
// carry document context.
type scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *scalar) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = scalar(num.String())
	return nil
}

// document is the top-level shape of a JSON data-model file.
type document struct {
	MCell mcellDocument `json:"mcell"`
}

type mcellDocument struct {
	DefineMolecules      *moleculeSection       `json:"define_molecules"`
	DefineReactions      *reactionSection       `json:"define_reactions"`
	GeometricalObjects   *geometrySection       `json:"geometrical_objects"`
	DefineSurfaceClasses *surfaceClassSection   `json:"define_surface_classes"`
	ModifySurfaceRegions *modifyRegionSection   `json:"modify_surface_regions"`
	ReleaseSites         *releaseSiteSection    `json:"release_sites"`
	ReactionDataOutput   *reactionOutputSection `json:"reaction_data_output"`
	VizOutput            *vizSection            `json:"viz_output"`
	Initialization       *initSection           `json:"initialization"`
}

type moleculeSection struct {
	MoleculeList []moleculeEntry `json:"molecule_list"`
}

type moleculeEntry struct {
	MolName           string `json:"mol_name"`
	DiffusionConstant scalar `json:"diffusion_constant"`
	MolType           string `json:"mol_type"`
	ExportViz         bool   `json:"export_viz"`
}

type reactionSection struct {
	ReactionList []reactionEntry `json:"reaction_list"`
}

type reactionEntry struct {
	RxnName   string `json:"rxn_name"`
	FwdRate   scalar `json:"fwd_rate"`
	BkwdRate  scalar `json:"bkwd_rate"`
	Reactants string `json:"reactants"`
	Products  string `json:"products"`
}

type geometrySection struct {
	ObjectList []objectEntry `json:"object_list"`
}

type objectEntry struct {
	Name                 string        `json:"name"`
	VertexList           [][]float64   `json:"vertex_list"`
	ElementConnections   [][]int       `json:"element_connections"`
	DefineSurfaceRegions []regionEntry `json:"define_surface_regions"`
}

type regionEntry struct {
	Name            string `json:"name"`
	IncludeElements []int  `json:"include_elements"`
}

type surfaceClassSection struct {
	SurfaceClassList []surfaceClassEntry `json:"surface_class_list"`
}

type surfaceClassEntry struct {
	Name                 string                 `json:"name"`
	SurfaceClassPropList []surfaceClassProperty `json:"surface_class_prop_list"`
}

type surfaceClassProperty struct {
	AffectedMols  string `json:"affected_mols"`
	Molecule      string `json:"molecule"`
	SurfClassType string `json:"surf_class_type"`
}

type modifyRegionSection struct {
	ModifySurfaceRegionsList []modifyRegionEntry `json:"modify_surface_regions_list"`
}

type modifyRegionEntry struct {
	ObjectName    string `json:"object_name"`
	RegionName    string `json:"region_name"`
	SurfClassName string `json:"surf_class_name"`
}

type releaseSiteSection struct {
	ReleaseSiteList []releaseSiteEntry `json:"release_site_list"`
}

type releaseSiteEntry struct {
	Name       string `json:"name"`
	ObjectExpr string `json:"object_expr"`
	Molecule   string `json:"molecule"`
	Quantity   scalar `json:"quantity"`
	Orient     bool   `json:"orient"`
}

type reactionOutputSection struct {
	ReactionOutputList []reactionOutputEntry `json:"reaction_output_list"`
}

type reactionOutputEntry struct {
	MoleculeName  string `json:"molecule_name"`
	CountLocation string `json:"count_location"`
	ObjectName    string `json:"object_name"`
	RegionName    string `json:"region_name"`
}

type vizSection struct {
	ExportAll bool `json:"export_all"`
}

type initSection struct {
	Iterations scalar `json:"iterations"`
	TimeStep   scalar `json:"time_step"`
}
