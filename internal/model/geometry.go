package model

// MeshObject is a polygonal 3-D surface representing a simulation
// compartment boundary. Vertices are x/y/z coordinates; Faces index into
// the vertex list. The object owns its Regions; regions never outlive it.
type MeshObject struct {
	Name     string
	Vertices [][]float64
	Faces    [][]int
	Regions  []*Region
}

// Region is a named subset of a mesh object's faces. Names are unique per
// object by convention only: duplicates are recorded as given, and lookup
// resolves to the first match in declaration order.
type Region struct {
	Object   *MeshObject // non-owning back-reference
	Name     string
	Elements []int
}

// AddRegion appends a region with the given name and face-index subset,
// preserving declaration order.
func (m *MeshObject) AddRegion(name string, elements []int) *Region {
	r := &Region{Object: m, Name: name, Elements: elements}
	m.Regions = append(m.Regions, r)
	return r
}

// FindRegion scans every region in declaration order and returns the first
// whose name matches, or nil when none does. The scan always covers the
// full region list before giving up.
func (m *MeshObject) FindRegion(name string) *Region {
	for _, r := range m.Regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}
