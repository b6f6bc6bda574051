package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Built-in material ids. Anything non-zero is solid to the mesh builder;
// the registry carries the display properties.
const (
	Sand   ID = 1
	Grass  ID = 2
	Dirt   ID = 3
	Stone  ID = 4
	Snow   ID = 5
	Leaves ID = 6
	Wood   ID = 7
	Water  ID = 8
)

type Properties struct {
	Name        string
	Color       mgl32.Vec3
	Solid       bool
	Transparent bool
	Hardness    float32
}

// Registry maps material ids to their properties.
type Registry struct {
	voxelTypes map[ID]Properties
}

func NewRegistry() *Registry {
	r := &Registry{
		voxelTypes: make(map[ID]Properties),
	}

	r.Register(Air, Properties{
		Name: "Air", Color: mgl32.Vec3{0, 0, 0},
		Solid: false, Transparent: true, Hardness: 0,
	})
	r.Register(Sand, Properties{
		Name: "Sand", Color: mgl32.Vec3{0.9, 0.8, 0.6},
		Solid: true, Transparent: false, Hardness: 0.8,
	})
	r.Register(Grass, Properties{
		Name: "Grass", Color: mgl32.Vec3{0.3, 0.7, 0.2},
		Solid: true, Transparent: false, Hardness: 1.0,
	})
	r.Register(Dirt, Properties{
		Name: "Dirt", Color: mgl32.Vec3{0.5, 0.3, 0.1},
		Solid: true, Transparent: false, Hardness: 1.5,
	})
	r.Register(Stone, Properties{
		Name: "Stone", Color: mgl32.Vec3{0.6, 0.6, 0.6},
		Solid: true, Transparent: false, Hardness: 3.0,
	})
	r.Register(Snow, Properties{
		Name: "Snow", Color: mgl32.Vec3{0.95, 0.95, 0.97},
		Solid: true, Transparent: false, Hardness: 0.5,
	})
	r.Register(Leaves, Properties{
		Name: "Leaves", Color: mgl32.Vec3{0.2, 0.5, 0.15},
		Solid: true, Transparent: true, Hardness: 0.3,
	})
	r.Register(Wood, Properties{
		Name: "Wood", Color: mgl32.Vec3{0.45, 0.3, 0.15},
		Solid: true, Transparent: false, Hardness: 2.0,
	})
	r.Register(Water, Properties{
		Name: "Water", Color: mgl32.Vec3{0.2, 0.4, 0.8},
		Solid: false, Transparent: true, Hardness: 0,
	})

	return r
}

func (r *Registry) Register(id ID, properties Properties) {
	r.voxelTypes[id] = properties
}

func (r *Registry) Get(id ID) (Properties, bool) {
	props, exists := r.voxelTypes[id]
	return props, exists
}

// Name returns the material name, or "Unknown" for unregistered ids.
func (r *Registry) Name(id ID) string {
	if props, ok := r.voxelTypes[id]; ok {
		return props.Name
	}
	return "Unknown"
}
