// Package voxel stores the world's voxels in one flat arena and maps
// between world, chunk and local coordinates.
package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ID identifies a voxel material. Zero is empty space.
type ID uint8

const Air ID = 0

// InvalidIndex is returned for coordinates outside the world.
const InvalidIndex = -1

// Pos is an integer voxel or chunk coordinate.
type Pos struct {
	X, Y, Z int
}

func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Pos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Chunk is one cubic block of voxels. Voxels is a view into the grid's
// arena, never a copy, so writes through either are seen by both.
type Chunk struct {
	Position  Pos // grid position in chunk units
	Index     int
	Voxels    []ID
	Center    mgl32.Vec3
	Transform mgl32.Mat4

	solid int
}

// IsEmpty reports whether the chunk holds no solid voxels.
func (c *Chunk) IsEmpty() bool {
	return c.solid == 0
}

func (c *Chunk) SolidCount() int {
	return c.solid
}

// Generator produces the initial voxel ids for one chunk, writing size^3
// values into voxels using the x + size*z + size*size*y layout.
type Generator interface {
	Generate(chunk Pos, size int, voxels []ID)
}

// Grid is the world: Width*Height*Depth chunks of Size^3 voxels each,
// backed by a single contiguous arena.
type Grid struct {
	Size   int // chunk edge length in voxels
	Width  int // world dimensions in chunks
	Height int
	Depth  int

	area   int // Size * Size
	volume int // Size^3
	arena  []ID
	chunks []*Chunk
	solid  int
}

func NewGrid(size, width, height, depth int) *Grid {
	g := &Grid{
		Size:   size,
		Width:  width,
		Height: height,
		Depth:  depth,
		area:   size * size,
		volume: size * size * size,
	}

	count := width * height * depth
	g.arena = make([]ID, count*g.volume)
	g.chunks = make([]*Chunk, count)

	for cy := 0; cy < height; cy++ {
		for cz := 0; cz < depth; cz++ {
			for cx := 0; cx < width; cx++ {
				index := cx + width*cz + width*depth*cy
				pos := Pos{cx, cy, cz}
				g.chunks[index] = &Chunk{
					Position: pos,
					Index:    index,
					Voxels:   g.arena[index*g.volume : (index+1)*g.volume],
					Center: mgl32.Vec3{
						(float32(cx) + 0.5) * float32(size),
						(float32(cy) + 0.5) * float32(size),
						(float32(cz) + 0.5) * float32(size),
					},
					Transform: mgl32.Translate3D(
						float32(cx*size),
						float32(cy*size),
						float32(cz*size),
					),
				}
			}
		}
	}

	return g
}

func (g *Grid) ChunkCount() int {
	return len(g.chunks)
}

func (g *Grid) Chunk(index int) *Chunk {
	return g.chunks[index]
}

// SolidCount is the number of non-empty voxels in the whole world.
func (g *Grid) SolidCount() int {
	return g.solid
}

// ChunkIndexOf maps a world voxel coordinate to the index of its owning
// chunk, or InvalidIndex when outside the world. Negative coordinates are
// rejected before the division so truncated division behaves like floor
// division everywhere this is called.
func (g *Grid) ChunkIndexOf(p Pos) int {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return InvalidIndex
	}
	cx, cy, cz := p.X/g.Size, p.Y/g.Size, p.Z/g.Size
	if cx >= g.Width || cy >= g.Height || cz >= g.Depth {
		return InvalidIndex
	}
	return cx + g.Width*cz + g.Width*g.Depth*cy
}

// Locate resolves a world voxel coordinate to its chunk index, voxel index
// within that chunk, and local coordinate. The voxel index uses the
// x + Size*z + Size*Size*y layout; z strides before y.
func (g *Grid) Locate(p Pos) (chunkIndex, voxelIndex int, local Pos, ok bool) {
	chunkIndex = g.ChunkIndexOf(p)
	if chunkIndex == InvalidIndex {
		return InvalidIndex, InvalidIndex, Pos{}, false
	}
	local = Pos{p.X % g.Size, p.Y % g.Size, p.Z % g.Size}
	voxelIndex = local.X + g.Size*local.Z + g.area*local.Y
	return chunkIndex, voxelIndex, local, true
}

func (g *Grid) voxelAt(p Pos) (ID, bool) {
	ci, vi, _, ok := g.Locate(p)
	if !ok {
		return Air, false
	}
	return g.chunks[ci].Voxels[vi], true
}

// IsVoid is the meshing predicate: true when the position holds no solid
// voxel. Positions outside the world count as void, so faces on the world
// boundary are still emitted.
func (g *Grid) IsVoid(p Pos) bool {
	id, ok := g.voxelAt(p)
	return !ok || id == Air
}

// IsBlocking is the ray-cast predicate: true when a ray must stop at the
// position. Positions outside the world count as blocking, so the world
// boundary acts as a wall. This deliberately disagrees with IsVoid at the
// boundary; the two senses must stay distinct.
func (g *Grid) IsBlocking(p Pos) bool {
	id, ok := g.voxelAt(p)
	return !ok || id != Air
}

// GetVoxel returns the id at a world coordinate, Air when out of bounds.
func (g *Grid) GetVoxel(p Pos) ID {
	id, _ := g.voxelAt(p)
	return id
}

// SetVoxel writes an id at a world coordinate, keeping the owning chunk's
// solid count (and therefore IsEmpty) exact. Out-of-bounds writes are
// ignored.
func (g *Grid) SetVoxel(p Pos, id ID) {
	ci, vi, _, ok := g.Locate(p)
	if !ok {
		return
	}
	c := g.chunks[ci]
	wasSolid := c.Voxels[vi] != Air
	c.Voxels[vi] = id

	isSolid := id != Air
	if wasSolid && !isSolid {
		c.solid--
		g.solid--
	} else if !wasSolid && isSolid {
		c.solid++
		g.solid++
	}
}

// Generate fills every chunk from gen and recounts solids afterwards, since
// generators write through the arena views directly.
func (g *Grid) Generate(gen Generator) {
	for _, c := range g.chunks {
		gen.Generate(c.Position, g.Size, c.Voxels)
		g.recount(c)
	}
}

// recount rebuilds a chunk's solid counter after its voxels were written
// directly, bypassing SetVoxel.
func (g *Grid) recount(c *Chunk) {
	n := 0
	for _, id := range c.Voxels {
		if id != Air {
			n++
		}
	}
	g.solid += n - c.solid
	c.solid = n
}
