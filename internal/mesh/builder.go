package mesh

import "Vox3D/internal/voxel"

// Builder turns one chunk's voxels into a packed vertex stream. Neighbor
// lookups go through the whole grid, so faces pressed against a
// neighboring chunk cull exactly like faces inside one.
//
// A Builder reuses one worst-case scratch buffer between calls and returns
// exact-length copies, so it must not be shared between goroutines.
type Builder struct {
	grid    *voxel.Grid
	scratch []uint32
}

func NewBuilder(grid *voxel.Grid) *Builder {
	volume := grid.Size * grid.Size * grid.Size
	return &Builder{
		grid:    grid,
		scratch: make([]uint32, volume*36), // 6 faces of 6 vertices per voxel
	}
}

// Build produces the packed vertex words for a chunk's visible surface,
// six words per face, in x, y, z iteration order. An empty chunk yields a
// zero-length mesh.
func (b *Builder) Build(c *voxel.Chunk) []uint32 {
	if c.IsEmpty() {
		return nil
	}

	size := b.grid.Size
	area := size * size
	origin := voxel.Pos{
		X: c.Position.X * size,
		Y: c.Position.Y * size,
		Z: c.Position.Z * size,
	}

	n := 0
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				id := c.Voxels[x+size*z+area*y]
				if id == voxel.Air {
					continue
				}
				world := voxel.Pos{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z}

				for face := 0; face < 6; face++ {
					outside := world.Add(faceNormals[face])
					if !b.grid.IsVoid(outside) {
						continue
					}

					ao := b.cornerOcclusion(outside, face)
					flip := ao[1]+ao[3] > ao[0]+ao[2]

					order := &faceTriangles[face][0]
					if flip {
						order = &faceTriangles[face][1]
					}

					quad := &faceQuads[face]
					for _, corner := range order {
						v := Vertex{
							X:    uint8(x + quad[corner][0]),
							Y:    uint8(y + quad[corner][1]),
							Z:    uint8(z + quad[corner][2]),
							ID:   id,
							Face: uint8(face),
							AO:   ao[corner],
							Flip: flip,
						}
						b.scratch[n] = v.Pack()
						n++
					}
				}
			}
		}
	}

	out := make([]uint32, n)
	copy(out, b.scratch[:n])
	return out
}

// cornerOcclusion samples the eight cells in the plane one step outside the
// face and reduces them to a 0-3 solid count per quad corner. Cells outside
// the world count as open, matching the face culling sense so world-edge
// faces never darken.
func (b *Builder) cornerOcclusion(outside voxel.Pos, face int) [4]uint8 {
	var s [8]uint8
	for i, off := range aoOffsets[facePlane[face]] {
		if !b.grid.IsVoid(outside.Add(off)) {
			s[i] = 1
		}
	}
	return [4]uint8{
		s[0] + s[1] + s[2],
		s[6] + s[7] + s[0],
		s[4] + s[5] + s[6],
		s[2] + s[3] + s[4],
	}
}
