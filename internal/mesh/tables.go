package mesh

import "Vox3D/internal/voxel"

// Face ids, stored in bits 3-5 of every packed vertex.
const (
	FaceTop    = 0 // +Y
	FaceBottom = 1 // -Y
	FaceRight  = 2 // +X
	FaceLeft   = 3 // -X
	FaceBack   = 4 // -Z
	FaceFront  = 5 // +Z
)

// faceNormals is the outward unit step for each face direction.
var faceNormals = [6]voxel.Pos{
	{Y: 1},
	{Y: -1},
	{X: 1},
	{X: -1},
	{Z: -1},
	{Z: 1},
}

// faceQuads lists the quad corners v0..v3 of each face as offsets from the
// voxel's minimum corner.
var faceQuads = [6][4][3]int{
	{{0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}}, // top
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // bottom
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}, // right
	{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {0, 0, 1}}, // left
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}, // back
	{{0, 0, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 1}}, // front
}

// faceTriangles gives the two triangles of a face as indices into its quad,
// one ordering per flip state. All twelve orderings wind counter-clockwise
// seen from outside the voxel; the flip ordering splits the quad along the
// other diagonal.
var faceTriangles = [6][2][6]int{
	{{0, 3, 2, 0, 2, 1}, {1, 0, 3, 1, 3, 2}}, // top
	{{0, 2, 3, 0, 1, 2}, {1, 3, 0, 1, 2, 3}}, // bottom
	{{0, 1, 2, 0, 2, 3}, {3, 0, 1, 3, 1, 2}}, // right
	{{0, 2, 1, 0, 3, 2}, {3, 1, 0, 3, 2, 1}}, // left
	{{0, 1, 2, 0, 2, 3}, {3, 0, 1, 3, 1, 2}}, // back
	{{0, 2, 1, 0, 3, 2}, {3, 1, 0, 3, 2, 1}}, // front
}

// Occlusion sample planes. Faces 0 and 1 sample the XZ plane above or below
// the face, faces 2 and 3 the YZ plane, faces 4 and 5 the XY plane.
const (
	planeY = 0
	planeX = 1
	planeZ = 2
)

var facePlane = [6]int{planeY, planeY, planeX, planeX, planeZ, planeZ}

// aoOffsets holds the eight in-plane neighbor offsets sampled around a
// face, walking the ring so that samples 0-2, 6-7-0, 4-6 and 2-4 meet at
// the quad corners v0..v3.
var aoOffsets = [3][8]voxel.Pos{
	{
		{Z: -1}, {X: -1, Z: -1}, {X: -1}, {X: -1, Z: 1},
		{Z: 1}, {X: 1, Z: 1}, {X: 1}, {X: 1, Z: -1},
	},
	{
		{Z: -1}, {Y: -1, Z: -1}, {Y: -1}, {Y: -1, Z: 1},
		{Z: 1}, {Y: 1, Z: 1}, {Y: 1}, {Y: 1, Z: -1},
	},
	{
		{X: -1}, {X: -1, Y: -1}, {Y: -1}, {X: 1, Y: -1},
		{X: 1}, {X: 1, Y: 1}, {Y: 1}, {X: -1, Y: 1},
	},
}
