package mesh

import "Vox3D/internal/voxel"

// Vertex is one corner of a face triangle before packing. Positions are
// chunk-local and run 0..chunk size inclusive, so they need six bits each;
// that is also why chunks cannot be wider than 63 voxels.
type Vertex struct {
	X, Y, Z uint8
	ID      voxel.ID
	Face    uint8
	AO      uint8
	Flip    bool
}

// Pack folds the vertex into one word. Layout, high bit to low:
// x:6 y:6 z:6 voxel id:8 face:3 ao:2 flip:1. Fields are assumed to be in
// range already, Build never produces values that are not.
func (v Vertex) Pack() uint32 {
	w := uint32(v.X)<<26 | uint32(v.Y)<<20 | uint32(v.Z)<<14 |
		uint32(v.ID)<<6 | uint32(v.Face)<<3 | uint32(v.AO)<<1
	if v.Flip {
		w |= 1
	}
	return w
}

// Unpack reverses Pack.
func Unpack(w uint32) Vertex {
	return Vertex{
		X:    uint8(w >> 26 & 0x3f),
		Y:    uint8(w >> 20 & 0x3f),
		Z:    uint8(w >> 14 & 0x3f),
		ID:   voxel.ID(w >> 6 & 0xff),
		Face: uint8(w >> 3 & 0x7),
		AO:   uint8(w >> 1 & 0x3),
		Flip: w&1 == 1,
	}
}
