// Package raycast marches picking rays through the voxel grid and applies
// add and remove edits at the targeted voxel.
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"Vox3D/internal/voxel"
)

// bigDelta stands in for the boundary step of a ray component that is zero,
// that axis then never wins the advance.
const bigDelta = 1e7

// Hit describes the first blocking voxel found along a ray.
type Hit struct {
	ID         voxel.ID
	ChunkIndex int
	VoxelIndex int
	Local      voxel.Pos
	World      voxel.Pos
	// Normal is the outward unit vector of the face the ray entered
	// through. It is the zero vector when the ray started inside a solid
	// voxel and never stepped.
	Normal voxel.Pos
}

// Caster walks rays through the grid one voxel cell at a time, so thin
// diagonal paths never skip a cell.
type Caster struct {
	grid        *voxel.Grid
	maxDistance float32
}

func NewCaster(grid *voxel.Grid, maxDistance float32) *Caster {
	return &Caster{grid: grid, maxDistance: maxDistance}
}

// Cast follows dir from origin for the caster's maximum distance and
// reports the first blocking voxel. The world boundary blocks rays like a
// wall, but stopping there is a miss, there is nothing to target outside.
func (c *Caster) Cast(origin, dir mgl32.Vec3) (Hit, bool) {
	end := origin.Add(dir.Mul(c.maxDistance))

	x1, y1, z1 := float64(origin.X()), float64(origin.Y()), float64(origin.Z())
	x2, y2, z2 := float64(end.X()), float64(end.Y()), float64(end.Z())

	current := voxel.Pos{
		X: int(math.Floor(x1)),
		Y: int(math.Floor(y1)),
		Z: int(math.Floor(z1)),
	}
	stepAxis := -1 // axis advanced on the previous step: 0 x, 1 y, 2 z

	dx := sign(x2 - x1)
	deltaX, maxX := axisSteps(dx, x1, x2)
	dy := sign(y2 - y1)
	deltaY, maxY := axisSteps(dy, y1, y2)
	dz := sign(z2 - z1)
	deltaZ, maxZ := axisSteps(dz, z1, z2)

	for !(maxX > 1 && maxY > 1 && maxZ > 1) {
		if c.grid.IsBlocking(current) {
			ci, vi, local, ok := c.grid.Locate(current)
			if !ok {
				return Hit{}, false
			}
			hit := Hit{
				ID:         c.grid.Chunk(ci).Voxels[vi],
				ChunkIndex: ci,
				VoxelIndex: vi,
				Local:      local,
				World:      current,
			}
			switch stepAxis {
			case 0:
				hit.Normal.X = -dx
			case 1:
				hit.Normal.Y = -dy
			case 2:
				hit.Normal.Z = -dz
			}
			return hit, true
		}

		if maxX < maxY {
			if maxX < maxZ {
				current.X += dx
				maxX += deltaX
				stepAxis = 0
			} else {
				current.Z += dz
				maxZ += deltaZ
				stepAxis = 2
			}
		} else {
			if maxY < maxZ {
				current.Y += dy
				maxY += deltaY
				stepAxis = 1
			} else {
				current.Z += dz
				maxZ += deltaZ
				stepAxis = 2
			}
		}
	}

	return Hit{}, false
}

// axisSteps computes one axis' boundary step size and the offset to its
// first boundary, both as fractions of the whole segment.
func axisSteps(d int, from, to float64) (delta, max float64) {
	if d == 0 {
		return bigDelta, bigDelta * fract(from)
	}
	delta = math.Min(float64(d)/(to-from), bigDelta)
	if d > 0 {
		return delta, delta * (1 - fract(from))
	}
	return delta, delta * fract(from)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
