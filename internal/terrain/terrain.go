// Package terrain provides voxel grid generators, from trivial test fills
// to perlin noise landscapes.
package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"

	"Vox3D/internal/voxel"
)

// Flat fills every column with one material up to a fixed world height.
type Flat struct {
	Height   int
	Material voxel.ID
}

func (f Flat) Generate(chunk voxel.Pos, size int, voxels []voxel.ID) {
	area := size * size
	for ly := 0; ly < size; ly++ {
		id := voxel.Air
		if chunk.Y*size+ly < f.Height {
			id = f.Material
		}
		for lz := 0; lz < size; lz++ {
			for lx := 0; lx < size; lx++ {
				voxels[lx+size*lz+area*ly] = id
			}
		}
	}
}

// Fill sets every voxel to one material.
type Fill struct {
	Material voxel.ID
}

func (f Fill) Generate(chunk voxel.Pos, size int, voxels []voxel.ID) {
	for i := range voxels {
		voxels[i] = f.Material
	}
}

// Perlin generates rolling terrain from octave-summed 2D noise: grass
// hills with sand shores, snow caps, dirt under the surface, stone below
// that and still water filling the low ground.
type Perlin struct {
	noise      *perlin.Perlin
	maxHeight  int
	waterLevel int
	sandLine   int
	snowLine   int
	baseline   int
	amplitude  float64
}

// NewPerlin seeds a generator for a world maxHeight voxels tall. Water
// level and material bands scale with the height.
func NewPerlin(seed int64, maxHeight int) *Perlin {
	return &Perlin{
		noise:      perlin.NewPerlin(2, 2, 3, seed),
		maxHeight:  maxHeight,
		waterLevel: maxHeight / 5,
		sandLine:   maxHeight/5 + 2,
		snowLine:   maxHeight * 3 / 4,
		baseline:   maxHeight / 3,
		amplitude:  float64(maxHeight) / 2.5,
	}
}

func (p *Perlin) Generate(chunk voxel.Pos, size int, voxels []voxel.ID) {
	area := size * size
	for lx := 0; lx < size; lx++ {
		for lz := 0; lz < size; lz++ {
			wx := float64(chunk.X*size + lx)
			wz := float64(chunk.Z*size + lz)

			base := p.noise.Noise2D(wx*0.01, wz*0.01)
			detail := p.noise.Noise2D(wx*0.05, wz*0.05)
			fine := p.noise.Noise2D(wx*0.15, wz*0.15)
			relief := base*0.6 + detail*0.3 + fine*0.1

			height := p.baseline + int(relief*p.amplitude)
			if height < 1 {
				height = 1
			}
			if height >= p.maxHeight {
				height = p.maxHeight - 1
			}

			for ly := 0; ly < size; ly++ {
				wy := chunk.Y*size + ly
				voxels[lx+size*lz+area*ly] = p.material(wy, height)
			}
		}
	}
}

// Ridges is a mountainous variant of Perlin: the absolute value of each
// noise octave is inverted and squared, folding valleys into sharp crests.
type Ridges struct {
	base *Perlin
}

func NewRidges(seed int64, maxHeight int) *Ridges {
	return &Ridges{base: NewPerlin(seed, maxHeight)}
}

func (r *Ridges) Generate(chunk voxel.Pos, size int, voxels []voxel.ID) {
	p := r.base
	area := size * size
	for lx := 0; lx < size; lx++ {
		for lz := 0; lz < size; lz++ {
			wx := float64(chunk.X*size + lx)
			wz := float64(chunk.Z*size + lz)

			relief := 0.0
			amplitude := 1.0
			frequency := 0.008
			for octave := 0; octave < 3; octave++ {
				n := p.noise.Noise2D(wx*frequency, wz*frequency)
				n = 1 - math.Abs(n)
				relief += n * n * amplitude
				amplitude *= 0.5
				frequency *= 2
			}

			// The octave weights sum to 1.75, so relief spans the full
			// column height.
			height := int(relief / 1.75 * float64(p.maxHeight-1))
			if height < 1 {
				height = 1
			}

			for ly := 0; ly < size; ly++ {
				wy := chunk.Y*size + ly
				voxels[lx+size*lz+area*ly] = p.material(wy, height)
			}
		}
	}
}

// material picks the voxel for one cell of a column whose surface sits at
// the given height.
func (p *Perlin) material(wy, height int) voxel.ID {
	switch {
	case wy > height:
		if wy <= p.waterLevel {
			return voxel.Water
		}
		return voxel.Air
	case wy == height:
		switch {
		case height >= p.snowLine:
			return voxel.Snow
		case height <= p.sandLine:
			return voxel.Sand
		default:
			return voxel.Grass
		}
	case wy > height-4:
		return voxel.Dirt
	default:
		return voxel.Stone
	}
}
