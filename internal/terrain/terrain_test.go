package terrain

import (
	"testing"

	"Vox3D/internal/voxel"
)

func TestFlatFillsBelowHeight(t *testing.T) {
	buf := make([]voxel.ID, 8*8*8)
	Flat{Height: 3, Material: voxel.Stone}.Generate(voxel.Pos{}, 8, buf)

	solids := 0
	for _, id := range buf {
		if id != voxel.Air {
			solids++
		}
	}
	if solids != 8*8*3 {
		t.Errorf("Expected %d solid voxels, got %d", 8*8*3, solids)
	}

	if buf[0+8*0+64*2] != voxel.Stone {
		t.Error("Expected stone below the surface")
	}
	if buf[0+8*0+64*3] != voxel.Air {
		t.Error("Expected air above the surface")
	}
}

func TestFlatUsesWorldHeight(t *testing.T) {
	buf := make([]voxel.ID, 8*8*8)
	// The second chunk layer starts at world height 8, above the fill.
	Flat{Height: 3, Material: voxel.Stone}.Generate(voxel.Pos{Y: 1}, 8, buf)

	for i, id := range buf {
		if id != voxel.Air {
			t.Fatalf("Expected an empty upper chunk, found voxel at %d", i)
		}
	}
}

func TestFillIsUniform(t *testing.T) {
	buf := make([]voxel.ID, 4*4*4)
	Fill{Material: voxel.Dirt}.Generate(voxel.Pos{}, 4, buf)

	for i, id := range buf {
		if id != voxel.Dirt {
			t.Fatalf("Expected dirt everywhere, found %d at %d", id, i)
		}
	}
}

func TestPerlinIsDeterministic(t *testing.T) {
	a := make([]voxel.ID, 16*16*16)
	b := make([]voxel.ID, 16*16*16)

	NewPerlin(27, 16).Generate(voxel.Pos{X: 1, Z: 2}, 16, a)
	NewPerlin(27, 16).Generate(voxel.Pos{X: 1, Z: 2}, 16, b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical terrain for one seed, differs at %d", i)
		}
	}
}

func TestPerlinBandsScaleWithHeight(t *testing.T) {
	p := NewPerlin(1, 96)
	if p.waterLevel != 19 || p.sandLine != 21 || p.snowLine != 72 {
		t.Errorf("Expected bands 19/21/72, got %d/%d/%d",
			p.waterLevel, p.sandLine, p.snowLine)
	}
}

func TestRidgesIsDeterministicAndBounded(t *testing.T) {
	size := 16
	a := make([]voxel.ID, size*size*size)
	b := make([]voxel.ID, size*size*size)

	NewRidges(27, size).Generate(voxel.Pos{}, size, a)
	NewRidges(27, size).Generate(voxel.Pos{}, size, b)

	solids := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical ridges for one seed, differs at %d", i)
		}
		if a[i] != voxel.Air && a[i] != voxel.Water {
			solids++
		}
	}
	if solids == 0 {
		t.Error("Expected the ridged chunk to contain terrain")
	}
	if solids == size*size*size {
		t.Error("Expected the surface to stay below the world ceiling")
	}
}

func TestPerlinColumnsAreWellFormed(t *testing.T) {
	size := 16
	buf := make([]voxel.ID, size*size*size)
	p := NewPerlin(27, size)
	p.Generate(voxel.Pos{}, size, buf)

	allowed := map[voxel.ID]bool{
		voxel.Air: true, voxel.Water: true, voxel.Sand: true, voxel.Grass: true,
		voxel.Snow: true, voxel.Dirt: true, voxel.Stone: true,
	}

	solids := 0
	for lx := 0; lx < size; lx++ {
		for lz := 0; lz < size; lz++ {
			left := false
			for ly := 0; ly < size; ly++ {
				id := buf[lx+size*lz+size*size*ly]
				if !allowed[id] {
					t.Fatalf("Expected a terrain material, got %d", id)
				}
				if id == voxel.Water && ly > p.waterLevel {
					t.Fatalf("Expected no water above level %d, found it at %d",
						p.waterLevel, ly)
				}

				solid := id != voxel.Air && id != voxel.Water
				if solid {
					solids++
					if left {
						t.Fatal("Expected no solid voxels floating above the surface")
					}
				} else if ly > 0 {
					left = true
				}
			}
		}
	}
	if solids == 0 {
		t.Error("Expected the chunk to contain some terrain")
	}
}
