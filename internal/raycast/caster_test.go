package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Vox3D/internal/voxel"
)

func TestEmptyWorldNeverHits(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	c := NewCaster(g, 6)

	origin := mgl32.Vec3{5.5, 10.5, 5.5}
	dirs := []mgl32.Vec3{
		{0, -1, 0},
		{0, 1, 0},
		{1, 0, 0},
		mgl32.Vec3{1, -1, 1}.Normalize(),
	}
	for _, dir := range dirs {
		if _, ok := c.Cast(origin, dir); ok {
			t.Errorf("Expected no hit through empty space along %v", dir)
		}
	}
}

func TestStraightDownHit(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	g.SetVoxel(voxel.Pos{X: 5, Y: 5, Z: 5}, voxel.Grass)
	c := NewCaster(g, 6)

	hit, ok := c.Cast(mgl32.Vec3{5, 10, 5}, mgl32.Vec3{0, -1, 0})
	if !ok {
		t.Fatal("Expected the ray to hit the voxel below")
	}
	if hit.World != (voxel.Pos{X: 5, Y: 5, Z: 5}) {
		t.Errorf("Expected to hit (5,5,5), got %v", hit.World)
	}
	if hit.Normal != (voxel.Pos{Y: 1}) {
		t.Errorf("Expected the top face normal (0,1,0), got %v", hit.Normal)
	}
	if hit.ID != voxel.Grass {
		t.Errorf("Expected to report the voxel id, got %d", hit.ID)
	}
	if hit.ChunkIndex != 0 {
		t.Errorf("Expected chunk 0, got %d", hit.ChunkIndex)
	}
	if hit.Local != (voxel.Pos{X: 5, Y: 5, Z: 5}) {
		t.Errorf("Expected local (5,5,5), got %v", hit.Local)
	}
	// 5 + 8*5 + 64*5
	if hit.VoxelIndex != 365 {
		t.Errorf("Expected voxel index 365, got %d", hit.VoxelIndex)
	}
}

func TestRayStartingInsideSolidHasZeroNormal(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	g.SetVoxel(voxel.Pos{X: 5, Y: 5, Z: 5}, voxel.Stone)
	c := NewCaster(g, 6)

	hit, ok := c.Cast(mgl32.Vec3{5.5, 5.5, 5.5}, mgl32.Vec3{0, -1, 0})
	if !ok {
		t.Fatal("Expected a hit on the enclosing voxel")
	}
	if hit.World != (voxel.Pos{X: 5, Y: 5, Z: 5}) {
		t.Errorf("Expected the enclosing voxel, got %v", hit.World)
	}
	if hit.Normal != (voxel.Pos{}) {
		t.Errorf("Expected a zero normal inside a solid, got %v", hit.Normal)
	}
}

func TestWorldEdgeBlocksWithoutHit(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	c := NewCaster(g, 6)

	// Leaving the world stops the ray, and stopping there is a miss.
	if _, ok := c.Cast(mgl32.Vec3{1.5, 1.5, 1.5}, mgl32.Vec3{-1, 0, 0}); ok {
		t.Error("Expected the world edge to be unhittable")
	}

	// A solid on the last in-bounds cell still hits normally.
	g.SetVoxel(voxel.Pos{Y: 1, Z: 1}, voxel.Stone)
	hit, ok := c.Cast(mgl32.Vec3{1.5, 1.5, 1.5}, mgl32.Vec3{-1, 0, 0})
	if !ok {
		t.Fatal("Expected the edge voxel to be hit")
	}
	if hit.World != (voxel.Pos{Y: 1, Z: 1}) || hit.Normal != (voxel.Pos{X: 1}) {
		t.Errorf("Expected (0,1,1) with normal (1,0,0), got %v normal %v", hit.World, hit.Normal)
	}
}

func TestMaxDistanceLimitsReach(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	g.SetVoxel(voxel.Pos{X: 5, Y: 5, Z: 5}, voxel.Stone)
	origin := mgl32.Vec3{5.5, 10.5, 5.5}
	down := mgl32.Vec3{0, -1, 0}

	if _, ok := NewCaster(g, 4).Cast(origin, down); ok {
		t.Error("Expected the voxel to be out of reach")
	}
	if _, ok := NewCaster(g, 20).Cast(origin, down); !ok {
		t.Error("Expected the longer ray to reach the voxel")
	}
}

func TestDiagonalTraversalVisitsEveryCell(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	g.SetVoxel(voxel.Pos{X: 7, Y: 5, Z: 7}, voxel.Stone)
	c := NewCaster(g, 6)

	hit, ok := c.Cast(mgl32.Vec3{5.5, 5.5, 5.5}, mgl32.Vec3{1, 0, 1}.Normalize())
	if !ok {
		t.Fatal("Expected the diagonal ray to find the voxel")
	}
	if hit.World != (voxel.Pos{X: 7, Y: 5, Z: 7}) {
		t.Errorf("Expected to hit (7,5,7), got %v", hit.World)
	}
	// The walk advances one axis per step, never through a corner; the
	// last step into the voxel is along X.
	if hit.Normal != (voxel.Pos{X: -1}) {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Normal)
	}
}

func TestZeroDirectionTerminates(t *testing.T) {
	g := voxel.NewGrid(8, 3, 3, 3)
	c := NewCaster(g, 6)

	if _, ok := c.Cast(mgl32.Vec3{5.5, 5.5, 5.5}, mgl32.Vec3{}); ok {
		t.Error("Expected a zero direction to miss")
	}
}
