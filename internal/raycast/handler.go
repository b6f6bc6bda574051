package raycast

import (
	"github.com/go-gl/mathgl/mgl32"

	"Vox3D/internal/voxel"
)

// Mode selects what Apply does with the targeted voxel.
type Mode int

const (
	ModeRemove Mode = iota
	ModeAdd
)

func (m Mode) String() string {
	if m == ModeAdd {
		return "add"
	}
	return "remove"
}

// Rebuilder regenerates the mesh of one chunk after an edit.
type Rebuilder interface {
	RebuildChunk(index int)
}

// Handler keeps the per-frame targeting state and applies edits to the
// grid, rebuilding every chunk whose surface the edit can change.
type Handler struct {
	grid      *voxel.Grid
	caster    *Caster
	rebuilder Rebuilder

	Mode       Mode
	NewVoxelID voxel.ID // material placed by Add

	target Hit
	active bool
}

func NewHandler(grid *voxel.Grid, caster *Caster, rebuilder Rebuilder) *Handler {
	return &Handler{
		grid:       grid,
		caster:     caster,
		rebuilder:  rebuilder,
		NewVoxelID: voxel.Sand,
	}
}

// Update re-casts the targeting ray. Call once per frame before reading
// Target or applying an edit; the target is not refreshed by edits and
// goes stale until the next Update.
func (h *Handler) Update(origin, forward mgl32.Vec3) {
	h.target, h.active = h.caster.Cast(origin, forward)
}

// Target returns the currently aimed-at voxel, if any.
func (h *Handler) Target() (Hit, bool) {
	return h.target, h.active
}

// Apply performs the current mode's edit on the targeted voxel.
func (h *Handler) Apply() {
	if h.Mode == ModeAdd {
		h.Add()
	} else {
		h.Remove()
	}
}

// SwitchMode toggles between removing and adding voxels.
func (h *Handler) SwitchMode() {
	if h.Mode == ModeRemove {
		h.Mode = ModeAdd
	} else {
		h.Mode = ModeRemove
	}
}

// Remove clears the targeted voxel and rebuilds its chunk. When the voxel
// sits on a chunk boundary the neighbor across each shared face is rebuilt
// too, since faces culled against this voxel may have become visible.
func (h *Handler) Remove() {
	if !h.active {
		return
	}
	h.grid.SetVoxel(h.target.World, voxel.Air)
	h.rebuilder.RebuildChunk(h.target.ChunkIndex)
	h.rebuildAdjacent(h.target.Local, h.target.World)
}

// Add places NewVoxelID in the cell just outside the targeted face and
// rebuilds that cell's chunk. Occupied cells and cells outside the world
// are left alone; a zero target normal lands on the target itself, which
// is occupied, so the same guard covers it.
func (h *Handler) Add() {
	if !h.active {
		return
	}
	p := h.target.World.Add(h.target.Normal)
	ci, vi, _, ok := h.grid.Locate(p)
	if !ok {
		return
	}
	if h.grid.Chunk(ci).Voxels[vi] != voxel.Air {
		return
	}
	h.grid.SetVoxel(p, h.NewVoxelID)
	h.rebuilder.RebuildChunk(ci)
}

// MarkerPos is the cell a selection marker should highlight: the targeted
// voxel in remove mode, the cell Add would fill in add mode.
func (h *Handler) MarkerPos() voxel.Pos {
	if h.Mode == ModeAdd {
		return h.target.World.Add(h.target.Normal)
	}
	return h.target.World
}

func (h *Handler) rebuildAdjacent(local, world voxel.Pos) {
	edge := h.grid.Size - 1

	if local.X == 0 {
		h.rebuildAt(voxel.Pos{X: world.X - 1, Y: world.Y, Z: world.Z})
	} else if local.X == edge {
		h.rebuildAt(voxel.Pos{X: world.X + 1, Y: world.Y, Z: world.Z})
	}
	if local.Y == 0 {
		h.rebuildAt(voxel.Pos{X: world.X, Y: world.Y - 1, Z: world.Z})
	} else if local.Y == edge {
		h.rebuildAt(voxel.Pos{X: world.X, Y: world.Y + 1, Z: world.Z})
	}
	if local.Z == 0 {
		h.rebuildAt(voxel.Pos{X: world.X, Y: world.Y, Z: world.Z - 1})
	} else if local.Z == edge {
		h.rebuildAt(voxel.Pos{X: world.X, Y: world.Y, Z: world.Z + 1})
	}
}

func (h *Handler) rebuildAt(p voxel.Pos) {
	if index := h.grid.ChunkIndexOf(p); index != voxel.InvalidIndex {
		h.rebuilder.RebuildChunk(index)
	}
}
