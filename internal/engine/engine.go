// Package engine wires the voxel grid, mesh builder, camera, frustum and
// ray handler into one per-frame loop: update targeting, apply edits,
// rebuild touched chunks, cull and collect the draw list.
package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Vox3D/internal/camera"
	"Vox3D/internal/config"
	"Vox3D/internal/logger"
	"Vox3D/internal/mesh"
	"Vox3D/internal/raycast"
	"Vox3D/internal/voxel"
)

// Engine owns the world state. All methods run on the caller's goroutine,
// edits and mesh rebuilds have a single writer and need no locking.
type Engine struct {
	cfg      config.Settings
	grid     *voxel.Grid
	builder  *mesh.Builder
	camera   *camera.Camera
	frustum  *camera.Frustum
	handler  *raycast.Handler
	registry *voxel.Registry

	meshes   [][]uint32 // packed vertex words per chunk, indexed by chunk index
	radius   float32    // chunk bounding sphere radius
	rebuilds int
}

// ChunkDraw is one renderable chunk: its packed vertex words and the model
// transform that places it in the world.
type ChunkDraw struct {
	ChunkIndex int
	Verts      []uint32
	Count      int
	Model      mgl32.Mat4
}

// TargetState describes the voxel under the crosshair, for a selection
// marker or HUD.
type TargetState struct {
	Active   bool
	ID       voxel.ID
	Material string
	World    voxel.Pos
	Normal   voxel.Pos
	Mode     raycast.Mode
	Marker   mgl32.Mat4
}

// Stats summarizes the world, mostly for logging.
type Stats struct {
	Chunks      int
	SolidVoxels int
	VertexWords int
	Rebuilds    int
}

func New(cfg config.Settings) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Init()

	grid := voxel.NewGrid(cfg.ChunkSize, cfg.WorldWidth, cfg.WorldHeight, cfg.WorldDepth)

	cam := camera.New(cfg.FovDegrees, cfg.Aspect(), cfg.Near, cfg.Far)
	cam.Position = cfg.SpawnPosition()

	e := &Engine{
		cfg:      cfg,
		grid:     grid,
		builder:  mesh.NewBuilder(grid),
		camera:   cam,
		frustum:  camera.NewFrustum(cam),
		registry: voxel.NewRegistry(),
		meshes:   make([][]uint32, grid.ChunkCount()),
		radius:   cfg.SphereRadius(),
	}
	e.handler = raycast.NewHandler(grid, raycast.NewCaster(grid, cfg.MaxRayDistance), e)

	logger.Log.Info("Engine ready",
		zap.Int("chunkSize", cfg.ChunkSize),
		zap.Int("chunks", grid.ChunkCount()))
	return e, nil
}

func (e *Engine) Grid() *voxel.Grid         { return e.grid }
func (e *Engine) Camera() *camera.Camera    { return e.camera }
func (e *Engine) Handler() *raycast.Handler { return e.handler }
func (e *Engine) Registry() *voxel.Registry { return e.registry }

// GenerateWorld fills the grid from gen and builds every chunk mesh.
func (e *Engine) GenerateWorld(gen voxel.Generator) {
	start := time.Now()
	e.grid.Generate(gen)
	genTime := time.Since(start)

	start = time.Now()
	for i := 0; i < e.grid.ChunkCount(); i++ {
		e.meshes[i] = e.builder.Build(e.grid.Chunk(i))
	}
	logger.Log.Info("World generated",
		zap.Int("solidVoxels", e.grid.SolidCount()),
		zap.Duration("generate", genTime),
		zap.Duration("mesh", time.Since(start)))
}

// RebuildChunk regenerates one chunk's mesh in place after an edit.
func (e *Engine) RebuildChunk(index int) {
	e.meshes[index] = e.builder.Build(e.grid.Chunk(index))
	e.rebuilds++
}

// Update re-casts the targeting ray from the camera. Call once per frame
// before reading Target or applying edits.
func (e *Engine) Update() {
	e.handler.Update(e.camera.Position, e.camera.Front)
}

// VisibleChunks culls every chunk against the view cone and returns the
// draw list. Chunks with no vertices are skipped before the sphere test,
// there is nothing to draw in them.
func (e *Engine) VisibleChunks() []ChunkDraw {
	draws := make([]ChunkDraw, 0, e.grid.ChunkCount())
	for i := 0; i < e.grid.ChunkCount(); i++ {
		verts := e.meshes[i]
		if len(verts) == 0 {
			continue
		}
		c := e.grid.Chunk(i)
		if !e.frustum.ContainsSphere(c.Center, e.radius) {
			continue
		}
		draws = append(draws, ChunkDraw{
			ChunkIndex: i,
			Verts:      verts,
			Count:      len(verts),
			Model:      c.Transform,
		})
	}
	return draws
}

// Target reports the crosshair voxel and the transform for its selection
// marker.
func (e *Engine) Target() TargetState {
	hit, ok := e.handler.Target()
	if !ok {
		return TargetState{Mode: e.handler.Mode}
	}
	marker := e.handler.MarkerPos()
	return TargetState{
		Active:   true,
		ID:       hit.ID,
		Material: e.registry.Name(hit.ID),
		World:    hit.World,
		Normal:   hit.Normal,
		Mode:     e.handler.Mode,
		Marker:   mgl32.Translate3D(float32(marker.X), float32(marker.Y), float32(marker.Z)),
	}
}

// Apply performs the current edit mode at the targeted voxel.
func (e *Engine) Apply() {
	if hit, ok := e.handler.Target(); ok {
		logger.Log.Debug("Applying voxel edit",
			zap.String("mode", e.handler.Mode.String()),
			zap.String("material", e.registry.Name(hit.ID)),
			zap.Int("x", hit.World.X),
			zap.Int("y", hit.World.Y),
			zap.Int("z", hit.World.Z))
	}
	e.handler.Apply()
}

// SwitchMode toggles the edit mode between remove and add.
func (e *Engine) SwitchMode() {
	e.handler.SwitchMode()
}

// SetPaletteVoxel selects the material Add places.
func (e *Engine) SetPaletteVoxel(id voxel.ID) {
	e.handler.NewVoxelID = id
}

func (e *Engine) Stats() Stats {
	words := 0
	for _, m := range e.meshes {
		words += len(m)
	}
	return Stats{
		Chunks:      e.grid.ChunkCount(),
		SolidVoxels: e.grid.SolidCount(),
		VertexWords: words,
		Rebuilds:    e.rebuilds,
	}
}
