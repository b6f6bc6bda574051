package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Vox3D/internal/camera"
	"Vox3D/internal/config"
	"Vox3D/internal/engine"
	"Vox3D/internal/logger"
	"Vox3D/internal/terrain"
	"Vox3D/internal/voxel"
)

var (
	configFile  = flag.String("config", "", "path to a YAML settings file, defaults apply when empty")
	frames      = flag.Int("frames", 240, "frames to simulate")
	edits       = flag.Int("edits", 8, "scripted voxel edits to spread over the run")
	seed        = flag.Int64("seed", 0, "terrain seed, 0 keeps the configured one")
	terrainKind = flag.String("terrain", "hills", "terrain style: hills or ridges")
)

func main() {
	flag.Parse()
	logger.Init()
	if *frames <= 0 {
		logger.Log.Fatal("frames must be positive")
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			logger.Log.Fatal("Could not load settings", zap.Error(err))
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	eng, err := engine.New(cfg)
	if err != nil {
		logger.Log.Fatal("Could not start engine", zap.Error(err))
	}

	eng.GenerateWorld(pickTerrain(*terrainKind, cfg))
	eng.SetPaletteVoxel(voxel.Wood)

	cam := eng.Camera()
	dropToSurface(eng, cam)
	cam.ProcessMouseMovement(0, -350, true) // look down at the terrain

	spin := 360.0 / float32(*frames) / cam.Sensitivity
	editEvery := 0
	if *edits > 0 {
		if editEvery = *frames / *edits; editEvery == 0 {
			editEvery = 1
		}
	}

	visMin, visMax, visTotal := eng.Stats().Chunks, 0, 0
	editsApplied := 0

	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		cam.ProcessMouseMovement(spin, 0, true) // one full turn over the run
		eng.Update()

		visible := len(eng.VisibleChunks())
		visTotal += visible
		if visible < visMin {
			visMin = visible
		}
		if visible > visMax {
			visMax = visible
		}

		if editEvery > 0 && editsApplied < *edits && frame%editEvery == editEvery-1 {
			if target := eng.Target(); target.Active {
				logger.Log.Info("Scripted edit",
					zap.Int("frame", frame),
					zap.String("mode", target.Mode.String()),
					zap.String("material", target.Material))
				eng.Apply()
				eng.SwitchMode()
				editsApplied++
			}
		}
	}
	elapsed := time.Since(start)

	stats := eng.Stats()
	color.Cyan("Vox3D world summary")
	fmt.Printf("  world:    %dx%dx%d chunks, edge %d (%d voxels)\n",
		cfg.WorldWidth, cfg.WorldHeight, cfg.WorldDepth,
		cfg.ChunkSize, stats.Chunks*cfg.ChunkVolume())
	color.Green("  solid voxels: %d", stats.SolidVoxels)
	color.Green("  vertex words: %d", stats.VertexWords)
	fmt.Printf("  visible chunks per frame: min %d avg %.1f max %d\n",
		visMin, float64(visTotal)/float64(*frames), visMax)
	color.Yellow("  edits applied: %d, chunk rebuilds: %d", editsApplied, stats.Rebuilds)
	fmt.Printf("  %d frames in %v (%.2f ms per frame)\n",
		*frames, elapsed.Round(time.Millisecond),
		float64(elapsed.Milliseconds())/float64(*frames))
}

func pickTerrain(kind string, cfg config.Settings) voxel.Generator {
	maxHeight := cfg.WorldHeight * cfg.ChunkSize
	switch kind {
	case "ridges":
		return terrain.NewRidges(cfg.Seed, maxHeight)
	case "hills":
		return terrain.NewPerlin(cfg.Seed, maxHeight)
	default:
		logger.Log.Fatal("Unknown terrain style", zap.String("terrain", kind))
		return nil
	}
}

// dropToSurface lowers the camera from the spawn height to hover just over
// the terrain, close enough for the targeting ray to reach it.
func dropToSurface(eng *engine.Engine, cam *camera.Camera) {
	p := cam.Position
	x, z := int(p.X()), int(p.Z())
	for y := eng.Grid().Height*eng.Grid().Size - 1; y > 0; y-- {
		if eng.Grid().GetVoxel(voxel.Pos{X: x, Y: y, Z: z}) != voxel.Air {
			cam.Position = mgl32.Vec3{p.X(), float32(y) + 2.5, p.Z()}
			return
		}
	}
}
