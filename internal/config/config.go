package config

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Settings holds the startup configuration for the voxel world. Values are
// fixed once the engine is constructed; nothing here is runtime-mutable.
type Settings struct {
	ChunkSize   int `yaml:"chunk_size"`   // voxels per chunk edge
	WorldWidth  int `yaml:"world_width"`  // chunks along X
	WorldHeight int `yaml:"world_height"` // chunks along Y
	WorldDepth  int `yaml:"world_depth"`  // chunks along Z

	FovDegrees   float32 `yaml:"fov_degrees"` // vertical field of view
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`

	MaxRayDistance float32 `yaml:"max_ray_distance"`
	Seed           int64   `yaml:"seed"`
}

func Default() Settings {
	return Settings{
		ChunkSize:      32,
		WorldWidth:     10,
		WorldHeight:    3,
		WorldDepth:     10,
		FovDegrees:     50,
		Near:           0.1,
		Far:            2000,
		WindowWidth:    1600,
		WindowHeight:   900,
		MaxRayDistance: 6,
		Seed:           27,
	}
}

// Load reads YAML settings from path on top of the defaults, so a config
// file only needs to name the values it changes.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first fatal configuration error. Packed mesh
// vertices store local coordinates 0..ChunkSize in 6 bits, which caps the
// chunk edge at 63.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", s.ChunkSize)
	}
	if s.ChunkSize > 63 {
		return fmt.Errorf("chunk_size %d exceeds 63, the largest edge a packed vertex can address", s.ChunkSize)
	}
	if s.WorldWidth <= 0 || s.WorldHeight <= 0 || s.WorldDepth <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%dx%d", s.WorldWidth, s.WorldHeight, s.WorldDepth)
	}
	if s.FovDegrees <= 0 || s.FovDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be in (0, 180), got %v", s.FovDegrees)
	}
	if s.Near <= 0 {
		return fmt.Errorf("near plane must be positive, got %v", s.Near)
	}
	if s.Far <= s.Near {
		return fmt.Errorf("far plane %v must exceed near plane %v", s.Far, s.Near)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.MaxRayDistance <= 0 {
		return fmt.Errorf("max_ray_distance must be positive, got %v", s.MaxRayDistance)
	}
	return nil
}

func (s Settings) Aspect() float32 {
	return float32(s.WindowWidth) / float32(s.WindowHeight)
}

func (s Settings) ChunkArea() int {
	return s.ChunkSize * s.ChunkSize
}

func (s Settings) ChunkVolume() int {
	return s.ChunkArea() * s.ChunkSize
}

// ChunkCount is the number of chunks in the world.
func (s Settings) ChunkCount() int {
	return s.WorldWidth * s.WorldHeight * s.WorldDepth
}

// SphereRadius is the bounding-sphere radius used for chunk culling, half
// the diagonal of a chunk cube.
func (s Settings) SphereRadius() float32 {
	return float32(s.ChunkSize) * 0.5 * float32(math.Sqrt(3))
}

// SpawnPosition is the default camera position: centered over the world
// footprint, level with the top of the highest chunk layer.
func (s Settings) SpawnPosition() mgl32.Vec3 {
	centerX := float32(s.WorldWidth*s.ChunkSize) * 0.5
	centerZ := float32(s.WorldDepth*s.ChunkSize) * 0.5
	return mgl32.Vec3{centerX, float32(s.WorldHeight * s.ChunkSize), centerZ}
}
