package lod

import (
	"fmt"
	"math/bits"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vnykmshr/voxelflow/pkg/metrics"
)

// Settings configures an Octmap.
type Settings struct {
	// Name labels this octmap in logs and metrics.
	Name string `yaml:"name"`

	// TotalSize is the side length of the cubical volume, in voxels. Must be
	// a power of two.
	TotalSize uint32 `yaml:"total_size"`

	// LodFactor scales the distance rule: a node subdivides while
	// distance(viewer, aabb) <= LodFactor * aabb.Size. Larger values push
	// fine detail further out.
	LodFactor float32 `yaml:"lod_factor"`

	// FixedLodLevel, when set, overrides the distance rule: every node
	// subdivides to exactly this level (clamped to the maximum).
	FixedLodLevel *uint32 `yaml:"fixed_lod_level"`

	// ChunkCells is the number of cells along a chunk's edge. Must be a
	// power of two no larger than TotalSize; together with TotalSize it
	// determines the maximum LOD level.
	ChunkCells uint32 `yaml:"chunk_cells"`

	// WorkerThreads is the number of extraction workers.
	WorkerThreads int `yaml:"worker_threads"`

	// InFlight bounds concurrently dispatched extraction jobs. Zero uses
	// the job queue's default.
	InFlight int `yaml:"in_flight"`

	// MeshCacheSize is the capacity of the LRU cache holding meshes that
	// scrolled out of view.
	MeshCacheSize int `yaml:"mesh_cache_size"`

	// Metrics configures Prometheus instrumentation.
	Metrics metrics.Config `yaml:"-"`
}

// DefaultSettings returns the settings used by the original voxel planets
// demo: a 4096-voxel volume with 16-cell chunks.
func DefaultSettings() Settings {
	return Settings{
		Name:          "default",
		TotalSize:     4096,
		LodFactor:     1.0,
		ChunkCells:    16,
		WorkerThreads: 10,
		MeshCacheSize: 1024,
	}
}

// Check validates the settings.
func (s Settings) Check() error {
	if s.TotalSize == 0 || bits.OnesCount32(s.TotalSize) != 1 {
		return fmt.Errorf("total size %d must be a nonzero power of 2", s.TotalSize)
	}
	if s.ChunkCells == 0 || bits.OnesCount32(s.ChunkCells) != 1 {
		return fmt.Errorf("chunk cells %d must be a nonzero power of 2", s.ChunkCells)
	}
	if s.ChunkCells > s.TotalSize {
		return fmt.Errorf("chunk cells %d may not exceed total size %d", s.ChunkCells, s.TotalSize)
	}
	if s.LodFactor < 0 {
		return fmt.Errorf("lod factor %v may not be negative", s.LodFactor)
	}
	if s.WorkerThreads < 0 || s.InFlight < 0 {
		return fmt.Errorf("thread counts may not be negative")
	}
	if s.MeshCacheSize <= 0 {
		return fmt.Errorf("mesh cache size %d must be positive", s.MeshCacheSize)
	}
	return nil
}

// MaxLodLevel derives the deepest octree level from the volume and chunk
// sizes: level 0 is the whole volume, and each level halves the sampling
// step until a chunk spans ChunkCells voxels.
func (s Settings) MaxLodLevel() uint32 {
	lod0Step := s.TotalSize / s.ChunkCells
	return uint32(bits.TrailingZeros32(lod0Step))
}

// LoadSettings reads settings from a YAML file, filling unset fields with
// defaults, and validates them.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Check(); err != nil {
		return s, err
	}
	return s, nil
}
