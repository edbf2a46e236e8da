package lod

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vnykmshr/voxelflow/internal/testutil"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	testutil.AssertNoError(t, s.Check())
	testutil.AssertEqual(t, s.MaxLodLevel(), uint32(8)) // 4096 / 16 = 2^8
}

func TestSettingsCheck(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"total size not a power of two", func(s *Settings) { s.TotalSize = 100 }},
		{"total size zero", func(s *Settings) { s.TotalSize = 0 }},
		{"chunk cells not a power of two", func(s *Settings) { s.ChunkCells = 12 }},
		{"chunk cells exceed total size", func(s *Settings) { s.ChunkCells = 8192 }},
		{"negative lod factor", func(s *Settings) { s.LodFactor = -1 }},
		{"negative worker threads", func(s *Settings) { s.WorkerThreads = -1 }},
		{"zero mesh cache", func(s *Settings) { s.MeshCacheSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			testutil.AssertError(t, s.Check())
		})
	}
}

func TestMaxLodLevel(t *testing.T) {
	s := DefaultSettings()
	s.TotalSize = 64
	s.ChunkCells = 16
	testutil.AssertEqual(t, s.MaxLodLevel(), uint32(2))

	s.TotalSize = 16
	testutil.AssertEqual(t, s.MaxLodLevel(), uint32(0))
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	data := []byte("name: terrain\ntotal_size: 256\nlod_factor: 2.5\nfixed_lod_level: 3\n")
	testutil.AssertNoError(t, os.WriteFile(path, data, 0o644))

	s, err := LoadSettings(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Name, "terrain")
	testutil.AssertEqual(t, s.TotalSize, uint32(256))
	testutil.AssertEqual(t, s.LodFactor, float32(2.5))
	if s.FixedLodLevel == nil || *s.FixedLodLevel != 3 {
		t.Fatalf("fixed lod level = %v, want 3", s.FixedLodLevel)
	}

	// Unset fields keep their defaults.
	testutil.AssertEqual(t, s.ChunkCells, uint32(16))
	testutil.AssertEqual(t, s.MeshCacheSize, 1024)
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yml"))
	testutil.AssertError(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("total_size: 100\n"), 0o644))
	_, err = LoadSettings(path)
	testutil.AssertError(t, err)
}
