package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"gonavquery/common"
	"gonavquery/navmesh"
)

func testData() *navmesh.NavMeshData {
	return &navmesh.NavMeshData{Polys: []*navmesh.NavMeshPoly{
		{
			Id:        1,
			Center:    common.Vec3{0, 0, 0},
			Neighbors: []uint32{2},
			Area:      navmesh.AREA_WALKABLE,
		},
		{
			Id:        2,
			Center:    common.Vec3{5, 0, 0},
			Neighbors: []uint32{1},
			Area:      navmesh.AREA_WALKABLE,
		},
	}}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.nav")
	if err := SaveToFile(path, testData()); err != nil {
		t.Fatal(err)
	}

	data, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Polys) != 2 {
		t.Fatalf("poly count = %d, want 2", len(data.Polys))
	}
	if data.Polys[0].Id != 1 || data.Polys[1].Id != 2 {
		t.Fatalf("poly ids = %d,%d, want 1,2", data.Polys[0].Id, data.Polys[1].Id)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.nav")); err == nil {
		t.Fatal("missing navmesh file must error")
	}
}

func TestLoadFromFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.nav")
	if err := SaveToFile(path, testData()); err != nil {
		t.Fatal(err)
	}
	raw := (&navmesh.NavMeshData{}).ToBin()
	raw[0] ^= 0xff
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("corrupt navmesh file must error")
	}
}
