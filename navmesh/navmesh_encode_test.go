package navmesh

import (
	"testing"

	"gonavquery/common"
)

func TestNavMeshDataRoundTrip(t *testing.T) {
	src := &NavMeshData{Polys: []*NavMeshPoly{
		{
			Id: 1,
			Verts: []common.Vec3{
				{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
			},
			Center:    common.Vec3{0, 0, 0},
			Height:    0,
			Neighbors: []uint32{2},
			Flags:     0x04,
			Area:      AREA_WALKABLE | AREA_INDOORS,
		},
		{
			Id:     2,
			Center: common.Vec3{5, 1.5, 0},
			Height: 1.5,
			Area:   AREA_WALKABLE,
		},
	}}

	dst := &NavMeshData{}
	if err := dst.FromBin(src.ToBin()); err != nil {
		t.Fatal(err)
	}
	if len(dst.Polys) != len(src.Polys) {
		t.Fatalf("poly count = %d, want %d", len(dst.Polys), len(src.Polys))
	}
	for i, want := range src.Polys {
		got := dst.Polys[i]
		if got.Id != want.Id || got.Flags != want.Flags || got.Area != want.Area ||
			got.Height != want.Height || got.Center != want.Center {
			t.Fatalf("poly %d header mismatch: %+v vs %+v", i, got, want)
		}
		if len(got.Verts) != len(want.Verts) {
			t.Fatalf("poly %d vert count = %d, want %d", i, len(got.Verts), len(want.Verts))
		}
		for j := range want.Verts {
			if got.Verts[j] != want.Verts[j] {
				t.Fatalf("poly %d vert %d = %v, want %v", i, j, got.Verts[j], want.Verts[j])
			}
		}
		if len(got.Neighbors) != len(want.Neighbors) {
			t.Fatalf("poly %d neighbor count = %d, want %d", i, len(got.Neighbors), len(want.Neighbors))
		}
		for j := range want.Neighbors {
			if got.Neighbors[j] != want.Neighbors[j] {
				t.Fatalf("poly %d neighbor %d = %d, want %d", i, j, got.Neighbors[j], want.Neighbors[j])
			}
		}
	}
}

func TestNavMeshDataTruncated(t *testing.T) {
	src := &NavMeshData{Polys: []*NavMeshPoly{
		{
			Id: 1,
			Verts: []common.Vec3{
				{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
			},
			Center:    common.Vec3{0, 0, 0},
			Neighbors: []uint32{2, 3},
			Area:      AREA_WALKABLE,
		},
	}}
	bin := src.ToBin()

	// Every truncation point must produce an error, never a silent
	// decode of garbage polygons.
	for cut := 1; cut < len(bin); cut++ {
		dst := &NavMeshData{}
		if err := dst.FromBin(bin[:len(bin)-cut]); err == nil {
			t.Fatalf("truncated input (%d bytes dropped) decoded without error", cut)
		}
	}
}

func TestNavMeshDataBadCounts(t *testing.T) {
	src := &NavMeshData{Polys: []*NavMeshPoly{
		{Id: 1, Center: common.Vec3{0, 0, 0}, Area: AREA_WALKABLE},
	}}
	bin := src.ToBin()

	// Poly count claims far more entries than the payload can hold.
	bad := make([]byte, len(bin))
	copy(bad, bin)
	bad[8] = 0xff
	bad[9] = 0xff
	bad[10] = 0xff
	bad[11] = 0xff
	if err := (&NavMeshData{}).FromBin(bad); err == nil {
		t.Fatal("oversized poly count must be rejected")
	}
}

func TestNavMeshDataBadHeader(t *testing.T) {
	good := (&NavMeshData{}).ToBin()

	bad := make([]byte, len(good))
	copy(bad, good)
	bad[0] ^= 0xff
	if err := (&NavMeshData{}).FromBin(bad); err == nil {
		t.Fatal("corrupted magic must be rejected")
	}

	copy(bad, good)
	bad[4] ^= 0xff
	if err := (&NavMeshData{}).FromBin(bad); err == nil {
		t.Fatal("unknown version must be rejected")
	}
}
