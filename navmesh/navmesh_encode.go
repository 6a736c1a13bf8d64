package navmesh

import (
	"fmt"

	"gonavquery/common"
	"gonavquery/common/rw"
)

const (
	NAVMESH_DATA_MAGIC   = uint32('N')<<24 | uint32('A')<<16 | uint32('V')<<8 | uint32('Q') ///< 'NAVQ'
	NAVMESH_DATA_VERSION = uint32(1)
)

// NavMeshData is the serialized polygon graph for one world, the payload
// handed to LoadNavMesh. The binary layout is little-endian:
// magic, version, poly count, then per polygon id, flags, area, height,
// center, vertex list and neighbor list, each list length-prefixed.
type NavMeshData struct {
	Polys []*NavMeshPoly
}

func (d *NavMeshData) ToBin() []byte {
	w := rw.NewNavMeshDataBinWriter()
	w.WriteUInt32(NAVMESH_DATA_MAGIC)
	w.WriteUInt32(NAVMESH_DATA_VERSION)
	w.WriteUInt32(uint32(len(d.Polys)))
	for _, poly := range d.Polys {
		w.WriteUInt32(poly.Id)
		w.WriteUInt8(poly.Flags)
		w.WriteUInt8(poly.Area)
		w.WriteFloat32(poly.Height)
		writeVec3(w, poly.Center)
		w.WriteUInt16(uint16(len(poly.Verts)))
		for _, v := range poly.Verts {
			writeVec3(w, v)
		}
		w.WriteUInt16(uint16(len(poly.Neighbors)))
		w.WriteUInt32s(poly.Neighbors)
	}
	return w.GetWriteBytes()
}

// Minimum encoded size of a polygon with empty vertex and neighbor lists:
// id, flags, area, height, center, two list length prefixes.
const polyMinBinSize = 4 + 1 + 1 + 4 + 12 + 2 + 2

func (d *NavMeshData) FromBin(data []byte) (err error) {
	// The rw reader panics on truncated input; a partially written file
	// must surface as a decode error, not corrupt polygons or a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("navmesh data: truncated or corrupt input: %v", r)
		}
	}()

	r := rw.NewNavMeshDataBinReader(data)
	if magic := r.ReadUInt32(); magic != NAVMESH_DATA_MAGIC {
		return fmt.Errorf("navmesh data: bad magic %#x", magic)
	}
	if version := r.ReadUInt32(); version != NAVMESH_DATA_VERSION {
		return fmt.Errorf("navmesh data: unsupported version %d", version)
	}
	polyCount := r.ReadUInt32()
	if int64(polyCount)*polyMinBinSize > int64(r.Len()) {
		return fmt.Errorf("navmesh data: poly count %d exceeds payload size %d", polyCount, r.Len())
	}
	d.Polys = make([]*NavMeshPoly, 0, polyCount)
	for i := uint32(0); i < polyCount; i++ {
		poly := &NavMeshPoly{}
		poly.Id = r.ReadUInt32()
		poly.Flags = r.ReadUInt8()
		poly.Area = r.ReadUInt8()
		poly.Height = r.ReadFloat32()
		poly.Center = readVec3(r)
		vertCount := int(r.ReadUInt16())
		if vertCount*12 > r.Len() {
			return fmt.Errorf("navmesh data: poly %d vert count %d exceeds payload size %d", poly.Id, vertCount, r.Len())
		}
		poly.Verts = make([]common.Vec3, vertCount)
		for j := 0; j < vertCount; j++ {
			poly.Verts[j] = readVec3(r)
		}
		neighborCount := int(r.ReadUInt16())
		if neighborCount*4 > r.Len() {
			return fmt.Errorf("navmesh data: poly %d neighbor count %d exceeds payload size %d", poly.Id, neighborCount, r.Len())
		}
		poly.Neighbors = make([]uint32, neighborCount)
		r.ReadUInt32s(poly.Neighbors)
		d.Polys = append(d.Polys, poly)
	}
	return nil
}

func writeVec3(w *rw.ReaderWriter, v common.Vec3) {
	w.WriteFloat32(v.X())
	w.WriteFloat32(v.Y())
	w.WriteFloat32(v.Z())
}

func readVec3(r *rw.ReaderWriter) common.Vec3 {
	x := r.ReadFloat32()
	y := r.ReadFloat32()
	z := r.ReadFloat32()
	return common.Vec3{x, y, z}
}
