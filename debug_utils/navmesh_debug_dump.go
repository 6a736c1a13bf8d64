package debug_utils

import (
	"fmt"

	"gonavquery/common/rw"
	"gonavquery/navmesh"
)

// DuDumpNavMeshToObj writes the polygon graph as a Wavefront OBJ for
// inspection in any mesh viewer. Polygons without vertex data are emitted
// as a point marker at their center so they stay visible in the dump.
func DuDumpNavMeshToObj(polys []*navmesh.NavMeshPoly, w *rw.ReaderWriter) bool {
	if w == nil {
		return false
	}

	w.WriteString("# NavQuery Navmesh\n")
	w.WriteString("o NavMesh\n")
	w.WriteString("\n")

	vertBase := 1
	for _, poly := range polys {
		w.WriteString(fmt.Sprintf("# poly %d area 0x%02x\n", poly.Id, poly.Area))
		if len(poly.Verts) == 0 {
			w.WriteString(fmt.Sprintf("v %f %f %f\n", poly.Center.X(), poly.Center.Y(), poly.Center.Z()))
			w.WriteString(fmt.Sprintf("p %d\n", vertBase))
			vertBase++
			continue
		}
		for _, v := range poly.Verts {
			w.WriteString(fmt.Sprintf("v %f %f %f\n", v.X(), v.Y(), v.Z()))
		}
		for i := 2; i < len(poly.Verts); i++ {
			w.WriteString(fmt.Sprintf("f %d %d %d\n", vertBase, vertBase+i-1, vertBase+i))
		}
		vertBase += len(poly.Verts)
	}

	return true
}
