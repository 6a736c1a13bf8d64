package navmesh

import (
	"gonavquery/common"
)

// NavMeshWaypoint is a single step of a reconstructed path.
type NavMeshWaypoint struct {
	Pos    common.Vec3
	PolyId uint32
}

// NavMeshPath is an ordered waypoint sequence from start to end.
// Callers own the path object they pass to the query surface; the engine
// only rewrites its contents.
type NavMeshPath struct {
	Waypoints []NavMeshWaypoint
}

func (p *NavMeshPath) Clear() {
	p.Waypoints = p.Waypoints[:0]
}

func (p *NavMeshPath) NumWaypoints() int {
	return len(p.Waypoints)
}

func (p *NavMeshPath) Append(pos common.Vec3, polyId uint32) {
	p.Waypoints = append(p.Waypoints, NavMeshWaypoint{Pos: pos, PolyId: polyId})
}

// Distance returns the summed segment length of the path.
func (p *NavMeshPath) Distance() float32 {
	var d float32
	for i := 1; i < len(p.Waypoints); i++ {
		d += common.Vdist(p.Waypoints[i-1].Pos, p.Waypoints[i].Pos)
	}
	return d
}

// Reverse flips the waypoint order in place. Path reconstruction walks
// parent links from the terminal node, so waypoints arrive goal-first.
func (p *NavMeshPath) Reverse() {
	for i, j := 0, len(p.Waypoints)-1; i < j; i, j = i+1, j-1 {
		p.Waypoints[i], p.Waypoints[j] = p.Waypoints[j], p.Waypoints[i]
	}
}
