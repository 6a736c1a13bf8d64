package navmesh

import (
	"gonavquery/common"

	"go.uber.org/zap"
)

// FindPath resolves start/end to polygons and searches the adjacency graph
// under the budgets carried by opts. A nil opts uses the system defaults.
// The reconstructed path is written into path; its previous contents are
// discarded.
func (s *NavMeshSystem) FindPath(start, end common.Vec3, path *NavMeshPath, opts *PathFindOptions) PathFindResult {
	options := s.m_defaultOptions
	if opts != nil {
		options = *opts
	}

	result := s.FindPathToo(start, end, options.MaxIterations, options.MaxNodes, path)
	if result == PATHFIND_SUCCESS && options.OptimizePath {
		s.OptimizePath(path)
	}
	return result
}

// FindPathToo is the core bounded A* over the polygon adjacency graph.
//
// The open and closed sets are plain lists reset on every call; minimum
// selection is a linear scan with first-seen-wins tie breaking. Successor
// positions are midpoints between the current position and the neighbor
// polygon's center, not shared-edge portals. maxNodeCount mirrors the node
// budget for callers; the pool capacity is the effective bound.
func (s *NavMeshSystem) FindPathToo(start, end common.Vec3, maxIterations, maxNodeCount int32, path *NavMeshPath) PathFindResult {
	s.log.Debug("FindPathToo",
		zap.Int32("maxIterations", maxIterations),
		zap.Int32("maxNodeCount", maxNodeCount))

	s.resetSearch()

	// End-point validity is checked before any node allocation.
	startPolyId := s.findPolygon(start, POLY_SEARCH_RADIUS)
	if startPolyId == 0 {
		return PATHFIND_INVALID_START
	}
	endPolyId := s.findPolygon(end, POLY_SEARCH_RADIUS)
	if endPolyId == 0 {
		return PATHFIND_INVALID_END
	}

	startNode := s.m_pool.Allocate()
	if startNode == nil {
		return PATHFIND_OUT_OF_NODES
	}
	startNode.Pos = start
	startNode.PolyId = startPolyId
	startNode.Cost = 0
	startNode.Heuristic = common.Vdist(start, end)
	startNode.Total = startNode.Heuristic
	startNode.Parent = nil

	// Start and end resolving to the same polygon short-circuits before
	// any iteration is spent.
	if startPolyId == endPolyId {
		s.reconstructPath(startNode, path)
		return PATHFIND_SUCCESS
	}

	s.m_openList = append(s.m_openList, startNode)

	var iterations int32
	for len(s.m_openList) > 0 && iterations < maxIterations {
		// Lowest total cost wins; ties go to the first encountered.
		best := 0
		for i := 1; i < len(s.m_openList); i++ {
			if s.m_openList[i].Total < s.m_openList[best].Total {
				best = i
			}
		}
		current := s.m_openList[best]
		s.m_openList = append(s.m_openList[:best], s.m_openList[best+1:]...)
		s.m_closedList = append(s.m_closedList, current)

		if current.PolyId == endPolyId {
			s.reconstructPath(current, path)
			s.log.Debug("FindPathToo done",
				zap.Stringer("result", PATHFIND_SUCCESS),
				zap.Int32("iterations", iterations))
			return PATHFIND_SUCCESS
		}

		currentPoly, ok := s.GetPolygon(current.PolyId)
		if !ok {
			continue
		}

		for _, neighborId := range currentPoly.Neighbors {
			if s.inClosedList(neighborId) {
				continue
			}

			// Dangling adjacency is tolerated, never escalated.
			neighborPoly, ok := s.GetPolygon(neighborId)
			if !ok {
				continue
			}

			newPos := common.Vmid(current.Pos, neighborPoly.Center)
			newCost := current.Cost + common.Vdist(current.Pos, newPos)

			existing := s.findOpenNode(neighborId)
			if existing != nil && existing.Cost <= newCost {
				continue
			}

			neighborNode := existing
			if neighborNode == nil {
				neighborNode = s.m_pool.Allocate()
				if neighborNode == nil {
					s.log.Warn("node pool exhausted",
						zap.Int32("poolSize", s.m_pool.GetMaxNodes()),
						zap.Int32("iterations", iterations))
					return PATHFIND_OUT_OF_NODES
				}
				s.m_openList = append(s.m_openList, neighborNode)
			}

			neighborNode.Pos = newPos
			neighborNode.PolyId = neighborId
			neighborNode.Cost = newCost
			neighborNode.Heuristic = common.Vdist(newPos, end)
			neighborNode.Total = neighborNode.Cost + neighborNode.Heuristic
			neighborNode.Parent = current
		}

		iterations++
	}

	if len(s.m_openList) > 0 {
		s.reconstructPath(s.bestPartialNode(), path)
		s.log.Debug("FindPathToo done",
			zap.Stringer("result", PATHFIND_PARTIAL),
			zap.Int32("iterations", iterations))
		return PATHFIND_PARTIAL
	}

	return PATHFIND_NO_PATH
}

// ContinuePath resumes path finding from a previous partial result.
// Cross-call search continuation is not implemented.
func (s *NavMeshSystem) ContinuePath(path *NavMeshPath, maxIterations, maxNodeCount int32) PathFindResult {
	return PATHFIND_NO_PATH
}

// OptimizePath is the waypoint-reduction pass. Extension point; the
// current implementation leaves the path untouched.
func (s *NavMeshSystem) OptimizePath(path *NavMeshPath) {
}

// resetSearch clears the working sets and releases every pooled node.
// No search state is retained across calls.
func (s *NavMeshSystem) resetSearch() {
	s.m_openList = s.m_openList[:0]
	s.m_closedList = s.m_closedList[:0]
	s.m_pool.Clear()
}

func (s *NavMeshSystem) inClosedList(polyId uint32) bool {
	for _, node := range s.m_closedList {
		if node.PolyId == polyId {
			return true
		}
	}
	return false
}

func (s *NavMeshSystem) findOpenNode(polyId uint32) *NavMeshPathNode {
	for _, node := range s.m_openList {
		if node.PolyId == polyId {
			return node
		}
	}
	return nil
}

// bestPartialNode picks the open node closest to the goal by heuristic,
// first seen winning ties. Only called with a non-empty open list.
func (s *NavMeshSystem) bestPartialNode() *NavMeshPathNode {
	best := s.m_openList[0]
	for _, node := range s.m_openList[1:] {
		if node.Heuristic < best.Heuristic {
			best = node
		}
	}
	return best
}

// reconstructPath walks parent links from the terminal node back to the
// seed and writes the forward-ordered waypoints into path.
func (s *NavMeshSystem) reconstructPath(endNode *NavMeshPathNode, path *NavMeshPath) {
	if path == nil {
		return
	}
	path.Clear()
	for node := endNode; node != nil; node = node.Parent {
		path.Append(node.Pos, node.PolyId)
	}
	path.Reverse()
}
