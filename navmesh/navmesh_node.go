package navmesh

import (
	"gonavquery/common"
)

const (
	NODE_IN_USE = 0x01 ///< The slot is claimed by the current search.
)

// NavMeshPathNode is a single search step. Nodes live in a fixed-capacity
// pool and are rewritten in place as a query runs; no field except the
// pool bookkeeping survives between queries.
type NavMeshPathNode struct {
	Pos       common.Vec3      ///< Position of the node. May be an interpolated midpoint, not a polygon vertex.
	PolyId    uint32           ///< Polygon the node corresponds to.
	Cost      float32          ///< Accumulated cost from the start node.
	Heuristic float32          ///< Straight-line estimate to the goal.
	Total     float32          ///< Cost + heuristic.
	Parent    *NavMeshPathNode ///< Predecessor in this search, nil for the seed node.
	flags     uint32
}

// NodePool is a fixed-capacity arena of reusable search nodes. Allocate
// does not reset node fields; callers overwrite everything they rely on.
// The pool is not safe for concurrent overlapping searches.
type NodePool struct {
	m_nodes    []*NavMeshPathNode
	m_maxNodes int32
	m_count    int32
}

func NewNodePool(maxNodes int32) *NodePool {
	common.AssertTrue(maxNodes > 0)
	p := &NodePool{
		m_nodes:    make([]*NavMeshPathNode, maxNodes),
		m_maxNodes: maxNodes,
	}
	for i := range p.m_nodes {
		p.m_nodes[i] = &NavMeshPathNode{}
	}
	return p
}

func (p *NodePool) GetMaxNodes() int32 { return p.m_maxNodes }
func (p *NodePool) GetNodeCount() int32 { return p.m_count }

// Allocate returns the first free slot, or nil when the pool is exhausted.
func (p *NodePool) Allocate() *NavMeshPathNode {
	for _, node := range p.m_nodes {
		if node.flags&NODE_IN_USE == 0 {
			node.flags |= NODE_IN_USE
			p.m_count++
			return node
		}
	}
	return nil
}

// Free releases a node back to the pool. Only the parent link and the
// liveness bit are cleared; other fields are always rewritten before the
// node is used again.
func (p *NodePool) Free(node *NavMeshPathNode) {
	if node == nil || node.flags&NODE_IN_USE == 0 {
		return
	}
	node.Parent = nil
	node.flags &^= NODE_IN_USE
	p.m_count--
}

// Clear releases every node. Called when the search working sets are reset.
func (p *NodePool) Clear() {
	for _, node := range p.m_nodes {
		node.Parent = nil
		node.flags &^= NODE_IN_USE
	}
	p.m_count = 0
}
