package navmesh

import (
	"math/rand"
	"sort"

	"gonavquery/common"

	"go.uber.org/zap"
)

const (
	POOL_SIZE = 4096 ///< Default search node pool capacity.

	DEFAULT_CHECK_BOTTOM = -50.0 ///< Default lower bound of the vertical containment band.
	DEFAULT_CHECK_TOP    = 50.0  ///< Default upper bound of the vertical containment band.

	// Effective containment radius around a polygon center. A stand-in for
	// precise point-in-polygon testing against the vertex boundary.
	POLY_RADIUS = 2.0

	// Tight resolution radius used when resolving search start/end points.
	POLY_SEARCH_RADIUS = 2.0
)

// NavMeshPoly is one polygon of the navigable surface decomposition.
// Polygons are populated by mesh loading and immutable afterwards except
// for whole-world replace/unload. Neighbor ids that do not resolve to a
// loaded polygon are tolerated and skipped during expansion.
type NavMeshPoly struct {
	Id        uint32        ///< Unique polygon id, stable per load.
	Verts     []common.Vec3 ///< Boundary of the walkable region, ordered.
	Center    common.Vec3   ///< Precomputed centroid.
	Height    float32       ///< Reference Y used for vertical containment checks.
	Neighbors []uint32      ///< Adjacent polygon ids.
	Flags     uint8         ///< Polygon flags.
	Area      uint8         ///< Area type bitmask. See the AREA_* constants.
}

// NavMeshController tracks one logical world's slice of the polygon graph.
// Polygon ids are global across worlds; the controller records the ids it
// loaded so an unload can remove exactly its polygons.
type NavMeshController struct {
	worldId uint32
	polyIds []uint32
}

func (c *NavMeshController) WorldId() uint32 { return c.worldId }

// NavMeshTrigger is an opaque volume registered for enter/exit notification.
// The periodic check is an extension point and currently does nothing.
type NavMeshTrigger struct {
	Center common.Vec3
	Radius float32
}

// RayCastResult carries the outcome of a navmesh ray cast.
type RayCastResult struct {
	Hit      bool
	Position common.Vec3
	Normal   common.Vec3
	Distance float32
	PolyId   uint32
}

// PathFindOptions configures a single FindPath call.
//
// MaxDistance, StraightPathTolerance, AreaFlags, ExcludedAreaFlags and
// Timeout are accepted but not enforced by the core loop. Area flags in
// particular are not yet applied when expanding successors.
type PathFindOptions struct {
	MaxIterations         int32   ///< Hard iteration cap for the search loop.
	MaxNodes              int32   ///< Node budget reference. The pool capacity is the effective bound.
	MaxDistance           float32 ///< Reserved path-length ceiling.
	StraightPathTolerance float32 ///< Reserved for the waypoint-reduction pass.
	OptimizePath          bool    ///< Toggles the waypoint-reduction pass.
	AreaFlags             uint32  ///< Reserved include bitmask.
	ExcludedAreaFlags     uint32  ///< Reserved exclude bitmask.
	Timeout               float32 ///< Reserved, unenforced.
}

func DefaultPathFindOptions() PathFindOptions {
	return PathFindOptions{
		MaxIterations:         2000,
		MaxNodes:              POOL_SIZE,
		MaxDistance:           1000.0,
		StraightPathTolerance: 0.1,
		OptimizePath:          true,
		AreaFlags:             AREA_WALKABLE,
		ExcludedAreaFlags:     AREA_NO_NAVIGATION,
		Timeout:               1.0,
	}
}

// NavMeshSystem owns the polygon graph, the search node pool, the per-query
// open/closed working sets and all controller/trigger registrations.
//
// Every query runs to completion on the calling thread. The system holds no
// internal locking; callers serialize access if concurrent use is required.
type NavMeshSystem struct {
	m_controllers      map[uint32]*NavMeshController
	m_activeController *NavMeshController
	m_polys            map[uint32]*NavMeshPoly
	m_polyIds          []uint32 // sorted, for deterministic scans
	m_triggers         map[uint32]*NavMeshTrigger
	m_nextTriggerId    uint32

	m_pool       *NodePool
	m_openList   []*NavMeshPathNode
	m_closedList []*NavMeshPathNode

	m_checkNavMeshBottom float32
	m_checkNavMeshTop    float32
	m_drawNavMesh        bool
	m_defaultOptions     PathFindOptions

	log *zap.Logger
}

func NewNavMeshSystem(poolSize int32, log *zap.Logger) *NavMeshSystem {
	if poolSize <= 0 {
		poolSize = POOL_SIZE
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &NavMeshSystem{
		m_controllers:        map[uint32]*NavMeshController{},
		m_polys:              map[uint32]*NavMeshPoly{},
		m_triggers:           map[uint32]*NavMeshTrigger{},
		m_nextTriggerId:      1,
		m_pool:               NewNodePool(poolSize),
		m_checkNavMeshBottom: DEFAULT_CHECK_BOTTOM,
		m_checkNavMeshTop:    DEFAULT_CHECK_TOP,
		m_defaultOptions:     DefaultPathFindOptions(),
		log:                  log,
	}
}

// LoadNavMesh replaces any controller registered for worldId with a new one
// populated from data, destroying the prior controller and its polygons
// first. The new controller becomes active when no controller is active.
func (s *NavMeshSystem) LoadNavMesh(data *NavMeshData, worldId uint32) bool {
	if prev, ok := s.m_controllers[worldId]; ok {
		s.removeController(prev)
	}

	controller := &NavMeshController{worldId: worldId}
	if data != nil {
		for _, poly := range data.Polys {
			s.m_polys[poly.Id] = poly
			controller.polyIds = append(controller.polyIds, poly.Id)
		}
		s.rebuildPolyIndex()
	}
	s.m_controllers[worldId] = controller

	if s.m_activeController == nil {
		s.m_activeController = controller
	}

	s.log.Info("navmesh loaded",
		zap.Uint32("worldId", worldId),
		zap.Int("polys", len(controller.polyIds)))
	return true
}

// UnloadNavMesh destroys the controller for worldId. When the unloaded
// controller was active, the active pointer is cleared; no other world is
// promoted.
func (s *NavMeshSystem) UnloadNavMesh(worldId uint32) bool {
	controller, ok := s.m_controllers[worldId]
	if !ok {
		return false
	}
	s.removeController(controller)
	s.log.Info("navmesh unloaded", zap.Uint32("worldId", worldId))
	return true
}

func (s *NavMeshSystem) removeController(controller *NavMeshController) {
	for _, id := range controller.polyIds {
		delete(s.m_polys, id)
	}
	delete(s.m_controllers, controller.worldId)
	if s.m_activeController == controller {
		s.m_activeController = nil
	}
	s.rebuildPolyIndex()
}

func (s *NavMeshSystem) rebuildPolyIndex() {
	s.m_polyIds = s.m_polyIds[:0]
	for id := range s.m_polys {
		s.m_polyIds = append(s.m_polyIds, id)
	}
	sort.Slice(s.m_polyIds, func(i, j int) bool { return s.m_polyIds[i] < s.m_polyIds[j] })
}

// GetNavMeshController returns the active controller, or nil.
func (s *NavMeshSystem) GetNavMeshController() *NavMeshController {
	return s.m_activeController
}

// GetPolygon looks up a polygon by id.
func (s *NavMeshSystem) GetPolygon(polyId uint32) (*NavMeshPoly, bool) {
	poly, ok := s.m_polys[polyId]
	return poly, ok
}

// Polygons returns every loaded polygon in id order.
func (s *NavMeshSystem) Polygons() []*NavMeshPoly {
	res := make([]*NavMeshPoly, 0, len(s.m_polyIds))
	for _, id := range s.m_polyIds {
		res = append(res, s.m_polys[id])
	}
	return res
}

// findPolygon resolves the polygon containing position, or the nearest
// polygon within maxDist. Only polygons whose vertical band
// [height+bottom, height+top] admits position.Y are considered. A
// containment hit always beats any non-containing candidate regardless of
// distance. Returns 0 when nothing qualifies.
func (s *NavMeshSystem) findPolygon(position common.Vec3, maxDist float32) uint32 {
	bestPolyId := uint32(0)
	bestDistSq := maxDist * maxDist

	for _, id := range s.m_polyIds {
		poly := s.m_polys[id]
		if position.Y() < poly.Height+s.m_checkNavMeshBottom ||
			position.Y() > poly.Height+s.m_checkNavMeshTop {
			continue
		}

		distSq := common.Vdist2DSqr(position, poly.Center)
		if s.isPositionInPolygon(position, poly) {
			return id
		}
		if distSq < bestDistSq {
			bestPolyId = id
			bestDistSq = distSq
		}
	}

	return bestPolyId
}

// isPositionInPolygon tests horizontal containment using the effective
// radius around the polygon center rather than the vertex boundary.
func (s *NavMeshSystem) isPositionInPolygon(position common.Vec3, poly *NavMeshPoly) bool {
	return common.Vdist2DSqr(position, poly.Center) <= POLY_RADIUS*POLY_RADIUS
}

// IsPositionValid reports whether position resolves to a polygon, and the
// resolved polygon id (0 when invalid).
func (s *NavMeshSystem) IsPositionValid(position common.Vec3) (uint32, bool) {
	polyId := s.findPolygon(position, POLY_SEARCH_RADIUS)
	return polyId, polyId != 0
}

// IsIndoors reports whether position resolves to a polygon flagged indoors.
func (s *NavMeshSystem) IsIndoors(position common.Vec3) bool {
	polyId := s.findPolygon(position, POLY_SEARCH_RADIUS)
	if polyId == 0 {
		return false
	}
	poly, ok := s.GetPolygon(polyId)
	if !ok {
		return false
	}
	return poly.Area&AREA_INDOORS != 0
}

// FindNearestValidPosition resolves position to a polygon within maxDist
// and snaps the vertical coordinate to the polygon's reference height.
func (s *NavMeshSystem) FindNearestValidPosition(position common.Vec3, maxDist float32) (common.Vec3, bool) {
	polyId := s.findPolygon(position, maxDist)
	if polyId == 0 {
		return common.Vec3{}, false
	}
	poly, ok := s.GetPolygon(polyId)
	if !ok {
		return common.Vec3{}, false
	}
	return common.Vec3{position.X(), poly.Height, position.Z()}, true
}

// GetPolygonsInRegion collects every polygon whose center lies within
// radius of center. The boundary is inclusive. Full scan of the polygon
// mapping; no spatial index.
func (s *NavMeshSystem) GetPolygonsInRegion(center common.Vec3, radius float32) []*NavMeshPoly {
	radiusSq := radius * radius
	var res []*NavMeshPoly
	for _, id := range s.m_polyIds {
		poly := s.m_polys[id]
		if common.VdistSqr(poly.Center, center) <= radiusSq {
			res = append(res, poly)
		}
	}
	return res
}

// GetRandomPosition uniformly samples one polygon from the region around
// center and returns its center point.
func (s *NavMeshSystem) GetRandomPosition(center common.Vec3, radius float32) (common.Vec3, bool) {
	polys := s.GetPolygonsInRegion(center, radius)
	if len(polys) == 0 {
		return common.Vec3{}, false
	}
	return polys[rand.Intn(len(polys))].Center, true
}

// RayCast traces a ray against the navmesh. Real ray/mesh intersection is
// not implemented; the result deterministically reports no hit.
func (s *NavMeshSystem) RayCast(start, end common.Vec3, result *RayCastResult) bool {
	if result != nil {
		result.Hit = false
		result.Position = end
		result.Normal = common.Vec3{0, 1, 0}
		result.Distance = common.Vdist(start, end)
		result.PolyId = 0
	}
	return false
}

// AddTrigger registers a trigger volume and returns its engine-assigned id.
func (s *NavMeshSystem) AddTrigger(trigger *NavMeshTrigger) uint32 {
	triggerId := s.m_nextTriggerId
	s.m_nextTriggerId++
	s.m_triggers[triggerId] = trigger
	return triggerId
}

// RemoveTrigger unregisters a trigger. False when the id is unknown.
func (s *NavMeshSystem) RemoveTrigger(triggerId uint32) bool {
	if _, ok := s.m_triggers[triggerId]; !ok {
		return false
	}
	delete(s.m_triggers, triggerId)
	return true
}

// UpdateTriggers is the periodic enter/exit check. Extension point; the
// current implementation does nothing.
func (s *NavMeshSystem) UpdateTriggers() {
}

// SetDrawNavMesh toggles debug drawing of the mesh.
func (s *NavMeshSystem) SetDrawNavMesh(draw bool) {
	s.m_drawNavMesh = draw
}

func (s *NavMeshSystem) DrawNavMeshEnabled() bool {
	return s.m_drawNavMesh
}

// SetNavMeshParams configures the vertical containment band applied by
// polygon resolution.
func (s *NavMeshSystem) SetNavMeshParams(checkBottom, checkTop float32) {
	s.m_checkNavMeshBottom = checkBottom
	s.m_checkNavMeshTop = checkTop
}

// SetDefaultOptions replaces the options applied when FindPath is called
// without an explicit options struct.
func (s *NavMeshSystem) SetDefaultOptions(opts PathFindOptions) {
	s.m_defaultOptions = opts
}

func (s *NavMeshSystem) DefaultOptions() PathFindOptions {
	return s.m_defaultOptions
}
