package navmesh

// Path find result codes.
type PathFindResult int32

const (
	PATHFIND_SUCCESS       PathFindResult = iota ///< Path found successfully.
	PATHFIND_PARTIAL                             ///< Partial path found.
	PATHFIND_NO_PATH                             ///< No path found.
	PATHFIND_INVALID_START                       ///< Invalid start position.
	PATHFIND_INVALID_END                         ///< Invalid end position.
	PATHFIND_OUT_OF_NODES                        ///< Ran out of path nodes.
	PATHFIND_TIMEOUT                             ///< Reserved. The core loop does not enforce a wall-clock bound.
	PATHFIND_ERROR                               ///< Other error.
)

func (r PathFindResult) String() string {
	switch r {
	case PATHFIND_SUCCESS:
		return "PATHFIND_SUCCESS"
	case PATHFIND_PARTIAL:
		return "PATHFIND_PARTIAL"
	case PATHFIND_NO_PATH:
		return "PATHFIND_NO_PATH"
	case PATHFIND_INVALID_START:
		return "PATHFIND_INVALID_START"
	case PATHFIND_INVALID_END:
		return "PATHFIND_INVALID_END"
	case PATHFIND_OUT_OF_NODES:
		return "PATHFIND_OUT_OF_NODES"
	case PATHFIND_TIMEOUT:
		return "PATHFIND_TIMEOUT"
	}
	return "PATHFIND_ERROR"
}

// Succeeded reports whether the query produced a usable path.
func (r PathFindResult) Succeeded() bool {
	return r == PATHFIND_SUCCESS || r == PATHFIND_PARTIAL
}

// Area type flags carried by each polygon.
const (
	AREA_WALKABLE      = 0x01 ///< Normal walkable area.
	AREA_JUMP          = 0x02 ///< Jump required.
	AREA_WATER         = 0x04 ///< Water area.
	AREA_DOOR          = 0x08 ///< Door area.
	AREA_STAIRS        = 0x10 ///< Stairs.
	AREA_INDOORS       = 0x20 ///< Indoor area.
	AREA_NO_NAVIGATION = 0x40 ///< Area where navigation is not allowed.
	AREA_RESTRICTED    = 0x80 ///< Restricted area.
)
