// Package builder defines shared constants used by pattern-shape
// constructors, ensuring consistent defaults and validation across all of
// them.
package builder

//-----------------------------------------------------------------------------
// Builder method name constants, used to prefix errors with constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
)

//-----------------------------------------------------------------------------
// Vertex ID defaults
//-----------------------------------------------------------------------------

// FirstVertexID is the identifier for the first vertex in sequential
// topologies (Path, Cycle, Complete), avoiding a literal "0" scattered
// across the package.
const FirstVertexID = "0"

// CenterVertexID is the identifier for the hub vertex in Star and Wheel,
// keeping tests and debugging consistent.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum node counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid loop-free ring.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel topology:
// the outer ring has n-1 vertices, which itself must be >= MinCycleNodes.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest meaningful size for Complete.
const MinCompleteNodes = 1

// MinPartitionSize is the smallest allowed size for either side of
// CompleteBipartite.
const MinPartitionSize = 1
