package world

import (
	"container/heap"
	gomath "math"

	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// SnapRadius bounds the expanding-ring search for the nearest walkable cell
// when a path endpoint lies on a blocked cell.
const SnapRadius = 8

// PathNode represents a node in the A* search.
type PathNode struct {
	X, Y   int     // Cell coordinates
	G      float32 // Cost from start
	H      float32 // Heuristic (estimated cost to goal)
	F      float32 // Total cost (G + H)
	Parent *PathNode
	Index  int   // Index in heap
	Seq    int64 // Insertion order, breaks F ties deterministically
}

// PathHeap implements a priority queue for A* pathfinding.
type PathHeap []*PathNode

func (h PathHeap) Len() int { return len(h) }
func (h PathHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].Seq < h[j].Seq
}
func (h PathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *PathHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*PathNode)
	node.Index = n
	*h = append(*h, node)
}

func (h *PathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[0 : n-1]
	return node
}

// PathFinder runs A* searches over a room's walkability grid. It holds no
// mutable state between calls, so one instance can serve the avatar and
// every zombie in the room.
type PathFinder struct {
	grid *Grid
}

// NewPathFinder creates a pathfinder for the given grid.
func NewPathFinder(grid *Grid) *PathFinder {
	if grid == nil {
		return nil
	}
	return &PathFinder{grid: grid}
}

// FindPath finds a route between two world positions. The result is an
// ordered list of cell-center waypoints excluding the start cell; the last
// waypoint is the (possibly snapped) goal. An empty result means no route,
// which is a normal outcome, not an error. Identical grid and endpoints
// always produce the identical waypoint sequence.
func (pf *PathFinder) FindPath(start, goal math.Vec2) []math.Vec2 {
	if pf == nil || pf.grid == nil {
		return nil
	}

	startX, startY := pf.grid.WorldToCell(start)
	goalX, goalY := pf.grid.WorldToCell(goal)

	var ok bool
	if startX, startY, ok = pf.snapToWalkable(startX, startY); !ok {
		return nil
	}
	if goalX, goalY, ok = pf.snapToWalkable(goalX, goalY); !ok {
		return nil
	}

	if startX == goalX && startY == goalY {
		// Already on the goal cell. Callers treat a single-waypoint path
		// as "walk to the cell center, then you are there".
		return []math.Vec2{pf.grid.CellToWorld(goalX, goalY)}
	}

	cells := pf.searchCells(startX, startY, goalX, goalY)
	if len(cells) <= 1 {
		return nil
	}

	// Drop the start cell, map the rest to cell centers.
	waypoints := make([]math.Vec2, 0, len(cells)-1)
	for _, c := range cells[1:] {
		waypoints = append(waypoints, pf.grid.CellToWorld(c[0], c[1]))
	}
	return waypoints
}

// IsWalkable checks if a cell is walkable.
func (pf *PathFinder) IsWalkable(cx, cy int) bool {
	if pf == nil || pf.grid == nil {
		return false
	}
	return pf.grid.IsWalkable(cx, cy)
}

// Grid returns the underlying walkability grid.
func (pf *PathFinder) Grid() *Grid { return pf.grid }

// snapToWalkable returns the given cell if walkable, otherwise the nearest
// walkable cell within SnapRadius searched in expanding square rings. The
// ring scan order is fixed, which keeps snapping deterministic.
func (pf *PathFinder) snapToWalkable(cx, cy int) (int, int, bool) {
	if pf.grid.IsWalkable(cx, cy) {
		return cx, cy, true
	}

	for r := 1; r <= SnapRadius; r++ {
		bestDist := float32(gomath.MaxFloat32)
		bestX, bestY := 0, 0
		found := false
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx > -r && dx < r && dy > -r && dy < r {
					continue // interior covered by a previous ring
				}
				nx, ny := cx+dx, cy+dy
				if !pf.grid.IsWalkable(nx, ny) {
					continue
				}
				d := float32(dx*dx + dy*dy)
				if d < bestDist {
					bestDist = d
					bestX, bestY = nx, ny
					found = true
				}
			}
		}
		if found {
			return bestX, bestY, true
		}
	}
	return 0, 0, false
}

// searchCells runs A* over the grid and returns the cell sequence from
// start to goal inclusive, or nil if the goal is unreachable.
func (pf *PathFinder) searchCells(startX, startY, goalX, goalY int) [][2]int {
	openSet := &PathHeap{}
	heap.Init(openSet)

	closedSet := make(map[int]bool)
	nodeMap := make(map[int]*PathNode)
	var seq int64

	startNode := &PathNode{
		X: startX,
		Y: startY,
		G: 0,
		H: pf.heuristic(startX, startY, goalX, goalY),
	}
	startNode.F = startNode.G + startNode.H
	heap.Push(openSet, startNode)
	nodeMap[pf.key(startX, startY)] = startNode

	// 8-way neighbors, orthogonal and diagonal interleaved.
	directions := [][2]int{
		{0, 1},   // S
		{-1, 1},  // SW
		{-1, 0},  // W
		{-1, -1}, // NW
		{0, -1},  // N
		{1, -1},  // NE
		{1, 0},   // E
		{1, 1},   // SE
	}

	diagonalCost := float32(gomath.Sqrt2)
	straightCost := float32(1.0)

	maxIterations := pf.grid.Width() * pf.grid.Height()
	iterations := 0

	for openSet.Len() > 0 && iterations < maxIterations {
		iterations++

		current := heap.Pop(openSet).(*PathNode)

		if current.X == goalX && current.Y == goalY {
			return pf.reconstructPath(current)
		}

		closedSet[pf.key(current.X, current.Y)] = true

		for i, dir := range directions {
			nx, ny := current.X+dir[0], current.Y+dir[1]

			if !pf.grid.IsWalkable(nx, ny) {
				continue
			}
			if closedSet[pf.key(nx, ny)] {
				continue
			}

			var moveCost float32
			if i%2 == 1 { // Diagonal directions (SW, NW, NE, SE)
				moveCost = diagonalCost
				// No corner cutting: both orthogonal cells adjacent to the
				// diagonal must be walkable.
				if !pf.grid.IsWalkable(current.X+dir[0], current.Y) ||
					!pf.grid.IsWalkable(current.X, current.Y+dir[1]) {
					continue
				}
			} else {
				moveCost = straightCost
			}

			g := current.G + moveCost

			neighbor, exists := nodeMap[pf.key(nx, ny)]
			if !exists {
				seq++
				neighbor = &PathNode{
					X:      nx,
					Y:      ny,
					G:      g,
					H:      pf.heuristic(nx, ny, goalX, goalY),
					Parent: current,
					Seq:    seq,
				}
				neighbor.F = neighbor.G + neighbor.H
				nodeMap[pf.key(nx, ny)] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.G {
				neighbor.G = g
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	return nil
}

// heuristic is the Euclidean cell distance, admissible for the 1 and
// sqrt(2) step costs.
func (pf *PathFinder) heuristic(x1, y1, x2, y2 int) float32 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return float32(gomath.Hypot(dx, dy))
}

func (pf *PathFinder) key(x, y int) int {
	return y*pf.grid.Width() + x
}

func (pf *PathFinder) reconstructPath(node *PathNode) [][2]int {
	var path [][2]int
	for node != nil {
		path = append(path, [2]int{node.X, node.Y})
		node = node.Parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
