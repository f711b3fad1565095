// Package entity implements the avatar and hostile agents.
package entity

import (
	gomath "math"

	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Direction constants for 8-way facing. South faces the camera.
const (
	DirS  = 0
	DirSW = 1
	DirW  = 2
	DirNW = 3
	DirN  = 4
	DirNE = 5
	DirE  = 6
	DirSE = 7
)

// ArriveTolerance is the distance in world units at which a walker snaps to
// its current waypoint.
const ArriveTolerance = 2.0

// Walker advances an entity along a waypoint path at a fixed speed. The
// player avatar and every zombie share this controller; only how they pick
// paths differs.
type Walker struct {
	Pos    math.Vec2
	Facing int     // 0-7: S, SW, W, NW, N, NE, E, SE
	Speed  float32 // World units per second

	path      []math.Vec2
	pathIndex int
}

// NewWalker creates a walker at the given position.
func NewWalker(pos math.Vec2, speed float32) *Walker {
	return &Walker{
		Pos:    pos,
		Facing: DirS,
		Speed:  speed,
	}
}

// SetPath replaces the current path. An empty path stops the walker.
func (w *Walker) SetPath(path []math.Vec2) {
	w.path = path
	w.pathIndex = 0
}

// ClearPath stops the walker.
func (w *Walker) ClearPath() {
	w.path = nil
	w.pathIndex = 0
}

// Moving reports whether waypoints remain.
func (w *Walker) Moving() bool {
	return w.pathIndex < len(w.path)
}

// Path returns the remaining waypoints.
func (w *Walker) Path() []math.Vec2 {
	if w.pathIndex >= len(w.path) {
		return nil
	}
	return w.path[w.pathIndex:]
}

// Teleport moves the walker instantly and drops any path.
func (w *Walker) Teleport(pos math.Vec2) {
	w.Pos = pos
	w.ClearPath()
}

// Update advances the walker by one tick. It returns true exactly on the
// tick the final waypoint is reached; an idle walker returns false forever.
func (w *Walker) Update(dt float32) bool {
	if !w.Moving() || dt <= 0 {
		return false
	}

	target := w.path[w.pathIndex]
	delta := target.Sub(w.Pos)
	dist := delta.Length()

	if dist <= ArriveTolerance {
		w.Pos = target
		w.pathIndex++
		if !w.Moving() {
			w.ClearPath()
			return true
		}
		return false
	}

	step := w.Speed * dt
	if step > dist {
		step = dist
	}
	w.Pos = w.Pos.Add(delta.Normalize().Scale(step))
	w.Facing = CalculateDirection(delta.X, delta.Y)
	return false
}

// CalculateDirection converts a movement delta to a facing index by
// snapping the motion angle to the nearest 45 degrees. Screen-space +Y is
// down, which reads as south.
func CalculateDirection(dx, dy float32) int {
	angle := gomath.Atan2(float64(dx), float64(dy))
	if angle < 0 {
		angle += 2 * gomath.Pi
	}

	// Divide the circle into 8 sectors with a half-sector offset so each
	// direction is centered on its angle.
	sector := int((angle + gomath.Pi/8) / (gomath.Pi / 4))
	if sector >= 8 {
		sector = 0
	}

	directionMap := []int{DirS, DirSE, DirE, DirNE, DirN, DirNW, DirW, DirSW}
	return directionMap[sector]
}
