package entity

import (
	gomath "math"
	"math/rand"

	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/world"
	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Zombie default tuning.
const (
	DefaultZombieSpeed    = 45.0
	DefaultRepathInterval = 2.0 // Seconds between target decisions
	DefaultDetectRadius   = 160.0
)

// Zombie is a hostile agent. It reuses the Walker controller and decides
// targets on a fixed interval: chase the avatar while it is inside the
// detection radius, otherwise drift along a random wander heading. The
// periodic repath is intentional; it bounds pathfinding cost and makes the
// zombie visibly lose a fleeing player.
type Zombie struct {
	Walker

	RepathInterval float32
	DetectRadius   float32

	timer     float32
	wanderDir math.Vec2
	rng       *rand.Rand
}

// NewZombie creates a zombie at the given position. The seed drives wander
// headings and repath jitter, so a fixed seed replays identically.
func NewZombie(pos math.Vec2, seed int64) *Zombie {
	return &Zombie{
		Walker:         *NewWalker(pos, DefaultZombieSpeed),
		RepathInterval: DefaultRepathInterval,
		DetectRadius:   DefaultDetectRadius,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Update advances the zombie by one tick against the room's pathfinder and
// the avatar's current position.
func (z *Zombie) Update(dt float32, pf *world.PathFinder, avatar math.Vec2) {
	z.timer -= dt
	if z.timer <= 0 {
		z.retarget(pf, avatar)
		// Jitter keeps a horde from retargeting in lockstep.
		z.timer = z.RepathInterval * (0.75 + 0.5*z.rng.Float32())
	}

	if z.Moving() {
		z.Walker.Update(dt)
		return
	}
	z.wander(dt, pf)
}

// retarget picks the next goal: a full path toward the avatar when it is
// close enough, otherwise a fresh wander heading.
func (z *Zombie) retarget(pf *world.PathFinder, avatar math.Vec2) {
	if z.Pos.Distance(avatar) <= z.DetectRadius {
		z.SetPath(pf.FindPath(z.Pos, avatar))
		z.wanderDir = math.Vec2{}
		return
	}

	z.ClearPath()
	angle := z.rng.Float64() * 2 * gomath.Pi
	z.wanderDir = math.Vec2{
		X: float32(gomath.Cos(angle)),
		Y: float32(gomath.Sin(angle)),
	}
}

// wander drifts along the current heading without a path, stopping at the
// first blocked cell until the next retarget.
func (z *Zombie) wander(dt float32, pf *world.PathFinder) {
	if z.wanderDir == (math.Vec2{}) {
		return
	}

	next := z.Pos.Add(z.wanderDir.Scale(z.Speed * dt))
	cx, cy := pf.Grid().WorldToCell(next)
	if !pf.IsWalkable(cx, cy) {
		z.wanderDir = math.Vec2{}
		return
	}
	z.Pos = next
	z.Facing = CalculateDirection(z.wanderDir.X, z.wanderDir.Y)
}
