package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// BottomCenter returns the midpoint of the rectangle's bottom edge, the
// default walk-to anchor for a hotspot.
func (r Rect) BottomCenter() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H}
}

// Hotspot is a clickable named region in a room with per-verb behavior.
// Hotspots are created at room-load time; the only mutation afterwards is
// the granted flag, set exactly once when the give item is handed out.
type Hotspot struct {
	Name   string
	Region Rect

	// WalkTo is the anchor the avatar travels to before the interaction is
	// evaluated. Zero value means "use the region's bottom-center".
	WalkTo    math.Vec2
	HasWalkTo bool

	// Messages maps verb keys to text. Keys may carry an outcome suffix
	// ("use_success", "use_missing", "look_default") or be a bare verb.
	Messages map[string]string

	// Item gating and side effects.
	RequiredItem string
	GiveItem     string
	RemoveItem   string
	granted      bool

	// Room transition.
	TargetRoom        string
	TargetPosition    math.Vec2
	HasTargetPosition bool
	RequireSuccess    bool

	// Trigger sets name the verbs that cause each side effect.
	GiveVerbs       mapset.Set[string]
	RemoveVerbs     mapset.Set[string]
	TransitionVerbs mapset.Set[string]
}

// Anchor returns the walk-to point for this hotspot.
func (h *Hotspot) Anchor() math.Vec2 {
	if h.HasWalkTo {
		return h.WalkTo
	}
	return h.Region.BottomCenter()
}

// Message looks up the message for a key. The second return reports whether
// the key exists with non-empty text.
func (h *Hotspot) Message(key string) (string, bool) {
	text, ok := h.Messages[key]
	return text, ok && text != ""
}

// Granted reports whether the give item was already handed out.
func (h *Hotspot) Granted() bool { return h.granted }

// MarkGranted records that the give item has been handed out, so it cannot
// be granted twice.
func (h *Hotspot) MarkGranted() { h.granted = true }

// VerbSet builds a trigger set from verb names. An empty list yields a set
// containing only "use", the conventional effect verb.
func VerbSet(verbs []string) mapset.Set[string] {
	set := mapset.New[string]()
	if len(verbs) == 0 {
		set.Put("use")
		return set
	}
	for _, v := range verbs {
		set.Put(v)
	}
	return set
}
