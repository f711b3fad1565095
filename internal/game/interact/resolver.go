package interact

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/entity"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/world"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/logger"
	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Items is the inventory collaborator. Remove is expected to clear the
// selection when the removed item was selected.
type Items interface {
	Has(name string) bool
	Selected() (string, bool)
	Add(name string)
	Remove(name string)
	ClearSelection()
}

// Messenger receives player-facing text. Fire-and-forget.
type Messenger interface {
	Show(text string)
}

// State is the resolver's travel state for one avatar.
type State int

const (
	StateIdle State = iota
	StateTravelling
	StateTravellingPending
)

// Pending records a deferred interaction awaiting the avatar's arrival.
// The hotspot is addressed by room and index rather than by reference, and
// the room generation at click time is kept alongside: any mismatch at
// arrival marks the interaction stale and it is discarded unevaluated.
type Pending struct {
	Room       string
	Hotspot    int
	Verb       Verb
	Generation uint64
}

// Resolver couples "walk to X" with "then perform verb V on X". All calls
// happen from the click and tick handlers of a single frame-stepped loop;
// nothing here is safe for concurrent use.
type Resolver struct {
	rooms  *world.Manager
	walker *entity.Walker
	items  Items
	msg    Messenger

	finder  *world.PathFinder
	pending *Pending
}

// NewResolver creates a resolver for one avatar.
func NewResolver(rooms *world.Manager, walker *entity.Walker, items Items, msg Messenger) *Resolver {
	return &Resolver{
		rooms:  rooms,
		walker: walker,
		items:  items,
		msg:    msg,
	}
}

// EnterRoom makes the named room current, places the avatar at its default
// entry point, and shows the entry message. Used for the initial room;
// transitions during play go through evaluation instead.
func (r *Resolver) EnterRoom(name string) error {
	room, err := r.rooms.SetCurrent(name)
	if err != nil {
		return fmt.Errorf("entering room: %w", err)
	}
	r.finder = world.NewPathFinder(room.Grid)
	r.pending = nil
	r.walker.Teleport(room.DefaultEntry())
	if room.EntryMessage != "" {
		r.msg.Show(room.EntryMessage)
	}
	logger.Debug("entered room", zap.String("room", name))
	return nil
}

// State returns the current travel state.
func (r *Resolver) State() State {
	switch {
	case r.walker.Moving() && r.pending != nil:
		return StateTravellingPending
	case r.walker.Moving():
		return StateTravelling
	default:
		return StateIdle
	}
}

// Pending returns the live pending interaction, nil when there is none.
func (r *Resolver) Pending() *Pending {
	return r.pending
}

// Finder returns the pathfinder for the current room.
func (r *Resolver) Finder() *world.PathFinder {
	return r.finder
}

// OnClick handles a click at a world position with the active verb.
func (r *Resolver) OnClick(pos math.Vec2, verb Verb) {
	room := r.rooms.Current()
	if room == nil {
		return
	}

	hotspot, index := room.HotspotAt(pos)

	// The movement verb always favors direct travel, hotspot or not.
	if hotspot == nil || verb.IsMovement() {
		if !verb.IsMovement() {
			r.msg.Show(msgNothingThere())
			return
		}
		r.pending = nil
		r.travelTo(pos)
		return
	}

	// An unreachable hotspot is reported immediately; the resolver must
	// never idle in a travelling state it cannot complete.
	path := r.finder.FindPath(r.walker.Pos, hotspot.Anchor())
	if len(path) == 0 {
		r.pending = nil
		r.walker.ClearPath()
		r.msg.Show(msgCantGetThere())
		return
	}

	r.walker.SetPath(path)
	// Only the most recent click's intent survives.
	r.pending = &Pending{
		Room:       room.Name,
		Hotspot:    index,
		Verb:       verb,
		Generation: r.rooms.Generation(),
	}
	logger.Debug("pending interaction recorded",
		zap.String("room", room.Name),
		zap.String("hotspot", hotspot.Name),
		zap.String("verb", string(verb)))
}

// OnTick advances the avatar and evaluates the pending interaction on the
// tick the avatar arrives.
func (r *Resolver) OnTick(dt float32) {
	arrived := r.walker.Update(dt)
	if !arrived || r.pending == nil {
		return
	}

	pending := r.pending
	r.pending = nil

	room := r.rooms.Current()
	if room == nil || room.Name != pending.Room || pending.Generation != r.rooms.Generation() {
		// The room changed underneath the interaction; a stale hotspot
		// reference must never be evaluated against the new room.
		logger.Debug("discarding stale pending interaction",
			zap.String("room", pending.Room),
			zap.Int("hotspot", pending.Hotspot))
		return
	}

	hotspot := room.Hotspot(pending.Hotspot)
	if hotspot == nil {
		return
	}
	r.evaluate(room, hotspot, pending.Verb)
}

func (r *Resolver) travelTo(pos math.Vec2) {
	path := r.finder.FindPath(r.walker.Pos, pos)
	if len(path) == 0 {
		r.walker.ClearPath()
		r.msg.Show(msgCantGetThere())
		return
	}
	r.walker.SetPath(path)
}

// evaluate applies one deferred interaction: outcome, message, item side
// effects, and possibly a room transition.
func (r *Resolver) evaluate(room *world.Room, hotspot *world.Hotspot, verb Verb) {
	outcome := r.outcomeFor(hotspot, verb)
	text, found := lookupMessage(hotspot, verb, outcome)

	logger.Debug("evaluating interaction",
		zap.String("room", room.Name),
		zap.String("hotspot", hotspot.Name),
		zap.String("verb", string(verb)),
		zap.String("outcome", outcome.String()))

	if outcome != OutcomeMissing {
		r.applyItemEffects(hotspot, verb, outcome)
	}

	if r.transition(hotspot, verb, outcome, text, found) {
		return
	}

	if !found {
		text = msgNothingHappens()
	}
	r.msg.Show(text)
}

// outcomeFor computes the interaction outcome. The item requirement is
// checked first; only then does the verb family decide between success and
// default.
func (r *Resolver) outcomeFor(hotspot *world.Hotspot, verb Verb) Outcome {
	if hotspot.RequiredItem != "" {
		if selected, ok := r.items.Selected(); ok && selected == hotspot.RequiredItem {
			return OutcomeSuccess
		}
		return OutcomeMissing
	}
	if verb.isPrimary() {
		return OutcomeSuccess
	}
	return OutcomeDefault
}

func (r *Resolver) applyItemEffects(hotspot *world.Hotspot, verb Verb, outcome Outcome) {
	if hotspot.GiveItem != "" && !hotspot.Granted() && hotspot.GiveVerbs.Has(string(verb)) {
		if !r.items.Has(hotspot.GiveItem) {
			r.items.Add(hotspot.GiveItem)
		}
		hotspot.MarkGranted()
		logger.Debug("item granted", zap.String("item", hotspot.GiveItem))
	}

	if outcome == OutcomeSuccess && hotspot.RemoveItem != "" && hotspot.RemoveVerbs.Has(string(verb)) {
		r.items.Remove(hotspot.RemoveItem)
		logger.Debug("item consumed", zap.String("item", hotspot.RemoveItem))
	}
}

// transition fires a room change when the hotspot and verb call for one.
// Returns true when a transition happened.
func (r *Resolver) transition(hotspot *world.Hotspot, verb Verb, outcome Outcome, text string, found bool) bool {
	if hotspot.TargetRoom == "" || !hotspot.TransitionVerbs.Has(string(verb)) {
		return false
	}
	if outcome == OutcomeMissing {
		return false
	}
	if hotspot.RequireSuccess && outcome != OutcomeSuccess {
		return false
	}

	// Referenced rooms are validated at load time.
	dest, err := r.rooms.SetCurrent(hotspot.TargetRoom)
	if err != nil {
		logger.Error("transition to unknown room", zap.Error(err))
		return false
	}

	at := dest.DefaultEntry()
	if hotspot.HasTargetPosition {
		at = hotspot.TargetPosition
	}
	r.walker.Teleport(at)
	r.pending = nil
	r.finder = world.NewPathFinder(dest.Grid)

	combined := ""
	if found && text != "" {
		combined = text
	}
	if dest.EntryMessage != "" {
		if combined != "" {
			combined += " " + dest.EntryMessage
		} else {
			combined = dest.EntryMessage
		}
	}
	if combined == "" {
		combined = msgPassThrough()
	}
	r.msg.Show(combined)

	logger.Info("room transition",
		zap.String("to", dest.Name),
		zap.String("via", hotspot.Name))
	return true
}
