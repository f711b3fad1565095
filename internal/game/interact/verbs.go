// Package interact resolves clicks into walks, deferred hotspot
// interactions, and room transitions.
package interact

import (
	"github.com/leonelquinteros/gotext"

	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/world"
)

// Verb is the player's selected action mode applied to a click target.
type Verb string

// Built-in verbs. Walk is the movement verb; it travels but never records
// a pending interaction.
const (
	VerbWalk Verb = "walk"
	VerbLook Verb = "look"
	VerbUse  Verb = "use"
	VerbTalk Verb = "talk"
)

// IsMovement reports whether the verb is the movement verb.
func (v Verb) IsMovement() bool { return v == VerbWalk }

// isPrimary reports whether the verb belongs to the primary family that
// resolves to a success outcome on hotspots without an item requirement.
func (v Verb) isPrimary() bool {
	return v == VerbUse || v == VerbLook || v == VerbTalk
}

// Outcome is the resolved result of evaluating a hotspot interaction.
type Outcome int

const (
	OutcomeDefault Outcome = iota
	OutcomeSuccess
	OutcomeMissing
)

// Suffix returns the message-key suffix for the outcome.
func (o Outcome) Suffix() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMissing:
		return "missing"
	default:
		return "default"
	}
}

func (o Outcome) String() string { return o.Suffix() }

// lookupMessage walks the hotspot's message table through the ordered
// fallback chain: verb_outcome, verb_default, bare verb. The second return
// reports whether any entry matched.
func lookupMessage(h *world.Hotspot, verb Verb, outcome Outcome) (string, bool) {
	if text, ok := h.Message(string(verb) + "_" + outcome.Suffix()); ok {
		return text, true
	}
	if text, ok := h.Message(string(verb) + "_default"); ok {
		return text, true
	}
	if text, ok := h.Message(string(verb)); ok {
		return text, true
	}
	return "", false
}

// Built-in player-facing lines. gotext falls back to the msgid when no
// locale is loaded.
func msgNothingHappens() string { return gotext.Get("Nothing happens.") }
func msgNothingThere() string   { return gotext.Get("There's nothing there.") }
func msgCantGetThere() string   { return gotext.Get("You can't get over there.") }
func msgPassThrough() string    { return gotext.Get("You make your way through.") }
