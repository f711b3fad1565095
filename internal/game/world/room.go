package world

import (
	"fmt"

	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Room is one loaded scene: walkability grid, hotspots, and spawn data.
// Grid and hotspot definitions are immutable after load; only per-hotspot
// granted flags change, and only through the interaction resolver.
type Room struct {
	Name         string
	Grid         *Grid
	EntryPoint   math.Vec2
	EntryMessage string
	Hotspots     []*Hotspot
}

// HotspotAt returns the first hotspot whose region contains the position,
// and its index, or (nil, -1) when nothing is there. Definition order
// decides overlaps, which keeps hit-testing deterministic.
func (r *Room) HotspotAt(pos math.Vec2) (*Hotspot, int) {
	for i, h := range r.Hotspots {
		if h.Region.Contains(pos) {
			return h, i
		}
	}
	return nil, -1
}

// Hotspot returns the hotspot at the given index, or nil if out of range.
func (r *Room) Hotspot(index int) *Hotspot {
	if index < 0 || index >= len(r.Hotspots) {
		return nil
	}
	return r.Hotspots[index]
}

// DefaultEntry returns the room's default entry point.
func (r *Room) DefaultEntry() math.Vec2 {
	return r.EntryPoint
}

// Manager holds the room registry and tracks the active room. Every room
// change bumps a generation counter; interactions recorded against an older
// generation are stale and must never be evaluated.
type Manager struct {
	rooms      map[string]*Room
	current    *Room
	generation uint64
}

// NewManager creates an empty room manager.
func NewManager() *Manager {
	return &Manager{rooms: make(map[string]*Room)}
}

// Add registers a room.
func (m *Manager) Add(room *Room) {
	m.rooms[room.Name] = room
}

// Get returns a room by name.
func (m *Manager) Get(name string) (*Room, error) {
	room, ok := m.rooms[name]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", name)
	}
	return room, nil
}

// Current returns the active room, nil before the first SetCurrent.
func (m *Manager) Current() *Room {
	return m.current
}

// Generation returns the current room generation.
func (m *Manager) Generation() uint64 {
	return m.generation
}

// SetCurrent makes the named room active and bumps the generation.
func (m *Manager) SetCurrent(name string) (*Room, error) {
	room, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	m.current = room
	m.generation++
	return room, nil
}

// Names returns the registered room names.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.rooms))
	for name := range m.rooms {
		names = append(names, name)
	}
	return names
}
