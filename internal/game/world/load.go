package world

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // walk masks are PNG rasters
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Room definition errors.
var (
	ErrNoWalkData   = errors.New("room has no walk_mask or mask_image")
	ErrBadRoomRef   = errors.New("hotspot references unknown room")
	ErrMissingField = errors.New("missing required field")
)

// roomDef mirrors the on-disk YAML room schema.
type roomDef struct {
	Name         string       `yaml:"name"`
	CellSize     float32      `yaml:"cell_size"`
	EntryPoint   []float32    `yaml:"entry_point"`
	EntryMessage string       `yaml:"entry_message"`
	WalkMask     []string     `yaml:"walk_mask"`
	MaskImage    string       `yaml:"mask_image"`
	Hotspots     []hotspotDef `yaml:"hotspots"`
}

type hotspotDef struct {
	Name    string            `yaml:"name"`
	Region  rectDef           `yaml:"region"`
	WalkTo  []float32         `yaml:"walk_to"`
	Message map[string]string `yaml:"messages"`

	RequiredItem string `yaml:"required_item"`
	GiveItem     string `yaml:"give_item"`
	RemoveItem   string `yaml:"remove_item"`

	TargetRoom     string    `yaml:"target_room"`
	TargetPosition []float32 `yaml:"target_position"`
	RequireSuccess bool      `yaml:"require_success"`

	GiveVerbs       []string `yaml:"give_verbs"`
	RemoveVerbs     []string `yaml:"remove_verbs"`
	TransitionVerbs []string `yaml:"transition_verbs"`
}

type rectDef struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

// LoadRoomFile parses one room definition. Relative mask image paths are
// resolved against the definition file's directory.
func LoadRoomFile(path string) (*Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading room file: %w", err)
	}
	return loadRoom(data, filepath.Dir(path))
}

func loadRoom(data []byte, baseDir string) (*Room, error) {
	var def roomDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing room definition: %w", err)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	cellSize := def.CellSize
	if cellSize <= 0 {
		cellSize = 16
	}

	var grid *Grid
	switch {
	case def.MaskImage != "":
		maskPath := def.MaskImage
		if !filepath.IsAbs(maskPath) {
			maskPath = filepath.Join(baseDir, maskPath)
		}
		img, err := loadImage(maskPath)
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", def.Name, err)
		}
		grid = NewGridFromImage(img, cellSize)
	case len(def.WalkMask) > 0:
		grid = NewGridFromRows(def.WalkMask, cellSize)
	default:
		return nil, fmt.Errorf("room %s: %w", def.Name, ErrNoWalkData)
	}

	room := &Room{
		Name:         def.Name,
		Grid:         grid,
		EntryPoint:   vecFromPair(def.EntryPoint),
		EntryMessage: def.EntryMessage,
	}

	for _, hd := range def.Hotspots {
		if hd.Name == "" {
			return nil, fmt.Errorf("room %s: hotspot %w: name", def.Name, ErrMissingField)
		}
		h := &Hotspot{
			Name:            hd.Name,
			Region:          Rect{X: hd.Region.X, Y: hd.Region.Y, W: hd.Region.W, H: hd.Region.H},
			Messages:        hd.Message,
			RequiredItem:    hd.RequiredItem,
			GiveItem:        hd.GiveItem,
			RemoveItem:      hd.RemoveItem,
			TargetRoom:      hd.TargetRoom,
			RequireSuccess:  hd.RequireSuccess,
			GiveVerbs:       VerbSet(hd.GiveVerbs),
			RemoveVerbs:     VerbSet(hd.RemoveVerbs),
			TransitionVerbs: VerbSet(hd.TransitionVerbs),
		}
		if h.Messages == nil {
			h.Messages = map[string]string{}
		}
		if len(hd.WalkTo) == 2 {
			h.WalkTo = vecFromPair(hd.WalkTo)
			h.HasWalkTo = true
		}
		if len(hd.TargetPosition) == 2 {
			h.TargetPosition = vecFromPair(hd.TargetPosition)
			h.HasTargetPosition = true
		}
		room.Hotspots = append(room.Hotspots, h)
	}

	return room, nil
}

// LoadDir loads every .yaml room definition under dir into a Manager and
// validates cross-room references. A hotspot naming a room that was never
// loaded is a configuration error, caught here so the resolver can assume
// referenced rooms exist.
func LoadDir(dir string) (*Manager, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading rooms dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(e.Name())); ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no room definitions in %s", dir)
	}

	mgr := NewManager()
	for _, name := range names {
		room, err := LoadRoomFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		mgr.Add(room)
	}

	if err := validateRoomRefs(mgr); err != nil {
		return nil, err
	}
	return mgr, nil
}

func validateRoomRefs(mgr *Manager) error {
	for _, name := range mgr.Names() {
		room, _ := mgr.Get(name)
		for _, h := range room.Hotspots {
			if h.TargetRoom == "" {
				continue
			}
			if _, err := mgr.Get(h.TargetRoom); err != nil {
				return fmt.Errorf("%w: %s/%s -> %s",
					ErrBadRoomRef, room.Name, h.Name, h.TargetRoom)
			}
		}
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mask image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding mask image %s: %w", path, err)
	}
	return img, nil
}

func vecFromPair(pair []float32) math.Vec2 {
	if len(pair) != 2 {
		return math.Vec2{}
	}
	return math.Vec2{X: pair[0], Y: pair[1]}
}
