// Package game implements the main game loop: input, simulation tick, and
// the debug 2D view of the current room.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/config"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/engine/input"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/engine/window"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/entity"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/interact"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/inventory"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/game/world"
	"github.com/rodneybusiness/Zombie-Quest-sub000/internal/logger"
	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

const (
	captionSeconds = 4.0  // How long a player line stays in the title bar
	grabDistance   = 12.0 // Zombie contact distance, world units
)

// caption holds the last player-facing line and how long it stays visible.
// Lines also go to the log, so nothing is lost when the caption expires.
type caption struct {
	text string
	ttl  float32
}

// Show implements interact.Messenger.
func (c *caption) Show(text string) {
	c.text = text
	c.ttl = captionSeconds
	logger.Log.Info("message", zap.String("text", text))
}

func (c *caption) update(dt float32) {
	if c.ttl > 0 {
		c.ttl -= dt
		if c.ttl <= 0 {
			c.text = ""
		}
	}
}

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool

	window *window.Window
	input  *input.Input

	rooms     *world.Manager
	walker    *entity.Walker
	items     *inventory.Inventory
	resolver  *interact.Resolver
	zombies   []*entity.Zombie
	roomName  string
	verb      interact.Verb
	caption   caption
	zombieRNG int64
}

// New creates a new game instance. Room definitions are loaded from the
// configured data directory and the avatar is placed in the start room.
func New(cfg *config.Config) (*Game, error) {
	logger.Log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("rooms_dir", cfg.Data.RoomsDir),
		zap.String("start_room", cfg.Game.StartRoom),
	)

	rooms, err := world.LoadDir(cfg.Data.RoomsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	g := &Game{
		config:    cfg,
		rooms:     rooms,
		walker:    entity.NewWalker(math.Vec2{}, cfg.Game.WalkSpeed),
		items:     inventory.New(),
		verb:      interact.VerbWalk,
		zombieRNG: time.Now().UnixNano(),
	}

	g.resolver = interact.NewResolver(rooms, g.walker, g.items, &g.caption)
	if err := g.resolver.EnterRoom(cfg.Game.StartRoom); err != nil {
		return nil, fmt.Errorf("failed to enter start room: %w", err)
	}
	g.roomName = cfg.Game.StartRoom
	g.spawnZombies()

	g.window, err = window.New(window.Config{
		Title:      "Zombie Quest",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.input = input.New()

	logger.Log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		// Clamp huge deltas (window drag, debugger pause) so entities
		// never tunnel through walls in a single step.
		if dt > 0.1 {
			dt = 0.1
		}

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.update(dt)
		g.render()
		g.window.Present()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.config.Game.ShowFPS {
				logger.Log.Debug("fps", zap.Int("count", frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents maps this frame's input to verb changes and clicks.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		if event.Type != input.EventKeyDown {
			continue
		}
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			g.running = false
		case sdl.SCANCODE_W:
			g.setVerb(interact.VerbWalk)
		case sdl.SCANCODE_L:
			g.setVerb(interact.VerbLook)
		case sdl.SCANCODE_U:
			g.setVerb(interact.VerbUse)
		case sdl.SCANCODE_T:
			g.setVerb(interact.VerbTalk)
		case sdl.SCANCODE_0:
			g.items.ClearSelection()
		default:
			if event.Key >= sdl.SCANCODE_1 && event.Key <= sdl.SCANCODE_9 {
				g.selectItem(int(event.Key - sdl.SCANCODE_1))
			}
		}
	}

	for _, click := range g.input.Clicks() {
		pos := math.Vec2{X: float32(click.MouseX), Y: float32(click.MouseY)}
		switch click.Button {
		case sdl.BUTTON_LEFT:
			g.resolver.OnClick(pos, g.verb)
		case sdl.BUTTON_RIGHT:
			// Right click always walks, whatever verb is armed.
			g.resolver.OnClick(pos, interact.VerbWalk)
		}
	}
}

func (g *Game) setVerb(verb interact.Verb) {
	g.verb = verb
	logger.Log.Debug("verb selected", zap.String("verb", string(verb)))
}

func (g *Game) selectItem(index int) {
	items := g.items.Items()
	if index < 0 || index >= len(items) {
		return
	}
	g.items.Select(items[index])
	logger.Log.Debug("item selected", zap.String("item", items[index]))
}

// update advances the simulation by one tick.
func (g *Game) update(dt float32) {
	g.resolver.OnTick(dt)
	g.caption.update(dt)

	// Room transitions replace the zombie population.
	if current := g.rooms.Current(); current != nil && current.Name != g.roomName {
		g.roomName = current.Name
		g.spawnZombies()
	}

	finder := g.resolver.Finder()
	for _, z := range g.zombies {
		z.Update(dt, finder, g.walker.Pos)
		if z.Pos.Distance(g.walker.Pos) < grabDistance {
			g.onGrabbed()
			break
		}
	}

	g.window.SetTitle(g.title())
}

// onGrabbed handles zombie contact: drop the avatar back at the room
// entrance and cancel whatever it was doing.
func (g *Game) onGrabbed() {
	room := g.rooms.Current()
	if room == nil {
		return
	}
	g.caption.Show("A zombie grabs you! You wrestle free and stumble back.")
	g.walker.Teleport(room.DefaultEntry())
	g.walker.ClearPath()
	g.spawnZombies()
}

// spawnZombies places the configured number of zombies on walkable cells of
// the current room, away from the avatar.
func (g *Game) spawnZombies() {
	g.zombies = g.zombies[:0]
	room := g.rooms.Current()
	if room == nil || g.config.Game.ZombieCount <= 0 {
		return
	}

	grid := room.Grid
	avatar := g.walker.Pos
	want := g.config.Game.ZombieCount

	// Walk the grid in a fixed order and keep cells far enough from the
	// avatar. Good enough for placement; the wander logic scatters them.
	for cy := 0; cy < grid.Height() && len(g.zombies) < want; cy++ {
		for cx := 0; cx < grid.Width() && len(g.zombies) < want; cx++ {
			if !grid.IsWalkable(cx, cy) {
				continue
			}
			pos := grid.CellToWorld(cx, cy)
			if pos.Distance(avatar) < 2*entity.DefaultDetectRadius/3 {
				continue
			}
			g.zombieRNG++
			g.zombies = append(g.zombies, entity.NewZombie(pos, g.zombieRNG))
		}
	}

	logger.Log.Debug("zombies spawned",
		zap.String("room", room.Name),
		zap.Int("count", len(g.zombies)),
	)
}

// title builds the window title: armed verb, selected item, and the
// current caption line. Stands in for on-screen text until a font
// renderer lands.
func (g *Game) title() string {
	title := "Zombie Quest [" + string(g.verb) + "]"
	if selected, ok := g.items.Selected(); ok {
		title += " (" + selected + ")"
	}
	if g.caption.text != "" {
		title += " - " + g.caption.text
	}
	return title
}

// render draws the debug view: blocked cells, hotspot regions, the avatar,
// and the zombies.
func (g *Game) render() {
	r := g.window.Renderer()
	r.SetDrawColor(24, 26, 32, 255)
	r.Clear()

	room := g.rooms.Current()
	if room == nil {
		return
	}

	grid := room.Grid
	cell := int32(grid.CellSize())

	// Blocked cells
	r.SetDrawColor(70, 44, 44, 255)
	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			if grid.IsWalkable(cx, cy) {
				continue
			}
			r.FillRect(&sdl.Rect{
				X: int32(cx) * cell,
				Y: int32(cy) * cell,
				W: cell,
				H: cell,
			})
		}
	}

	// Hotspot regions
	r.SetDrawColor(90, 120, 80, 255)
	for _, h := range room.Hotspots {
		r.DrawRect(&sdl.Rect{
			X: int32(h.Region.X),
			Y: int32(h.Region.Y),
			W: int32(h.Region.W),
			H: int32(h.Region.H),
		})
	}

	// Zombies
	r.SetDrawColor(96, 160, 96, 255)
	for _, z := range g.zombies {
		drawMarker(r, z.Pos, 5)
	}

	// Avatar
	r.SetDrawColor(220, 208, 160, 255)
	drawMarker(r, g.walker.Pos, 6)
}

// drawMarker draws a filled square centered on a world position.
func drawMarker(r *sdl.Renderer, pos math.Vec2, half int32) {
	r.FillRect(&sdl.Rect{
		X: int32(pos.X) - half,
		Y: int32(pos.Y) - half,
		W: 2 * half,
		H: 2 * half,
	})
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Log.Info("closing game")

	if g.window != nil {
		g.window.Close()
	}
}
