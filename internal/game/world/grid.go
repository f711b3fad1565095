// Package world provides rooms, walkability grids, and pathfinding.
package world

import (
	"image"

	"github.com/rodneybusiness/Zombie-Quest-sub000/pkg/math"
)

// Grid is the coarse walkability grid for one room. It is built once at
// room-load time and read-only afterwards, so it may be shared between the
// avatar's and every zombie's pathfinder without copying.
type Grid struct {
	cellSize float32
	width    int
	height   int
	cells    []bool // true = walkable
}

// NewGrid creates an empty (fully blocked) grid.
func NewGrid(width, height int, cellSize float32) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		cellSize: cellSize,
		width:    width,
		height:   height,
		cells:    make([]bool, width*height),
	}
}

// NewGridFromImage samples a walkable-area raster at each cell's center.
// A pixel with alpha >= 128 marks the cell walkable. Grid dimensions are
// floor(raster size / cell size), minimum 1.
func NewGridFromImage(img image.Image, cellSize float32) *Grid {
	bounds := img.Bounds()
	w := int(float32(bounds.Dx()) / cellSize)
	h := int(float32(bounds.Dy()) / cellSize)
	g := NewGrid(w, h, cellSize)

	for cy := 0; cy < g.height; cy++ {
		for cx := 0; cx < g.width; cx++ {
			px := bounds.Min.X + int((float32(cx)+0.5)*cellSize)
			py := bounds.Min.Y + int((float32(cy)+0.5)*cellSize)
			_, _, _, a := img.At(px, py).RGBA()
			g.cells[cy*g.width+cx] = a >= 0x8000
		}
	}
	return g
}

// NewGridFromRows builds a grid from authored mask rows, one character per
// cell. '#' and 'x' block a cell; anything else is walkable.
func NewGridFromRows(rows []string, cellSize float32) *Grid {
	h := len(rows)
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	g := NewGrid(w, h, cellSize)

	for cy, row := range rows {
		for cx := 0; cx < g.width; cx++ {
			walkable := false
			if cx < len(row) {
				walkable = row[cx] != '#' && row[cx] != 'x'
			}
			g.cells[cy*g.width+cx] = walkable
		}
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// CellSize returns the world units covered by one cell.
func (g *Grid) CellSize() float32 { return g.cellSize }

// SetWalkable marks a cell walkable or blocked. Intended for room loading
// and tests; grids must not be mutated once a room is live.
func (g *Grid) SetWalkable(cx, cy int, walkable bool) {
	if !g.InBounds(cx, cy) {
		return
	}
	g.cells[cy*g.width+cx] = walkable
}

// IsWalkable checks if the cell at (cx, cy) is walkable.
// Out-of-bounds cells are not walkable.
func (g *Grid) IsWalkable(cx, cy int) bool {
	if !g.InBounds(cx, cy) {
		return false
	}
	return g.cells[cy*g.width+cx]
}

// InBounds reports whether the cell coordinates lie inside the grid.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.width && cy >= 0 && cy < g.height
}

// WorldToCell converts a world position to cell coordinates.
func (g *Grid) WorldToCell(pos math.Vec2) (int, int) {
	return int(pos.X / g.cellSize), int(pos.Y / g.cellSize)
}

// CellToWorld converts cell coordinates to the cell-center world position.
func (g *Grid) CellToWorld(cx, cy int) math.Vec2 {
	return math.Vec2{
		X: (float32(cx) + 0.5) * g.cellSize,
		Y: (float32(cy) + 0.5) * g.cellSize,
	}
}
