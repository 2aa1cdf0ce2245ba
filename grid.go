package landmass

import (
	"fmt"
)

// neighbourOffsets run clockwise from east. Y grows downward so "south" is +1.
// The order is fixed because flood-fill tie breaks depend on it.
var neighbourOffsets = [8][2]int{
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
}

// Grid is a fixed size dense 2D container. Dimensions are decided at
// construction & never change.
//
// Values live in a single flat slice, indexed x*height + y, so iterating the
// backing slice is the same as walking x then y.
// Accessing a tile outside the grid is a programming error & panics; we never
// wrap or clamp.
type Grid[T any] struct {
	w, h int
	data []T
}

// NewGrid returns a grid of the given size with every value zeroed.
func NewGrid[T any](w, h int) *Grid[T] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("landmass: invalid grid size %dx%d", w, h))
	}
	return &Grid[T]{w: w, h: h, data: make([]T, w*h)}
}

// Width of the grid (X)
func (g *Grid[T]) Width() int { return g.w }

// Height of the grid (Y)
func (g *Grid[T]) Height() int { return g.h }

// Len is the number of tiles, always Width * Height
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds returns if x,y is a valid tile
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Index returns the backing slice index for x,y. Panics if out of range.
func (g *Grid[T]) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("landmass: tile (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return x*g.h + y
}

// TileAt is the inverse of Index.
func (g *Grid[T]) TileAt(i int) Tile {
	if i < 0 || i >= len(g.data) {
		panic(fmt.Sprintf("landmass: index %d outside %dx%d grid", i, g.w, g.h))
	}
	return Tile{X: i / g.h, Y: i % g.h}
}

// Get returns the value at x,y
func (g *Grid[T]) Get(x, y int) T {
	return g.data[g.Index(x, y)]
}

// Set sets the value at x,y
func (g *Grid[T]) Set(x, y int, v T) {
	g.data[g.Index(x, y)] = v
}

// Fill sets every tile to v
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Values exposes the backing slice. Callers should treat it as read only.
func (g *Grid[T]) Values() []T {
	return g.data
}

// Each calls fn for every tile, x then y.
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			fn(x, y, g.data[x*g.h+y])
		}
	}
}

// Neighbors returns the (up to 8) in-bounds tiles adjacent to x,y.
// Edges & corners return fewer, there is no wrap around.
func (g *Grid[T]) Neighbors(x, y int) []Tile {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("landmass: tile (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}

	out := make([]Tile, 0, 8)
	for _, d := range neighbourOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		out = append(out, Tile{X: nx, Y: ny})
	}
	return out
}
