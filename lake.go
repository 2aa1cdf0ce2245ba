package landmass

import (
	"container/heap"

	"github.com/boljen/go-bitmap"
)

// Lake grows a connected region out from a source tile, always absorbing the
// lowest tile on it's perimeter. It stops when it reaches sea level or when it
// has claimed `limit` tiles. What it claimed (minus the source) is the
// river's path.
//
// A Lake is good for exactly one fill. It reads the height grid but never
// writes to it.
type Lake struct {
	height *Grid[float64]

	oceanHeight float64
	limit       int

	source    Tile
	claimed   bitmap.Bitmap
	perimeter bitmap.Bitmap
	frontier  *frontier
	order     []Tile

	seq          int
	reachedOcean bool
}

// NewLake returns a lake seeded at `source`.
// The source is claimed & it's neighbours form the initial perimeter.
func NewLake(height *Grid[float64], source Tile, oceanHeight float64, limit int) *Lake {
	l := &Lake{
		height:      height,
		oceanHeight: oceanHeight,
		limit:       limit,
		source:      source,
		claimed:     bitmap.New(height.Len()),
		perimeter:   bitmap.New(height.Len()),
		frontier:    &frontier{},
		order:       []Tile{},
	}

	l.claimed.Set(height.Index(source.X, source.Y), true)
	l.expand(source)

	return l
}

// Fill runs the flood to completion & returns the tiles it claimed, excluding
// the source, in the order they were claimed.
//
// The fill always terminates; at worst every tile of the grid is claimed.
func (l *Lake) Fill() []Tile {
	claimedCount := 1 // the source

	for claimedCount < l.limit && l.frontier.Len() > 0 {
		next := heap.Pop(l.frontier).(*frontierTile)

		if next.height < l.oceanHeight {
			// we've reached sea level; the tile itself is not part of the river
			l.reachedOcean = true
			break
		}

		i := l.height.Index(next.tile.X, next.tile.Y)
		l.perimeter.Set(i, false)
		l.claimed.Set(i, true)
		l.order = append(l.order, next.tile)
		claimedCount++

		l.expand(next.tile)
	}

	return l.order
}

// ReachedOcean returns if the last Fill stopped at sea level.
func (l *Lake) ReachedOcean() bool {
	return l.reachedOcean
}

// Claimed returns if the given tile is part of the lake (including the source)
func (l *Lake) Claimed(t Tile) bool {
	return l.claimed.Get(l.height.Index(t.X, t.Y))
}

// expand adds the unclaimed neighbours of `t` to the perimeter
func (l *Lake) expand(t Tile) {
	for _, n := range l.height.Neighbors(t.X, t.Y) {
		i := l.height.Index(n.X, n.Y)
		if l.claimed.Get(i) || l.perimeter.Get(i) {
			continue
		}
		l.perimeter.Set(i, true)
		heap.Push(l.frontier, &frontierTile{tile: n, height: l.height.Get(n.X, n.Y), seq: l.seq})
		l.seq++
	}
}

// frontierTile is a tile on the perimeter.
// seq records when it joined so equal heights resolve to the earliest tile.
type frontierTile struct {
	tile   Tile
	height float64
	seq    int
}

// frontier is a min heap of perimeter tiles by (height, seq)
type frontier []*frontierTile

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].height == f[j].height {
		return f[i].seq < f[j].seq
	}
	return f[i].height < f[j].height
}
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierTile)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}
