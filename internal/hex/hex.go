// Package hex provides axial hex-grid coordinates and direction math.
// Coordinates use the axial (q, r) scheme; the third cube coordinate is
// derived as s = -q - r.
package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is an immutable axial hex coordinate. Equality and map hashing
// work directly on the (Q, R) pair.
type Coord struct {
	Q, R int
}

// Directions lists the six unit direction offsets in the canonical
// screen-space order shared by every consumer:
//
//	0 right, 1 top-right, 2 top-left, 3 left, 4 bottom-left, 5 bottom-right
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Sub returns the component-wise difference of two coordinates.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Q: c.Q - o.Q, R: c.R - o.R}
}

// Distance returns the hex distance between two coordinates using the
// cube-coordinate metric.
func (c Coord) Distance(o Coord) int {
	dq := c.Q - o.Q
	dr := c.R - o.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// Neighbor returns the adjacent coordinate in the given direction index.
// Out-of-range indices wrap modulo six.
func (c Coord) Neighbor(dir int) Coord {
	dir = ((dir % 6) + 6) % 6
	return c.Add(Directions[dir])
}

// DirectionIndex returns the index into Directions that moves from c to o,
// or -1 when o is not an adjacent coordinate (including o == c).
func (c Coord) DirectionIndex(o Coord) int {
	d := o.Sub(c)
	for i, dir := range Directions {
		if d == dir {
			return i
		}
	}
	return -1
}

// String renders the coordinate as "(q, r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Q, c.R)
}

// TileName returns the tile object name for this coordinate. Collaborators
// locate board tiles by this exact key, so the format must not change.
func (c Coord) TileName() string {
	return fmt.Sprintf("Hex_%d_%d", c.Q, c.R)
}

// ParseTileName recovers a coordinate from a tile name produced by
// TileName. The name is split on "_" and the second and third tokens are
// read as integers. Malformed names yield the origin (0, 0).
func ParseTileName(name string) Coord {
	parts := strings.Split(name, "_")
	if len(parts) < 3 {
		return Coord{}
	}
	q, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}
	}
	r, err := strconv.Atoi(parts[2])
	if err != nil {
		return Coord{}
	}
	return Coord{Q: q, R: r}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
