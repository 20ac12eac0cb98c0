package core

import (
	"fmt"
	"math"
)

// Direction is one of the eight discrete movement directions.
// The zero value is East, the facing of a freshly spawned player.
type Direction int

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// DirectionCount is the number of discrete directions.
const DirectionCount = 8

// Directions lists every direction in enum order.
var Directions = [DirectionCount]Direction{East, NorthEast, North, NorthWest, West, SouthWest, South, SouthEast}

// unit vectors in screen space (y grows downward)
var directionUnits = [DirectionCount]Vec{
	East:      {1, 0},
	NorthEast: {1, -1},
	North:     {0, -1},
	NorthWest: {-1, -1},
	West:      {-1, 0},
	SouthWest: {-1, 1},
	South:     {0, 1},
	SouthEast: {1, 1},
}

// Vec returns the direction scaled so each nonzero component has magnitude step.
func (d Direction) Vec(step int) Vec {
	u := directionUnits[d]
	return Vec{X: u.X * step, Y: u.Y * step}
}

// Angle returns atan2(-dy, dx) in degrees, counter-clockwise from East.
func (d Direction) Angle() float64 {
	u := directionUnits[d]
	return math.Atan2(float64(-u.Y), float64(u.X)) * 180 / math.Pi
}

func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case North:
		return "N"
	case NorthWest:
		return "NW"
	case West:
		return "W"
	case SouthWest:
		return "SW"
	case South:
		return "S"
	case SouthEast:
		return "SE"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionOf maps a movement vector back to its direction.
// v must equal d.Vec(step) for some d; anything else is a programming
// error and panics.
func DirectionOf(v Vec, step int) Direction {
	for _, d := range Directions {
		if d.Vec(step) == v {
			return d
		}
	}
	panic(fmt.Sprintf("kokaton: no direction for vector (%d,%d)", v.X, v.Y))
}
