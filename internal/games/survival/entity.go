package survival

import (
	"fmt"
	"strings"
)

// GridPos is a cell on the square game grid.
type GridPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies inside an n×n grid.
func (p GridPos) InBounds(n int) bool {
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

// Add returns the position offset by d.
func (p GridPos) Add(d GridPos) GridPos {
	return GridPos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p GridPos) String() string {
	return fmt.Sprintf("[%d,%d]", p.Row, p.Col)
}

// Direction is a unit movement command.
type Direction int

const (
	DirNone Direction = iota // no command this tick
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid moves in the order enemies draw from.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the row/col offset of a single step in direction d.
func (d Direction) Delta() GridPos {
	switch d {
	case DirUp:
		return GridPos{Row: -1}
	case DirDown:
		return GridPos{Row: 1}
	case DirLeft:
		return GridPos{Col: -1}
	case DirRight:
		return GridPos{Col: 1}
	default:
		return GridPos{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirNone, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Positionable is anything that occupies a grid cell.
type Positionable interface {
	Name() string
	Position() GridPos
	// IsMoveValid reports whether the entity may occupy p.
	IsMoveValid(p GridPos) bool
}

// entity is the shared base of everything placed on the grid.
type entity struct {
	name     string
	pos      GridPos
	gridSize int
}

func (e *entity) Name() string {
	return e.name
}

func (e *entity) Position() GridPos {
	return e.pos
}

func (e *entity) IsMoveValid(p GridPos) bool {
	return p.InBounds(e.gridSize)
}

// Player is the user-controlled entity.
type Player struct {
	entity
	Health int
	// Inventory is carried for display only; no rule reads or writes it.
	Inventory map[string]int
}

func newPlayer(name string, start GridPos, health, gridSize int) Player {
	return Player{
		entity: entity{name: name, pos: start, gridSize: gridSize},
		Health: health,
		Inventory: map[string]int{
			"Medicine": 0,
			"Weapons":  0,
		},
	}
}

// move steps the player one cell unless the target is out of bounds or blocked.
func (p *Player) move(dir Direction, blocked func(GridPos) bool) bool {
	next := p.pos.Add(dir.Delta())
	if !p.IsMoveValid(next) || blocked(next) {
		return false
	}
	p.pos = next
	return true
}

// Obstacle is a static blocking cell.
type Obstacle struct {
	entity
}

// Enemy wanders randomly and damages the player on contact.
type Enemy struct {
	entity
}

// wander takes one random step if the destination is in bounds.
// Enemies ignore obstacles and each other.
func (e *Enemy) wander(rng Rand) bool {
	dir := Directions[rng.Intn(len(Directions))]
	next := e.pos.Add(dir.Delta())
	if !e.IsMoveValid(next) {
		return false
	}
	e.pos = next
	return true
}

// Medicine restores one point of health when picked up.
type Medicine struct {
	entity
}
