// Package survival implements Grid Survival: the player walks a square grid
// among static obstacles and randomly wandering enemies, picks up medicine,
// and loses when health reaches zero.
package survival

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/grid-survival/internal/core"
)

var (
	// ErrInvalidDirection is returned for a movement command outside up/down/left/right.
	ErrInvalidDirection = errors.New("survival: invalid direction")

	// ErrGameAlreadyOver is returned by mutating calls once the player has died.
	ErrGameAlreadyOver = errors.New("survival: game already over")
)

// Rand is the random source the engine draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Status is the externally visible engine state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Options controls grid size, entity counts and spawn rules.
type Options struct {
	GridSize       int
	PlayerName     string
	Start          GridPos
	MaxHealth      int
	Obstacles      int
	Enemies        int
	MedicineChance float64 // probability per SpawnMedicine call
}

// DefaultOptions returns the classic 15×15 layout.
func DefaultOptions() Options {
	return Options{
		GridSize:       15,
		PlayerName:     "Player",
		Start:          GridPos{Row: 2, Col: 2},
		MaxHealth:      3,
		Obstacles:      15,
		Enemies:        4,
		MedicineChance: 0.1,
	}
}

// Stats counts rule outcomes over a run.
type Stats struct {
	HitsTaken         int
	MedicineCollected int
}

// maxBufferedEvents bounds the event buffer when nobody drains it.
const maxBufferedEvents = 512

// GameState owns every entity and applies the movement, collision and
// spawn rules. It is not safe for concurrent use; the driver loop owns it.
type GameState struct {
	opts Options
	rng  Rand

	player     Player
	obstacles  []Obstacle
	enemies    []Enemy
	medicine   *Medicine
	enemyPause bool

	status Status
	turn   int
	stats  Stats
	events []Event
}

// New creates a running game. Obstacles and enemies are placed uniformly at
// random; overlaps with each other or the player are allowed.
func New(rng Rand, opts Options) *GameState {
	if opts.GridSize <= 0 {
		opts.GridSize = DefaultOptions().GridSize
	}
	if opts.MaxHealth <= 0 {
		opts.MaxHealth = DefaultOptions().MaxHealth
	}
	if opts.PlayerName == "" {
		opts.PlayerName = DefaultOptions().PlayerName
	}
	opts.Start = GridPos{
		Row: core.Clamp(opts.Start.Row, 0, opts.GridSize-1),
		Col: core.Clamp(opts.Start.Col, 0, opts.GridSize-1),
	}

	gs := &GameState{
		opts:   opts,
		rng:    rng,
		player: newPlayer(opts.PlayerName, opts.Start, opts.MaxHealth, opts.GridSize),
	}

	gs.obstacles = make([]Obstacle, 0, core.Max(opts.Obstacles, 0))
	for range opts.Obstacles {
		gs.obstacles = append(gs.obstacles, Obstacle{entity: gs.spawn("Obstacle")})
	}

	gs.enemies = make([]Enemy, 0, core.Max(opts.Enemies, 0))
	for range opts.Enemies {
		gs.enemies = append(gs.enemies, Enemy{entity: gs.spawn("Enemy")})
	}

	return gs
}

// spawn creates an entity at a uniformly random cell.
func (gs *GameState) spawn(name string) entity {
	return entity{name: name, pos: gs.randomPos(), gridSize: gs.opts.GridSize}
}

func (gs *GameState) randomPos() GridPos {
	row := gs.rng.Intn(gs.opts.GridSize)
	col := gs.rng.Intn(gs.opts.GridSize)
	return GridPos{Row: row, Col: col}
}

func (gs *GameState) obstacleAt(p GridPos) bool {
	for i := range gs.obstacles {
		if gs.obstacles[i].pos == p {
			return true
		}
	}
	return false
}

// MovePlayer applies one player command. A move out of bounds or into an
// obstacle leaves the player in place without error. Any valid command
// releases the enemy pause and then resolves collisions.
func (gs *GameState) MovePlayer(dir Direction) error {
	if gs.status == StatusGameOver {
		return ErrGameAlreadyOver
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	if gs.player.move(dir, gs.obstacleAt) {
		gs.emit(EventPlayerMoved, gs.player.pos)
	} else {
		gs.emit(EventMoveBlocked, gs.player.pos.Add(dir.Delta()))
	}

	gs.enemyPause = false
	return gs.CheckCollisions()
}

// MoveEnemies moves every enemy one random step, unless enemies are paused
// after hitting the player, then resolves collisions.
func (gs *GameState) MoveEnemies() error {
	if gs.status == StatusGameOver {
		return ErrGameAlreadyOver
	}
	if gs.enemyPause {
		return nil
	}

	for i := range gs.enemies {
		gs.enemies[i].wander(gs.rng)
	}
	return gs.CheckCollisions()
}

// CheckCollisions resolves enemy contact first, then medicine pickup.
// Every enemy sharing the player's cell deals one damage and is moved to a
// random cell. Reaching zero health ends the game immediately.
func (gs *GameState) CheckCollisions() error {
	if gs.status == StatusGameOver {
		return ErrGameAlreadyOver
	}

	for i := range gs.enemies {
		enemy := &gs.enemies[i]
		if enemy.pos != gs.player.pos {
			continue
		}

		gs.player.Health--
		gs.stats.HitsTaken++
		gs.emit(EventPlayerHit, enemy.pos)

		if gs.player.Health <= 0 {
			gs.status = StatusGameOver
			gs.emit(EventGameOver, gs.player.pos)
			return nil
		}

		gs.enemyPause = true
		enemy.pos = gs.randomPos()
		gs.emit(EventEnemyRelocated, enemy.pos)
	}

	if gs.medicine != nil && gs.medicine.pos == gs.player.pos {
		gs.player.Health = core.Min(gs.player.Health+1, gs.opts.MaxHealth)
		gs.stats.MedicineCollected++
		gs.emit(EventMedicineCollected, gs.medicine.pos)
		gs.medicine = nil
	}

	return nil
}

// SpawnMedicine places a medicine at a random cell with probability
// MedicineChance. It does nothing while a medicine is already on the grid.
func (gs *GameState) SpawnMedicine() error {
	if gs.status == StatusGameOver {
		return ErrGameAlreadyOver
	}
	if gs.medicine != nil {
		return nil
	}
	if gs.rng.Float64() >= gs.opts.MedicineChance {
		return nil
	}

	gs.medicine = &Medicine{entity: gs.spawn("Medicine")}
	gs.emit(EventMedicineSpawned, gs.medicine.pos)
	return nil
}

// Tick runs one full turn: the player command (DirNone skips it), the
// enemy pass and a medicine spawn attempt. It stops early if the player dies.
func (gs *GameState) Tick(dir Direction) error {
	if gs.status == StatusGameOver {
		return ErrGameAlreadyOver
	}
	if dir != DirNone && !dir.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	gs.turn++

	if dir != DirNone {
		if err := gs.MovePlayer(dir); err != nil {
			return err
		}
		if gs.Over() {
			return nil
		}
	}

	if err := gs.MoveEnemies(); err != nil {
		return err
	}
	if gs.Over() {
		return nil
	}

	return gs.SpawnMedicine()
}

// Status returns Running or GameOver.
func (gs *GameState) Status() Status {
	return gs.status
}

// Over reports whether the game has ended.
func (gs *GameState) Over() bool {
	return gs.status == StatusGameOver
}

// EnemyPaused reports whether enemies skip their next move.
func (gs *GameState) EnemyPaused() bool {
	return gs.enemyPause
}

// Turn returns the number of ticks started so far.
func (gs *GameState) Turn() int {
	return gs.turn
}

// Stats returns hit and pickup counters for the run.
func (gs *GameState) Stats() Stats {
	return gs.stats
}

// GridSize returns the side length of the grid.
func (gs *GameState) GridSize() int {
	return gs.opts.GridSize
}

// Entities returns copies of every placed entity: the player, obstacles,
// enemies and the medicine if present. Changing them does not affect the game.
func (gs *GameState) Entities() []Positionable {
	out := make([]Positionable, 0, 2+len(gs.obstacles)+len(gs.enemies))

	player := gs.player
	player.Inventory = make(map[string]int, len(gs.player.Inventory))
	for k, v := range gs.player.Inventory {
		player.Inventory[k] = v
	}
	out = append(out, &player)

	for _, o := range gs.obstacles {
		out = append(out, &o)
	}
	for _, e := range gs.enemies {
		out = append(out, &e)
	}
	if gs.medicine != nil {
		m := *gs.medicine
		out = append(out, &m)
	}
	return out
}
