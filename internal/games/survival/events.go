package survival

import "fmt"

// EventKind names a rule outcome.
type EventKind string

const (
	EventPlayerMoved       EventKind = "player_moved"
	EventMoveBlocked       EventKind = "move_blocked"
	EventPlayerHit         EventKind = "player_hit"
	EventEnemyRelocated    EventKind = "enemy_relocated"
	EventMedicineSpawned   EventKind = "medicine_spawned"
	EventMedicineCollected EventKind = "medicine_collected"
	EventGameOver          EventKind = "game_over"
)

// Event records something that happened during a turn.
// Pos is the cell the event refers to; Health is the player's health after it.
type Event struct {
	Kind   EventKind `json:"kind"`
	Turn   int       `json:"turn"`
	Pos    GridPos   `json:"pos"`
	Health int       `json:"health"`
}

func (gs *GameState) emit(kind EventKind, pos GridPos) {
	if len(gs.events) >= maxBufferedEvents {
		gs.events = gs.events[1:]
	}
	gs.events = append(gs.events, Event{
		Kind:   kind,
		Turn:   gs.turn,
		Pos:    pos,
		Health: gs.player.Health,
	})
}

// Events returns and clears the events recorded since the last call.
func (gs *GameState) Events() []Event {
	ev := gs.events
	gs.events = nil
	return ev
}

// Message formats the event as a one-line feed entry.
func (e Event) Message() string {
	switch e.Kind {
	case EventPlayerMoved:
		return fmt.Sprintf("Moved to %s", e.Pos)
	case EventMoveBlocked:
		return fmt.Sprintf("Blocked at %s", e.Pos)
	case EventPlayerHit:
		return fmt.Sprintf("Attacked! Health: %d", e.Health)
	case EventEnemyRelocated:
		return fmt.Sprintf("Enemy retreated to %s", e.Pos)
	case EventMedicineSpawned:
		return fmt.Sprintf("Medicine spawned at %s", e.Pos)
	case EventMedicineCollected:
		return fmt.Sprintf("Picked up medicine! Health: %d", e.Health)
	case EventGameOver:
		return "Game Over!"
	default:
		return string(e.Kind)
	}
}
