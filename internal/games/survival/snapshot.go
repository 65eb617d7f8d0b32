package survival

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Name      string  `json:"name"`
	Pos       GridPos `json:"pos"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"max_health"`
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Turn       int        `json:"turn"`
	Status     Status     `json:"status"`
	GridSize   int        `json:"grid_size"`
	Player     PlayerView `json:"player"`
	Obstacles  []GridPos  `json:"obstacles"`
	Enemies    []GridPos  `json:"enemies"`
	Medicine   *GridPos   `json:"medicine,omitempty"`
	EnemyPause bool       `json:"enemy_pause"`
}

// Snapshot copies the current state. It never mutates the game.
func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:     gs.turn,
		Status:   gs.status,
		GridSize: gs.opts.GridSize,
		Player: PlayerView{
			Name:      gs.player.name,
			Pos:       gs.player.pos,
			Health:    gs.player.Health,
			MaxHealth: gs.opts.MaxHealth,
		},
		Obstacles:  make([]GridPos, len(gs.obstacles)),
		Enemies:    make([]GridPos, len(gs.enemies)),
		EnemyPause: gs.enemyPause,
	}

	for i := range gs.obstacles {
		snap.Obstacles[i] = gs.obstacles[i].pos
	}
	for i := range gs.enemies {
		snap.Enemies[i] = gs.enemies[i].pos
	}
	if gs.medicine != nil {
		pos := gs.medicine.pos
		snap.Medicine = &pos
	}

	return snap
}
