package main

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-survival/internal/registry"
)

// resolveGame looks up a registered game by ID.
func resolveGame(id string) (registry.GameInfo, error) {
	games := registry.List()
	ids := make([]string, 0, len(games))
	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
		ids = append(ids, g.ID)
	}
	return registry.GameInfo{}, fmt.Errorf("unknown game %q (available: %s)", id, strings.Join(ids, ", "))
}
