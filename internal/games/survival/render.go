package survival

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-survival/internal/core"
)

const (
	hudHeight = 2

	glyphEmpty    = '·'
	glyphObstacle = '█'
	glyphEnemy    = 'E'
	glyphMedicine = '+'
	glyphPlayer   = '@'
)

// Render draws the HUD, the grid and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.state.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		minW, minH := g.minSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	offX := (dst.Width() - (2*snap.GridSize + 3)) / 2
	g.renderGrid(dst, snap, offX, hudHeight)
	g.renderStatus(dst, snap, hudHeight+snap.GridSize+2)

	switch {
	case snap.Status == StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Survived %d turns - press R", snap.Turn))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hearts := strings.Repeat("♥", snap.Player.Health) +
		strings.Repeat("♡", core.Max(snap.Player.MaxHealth-snap.Player.Health, 0))
	hud := fmt.Sprintf(" Grid Survival — Health: %s  Turn: %d", hearts, snap.Turn)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the bordered board. Each cell is two columns wide.
func (g *Game) renderGrid(dst *core.Screen, snap Snapshot, offX, offY int) {
	n := snap.GridSize
	dst.DrawBox(core.NewRect(offX, offY, 2*n+3, n+2))

	cell := func(p GridPos, r rune, c core.Color) {
		dst.SetColor(offX+2+2*p.Col, offY+1+p.Row, r, c)
	}

	for row := range n {
		for col := range n {
			cell(GridPos{Row: row, Col: col}, glyphEmpty, core.ColorGray)
		}
	}
	for _, p := range snap.Obstacles {
		cell(p, glyphObstacle, core.ColorWhite)
	}
	if snap.Medicine != nil {
		cell(*snap.Medicine, glyphMedicine, core.ColorBrightGreen)
	}
	for _, p := range snap.Enemies {
		cell(p, glyphEnemy, core.ColorBrightRed)
	}
	cell(snap.Player.Pos, glyphPlayer, core.ColorBrightBlue)
}

// renderStatus draws the line under the grid and as much of the event feed as fits.
func (g *Game) renderStatus(dst *core.Screen, snap Snapshot, y int) {
	stats := g.state.Stats()
	status := fmt.Sprintf(" Pos: %s  Hits: %d  Medicine: %d",
		snap.Player.Pos, stats.HitsTaken, stats.MedicineCollected)
	dst.DrawText(0, y, status)
	if snap.EnemyPause {
		dst.DrawTextColor(len([]rune(status))+2, y, "enemies frozen", core.ColorYellow)
	}

	for i, msg := range g.feed {
		dst.DrawTextColor(1, y+1+i, msg, core.ColorGray)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len([]rune(line1)))/2, box.Y+1, line1)
	dst.DrawText(box.X+(boxW-len([]rune(line2)))/2, box.Y+2, line2)
}
