package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-survival/internal/config"
	"github.com/vovakirdan/grid-survival/internal/core"
	"github.com/vovakirdan/grid-survival/internal/games/survival"
	"github.com/vovakirdan/grid-survival/internal/platform/spectate"
	"github.com/vovakirdan/grid-survival/internal/platform/tui"
	"github.com/vovakirdan/grid-survival/internal/registry"
	"github.com/vovakirdan/grid-survival/internal/storage"
)

var flagSpectate string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Grid Survival in this terminal.

Controls:
  Arrows/WASD/HJKL - Move
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Each turn enemies take one random step. An enemy that reaches you deals one
damage, retreats to a random cell and all enemies freeze until your next
move. Medicine restores one health point, up to the maximum.

Spectating:
  --spectate :8088 streams every turn as JSON over ws://host:8088/ws
  and serves the latest board at http://host:8088/snapshot.

Examples:
  survive play
  survive play --seed 42
  survive play --config ./hard.yaml
  survive play --spectate :8088`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a read-only spectator feed on this address (e.g. :8088)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	// The terminal belongs to Bubble Tea; log only to a file if asked
	logger, closeLog, err := newLogger(io.Discard, "survive")
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadSurvival(flagConfig)
	if err != nil {
		return err
	}
	survival.SetConfigPath(flagConfig)
	survival.SetLogger(logger.WithPrefix("survival"))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(gameCfg),
		Seed:     flagSeed,
	}

	info, err := resolveGame(flagGame)
	if err != nil {
		return err
	}
	game, err := registry.Create(info.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("continuing without score storage", "db", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Logger: logger}

	if flagSpectate != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := spectate.NewHub(logger.WithPrefix("spectate"))
		go hub.Run(ctx)

		srv := &spectate.Server{Addr: flagSpectate, Hub: hub}
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				logger.Error("spectator server failed", "address", flagSpectate, "err", err)
			}
		}()
		opts.Publisher = hub
	}

	if err := tui.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// tickRate prefers --fps and falls back to the configured rate.
func tickRate(cfg config.SurvivalConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Timing.TickRate
}
