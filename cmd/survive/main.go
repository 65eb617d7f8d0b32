// survive is a turn-based grid survival game for the terminal.
//
// Usage:
//
//	survive play             - Play a run in this terminal
//	survive scores           - Show the best runs
//	survive serve            - Start SSH server for remote play
//	survive config           - Print the effective game configuration
//
// Global flags:
//
//	--game <id>         - Registered game (default: survival)
//	--fps <rate>        - Set tick rate (default: from config, 5)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <dsn>          - SQLite path or postgres:// DSN (default: ~/.survive/scores.db)
//	--config <path>     - Custom game config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-survival/internal/games/survival"
)

var (
	// Global flags
	flagGame     string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survive",
	Short: "Grid Survival - outlast the enemies on a 15x15 grid",
	Long: `Grid Survival is a turn-based survival game played in your terminal.

Walk the grid, avoid the wandering enemies (E), step around obstacles and
pick up medicine (+) to restore health. The run ends when your health
reaches zero; your score is the number of turns you survived.

Available commands:
  play     - Play a run
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  survive play
  survive play --seed 42 --spectate :8088
  survive scores --interactive
  survive serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagGame, "game", survival.GameID, "Registered game to play, serve or score")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in turns per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survive/scores.db", "Scores database path or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
