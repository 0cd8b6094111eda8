// gamevault is a terminal arcade and game catalog service.
//
// Usage:
//
//	gamevault list              - List playable games
//	gamevault play <game>       - Play a game
//	gamevault menu              - Start menu to pick games interactively
//	gamevault browse            - Browse the game catalog
//	gamevault scores <game>     - Show high scores for a game
//	gamevault serve             - Start SSH server for remote play
//	gamevault web               - Start the HTTP API
//
// Global flags:
//
//	--fps <rate>        - Set frame rate for per-frame games (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.gamevault/gamevault.db)
//	--catalog <path>    - Load the catalog from a YAML file instead of the built-in one
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/games/breakout"
	"github.com/vovakirdan/gamevault/internal/games/snake"
	"github.com/vovakirdan/gamevault/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagCatalog    string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamevault",
	Short: "GameVault - Play arcade games in your terminal or browser",
	Long: `GameVault is a game catalog with playable Snake and Breakout.

Available commands:
  list     - Show all playable games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  browse   - Browse the catalog
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Start the HTTP API and live game sessions

Examples:
  gamevault list
  gamevault play snake
  gamevault menu
  gamevault serve --ssh :2222
  gamevault web --http :5000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for per-frame games")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gamevault/gamevault.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a catalog YAML file (built-in catalog if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// newLogger builds the process logger at --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// gameSetup applies --config and --difficulty to a game before creation.
var gameSetup = map[string]func(configPath, preset string){
	snake.ID: func(configPath, preset string) {
		snake.SetConfigPath(configPath)
		snake.SetDifficultyPreset(preset)
	},
	breakout.ID: func(configPath, preset string) {
		breakout.SetConfigPath(configPath)
		breakout.SetDifficultyPreset(preset)
	},
}

func setupGame(gameID string) {
	if setup, ok := gameSetup[gameID]; ok {
		setup(flagConfig, flagDifficulty)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStoreOptional opens the database, or returns nil with a warning so
// games still run without persistence.
func openStoreOptional(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
