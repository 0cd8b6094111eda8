package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Catalog slugs such as
"snake-game" are accepted too.

Controls:
  Space      - Start / pause / resume
  Arrows     - Steer the snake or nudge the paddle
  Mouse      - Move the paddle
  P/Esc      - Pause
  R          - Restart (after game over)
  B          - Back (when paused or after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy, normal, hard

Examples:
  gamevault play snake
  gamevault play breakout --difficulty hard
  gamevault play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, ok := catalog.Resolve(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'gamevault list' to see available games.")
		os.Exit(1)
	}
	setupGame(gameID)

	logger := newLogger("gamevault")
	store := openStoreOptional(logger)

	runErr := tui.Run(gameID, tui.GameOptions{
		Store:  store,
		Logger: logger,
		Config: terminalConfig(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
