package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamevault/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the game catalog",
	Long: `Browse featured, trending and new games and every category.
Games marked [play here] start directly in the terminal.

Controls:
  Left/Right   - Switch section
  Up/Down      - Navigate
  Enter        - Play a local game
  B/Esc        - Back
  Q            - Quit`,
	Run: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	logger := newLogger("gamevault")
	store := openStoreOptional(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cat, err := loadCatalog(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()
	for {
		gameID, _, err := tui.RunBrowser(cat, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if gameID == "" {
			return
		}
		playFromMenu(gameID, store, logger, cfg)
	}
}
