package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/platform/tui"
	"github.com/vovakirdan/gamevault/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  C            - Browse the catalog
  Q            - Quit

Examples:
  gamevault menu
  gamevault menu --fps 30
  gamevault menu --db ./gamevault.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger("gamevault")
	store := openStoreOptional(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		gameID := menuResult.GameID
		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue

		case menuResult.WantsBrowser:
			cat, catErr := loadCatalog(store)
			if catErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", catErr)
				continue
			}
			picked, goBack, brErr := tui.RunBrowser(cat, cfg.ScreenW, cfg.ScreenH)
			if brErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", brErr)
			}
			if picked == "" {
				if goBack {
					continue
				}
				return
			}
			gameID = picked
		}

		if gameID == "" {
			return
		}
		playFromMenu(gameID, store, logger, cfg)
	}
}

// playFromMenu runs one game with a fresh seed, then returns to the menu.
func playFromMenu(gameID string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) {
	setupGame(gameID)
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	err := tui.Run(gameID, tui.GameOptions{
		Store:  store,
		Logger: logger,
		Config: cfg,
	})
	if err != nil {
		logger.Error("could not run game", "game", gameID, "error", err)
	}
}

// loadCatalog reads --catalog and wires play counts from store.
func loadCatalog(store *storage.Store) (*catalog.Catalog, error) {
	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		return nil, err
	}
	if store != nil {
		cat = cat.WithPlayCounter(store)
	}
	return cat, nil
}
