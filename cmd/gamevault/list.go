package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all playable games",
	Long:  `Shows every game that can be played locally, with its controls.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if d, ok := catalog.Lookup(g.ID); ok && d.Description != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", d.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'gamevault play <id>' to play a game.")
}
