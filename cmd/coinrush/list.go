package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-rush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Long:  `Shows every registered game with the ID to pass to play, scores and serve.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "TITLE")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}

	fmt.Println(t)
	fmt.Printf("\nRun 'coinrush play <id>' to play. The default is %q.\n", defaultGameID)
}
