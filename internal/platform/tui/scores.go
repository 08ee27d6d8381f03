package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-rush/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// runColumns are the columns of the best-runs table.
var runColumns = []table.Column{
	{Title: "Rank", Width: 5},
	{Title: "Score", Width: 7},
	{Title: "Player", Width: 12},
	{Title: "Spiders", Width: 8},
	{Title: "Time", Width: 7},
	{Title: "Date", Width: 13},
}

// RunRows formats runs as table rows, best first. Time is derived from the
// tick count at the given tick rate.
func RunRows(runs []storage.Run, tickRate int) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			player,
			fmt.Sprintf("%d", r.Enemies),
			playTime(r.Ticks, tickRate).String(),
			date,
		}
	}
	return rows
}

// playTime converts a tick count to whole seconds of play.
func playTime(ticks, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return (time.Duration(ticks) * time.Second / time.Duration(tickRate)).Truncate(time.Second)
}

// RenderScores renders the best runs of a game and its totals as a boxed
// table for printing to a terminal.
func RenderScores(title string, runs []storage.Run, stats storage.Stats, tickRate int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(runs) == 0 {
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.")))
		b.WriteString("\n")
		return b.String()
	}

	t := table.New(
		table.WithColumns(runColumns),
		table.WithRows(RunRows(runs, tickRate)),
		table.WithHeight(len(runs)+3), // Header and its border take two rows
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	b.WriteString(boxStyle.Render(t.View()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("runs: %d  best: %d  average: %.1f\n", stats.Runs, stats.HighScore, stats.AvgScore))
	return b.String()
}
