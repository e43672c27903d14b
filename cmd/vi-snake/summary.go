package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/status"
)

var (
	styleSummaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(constants.ColorSnake)).
			Padding(0, 2)
	styleSummaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(constants.ColorSnake))
	styleSummaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color(constants.ColorDim))
	styleSummaryValue = lipgloss.NewStyle().Bold(true)
	styleSummaryScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(constants.ColorScore))
)

// renderSummary builds the box printed after the terminal is restored
func renderSummary(reg *status.Registry) string {
	row := func(label string, value int64, valueStyle lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styleSummaryLabel.Render(fmt.Sprintf("%-13s", label)),
			valueStyle.Render(fmt.Sprintf("%d", value)),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styleSummaryTitle.Render("vi-snake"),
		"",
		row("Last score", reg.Int(status.KeyLastScore), styleSummaryScore),
		row("Best score", reg.Int(status.KeyBestScore), styleSummaryScore),
		row("Games played", reg.Int(status.KeyGamesPlayed), styleSummaryValue),
		row("Food eaten", reg.Int(status.KeyFoodEaten), styleSummaryValue),
	)

	return styleSummaryBox.Render(body)
}
