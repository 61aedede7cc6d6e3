package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/daryltucker/smallfiles-bench/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// SummaryTable renders aggregates as a bordered console table.
func SummaryTable(aggs []model.Aggregate) string {
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		std := "-"
		if a.HasStdDev() {
			std = fmt.Sprintf("%.4f", a.TimeStdDev)
		}
		rows = append(rows, []string{
			a.Key.Tool,
			a.Key.Operation,
			fmt.Sprintf("%d", a.Count),
			fmt.Sprintf("%.4f", a.TimeMean),
			std,
			fmt.Sprintf("%.1f", a.MaxMemoryMean),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Tool", "Operation", "N", "Mean Time (s)", "Std Time (s)", "Mean Max Memory (KB)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
