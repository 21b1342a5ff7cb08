package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"chromacraft/palette"
)

// renderPreview lays p out as rows of colored cells, each labelled with its
// hex string. Without color support only the labels remain.
func renderPreview(p palette.Palette, columns int) string {
	if columns <= 0 {
		columns = 6
	}

	var rows, cells []string
	for i, c := range p {
		fg := "#000000"
		if c.Luma() <= 0.5 {
			fg = "#ffffff"
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(fg)).
			Padding(0, 1)
		cells = append(cells, style.Render(c.Hex()))

		if len(cells) == columns || i == len(p)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
