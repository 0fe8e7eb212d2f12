package waybar

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintError writes msg prefixed with an "[err]" marker. Colors are applied
// only when w is a terminal.
func PrintError(w io.Writer, msg string) {
	r := lipgloss.NewRenderer(w)
	bracket := r.NewStyle().Foreground(lipgloss.Color("8"))
	label := r.NewStyle().Foreground(lipgloss.Color("1"))

	marker := bracket.Render("[") + label.Render("err") + bracket.Render("]")
	fmt.Fprintln(w, marker, msg)
}
