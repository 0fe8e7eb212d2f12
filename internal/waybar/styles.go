package waybar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	Gray   = lipgloss.Color("#859289")
	Dark   = lipgloss.Color("#5a6772")
	Green  = lipgloss.Color("#a7c080")
	Yellow = lipgloss.Color("#dbbc7f")
	Orange = lipgloss.Color("#e69875")
	Red    = lipgloss.Color("#e67e80")
	Purple = lipgloss.Color("#d699b6")
	Blue   = lipgloss.Color("#7fbbb3")
)

const (
	defaultIndent     = 2
	defaultLabelWidth = 9
)

// Colorize wraps text in a Pango span with the given foreground color.
// text is not escaped and must not contain markup of its own.
func Colorize(text string, color lipgloss.Color) string {
	return fmt.Sprintf(`<span foreground="%s">%s</span>`, string(color), text)
}

// Entry renders one tooltip line with the default indent and label width
func Entry(label, content string) string {
	return EntryWith(label, content, defaultIndent, defaultLabelWidth)
}

// EntryWith renders an indented gray label padded to labelWidth, two spaces,
// then content. Labels wider than labelWidth are kept whole and push the
// content right.
func EntryWith(label, content string, indent, labelWidth int) string {
	padded := label
	if w := lipgloss.Width(label); w < labelWidth {
		padded += strings.Repeat(" ", labelWidth-w)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", max(indent, 0)))
	b.WriteString(Colorize(padded, Gray))
	b.WriteString("  ")
	b.WriteString(content)
	b.WriteString("\n")
	return b.String()
}
