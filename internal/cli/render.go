package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilewfc/grid"
)

// palette colors groups by uid, cycling when there are more groups.
var palette = []lipgloss.Color{
	"#2CD7C7", "#F4D03F", "#E74C3C", "#7DCEA0", "#5DADE2",
	"#AF7AC5", "#F0B27A", "#20B9B4", "#EC7063", "#A9CCE3",
}

var (
	unplacedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
)

// useColor reports whether grid output goes to a terminal that should get
// colors.
func (a *app) useColor(cmd *cobra.Command) bool {
	if a.flags.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := stdoutFile(cmd)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printGrid writes g to w: the plain text form, or a colored uid matrix
// under a title line.
func printGrid(w io.Writer, g *grid.Grid, title string, color bool) {
	if !color {
		fmt.Fprint(w, g.String())
		return
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteByte('\n')
	for _, row := range g.UIDs() {
		cells := make([]string, len(row))
		for i, uid := range row {
			if uid == grid.Unplaced {
				cells[i] = unplacedStyle.Render("··")
				continue
			}
			style := lipgloss.NewStyle().Bold(true).Foreground(palette[uid%len(palette)])
			cells[i] = style.Render(fmt.Sprintf("%02d", uid))
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}
