package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/noctua/internal/chart"
)

type artRun struct {
	color lipgloss.Color
	lines []string
}

// raspberry is the logo drawn under the status text: leaves, berry, caption.
var raspberry = []artRun{
	{chart.Green, []string{
		"        ",
		`   .~~.   .~~.`,
		`  '. \ ' ' / .'`,
	}},
	{chart.Red, []string{
		`   .~ .~~~..~.`,
		`  : .~.'~'.~. :`,
		` ~ (   ) (   ) ~`,
		`( : '~'.~.'~' : )`,
		` ~ .~ (   ) ~. ~`,
		`  (  : '~' :  ) `,
		`   '~ .~~~. ~'`,
		`       '~'`,
	}},
	{chart.White, []string{
		`   Raspberry Pi`,
		"        ",
	}},
}

// renderArt returns the logo centered as a block within width.
func renderArt(width int) string {
	var lines []string
	for _, run := range raspberry {
		style := lipgloss.NewStyle().Foreground(run.color)
		for _, l := range run.lines {
			lines = append(lines, style.Render(l))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}
