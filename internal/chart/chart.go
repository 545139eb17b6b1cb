// Package chart holds the dashboard palette, threshold colors and the
// character-range styling used by the panels.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/noctua/internal/sensor"
)

// Palette. Numbers are xterm-256 indexes.
var (
	Turquoise    = lipgloss.Color("45")
	Green        = lipgloss.Color("2")
	Red          = lipgloss.Color("1")
	White        = lipgloss.Color("7")
	DarkOrange   = lipgloss.Color("208")
	BrightYellow = lipgloss.Color("11")
	Blue         = lipgloss.Color("4")
)

// BandColor returns the color of a temperature band.
func BandColor(b sensor.Band) lipgloss.Color {
	switch b {
	case sensor.Cool:
		return Green
	case sensor.Warm:
		return DarkOrange
	default:
		return Red
	}
}

// ToEnd marks a Span that runs to the end of the text.
const ToEnd = -1

// Span styles the runes [Start, End) of a text. End may be ToEnd.
type Span struct {
	Start, End int
	Style      lipgloss.Style
}

func (s Span) covers(i int) bool {
	return i >= s.Start && (s.End == ToEnd || i < s.End)
}

// Stylize renders text with base applied everywhere and spans applied over
// their rune ranges. Where spans overlap the later one wins. Rune offsets
// count newlines, which are never styled.
func Stylize(text string, base lipgloss.Style, spans ...Span) string {
	runes := []rune(text)
	styleAt := make([]int, len(runes)) // -1 = base, otherwise span index
	for i := range runes {
		styleAt[i] = -1
		for j := len(spans) - 1; j >= 0; j-- {
			if spans[j].covers(i) {
				styleAt[i] = j
				break
			}
		}
	}

	styleOf := func(idx int) lipgloss.Style {
		if idx < 0 {
			return base
		}
		return spans[idx].Style
	}

	var sb strings.Builder
	start := 0
	flush := func(end int) {
		if end > start {
			sb.WriteString(styleOf(styleAt[start]).Render(string(runes[start:end])))
		}
	}
	for i, r := range runes {
		if r == '\n' {
			flush(i)
			sb.WriteRune('\n')
			start = i + 1
			continue
		}
		if i > start && styleAt[i] != styleAt[start] {
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return sb.String()
}
