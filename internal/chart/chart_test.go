package chart

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/noctua/internal/sensor"
)

func TestBandColor(t *testing.T) {
	tests := []struct {
		band sensor.Band
		want lipgloss.Color
	}{
		{sensor.Cool, Green},
		{sensor.Warm, DarkOrange},
		{sensor.Hot, Red},
	}
	for _, tt := range tests {
		if got := BandColor(tt.band); got != tt.want {
			t.Errorf("BandColor(%v) = %v, want %v", tt.band, got, tt.want)
		}
	}
}

func TestStylizeKeepsText(t *testing.T) {
	text := "Raspberry Pi s automaticky řízeným\nvětrákem"
	got := Stylize(text, lipgloss.NewStyle(),
		Span{Start: 0, End: 10, Style: lipgloss.NewStyle().Foreground(Green).Bold(true)},
		Span{Start: 10, End: 13, Style: lipgloss.NewStyle().Foreground(Red).Bold(true)},
		Span{Start: 13, End: ToEnd, Style: lipgloss.NewStyle().Foreground(White)},
	)

	// Tests run without a TTY, so lipgloss renders no escape codes.
	if got != text {
		t.Errorf("Stylize changed the text:\n got %q\nwant %q", got, text)
	}
}

func TestStylizeSpanOrder(t *testing.T) {
	a := Span{Start: 0, End: ToEnd}
	b := Span{Start: 2, End: 4}
	if !a.covers(100) || a.covers(-1) {
		t.Error("ToEnd span bounds")
	}
	if b.covers(1) || !b.covers(2) || !b.covers(3) || b.covers(4) {
		t.Error("half-open span bounds")
	}
}
