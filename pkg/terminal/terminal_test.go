package terminal

import (
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	out := RenderWith(lipgloss.NewRenderer(io.Discard), img, 10, 5)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
		if !strings.Contains(line, halfBlock) {
			t.Errorf("line %d has no half blocks: %q", i, line)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, tt := range []struct {
		name       string
		img        image.Image
		cols, rows int
	}{
		{"nil image", nil, 4, 4},
		{"zero cols", img, 0, 4},
		{"zero rows", img, 4, 0},
		{"empty bounds", image.NewRGBA(image.Rect(0, 0, 0, 0)), 4, 4},
	} {
		if got := Render(tt.img, tt.cols, tt.rows); got != "" {
			t.Errorf("%s: got %q, want empty", tt.name, got)
		}
	}
}

func TestSampleCentersCells(t *testing.T) {
	tests := []struct {
		origin, extent, i, n, want int
	}{
		{0, 200, 0, 2, 50},
		{0, 200, 1, 2, 150},
		{10, 4, 3, 4, 13},
		{0, 100, 0, 1, 50},
	}
	for _, tt := range tests {
		if got := sample(tt.origin, tt.extent, tt.i, tt.n); got != tt.want {
			t.Errorf("sample(%d, %d, %d, %d) = %d, want %d", tt.origin, tt.extent, tt.i, tt.n, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := hex(color.RGBA{R: 0xFC, G: 0x4A, B: 0x1A, A: 0xFF}); got != "#FC4A1A" {
		t.Errorf("hex = %s", got)
	}
	if got := hex(color.White); got != "#FFFFFF" {
		t.Errorf("hex(white) = %s", got)
	}
}
