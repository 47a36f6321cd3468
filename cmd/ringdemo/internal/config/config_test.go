package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/progressring/cmd/ringdemo/internal/screen"
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/progressring"
)

// ignoreCurve skips the intro curve, which cmp cannot compare.
var ignoreCurve = cmpopts.IgnoreFields(screen.Options{}, "IntroCurve")

const sample = `
ring:
  size: 180
  stroke_width: 12
  ring_color: "#112233"
  background_color: "#80445566"
  direction: counterclockwise
  line_cap: butt
timer:
  interval: 100ms
  max: 5s
  restart_delay: 0s
screen:
  width: 400
  height: 300
  background: "#000000"
  label_color: "#FFFFFF"
  label_size: 32
intro:
  duration: 750ms
  curve: ease-out
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ringdemo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	resolved, err := Config{}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff(screen.DefaultOptions(), resolved.Screen, ignoreCurve); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if resolved.Screen.IntroCurve == nil || resolved.Screen.IntroCurve(0.5) != 0.5 {
		t.Error("expected linear intro curve by default")
	}
	if resolved.Config.Ring.Direction != "clockwise" || resolved.Config.Ring.LineCap != "round" {
		t.Errorf("ring defaults = %+v", resolved.Config.Ring)
	}
	if resolved.Config.Timer.RestartDelay == nil || *resolved.Config.Timer.RestartDelay != time.Second {
		t.Errorf("restart delay default = %v", resolved.Config.Timer.RestartDelay)
	}
}

func TestResolveFile(t *testing.T) {
	resolved, err := Resolve(writeFile(t, sample), true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := screen.Options{
		Width:      400,
		Height:     300,
		Background: graphics.ColorBlack,
		RingSize:   180,
		Style: progressring.Style{
			StrokeWidth:         12,
			RingColor:           graphics.RGB(0x11, 0x22, 0x33),
			BackgroundRingColor: graphics.Color(0x80445566),
			TextColor:           progressring.DefaultTextColor,
			Direction:           progressring.CounterClockwise,
			LineCap:             graphics.CapButt,
		},
		LabelColor:    graphics.ColorWhite,
		LabelSize:     32,
		Interval:      100 * time.Millisecond,
		Max:           5 * time.Second,
		RestartDelay:  0,
		IntroDuration: 750 * time.Millisecond,
	}
	if diff := cmp.Diff(want, resolved.Screen, ignoreCurve); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if resolved.Path == "" {
		t.Error("expected Path to record the config file")
	}
	if got := resolved.Screen.IntroCurve(1); got != 1 {
		t.Errorf("ease-out(1) = %v", got)
	}
}

func TestResolveMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	resolved, err := Resolve(path, false)
	if err != nil {
		t.Fatalf("optional Resolve: %v", err)
	}
	if resolved.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", resolved.Path)
	}

	if _, err := Resolve(path, true); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("required Resolve err = %v, want ErrNotExist", err)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("ring:\n  colour: red\n"), "bad.yaml")
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("err = %v, want parse error naming the file", err)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, "empty.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("unexpected config:\n%s", diff)
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative size", "ring:\n  size: -5\n", "ring.size"},
		{"stroke too wide", "ring:\n  size: 50\n  stroke_width: 50\n", "ring.stroke_width"},
		{"bad ring color", "ring:\n  ring_color: orange\n", "ring.ring_color"},
		{"bad direction", "ring:\n  direction: sideways\n", "ring.direction"},
		{"bad cap", "ring:\n  line_cap: pointy\n", "ring.line_cap"},
		{"bad label color", "screen:\n  label_color: \"#12\"\n", "screen.label_color"},
		{"negative width", "screen:\n  width: -1\n", "screen size"},
		{"max below interval", "timer:\n  interval: 2s\n  max: 1s\n", "timer.max"},
		{"negative delay", "timer:\n  restart_delay: -1s\n", "timer.restart_delay"},
		{"unknown curve", "intro:\n  curve: wobble\n", "intro.curve"},
		{"negative intro", "intro:\n  duration: -1s\n", "intro.duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeFile(t, tt.yaml), true)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestMarshalResolvedConfig(t *testing.T) {
	resolved, err := Config{}.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	data, err := resolved.Config.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)
	for _, want := range []string{"stroke_width: 20", "interval: 50ms", "restart_delay: 1s", "direction: clockwise", "FFFFFF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The printed config reads back to the same options.
	reparsed, err := Parse(data, "printed.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	again, err := reparsed.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff(resolved.Screen, again.Screen, ignoreCurve); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
