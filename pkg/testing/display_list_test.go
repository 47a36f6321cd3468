package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/progressring/pkg/graphics"
)

func TestRecordOps(t *testing.T) {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{Width: 100, Height: 50})
	canvas.Clear(graphics.ColorWhite)
	canvas.Save()
	canvas.Translate(10.006, 20)
	canvas.DrawCircle(graphics.Offset{X: 5, Y: 5}, 3, graphics.StrokePaint(graphics.ColorBlack, 2))
	canvas.DrawText("7", graphics.Offset{X: 50, Y: 25}, graphics.TextStyle{Color: graphics.ColorLightGray, FontSize: 28})
	canvas.Restore()
	dl := recorder.EndRecording()

	ops := RecordOps(dl)
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	want := []string{"clear", "save", "translate", "drawCircle", "drawText", "restore"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}

	if got := ops[0].Params["color"]; got != "0xFFFFFFFF" {
		t.Errorf("clear color = %v", got)
	}
	if got := ops[2].Params["dx"]; got != 10.01 {
		t.Errorf("translate dx = %v, want rounded 10.01", got)
	}
	circle := ops[3].Params
	if circle["style"] != "stroke" || circle["strokeWidth"] != 2.0 || circle["cap"] != "butt" {
		t.Errorf("circle params = %v", circle)
	}
	if got := ops[4].Params["text"]; got != "7" {
		t.Errorf("text = %v", got)
	}
}

func TestRecordOps_DrawPath(t *testing.T) {
	path := graphics.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{Width: 20, Height: 20})
	canvas.DrawPath(path, graphics.DefaultPaint())
	path.LineTo(10, 10)
	ops := RecordOps(recorder.EndRecording())

	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	if got := ops[0].Params["commands"]; got != 2 {
		t.Errorf("recorded path should be a copy, got %v commands", got)
	}
	if got := ops[0].Params["end"]; got != [2]float64{10, 0} {
		t.Errorf("end = %v", got)
	}
	if _, ok := ops[0].Params["strokeWidth"]; ok {
		t.Error("fill paint should not report strokeWidth")
	}
}

func TestFilter(t *testing.T) {
	ops := []DisplayOp{{Op: "save"}, {Op: "drawPath"}, {Op: "restore"}, {Op: "drawPath"}}
	if got := len(Filter(ops, "drawPath")); got != 2 {
		t.Errorf("expected 2 drawPath ops, got %d", got)
	}
	if got := Filter(ops, "drawText"); got != nil {
		t.Errorf("expected nil for no matches, got %v", got)
	}
}
