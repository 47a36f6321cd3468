package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
)

// UpdateSnapshotsEnv names the environment variable that makes MatchesFile
// rewrite golden files instead of comparing against them.
const UpdateSnapshotsEnv = "PROGRESSRING_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the render tree structure and display operations.
type Snapshot struct {
	RenderTree *RenderNode `json:"renderTree"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// RenderNode represents a node in the serialized render tree.
type RenderNode struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Size       [2]float64     `json:"size"`
	Offset     [2]float64     `json:"offset"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*RenderNode  `json:"children,omitempty"`
}

// propertyWhitelist defines which properties to serialize per render type.
// Types not listed here are serialized with size/offset only.
var propertyWhitelist = map[string][]string{
	"RingView": {"strokeWidth", "direction", "progress"},
	"Label":    {"text", "fontSize", "color"},
}

// CaptureSnapshot records the already laid out tree rooted at root and the
// operations it paints at the given size.
func CaptureSnapshot(root layout.RenderObject, size graphics.Size) *Snapshot {
	snap := &Snapshot{}
	if root == nil {
		return snap
	}
	snap.RenderTree = captureRenderNode(root, &typeCounter{})

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(size)
	root.Paint(&layout.PaintContext{Canvas: canvas})
	snap.DisplayOps = RecordOps(recorder.EndRecording())
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When PROGRESSRING_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: PROGRESSRING_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: PROGRESSRING_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a go-cmp diff between other (expected) and this snapshot
// (actual) after normalizing both through JSON. Returns the empty string
// when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(normalize(other), normalize(s))
}

// --- Internal ---

// typeCounter assigns stable IDs like "RingView#0", "Label#0".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureRenderNode(ro layout.RenderObject, counter *typeCounter) *RenderNode {
	typeName := renderTypeName(ro)
	size := ro.Size()

	// Get offset from parent data
	offset := graphics.Offset{}
	if pd, ok := ro.ParentData().(*layout.BoxParentData); ok {
		offset = pd.Offset
	}

	node := &RenderNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Size:   [2]float64{round2(size.Width), round2(size.Height)},
		Offset: [2]float64{round2(offset.X), round2(offset.Y)},
	}

	// Capture whitelisted properties
	if props := captureProperties(ro, typeName); len(props) > 0 {
		node.Properties = props
	}

	// Recurse into children
	if visitor, ok := ro.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			childNode := captureRenderNode(child, counter)
			node.Children = append(node.Children, childNode)
		})
	}

	return node
}

func renderTypeName(ro layout.RenderObject) string {
	t := reflect.TypeOf(ro)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	// Capitalize so unexported types match whitelist entries.
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

func captureProperties(ro layout.RenderObject, typeName string) map[string]any {
	whitelist, ok := propertyWhitelist[typeName]
	if !ok {
		return nil
	}

	props := make(map[string]any)
	v := reflect.ValueOf(ro)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, fieldName := range whitelist {
		field := v.FieldByName(fieldName)
		if !field.IsValid() {
			// Try exported version (capitalize first letter)
			exported := strings.ToUpper(fieldName[:1]) + fieldName[1:]
			field = v.FieldByName(exported)
		}
		if !field.IsValid() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[fieldName] = val
		}
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type() == reflect.TypeOf(graphics.Color(0)) {
			return serializeColor(graphics.Color(v.Uint()))
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Struct:
		if !v.CanInterface() {
			// Unexported struct field: serialize exported fields individually.
			return serializeStruct(v)
		}
		return fmt.Sprintf("%v", v.Interface())
	default:
		return nil
	}
}

// serializeStruct handles unexported struct fields by iterating exported
// sub-fields and collecting their values into a map.
func serializeStruct(v reflect.Value) any {
	t := v.Type()
	m := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if val := serializeFieldValue(v.Field(i)); val != nil {
			m[f.Name] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize round-trips a snapshot through JSON so that snapshots built in
// memory and snapshots loaded from disk compare equal.
func normalize(s *Snapshot) any {
	if s == nil {
		return nil
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err.Error()
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return err.Error()
	}
	return out
}
