package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/valuelink/pkg/linkerr"
)

const mixerScene = `
cells:
  - name: volume
    type: float
    initial: "5"
    controls:
      - kind: label
        name: volume.label
      - kind: entry
        name: volume.entry
      - kind: slider
        name: volume.slider
        min: 0
        max: 10
    canvas:
      width: 120
      height: 24
  - name: title
    type: string
    initial: "untitled"
    controls:
      - kind: entry
        name: title.entry
`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildWiresControlsToInitialValues(t *testing.T) {
	cfg, err := Load(writeScene(t, mixerScene))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if got := sc.Labels["volume.label"].Text(); got != "5" {
		t.Errorf("label shows %q after build, want \"5\"", got)
	}
	if got := sc.Entries["volume.entry"].Text(); got != "5" {
		t.Errorf("entry shows %q after build, want \"5\"", got)
	}
	if got := sc.Sliders["volume.slider"].Adjustment().Value(); got != 5 {
		t.Errorf("slider reads %v after build, want 5", got)
	}
	if sc.Canvases["volume"].Repaints() != 1 {
		t.Errorf("canvas repainted %d times at build, want the first paint only", sc.Canvases["volume"].Repaints())
	}

	want := map[string]string{"volume": "5", "title": "untitled"}
	if diff := cmp.Diff(want, sc.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValueFansOutAcrossTheScene(t *testing.T) {
	cfg, err := Load(writeScene(t, mixerScene))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if err := sc.SetValue("volume", "3"); err != nil {
		t.Fatal(err)
	}

	if got := sc.Labels["volume.label"].Text(); got != "3" {
		t.Errorf("label shows %q, want \"3\"", got)
	}
	if got := sc.Sliders["volume.slider"].Adjustment().Value(); got != 3 {
		t.Errorf("slider reads %v, want 3", got)
	}
	if sc.Canvases["volume"].Repaints() != 2 {
		t.Errorf("canvas repainted %d times, want 2", sc.Canvases["volume"].Repaints())
	}
}

func TestEntryCommitDrivesSiblingControls(t *testing.T) {
	cfg, err := Load(writeScene(t, mixerScene))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if err := sc.Entries["volume.entry"].Commit("7"); err != nil {
		t.Fatal(err)
	}

	if got := sc.Floats["volume"].Get(); got != 7 {
		t.Errorf("cell reads %v after commit, want 7", got)
	}
	if got := sc.Labels["volume.label"].Text(); got != "7" {
		t.Errorf("label shows %q after commit, want \"7\"", got)
	}
}

func TestBuildRejectsUnknownControlKind(t *testing.T) {
	cfg := &Config{Cells: []CellConfig{{
		Name:     "x",
		Type:     "int",
		Controls: []ControlConfig{{Kind: "dial"}},
	}}}

	_, err := Build(cfg)

	var lerr *linkerr.LinkError
	if !errors.As(err, &lerr) || lerr.Kind != linkerr.KindScene {
		t.Fatalf("Build returned %v, want a scene LinkError", err)
	}
}

func TestBuildRejectsSliderOnStringCell(t *testing.T) {
	cfg := &Config{Cells: []CellConfig{{
		Name:     "x",
		Type:     "string",
		Controls: []ControlConfig{{Kind: "slider"}},
	}}}

	if _, err := Build(cfg); err == nil {
		t.Error("Build accepted a slider on a string cell, want error")
	}
}

func TestSetValueUnknownCell(t *testing.T) {
	sc, err := Build(&Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.SetValue("ghost", "1"); err == nil {
		t.Error("SetValue on unknown cell succeeded, want error")
	}
}
