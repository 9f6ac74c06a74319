package view_test

import (
	"testing"

	"bistro-demo/view"

	"github.com/chewxy/math32"
)

func closeEnough(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func TestRigSelect(t *testing.T) {
	rig := view.Rig{}
	if rig.Current() != view.PresetEntrance {
		t.Errorf("rig should start at the entrance preset, got %v", rig.Current())
	}

	if !rig.Select(view.PresetInterior) {
		t.Fatalf("selecting a valid preset should succeed")
	}
	if rig.Current() != view.PresetInterior {
		t.Errorf("expected interior preset, got %v", rig.Current())
	}

	if rig.Select(view.Preset(99)) {
		t.Errorf("selecting an invalid preset should fail")
	}
	if rig.Current() != view.PresetInterior {
		t.Errorf("failed selection must not change the state, got %v", rig.Current())
	}
}

func TestPresetNames(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range view.Presets() {
		name := p.String()
		if name == "invalid" || seen[name] {
			t.Errorf("preset %d has a bad or duplicate name %q", p, name)
		}
		seen[name] = true
	}
}

func TestFollowPathEndpoints(t *testing.T) {
	path := view.FlythroughPath

	start := view.FollowPath(path, 0)
	if start.Position != path[0].Position {
		t.Errorf("progress 0 should be the first point, got %v", start.Position)
	}

	end := view.FollowPath(path, 1)
	if end.Position != path[len(path)-1].Position {
		t.Errorf("progress 1 should be the last point, got %v", end.Position)
	}

	// Out of range progress clamps.
	if got := view.FollowPath(path, -2); got.Position != path[0].Position {
		t.Errorf("negative progress should clamp to the start, got %v", got.Position)
	}
	if got := view.FollowPath(path, 2); got.Position != path[len(path)-1].Position {
		t.Errorf("overshoot should clamp to the end, got %v", got.Position)
	}
}

func TestFollowPathMidpoint(t *testing.T) {
	path := view.FlythroughPath
	// With three points, progress 0.25 is halfway along the first segment.
	got := view.FollowPath(path, 0.25)
	want := path[0].Lerp(path[1], 0.5)
	for i := 0; i < 3; i++ {
		if !closeEnough(got.Position[i], want.Position[i]) {
			t.Errorf("midpoint position axis %d should be %f but was %f", i, want.Position[i], got.Position[i])
		}
	}
}

func TestCycle(t *testing.T) {
	cases := [][2]float32{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
		{1.25, 0.5},
	}
	for _, c := range cases {
		if got := view.Cycle(c[0]); !closeEnough(got, c[1]) {
			t.Errorf("Cycle(%f) should be %f but was %f", c[0], c[1], got)
		}
	}
}
