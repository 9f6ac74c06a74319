// Package view models the demo's named camera viewpoints. The host
// engine owns the actual window and camera; this package only holds the
// explicit preset state it drives.
package view

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

func (t Transform) Lerp(other Transform, f float32) Transform {
	return Transform{
		Position: lerpVec3(t.Position, other.Position, f),
		Rotation: mgl32.QuatNlerp(t.Rotation, other.Rotation, f),
	}
}

func lerpVec3(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}

type Preset int

const (
	PresetEntrance Preset = iota
	PresetOverlook
	PresetInterior
	presetCount
)

func (p Preset) String() string {
	switch p {
	case PresetEntrance:
		return "entrance"
	case PresetOverlook:
		return "overlook"
	case PresetInterior:
		return "interior"
	}
	return "invalid"
}

// The fixed Bistro viewpoints, also used as benchmark steps.
var presets = [presetCount]Transform{
	PresetEntrance: {
		Position: mgl32.Vec3{-10.5, 1.7, -1.0},
		Rotation: mgl32.Quat{W: -0.670351, V: mgl32.Vec3{-0.05678932, 0.7372272, -0.062454797}},
	},
	PresetOverlook: {
		Position: mgl32.Vec3{56.23809, 2.9985719, 28.96291},
		Rotation: mgl32.Quat{W: 0.93572617, V: mgl32.Vec3{0.0020175162, 0.35272083, -0.0007605003}},
	},
	PresetInterior: {
		Position: mgl32.Vec3{5.7861176, 3.3475509, -8.821455},
		Rotation: mgl32.Quat{W: 0.18737496, V: mgl32.Vec3{-0.0049382094, -0.98193514, -0.025878597}},
	},
}

func Presets() []Preset {
	all := make([]Preset, presetCount)
	for i := range all {
		all[i] = Preset(i)
	}
	return all
}

// Rig is the camera-preset selector. One explicit piece of state instead
// of globals scattered around the input layer.
type Rig struct {
	current Preset
}

func (r *Rig) Select(p Preset) bool {
	if p < 0 || p >= presetCount {
		return false
	}
	r.current = p
	return true
}

func (r *Rig) Current() Preset {
	return r.current
}

func (r *Rig) Transform() Transform {
	return presets[r.current]
}
