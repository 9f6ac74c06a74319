package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FlythroughPath is the camera path the demo's benchmark sweep follows.
var FlythroughPath = []Transform{
	{
		Position: mgl32.Vec3{-6.414026, 8.179898, -23.550516},
		Rotation: mgl32.Quat{W: 0.4711502, V: mgl32.Vec3{-0.016413536, -0.88136566, -0.030704278}},
	},
	{
		Position: mgl32.Vec3{-14.752817, 6.279289, 5.691277},
		Rotation: mgl32.Quat{W: 0.8553488, V: mgl32.Vec3{-0.031593435, -0.516736, -0.019086324}},
	},
	{
		Position: mgl32.Vec3{5.1539426, 8.142523, 16.436222},
		Rotation: mgl32.Quat{W: 0.99396276, V: mgl32.Vec3{-0.07907656, -0.07581916, -0.006031934}},
	},
}

// FollowPath samples a piecewise-linear path at progress in [0, 1].
func FollowPath(points []Transform, progress float32) Transform {
	if len(points) == 0 {
		return Transform{}
	}
	if len(points) == 1 {
		return points[0]
	}
	total := float32(len(points) - 1)
	progress = math32.Min(math32.Max(progress, 0), 1)
	segment := progress * total
	index := int(math32.Floor(segment))
	segment -= float32(index)
	a := points[index]
	next := index + 1
	if next > len(points)-1 {
		next = len(points) - 1
	}
	return a.Lerp(points[next], segment)
}

// Cycle maps monotonic progress onto a there-and-back sweep, so the path
// is traversed forward then backward once per unit of progress.
func Cycle(progress float32) float32 {
	progress -= math32.Floor(progress)
	return 1 - math32.Abs(progress*2-1)
}
