package mathutil

import "math"

const (
	PiH = math.Pi / 2
	Pi2 = math.Pi * 2
	PiQ = math.Pi / 4

	Deg2RadFactor = math.Pi / 180
	Rad2DegFactor = 180 / math.Pi

	// Epsilon is the tolerance used for near-zero tests and the
	// parallel-line threshold of the closest-point queries.
	Epsilon = 1e-6
)

// SceneView is the default orthographic camera for scene charts:
// Rx(-25°) @ Ry(35°), a three-quarter view looking slightly down.
var SceneView = Mat3Mul(RotX(Deg2Rad(-25)), RotY(Deg2Rad(35)))
