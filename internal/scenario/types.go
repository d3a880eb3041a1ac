package scenario

import "geomkit/internal/mathutil"

// Mode selects whether the two inputs are infinite lines or bounded segments.
type Mode string

const (
	Lines    Mode = "lines"
	Segments Mode = "segments"
)

// Scenario is one named closest-point query.
type Scenario struct {
	Name string        `json:"name"`
	Mode Mode          `json:"mode"`
	A0   mathutil.Vec3 `json:"a0"`
	A1   mathutil.Vec3 `json:"a1"`
	B0   mathutil.Vec3 `json:"b0"`
	B1   mathutil.Vec3 `json:"b1"`
}

// Result is the solved closest pair. OnA lies on the first line/segment.
type Result struct {
	OnA      mathutil.Vec3 `json:"on_a"`
	OnB      mathutil.Vec3 `json:"on_b"`
	Distance float64       `json:"distance"`
}
