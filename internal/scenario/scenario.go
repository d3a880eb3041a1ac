// Package scenario loads and solves named closest-point queries.
package scenario

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"geomkit/internal/closest"
	"geomkit/internal/mathutil"
)

// Builtin returns the reference queries: skew and parallel lines, identical
// and disjoint segments.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name: "skew-lines", Mode: Lines,
			A0: mathutil.Vec3{0, 0, 0}, A1: mathutil.Vec3{1, 0, 0},
			B0: mathutil.Vec3{0, 1, 0}, B1: mathutil.Vec3{0, 1, 1},
		},
		{
			Name: "identical-segments", Mode: Segments,
			A0: mathutil.Vec3{0, 0, 0}, A1: mathutil.Vec3{1, 0, 0},
			B0: mathutil.Vec3{0, 0, 0}, B1: mathutil.Vec3{1, 0, 0},
		},
		{
			Name: "parallel-lines", Mode: Lines,
			A0: mathutil.Vec3{0, 0, 0}, A1: mathutil.Vec3{1, 0, 0},
			B0: mathutil.Vec3{0, 1, 0}, B1: mathutil.Vec3{1, 1, 0},
		},
		{
			Name: "disjoint-segments", Mode: Segments,
			A0: mathutil.Vec3{0, 0, 0}, A1: mathutil.Vec3{1, 0, 0},
			B0: mathutil.Vec3{5, 1, 0}, B1: mathutil.Vec3{6, 1, 0},
		},
	}
}

// Load reads a JSON array of scenarios. An empty Mode means segments.
func Load(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var list []Scenario
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	seen := make(map[string]bool, len(list))
	for i := range list {
		name := list[i].Name
		if name == "" {
			continue
		}
		if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("scenario: %s: invalid name %q", path, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("scenario: %s: duplicate name %q", path, name)
		}
		seen[name] = true
	}

	for i := range list {
		if list[i].Mode == "" {
			list[i].Mode = Segments
		}
		if list[i].Name == "" {
			list[i].Name = freeName(seen, i)
		}
		if list[i].Mode != Lines && list[i].Mode != Segments {
			return nil, fmt.Errorf("scenario: %s: unknown mode %q", list[i].Name, list[i].Mode)
		}
	}
	return list, nil
}

// freeName picks scenario-<i>, suffixed until it clashes with no other name.
func freeName(seen map[string]bool, i int) string {
	name := fmt.Sprintf("scenario-%d", i)
	for n := 2; seen[name]; n++ {
		name = fmt.Sprintf("scenario-%d-%d", i, n)
	}
	seen[name] = true
	return name
}

// Solve runs the query. Zero-length inputs are rejected with
// closest.ErrDegenerate instead of producing non-finite points; inputs so
// large that the solve overflows fail with an error as well.
func (s Scenario) Solve() (Result, error) {
	if closest.Degenerate(s.A0, s.A1) {
		return Result{}, fmt.Errorf("scenario: %s: A: %w", s.Name, closest.ErrDegenerate)
	}
	if closest.Degenerate(s.B0, s.B1) {
		return Result{}, fmt.Errorf("scenario: %s: B: %w", s.Name, closest.ErrDegenerate)
	}

	var a, b mathutil.Vec3
	switch s.Mode {
	case Lines:
		a, b = closest.Lines(s.A0, s.A1, s.B0, s.B1)
	case Segments, "":
		a, b = closest.Segments(s.A0, s.A1, s.B0, s.B1)
	default:
		return Result{}, fmt.Errorf("scenario: %s: unknown mode %q", s.Name, s.Mode)
	}
	res := Result{OnA: a, OnB: b, Distance: a.Dist(b)}
	if !a.IsFinite() || !b.IsFinite() || math.IsInf(res.Distance, 0) || math.IsNaN(res.Distance) {
		return Result{}, fmt.Errorf("scenario: %s: non-finite result %v, %v", s.Name, a, b)
	}
	return res, nil
}
