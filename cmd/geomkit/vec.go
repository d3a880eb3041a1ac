package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"geomkit/internal/mathutil"
)

// parseVec3 reads "x,y,z" (spaces allowed).
func parseVec3(s string) (mathutil.Vec3, error) {
	v, n, err := parsePoint(s)
	if err != nil {
		return mathutil.Vec3{}, err
	}
	if n != 3 {
		return mathutil.Vec3{}, errors.Errorf("want x,y,z, got %q", s)
	}
	return v, nil
}

// parsePoint reads "x,y" or "x,y,z" and returns the number of components.
func parsePoint(s string) (mathutil.Vec3, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return mathutil.Vec3{}, 0, errors.Errorf("want x,y or x,y,z, got %q", s)
	}
	var v mathutil.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mathutil.Vec3{}, 0, errors.Wrapf(err, "component %d of %q", i, s)
		}
		v[i] = f
	}
	return v, len(parts), nil
}

func formatVec3(v mathutil.Vec3) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v[0], v[1], v[2])
}
