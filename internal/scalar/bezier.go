package scalar

// Bezier3 evaluates a 1D cubic Bezier whose first and last control points
// are fixed at 0 and 1; b and c are the inner controls.
func Bezier3(b, c, t float64) float64 {
	s := 1 - t
	t2 := t * t
	s2 := s * s
	t3 := t2 * t
	return 3*b*s2*t + 3*c*s*t2 + t3
}

// Bezier7 is the 7th order counterpart of Bezier3 with inner controls b..g.
func Bezier7(b, c, d, e, f, g, t float64) float64 {
	s := 1 - t
	t2, s2 := t*t, s*s
	t3, s3 := t2*t, s2*s
	t4, s4 := t2*t2, s2*s2
	t5, s5 := t3*t2, s3*s2
	t6, s6 := t3*t3, s3*s3
	t7 := t6 * t

	return 7*b*s6*t + 21*c*s5*t2 + 35*d*s4*t3 +
		35*e*s3*t4 + 21*f*s2*t5 + 7*g*s*t6 + t7
}
