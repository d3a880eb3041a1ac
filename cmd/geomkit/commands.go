package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"geomkit/internal/closest"
	"geomkit/internal/mathutil"
	"geomkit/internal/polar"
	"geomkit/internal/scenario"
	"geomkit/internal/wave"
)

func vecFlag(name, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Category: "Points",
		Name:     name,
		Usage:    usage + " as x,y,z",
		Required: true,
	}
}

func vecArgs(cmd *cli.Command, names ...string) ([]mathutil.Vec3, error) {
	out := make([]mathutil.Vec3, len(names))
	for i, n := range names {
		v, err := parseVec3(cmd.String(n))
		if err != nil {
			return nil, errors.Wrapf(err, "--%s", n)
		}
		out[i] = v
	}
	return out, nil
}

func closestCommand() *cli.Command {
	return &cli.Command{
		Name:    "closest",
		Aliases: []string{"c"},
		Usage:   "Closest points between two lines or segments",
		Flags: []cli.Flag{
			vecFlag("a0", "First point of A"),
			vecFlag("a1", "Second point of A"),
			vecFlag("b0", "First point of B"),
			vecFlag("b1", "Second point of B"),
			&cli.StringFlag{
				Name:  "mode",
				Usage: "lines or segments",
				Value: string(scenario.Segments),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p, err := vecArgs(cmd, "a0", "a1", "b0", "b1")
			if err != nil {
				return err
			}
			s := scenario.Scenario{
				Name: "query",
				Mode: scenario.Mode(cmd.String("mode")),
				A0:   p[0], A1: p[1], B0: p[2], B1: p[3],
			}
			res, err := s.Solve()
			if err != nil {
				return errors.Wrap(err, "closest")
			}
			fmt.Printf("on A:     %s\n", formatVec3(res.OnA))
			fmt.Printf("on B:     %s\n", formatVec3(res.OnB))
			fmt.Printf("distance: %.6g\n", res.Distance)
			return nil
		},
	}
}

func projectCommand() *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Nearest point on the infinite line through a and b to p (2D or 3D)",
		Flags: []cli.Flag{
			&cli.StringFlag{Category: "Points", Name: "a", Usage: "Line start as x,y or x,y,z", Required: true},
			&cli.StringFlag{Category: "Points", Name: "b", Usage: "Line end", Required: true},
			&cli.StringFlag{Category: "Points", Name: "p", Usage: "Query point", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var pts [3]mathutil.Vec3
			dims := 0
			for i, name := range []string{"a", "b", "p"} {
				v, n, err := parsePoint(cmd.String(name))
				if err != nil {
					return errors.Wrapf(err, "--%s", name)
				}
				if dims != 0 && n != dims {
					return errors.Errorf("--%s has %d components, others have %d", name, n, dims)
				}
				pts[i], dims = v, n
			}
			if closest.Degenerate(pts[0], pts[1]) {
				return errors.Wrap(closest.ErrDegenerate, "project")
			}

			if dims == 2 {
				x, y := closest.PointOnLine2D(pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1])
				fmt.Printf("(%.6g, %.6g)\n", x, y)
				return nil
			}
			fmt.Println(formatVec3(closest.PointOnLine3D(pts[0], pts[1], pts[2], nil)))
			return nil
		},
	}
}

func waveCommand() *cli.Command {
	names := make([]string, 0, len(wave.Generators))
	for n := range wave.Generators {
		names = append(names, n)
	}
	sort.Strings(names)

	return &cli.Command{
		Name:  "wave",
		Usage: "Print samples of a periodic generator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Usage: strings.Join(names, ", "), Value: "triangle"},
			&cli.Float64Flag{Category: "Wave", Name: "min", Value: 0},
			&cli.Float64Flag{Category: "Wave", Name: "max", Value: 1},
			&cli.Float64Flag{Category: "Wave", Name: "period", Value: 1},
			&cli.Float64Flag{Category: "Range", Name: "from", Value: 0},
			&cli.Float64Flag{Category: "Range", Name: "to", Value: 1},
			&cli.IntFlag{Category: "Range", Name: "n", Usage: "Number of samples", Value: 11},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, ok := wave.Generators[cmd.String("kind")]
			if !ok {
				return errors.Errorf("unknown wave %q (want one of %s)", cmd.String("kind"), strings.Join(names, ", "))
			}
			w := wave.Wave{Min: cmd.Float64("min"), Max: cmd.Float64("max"), Period: cmd.Float64("period")}
			from, to, n := cmd.Float64("from"), cmd.Float64("to"), int(cmd.Int("n"))
			if n < 1 {
				return errors.Errorf("--n must be positive, got %d", n)
			}

			step := 0.0
			if n > 1 {
				step = (to - from) / float64(n-1)
			}
			for i := 0; i < n; i++ {
				t := from + step*float64(i)
				fmt.Printf("%.6g\t%.6g\n", t, f(w, t))
			}
			return nil
		},
	}
}

func polarCommand() *cli.Command {
	return &cli.Command{
		Name:  "polar",
		Usage: "Convert longitude/latitude (degrees) to x,y,z, or back with --xyz",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "lon"},
			&cli.Float64Flag{Name: "lat"},
			&cli.Float64Flag{Name: "radius", Value: 1},
			&cli.StringFlag{Name: "xyz", Usage: "Cartesian point to convert to lon/lat"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if s := cmd.String("xyz"); s != "" {
				v, err := parseVec3(s)
				if err != nil {
					return errors.Wrap(err, "--xyz")
				}
				lon, lat := polar.FromCartesian(v)
				fmt.Printf("lon %.6g\tlat %.6g\n", lon, lat)
				return nil
			}
			fmt.Println(formatVec3(polar.ToCartesian(cmd.Float64("lon"), cmd.Float64("lat"), cmd.Float64("radius"))))
			return nil
		},
	}
}
