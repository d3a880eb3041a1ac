package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"geomkit/internal/batch"
	"geomkit/internal/config"
	"geomkit/internal/mathutil"
	"geomkit/internal/plot"
	"geomkit/internal/scenario"
	"geomkit/internal/wave"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "Solve every scenario, draw charts and write manifest.json",
		Flags: []cli.Flag{
			&cli.StringFlag{Category: "Inputs and Outputs", Name: "config", Usage: "Path to config.json file"},
			&cli.StringFlag{Category: "Inputs and Outputs", Name: "scenarios", Aliases: []string{"s"}, Usage: "JSON scenario list (default: built-in scenarios)"},
			&cli.StringFlag{Category: "Inputs and Outputs", Name: "output", Aliases: []string{"o"}, Usage: "Output directory (default: ./renders)"},
			&cli.StringFlag{Category: "Render", Name: "format", Usage: "webp or tga (default: webp)"},
			&cli.IntFlag{Category: "Render", Name: "size", Usage: "Chart size in pixels (default: 256)"},
			&cli.IntFlag{Category: "Render", Name: "workers", Usage: "Number of worker goroutines (default: NumCPU)"},
			&cli.BoolFlag{Category: "Render", Name: "no-waves", Usage: "Skip the wave chart"},
		},
		Action: runRender,
	}
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	var cfg config.Config
	if path := cmd.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		ScenariosFile: cmd.String("scenarios"),
		OutputDir:     cmd.String("output"),
		Format:        cmd.String("format"),
		Size:          int(cmd.Int("size")),
		Workers:       int(cmd.Int("workers")),
	})
	if err := cfg.Validate(plot.Formats); err != nil {
		return err
	}

	items := scenario.Builtin()
	if cfg.ScenariosFile != "" {
		var err error
		items, err = scenario.Load(cfg.ScenariosFile)
		if err != nil {
			return errors.Wrap(err, "loading scenarios")
		}
	}
	if len(items) == 0 {
		fmt.Println("No scenarios to render.")
		return nil
	}

	fmt.Printf("geomkit render → %s\n", cfg.Format)
	fmt.Printf("Scenarios: %d, Workers: %d\n", len(items), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		View:        mathutil.SceneView,
		Progress:    os.Stdout,
	}

	results := batch.Run(batchCfg, items)

	if !cmd.Bool("no-waves") {
		w := wave.Wave{Min: cfg.WaveMin, Max: cfg.WaveMax, Period: cfg.WavePeriod}
		rel, err := batch.RenderWaves(batchCfg, w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: wave chart: %v\n", err)
		} else {
			fmt.Printf("Waves: %s\n", filepath.Join(cfg.OutputDir, rel))
		}
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
			continue
		}
		fmt.Printf("  %-24s d=%.6g  %s ↔ %s\n", r.Name, r.Solution.Distance,
			formatVec3(r.Solution.OnA), formatVec3(r.Solution.OnB))
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return errors.Errorf("%d scenario(s) failed", len(failed))
	}
	return nil
}
