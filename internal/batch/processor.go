package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"geomkit/internal/mathutil"
	"geomkit/internal/plot"
	"geomkit/internal/scenario"
	"geomkit/internal/wave"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      string // file extension without the dot
	RenderSize  int
	Supersample int
	Workers     int
	View        mathutil.Mat3
	Progress    io.Writer // nil disables progress lines
}

// Result holds the outcome of processing one scenario.
type Result struct {
	Name     string
	Mode     scenario.Mode
	Image    string // path relative to OutputDir
	Solution scenario.Result
	Success  bool
	Error    string
}

func (cfg Config) options() plot.Options {
	return plot.Options{Size: cfg.RenderSize, Supersample: cfg.Supersample}
}

// Run solves and renders all scenarios using a worker pool.
// Results keep the order of items.
func Run(cfg Config, items []scenario.Scenario) []Result {
	total := len(items)
	results := make([]Result, total)
	var processed atomic.Int64

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.View == (mathutil.Mat3{}) {
		cfg.View = mathutil.SceneView
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	itemChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range itemChan {
				results[idx] = processScenario(cfg, idx, items[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range items {
		itemChan <- i
	}
	close(itemChan)

	wg.Wait()
	close(done)

	return results
}

// imageName builds a chart file name that stays inside OutputDir and is
// unique per position, whatever the scenario is called.
func imageName(idx int, name, format string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	return fmt.Sprintf("%02d-%s.%s", idx, safe, format)
}

func processScenario(cfg Config, idx int, s scenario.Scenario) Result {
	res := Result{Name: s.Name, Mode: s.Mode}

	sol, err := s.Solve()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Solution = sol

	img := plot.Scene(cfg.options(), s, sol, cfg.View)
	res.Image = imageName(idx, s.Name, cfg.Format)
	if err := plot.Save(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// RenderWaves draws every generator in wave.Generators over two periods of w
// and returns the chart's path relative to OutputDir.
func RenderWaves(cfg Config, w wave.Wave) (string, error) {
	names := []string{"sawtooth", "triangle", "square"}
	series := make([]plot.Series, 0, len(names))
	for _, name := range names {
		f := wave.Generators[name]
		series = append(series, plot.Series{
			Name:   name,
			Values: wave.Sample(func(t float64) float64 { return f(w, t) }, 0, 2*w.Period, 4*cfg.RenderSize),
		})
	}

	img := plot.Waves(cfg.options(), series)
	rel := fmt.Sprintf("waves.%s", cfg.Format)
	if err := plot.Save(filepath.Join(cfg.OutputDir, rel), img); err != nil {
		return "", err
	}
	return rel, nil
}
