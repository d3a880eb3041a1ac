package batch

import (
	"encoding/json"
	"os"

	"geomkit/internal/mathutil"
	"geomkit/internal/scenario"
)

// ManifestEntry represents one scenario in the output manifest.
type ManifestEntry struct {
	Name     string        `json:"name"`
	Mode     scenario.Mode `json:"mode"`
	Image    string        `json:"image,omitempty"`
	OnA      mathutil.Vec3 `json:"on_a"`
	OnB      mathutil.Vec3 `json:"on_b"`
	Distance float64       `json:"distance"`
	Error    string        `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:     r.Name,
			Mode:     r.Mode,
			Image:    r.Image,
			OnA:      r.Solution.OnA,
			OnB:      r.Solution.OnB,
			Distance: r.Solution.Distance,
			Error:    r.Error,
		}
		if !r.Success {
			entries[i].Image = ""
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
