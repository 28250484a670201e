package batch

import (
	"encoding/json"
	"os"

	"github.com/dianabombi/student-advisor-sub002/internal/dataset"
)

// ManifestEntry represents one chart in the output manifest.
type ManifestEntry struct {
	Name        string       `json:"name"`
	Title       string       `json:"title,omitempty"`
	Kind        dataset.Kind `json:"kind"`
	Descriptors int          `json:"descriptors"`
	Files       []string     `json:"files"`
}

// WriteManifest writes manifest.json for every successfully rendered chart.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:        r.Name,
			Title:       r.Title,
			Kind:        r.Kind,
			Descriptors: r.Descriptors,
			Files:       r.Files,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
