package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a .json, .yaml/.yml or .xml dataset file.
// A missing name defaults to the file stem, a missing kind to segment.
func Load(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var ds Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &ds)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &ds)
	case ".xml":
		err = unmarshalXML(raw, &ds)
	default:
		return Dataset{}, fmt.Errorf("dataset: unknown extension: %s", ext)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	if ds.Name == "" {
		base := filepath.Base(path)
		ds.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	switch ds.Kind {
	case "":
		ds.Kind = KindSegment
	case KindSegment, KindBar:
	default:
		return Dataset{}, fmt.Errorf("dataset: %s: unknown kind %q", path, ds.Kind)
	}

	if err := Validate(ds.Entries); err != nil {
		return Dataset{}, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return ds, nil
}

// LoadAll loads every dataset file in dir, sorted by file name.
// Files with other extensions are ignored.
func LoadAll(dir string) ([]Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml", ".xml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	sets := make([]Dataset, 0, len(names))
	for _, name := range names {
		ds, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		sets = append(sets, ds)
	}
	return sets, nil
}
