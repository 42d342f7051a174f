// Package files discovers stored score datasets on disk.
package files

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"scorecli/internal/errors"
)

// DatasetInfo describes a discovered dataset file.
type DatasetInfo struct {
	Path       string    `json:"path"`
	Name       string    `json:"name"`
	NumRecords int       `json:"num_records,omitempty"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"mod_time"`
}

// datasetNamePattern matches conventional dataset names like
// student_scores_100.csv and captures the record count.
var datasetNamePattern = regexp.MustCompile(`^student_scores_(\d+)\.(csv|xlsx)$`)

// Discovery lists dataset files under a base directory.
type Discovery struct {
	baseDir string
}

// NewDiscovery creates a discovery over the given data directory.
func NewDiscovery(baseDir string) *Discovery {
	return &Discovery{baseDir: baseDir}
}

// ListDatasets returns all CSV and XLSX files in the data directory,
// newest first. Conventionally named datasets carry their record
// count.
func (d *Discovery) ListDatasets() ([]DatasetInfo, error) {
	entries, err := os.ReadDir(d.baseDir)
	if err != nil {
		return nil, errors.NewStorageError("failed to read data directory", err).WithContext("dir", d.baseDir)
	}

	var datasets []DatasetInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		ds := DatasetInfo{
			Path:    filepath.Join(d.baseDir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if m := datasetNamePattern.FindStringSubmatch(name); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				ds.NumRecords = n
			}
		}

		datasets = append(datasets, ds)
	}

	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].ModTime.After(datasets[j].ModTime)
	})

	return datasets, nil
}
