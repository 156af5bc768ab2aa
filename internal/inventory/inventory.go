// Package inventory summarizes the on-disk footprint of a resolved dataset.
// The capture workflow records file counts and total bytes when it closes
// out a task, so the summary mirrors what the search tool matched.
package inventory

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"datascout/pkg/types"
)

// Summary is the aggregate footprint of one dataset
type Summary struct {
	FileCount  int   `json:"file_count"`
	TotalBytes int64 `json:"total_bytes"`
}

// Summarize computes the footprint of a resolved dataset under sourceDir.
// File-based datasets are summed from the search tool's FileList snapshots;
// directory-based datasets are walked on disk. A NoDataset result yields an
// empty summary and no error.
func Summarize(sourceDir string, info types.DatasetInfo) (Summary, error) {
	var summary Summary

	switch {
	case info.Type == types.NoDataset:
		return summary, nil

	case info.Type.IsDirectory():
		datasetDir := filepath.Join(sourceDir, info.FileOrDirectoryName)
		err := filepath.WalkDir(datasetDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			summary.FileCount++
			summary.TotalBytes += fi.Size()
			return nil
		})
		if err != nil {
			return Summary{}, fmt.Errorf("error walking dataset directory %s: %w", datasetDir, err)
		}
		return summary, nil

	default:
		for _, entry := range info.FileList {
			// re-stat so the summary reflects the file as captured, not the
			// listing-time snapshot
			fi, err := os.Stat(filepath.Join(sourceDir, entry.Name))
			if err != nil {
				return Summary{}, fmt.Errorf("error reading dataset file %s: %w", entry.Name, err)
			}
			summary.FileCount++
			summary.TotalBytes += fi.Size()
		}
		return summary, nil
	}
}
