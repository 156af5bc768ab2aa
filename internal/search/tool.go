// Package search resolves a dataset name to the file, files, or directory
// that hold its raw data under an instrument share.
package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datascout/pkg/types"
)

// maxWarnedMatches caps how many filenames a multiple-match warning lists
const maxWarnedMatches = 5

// Tool locates a dataset's file or directory under a source directory using
// up to four ordered passes: exact then character-substituted comparison,
// over files then directories (or directories first, per instrument class).
//
// A Tool holds no mutable state across calls beyond its construction-time
// substitution table and trace flag; one instance is safe to reuse across
// sequential searches. Every call re-lists the directory — results are never
// cached.
type Tool struct {
	autoFixes []CharFix
	notifier  EventNotifier
	trace     bool
}

// New creates a search tool with the default substitution table, logging
// diagnostics through the application logger.
func New() *Tool {
	return NewWithNotifier(LogNotifier{})
}

// NewWithNotifier creates a search tool that reports diagnostics to the
// given notifier.
func NewWithNotifier(notifier EventNotifier) *Tool {
	return NewWithFixes(DefaultAutoFixes(), notifier)
}

// NewWithFixes creates a search tool with a custom substitution table. The
// table is fixed for the tool's lifetime.
func NewWithFixes(fixes []CharFix, notifier EventNotifier) *Tool {
	table := make([]CharFix, len(fixes))
	copy(table, fixes)
	return &Tool{
		autoFixes: table,
		notifier:  notifier,
	}
}

// SetTrace enables per-pass debug events
func (t *Tool) SetTrace(trace bool) {
	t.trace = trace
}

// AutoFixes returns a copy of the substitution table in use
func (t *Tool) AutoFixes() []CharFix {
	fixes := make([]CharFix, len(t.autoFixes))
	copy(fixes, t.autoFixes)
	return fixes
}

// AutoFixFilename runs the package-level AutoFixFilename with this tool's
// substitution table.
func (t *Tool) AutoFixFilename(datasetName, fileName string) string {
	return AutoFixFilename(datasetName, fileName, t.autoFixes)
}

// FindDatasetFile resolves a dataset that must be file-based. If the search
// falls through to a directory match, the result is overridden to NoDataset
// with the name cleared — directories are never acceptable from this entry
// point.
func (t *Tool) FindDatasetFile(sourceDirectoryPath, datasetName string) types.DatasetInfo {
	result := t.Search(sourceDirectoryPath, datasetName, true)

	if result.Type.IsDirectory() {
		result.Type = types.NoDataset
		result.FileOrDirectoryName = ""
		result.FileList = nil
	}
	return result
}

// FindDatasetFileOrDirectory resolves a dataset using the search-order
// preference of the given instrument class: directory-native families check
// directories first, everything else checks files first. Directory matches
// for the MALDI imaging and spot families are retagged to their specific
// dataset types.
func (t *Tool) FindDatasetFileOrDirectory(sourceDirectoryPath, datasetName string, class types.InstrumentClass) types.DatasetInfo {
	checkForFilesFirst := !class.DirectoryPreferred()

	result := t.Search(sourceDirectoryPath, datasetName, checkForFilesFirst)

	if result.Type.IsDirectory() {
		if refined, ok := class.DirectoryDatasetType(); ok {
			result.Type = refined
		}
	}
	return result
}

// Search runs the four-pass resolution. Odd passes compare names exactly;
// even passes compare after collapsing the substitution table's characters
// out of each candidate's stem. Pass 3 flips between file and directory
// matching so both are always attempted regardless of checkForFilesFirst.
// The first pass with any match wins.
//
// A missing source directory is reported through the notifier and returned
// as NoDataset with MatchedDirectory false. An exhausted search returns
// NoDataset with MatchedDirectory true (see types.DatasetInfo).
func (t *Tool) Search(sourceDirectoryPath, datasetName string, checkForFilesFirst bool) types.DatasetInfo {
	result := types.DatasetInfo{Type: types.NoDataset}

	if _, err := os.Stat(sourceDirectoryPath); err != nil {
		t.notifier.Error(fmt.Sprintf("source directory not found: %s", sourceDirectoryPath), err)
		return result
	}

	lookForDatasetFile := checkForFilesFirst

	for pass := 1; pass <= 4; pass++ {
		if pass == 3 {
			lookForDatasetFile = !lookForDatasetFile
		}
		replaceInvalidCharacters := pass%2 == 0

		if t.trace {
			t.notifier.Debug(fmt.Sprintf(
				"pass %d for %s: files=%t substitute=%t", pass, datasetName, lookForDatasetFile, replaceInvalidCharacters))
		}

		if lookForDatasetFile {
			matches, err := t.matchFiles(sourceDirectoryPath, datasetName, replaceInvalidCharacters)
			if err != nil {
				t.notifier.Error(fmt.Sprintf("error listing files in %s", sourceDirectoryPath), err)
				return result
			}
			if len(matches) == 0 {
				continue
			}

			result.FileList = matches
			if len(matches) == 1 {
				result.Type = types.SingleFile
				result.FileOrDirectoryName = matches[0].Name
			} else {
				result.Type = types.MultiFile
				result.FileOrDirectoryName = datasetName
				t.notifier.Warning(fmt.Sprintf(
					"multiple files match dataset %s: %s", datasetName, sampleNames(matches)))
			}
			return result
		}

		dirName, hasExt, err := t.matchDirectory(sourceDirectoryPath, datasetName, replaceInvalidCharacters)
		if err != nil {
			t.notifier.Error(fmt.Sprintf("error listing directories in %s", sourceDirectoryPath), err)
			return result
		}
		if dirName == "" {
			continue
		}

		if hasExt {
			result.Type = types.DirectoryExt
		} else {
			result.Type = types.DirectoryNoExt
		}
		result.FileOrDirectoryName = dirName
		result.MatchedDirectory = true

		if checkForFilesFirst {
			t.notifier.Status(fmt.Sprintf(
				"no file matched dataset %s; using directory %s", datasetName, dirName))
		}
		return result
	}

	// All four passes exhausted. The reference workflow reports
	// MatchedDirectory true here; callers detect "not found" via Type.
	result.MatchedDirectory = true
	return result
}

// matchFiles lists the source directory and keeps matching files. The exact
// pass uses dataset.* glob semantics, so the wildcard spans dots and a
// multi-extension name like dataset.raw.sav still matches; the substitution
// pass compares the single-extension stem after collapsing mapped characters.
func (t *Tool) matchFiles(sourceDirectoryPath, datasetName string, replaceInvalidCharacters bool) ([]types.FileEntry, error) {
	entries, err := os.ReadDir(sourceDirectoryPath)
	if err != nil {
		return nil, err
	}

	var matches []types.FileEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var matched bool
		if replaceInvalidCharacters {
			stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			matched = strings.EqualFold(applyFixes(stem, t.autoFixes), datasetName)
		} else {
			matched = nameMatchesGlob(entry.Name(), datasetName)
		}
		if !matched {
			continue
		}

		fileEntry := types.FileEntry{Name: entry.Name()}
		if info, infoErr := entry.Info(); infoErr == nil {
			fileEntry.Size = info.Size()
			fileEntry.ModTime = info.ModTime()
		}
		matches = append(matches, fileEntry)
	}
	return matches, nil
}

// matchDirectory returns the first subdirectory whose name, stripped of any
// trailing extension-like suffix, matches datasetName. hasExt reports
// whether the matched directory carried such a suffix.
func (t *Tool) matchDirectory(sourceDirectoryPath, datasetName string, replaceInvalidCharacters bool) (dirName string, hasExt bool, err error) {
	entries, err := os.ReadDir(sourceDirectoryPath)
	if err != nil {
		return "", false, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		stem := strings.TrimSuffix(entry.Name(), ext)
		if replaceInvalidCharacters {
			stem = applyFixes(stem, t.autoFixes)
		}
		if strings.EqualFold(stem, datasetName) {
			return entry.Name(), ext != "", nil
		}
	}
	return "", false, nil
}

// nameMatchesGlob reports whether name matches the dataset.* listing
// (case-insensitive): the bare dataset name, or the name plus any dotted
// suffix, however many dots it contains.
func nameMatchesGlob(name, datasetName string) bool {
	if strings.EqualFold(name, datasetName) {
		return true
	}
	prefix := datasetName + "."
	return len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix)
}

func sampleNames(matches []types.FileEntry) string {
	names := make([]string, 0, maxWarnedMatches)
	for i, m := range matches {
		if i >= maxWarnedMatches {
			break
		}
		names = append(names, m.Name)
	}
	if len(matches) > maxWarnedMatches {
		return fmt.Sprintf("%s (and %d more)", strings.Join(names, ", "), len(matches)-maxWarnedMatches)
	}
	return strings.Join(names, ", ")
}
