package search

import (
	"path/filepath"
	"strings"
)

// CharFix maps a single character to its replacement text in a filename stem
type CharFix struct {
	Find    rune
	Replace string
}

// DefaultAutoFixes returns the substitution table for characters that
// instruments put in filenames but the controlling database strips from
// dataset names. The slice is ordered; each entry is applied once per call.
func DefaultAutoFixes() []CharFix {
	return []CharFix{
		{Find: ' ', Replace: "_"},
		{Find: '%', Replace: "pct"},
		{Find: '.', Replace: "pt"},
	}
}

// AutoFixFilename normalizes fileName's stem using the given substitution
// table and returns the fixed name when the fixed stem matches datasetName
// (case-insensitive). When nothing needs fixing, or the fixed stem still
// doesn't match the dataset, the original fileName comes back unchanged —
// partially substituted names are never surfaced.
//
// The extension is captured once from the original fileName and reattached
// after every stem substitution. A mapped character sitting inside that
// extension is never treated as stem text on later iterations.
func AutoFixFilename(datasetName, fileName string, fixes []CharFix) string {
	if !containsAnyFix(fileName, fixes) {
		return fileName
	}

	ext := filepath.Ext(fileName)
	updated := fileName

	for _, fix := range fixes {
		stem := strings.TrimSuffix(updated, ext)
		if !strings.ContainsRune(stem, fix.Find) {
			continue
		}
		updated = strings.ReplaceAll(stem, string(fix.Find), fix.Replace) + ext
	}

	if strings.EqualFold(strings.TrimSuffix(updated, ext), datasetName) {
		return updated
	}
	return fileName
}

// applyFixes collapses every occurrence of each mapped character in stem
func applyFixes(stem string, fixes []CharFix) string {
	for _, fix := range fixes {
		stem = strings.ReplaceAll(stem, string(fix.Find), fix.Replace)
	}
	return stem
}

func containsAnyFix(name string, fixes []CharFix) bool {
	for _, fix := range fixes {
		if strings.ContainsRune(name, fix.Find) {
			return true
		}
	}
	return false
}
