package types

import (
	"fmt"
	"strings"
	"time"
)

// DatasetType describes how a dataset is represented on the storage
// filesystem once resolved.
type DatasetType int

const (
	// NoDataset means nothing matched (or a files-only caller hit a directory)
	NoDataset DatasetType = iota
	// SingleFile means exactly one file matched
	SingleFile
	// MultiFile means two or more files share the dataset's base name
	MultiFile
	// DirectoryNoExt means a directory without an extension-like suffix matched
	DirectoryNoExt
	// DirectoryExt means a directory with an extension-like suffix matched
	DirectoryExt
	// BrukerImaging is a directory match retagged for MALDI imaging instruments
	BrukerImaging
	// BrukerSpot is a directory match retagged for MALDI spot instruments
	BrukerSpot
)

// String returns a human-readable representation of the dataset type
func (d DatasetType) String() string {
	switch d {
	case NoDataset:
		return "None"
	case SingleFile:
		return "File"
	case MultiFile:
		return "MultiFile"
	case DirectoryNoExt:
		return "DirectoryNoExt"
	case DirectoryExt:
		return "DirectoryExt"
	case BrukerImaging:
		return "BrukerImaging"
	case BrukerSpot:
		return "BrukerSpot"
	default:
		return fmt.Sprintf("DatasetType(%d)", int(d))
	}
}

// IsDirectory reports whether the type represents a directory-based dataset
func (d DatasetType) IsDirectory() bool {
	switch d {
	case DirectoryNoExt, DirectoryExt, BrukerImaging, BrukerSpot:
		return true
	default:
		return false
	}
}

// FileEntry is a read-only snapshot of a matched file's metadata.
// It holds no open handle; the file may disappear after the listing.
type FileEntry struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// DatasetInfo is the outcome of one dataset search. It is constructed fresh
// per call and populated exactly once.
//
// Invariants: Type == SingleFile iff len(FileList) == 1; Type == MultiFile
// iff len(FileList) > 1; directory types carry an empty FileList and a
// directory name in FileOrDirectoryName; Type == NoDataset means nothing
// usable matched.
type DatasetInfo struct {
	Type                DatasetType `json:"type"`
	FileOrDirectoryName string      `json:"file_or_directory_name"`
	FileList            []FileEntry `json:"file_list,omitempty"`

	// MatchedDirectory is true when the match came from a directory pass.
	// Quirk inherited from the reference workflow: a fully exhausted search
	// also reports true, so test Type == NoDataset to detect "not found",
	// never this field alone.
	MatchedDirectory bool `json:"matched_directory"`
}

// String returns a one-line summary suitable for log messages
func (d DatasetInfo) String() string {
	switch d.Type {
	case NoDataset:
		return "no dataset match"
	case MultiFile:
		names := make([]string, 0, len(d.FileList))
		for _, f := range d.FileList {
			names = append(names, f.Name)
		}
		return fmt.Sprintf("%s: %s (%s)", d.Type, d.FileOrDirectoryName, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s: %s", d.Type, d.FileOrDirectoryName)
	}
}
