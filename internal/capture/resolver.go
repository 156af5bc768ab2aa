// Package capture bridges workflow task parameters and the dataset search
// tool. A capture task hands the agent a dataset name, a source path, and an
// instrument class; the resolver locates the dataset and sizes it up.
package capture

import (
	"fmt"
	"strconv"

	"datascout/internal/inventory"
	"datascout/internal/search"
	"datascout/pkg/types"
)

// Task parameter names as supplied by the controlling workflow
const (
	ParamDataset         = "Dataset"
	ParamSourcePath      = "Source_Path"
	ParamInstrumentClass = "Instrument_Class"
	ParamFilesOnly       = "Files_Only"
)

// Result is the outcome of resolving one capture task
type Result struct {
	Dataset string                `json:"dataset"`
	Class   types.InstrumentClass `json:"instrument_class"`
	Info    types.DatasetInfo     `json:"info"`
	Summary inventory.Summary     `json:"summary"`
}

// Resolver locates datasets for capture tasks
type Resolver struct {
	tool *search.Tool
}

// NewResolver creates a resolver around the given search tool
func NewResolver(tool *search.Tool) *Resolver {
	return &Resolver{tool: tool}
}

// Resolve reads the task parameters, runs the search, and summarizes the
// match. Missing Dataset or Source_Path parameters are errors; a dataset
// that simply isn't on the share yet is not — the Result carries a
// NoDataset info and an empty summary.
func (r *Resolver) Resolve(params types.TaskParams) (Result, error) {
	dataset, ok := params.Get(ParamDataset)
	if !ok || dataset == "" {
		return Result{}, fmt.Errorf("task parameter %s is required", ParamDataset)
	}

	sourcePath, ok := params.Get(ParamSourcePath)
	if !ok || sourcePath == "" {
		return Result{}, fmt.Errorf("task parameter %s is required", ParamSourcePath)
	}

	class := types.ParseInstrumentClass(params.GetDefault(ParamInstrumentClass, string(types.InstrumentUnknown)))
	filesOnly, _ := strconv.ParseBool(params.GetDefault(ParamFilesOnly, "false"))

	var info types.DatasetInfo
	if filesOnly {
		info = r.tool.FindDatasetFile(sourcePath, dataset)
	} else {
		info = r.tool.FindDatasetFileOrDirectory(sourcePath, dataset, class)
	}

	summary, err := inventory.Summarize(sourcePath, info)
	if err != nil {
		return Result{}, fmt.Errorf("error summarizing dataset %s: %w", dataset, err)
	}

	return Result{
		Dataset: dataset,
		Class:   class,
		Info:    info,
		Summary: summary,
	}, nil
}
