package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"datascout/internal/capture"
	"datascout/pkg/types"

	"github.com/spf13/cobra"
)

// NewFindCmd creates the find command
func NewFindCmd() *cobra.Command {
	var (
		source     string
		instrument string
		filesOnly  bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "find <dataset>",
		Short: "Resolve a dataset name to its file or directory",
		Long: `Find the file, files, or directory holding a dataset's raw data under a
source directory. The source may be a configured source name or a path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset := args[0]
			sourcePath, className := resolveSource(source, instrument)
			if sourcePath == "" {
				return fmt.Errorf("a source directory is required (--source)")
			}

			tool, err := newSearchTool()
			if err != nil {
				return err
			}

			resolver := capture.NewResolver(tool)
			result, err := resolver.Resolve(types.MapParams{
				capture.ParamDataset:         dataset,
				capture.ParamSourcePath:      sourcePath,
				capture.ParamInstrumentClass: className,
				capture.ParamFilesOnly:       strconv.FormatBool(filesOnly),
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source directory path or configured source name")
	cmd.Flags().StringVarP(&instrument, "instrument", "i", "", "instrument class (overrides the source's configured class)")
	cmd.Flags().BoolVar(&filesOnly, "files-only", false, "never accept a directory match")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the result as JSON")

	return cmd
}

func printResult(result capture.Result) {
	if result.Info.Type == types.NoDataset {
		fmt.Println(warningText(fmt.Sprintf("Dataset %s not found", result.Dataset)))
		return
	}

	fmt.Println(headerText(fmt.Sprintf("Dataset %s", result.Dataset)))
	fmt.Println(successText(fmt.Sprintf("  %s: %s", result.Info.Type, result.Info.FileOrDirectoryName)))

	if result.Info.Type == types.MultiFile {
		for _, entry := range result.Info.FileList {
			fmt.Println(infoText(fmt.Sprintf("    %s (%d bytes)", entry.Name, entry.Size)))
		}
	}

	fmt.Println(infoText(fmt.Sprintf("  %d file(s), %d bytes", result.Summary.FileCount, result.Summary.TotalBytes)))
}
