package main

import (
	"fmt"

	"datascout/pkg/types"

	"github.com/spf13/cobra"
)

// NewClassesCmd creates the classes command
func NewClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List known instrument classes and their search preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(headerText("Instrument classes"))
			for _, class := range types.KnownInstrumentClasses() {
				preference := "files first"
				if class.DirectoryPreferred() {
					preference = "directories first"
				}
				line := fmt.Sprintf("  %-24s %s", string(class), preference)
				if refined, ok := class.DirectoryDatasetType(); ok {
					line += fmt.Sprintf(" (directory matches tagged %s)", refined)
				}
				fmt.Println(infoText(line))
			}

			tool, err := newSearchTool()
			if err != nil {
				return err
			}
			fmt.Println(headerText("Filename substitutions"))
			for _, fix := range tool.AutoFixes() {
				fmt.Println(infoText(fmt.Sprintf("  %q -> %q", fix.Find, fix.Replace)))
			}
			return nil
		},
	}
}
