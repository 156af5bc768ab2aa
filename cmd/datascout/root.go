package main

import (
	"fmt"

	"datascout/internal/config"
	"datascout/internal/log"
	"datascout/internal/search"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	debugMode bool
	traceMode bool
	cfg       *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datascout",
		Short: "Locate instrument datasets on storage shares",
		Long: `datascout resolves dataset names to the files or directories that hold
their raw data on an instrument share, tolerating the filename character
substitutions instruments are fond of (spaces, percent signs, stray dots)
and honoring each instrument class's file-vs-directory preference.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}
			if configErr != nil {
				fmt.Println(warningText(fmt.Sprintf("Warning: %v", configErr)))
				fmt.Println(infoText("Using default settings."))
				cfg = config.New()
			}

			log.SetDebug(debugMode || cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/datascout/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "emit per-pass search diagnostics")

	rootCmd.AddCommand(NewFindCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewClassesCmd())

	return rootCmd
}

// newSearchTool builds the search tool from config plus the --trace flag
func newSearchTool() (*search.Tool, error) {
	var tool *search.Tool
	if len(cfg.Search.AutoFixes) > 0 {
		fixes := make([]search.CharFix, 0, len(cfg.Search.AutoFixes))
		for _, fix := range cfg.Search.AutoFixes {
			runes := []rune(fix.Find)
			if len(runes) != 1 {
				return nil, fmt.Errorf("auto_fix find must be one character, got %q", fix.Find)
			}
			fixes = append(fixes, search.CharFix{Find: runes[0], Replace: fix.Replace})
		}
		tool = search.NewWithFixes(fixes, search.LogNotifier{})
	} else {
		tool = search.New()
	}

	tool.SetTrace(traceMode || cfg.Search.Trace)
	return tool, nil
}

// resolveSource maps --source to a path and instrument class; the flag may
// name a configured source or be a literal directory path.
func resolveSource(source, instrument string) (path string, class string) {
	if src, ok := cfg.SourceByName(source); ok {
		path = src.Path
		class = src.InstrumentClass
	} else {
		path = source
	}
	if instrument != "" {
		class = instrument
	}
	return path, class
}
