package main

import (
	"fmt"
	"time"

	"datascout/internal/watch"
	"datascout/pkg/types"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var (
		source     string
		instrument string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <dataset>...",
		Short: "Wait for datasets to appear on a source directory",
		Long: `Watch a source directory and report each named dataset as soon as its
file or directory lands. Exits once every dataset has resolved, or when the
timeout elapses.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, className := resolveSource(source, instrument)
			if sourcePath == "" {
				return fmt.Errorf("a source directory is required (--source)")
			}
			class := types.ParseInstrumentClass(className)

			watcher, err := watch.New(sourcePath, cfg.WatchMode.IncludePatterns, cfg.WatchMode.EventBuffer)
			if err != nil {
				return err
			}
			defer watcher.Stop()

			tool, err := newSearchTool()
			if err != nil {
				return err
			}
			watcher.SetTool(tool)

			// the pending set dedupes, so count unique names or a repeated
			// argument could only exit via timeout
			seen := make(map[string]struct{}, len(args))
			for _, dataset := range args {
				if _, ok := seen[dataset]; ok {
					continue
				}
				seen[dataset] = struct{}{}
				watcher.Await(dataset, class)
			}

			if err := watcher.Start(); err != nil {
				return err
			}

			deadline := time.After(timeout)
			remaining := len(seen)
			for remaining > 0 {
				select {
				case event, ok := <-watcher.Events():
					if !ok {
						return fmt.Errorf("watcher stopped unexpectedly")
					}
					fmt.Println(successText(fmt.Sprintf("%s resolved: %s", event.Dataset, event.Info)))
					remaining--
				case <-deadline:
					return fmt.Errorf("timed out with %d dataset(s) still pending", watcher.PendingCount())
				}
			}

			fmt.Println(headerText("All datasets resolved"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source directory path or configured source name")
	cmd.Flags().StringVarP(&instrument, "instrument", "i", "", "instrument class for the awaited datasets")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Hour, "how long to wait before giving up")

	return cmd
}
