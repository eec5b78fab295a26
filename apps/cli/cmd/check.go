package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/resultspec/packages/history"
	"github.com/abdul-hamid-achik/resultspec/packages/output"
	"github.com/abdul-hamid-achik/resultspec/packages/scenario"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|directory>...",
	Short: "Run checks from scenario files",
	Long: `Run the checks declared in .spec.yaml scenario files against their
recorded results.

Examples:
  resultspec check item.spec.yaml
  resultspec check ./scenarios/
  resultspec check ./scenarios/ --output json --output-file report.json
  resultspec check ./scenarios/ --watch
  resultspec check ./scenarios/ --history sqlite:./runs.db`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	verboseFlag    bool
	noColorFlag    bool
	bailFlag       bool
	outputFlag     string
	outputFileFlag string
	watchFlag      bool
	historyFlag    string
)

func init() {
	checkCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("RESULTSPEC_VERBOSE", false), "Verbose output (env: RESULTSPEC_VERBOSE)")
	checkCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("RESULTSPEC_NO_COLOR", false), "Disable colored output (env: RESULTSPEC_NO_COLOR)")
	checkCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("RESULTSPEC_BAIL", false), "Stop on first failing scenario (env: RESULTSPEC_BAIL)")
	checkCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("RESULTSPEC_OUTPUT", "console"), "Output format: console, json (env: RESULTSPEC_OUTPUT)")
	checkCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("RESULTSPEC_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: RESULTSPEC_OUTPUT_FILE)")
	checkCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and re-run checks")
	checkCmd.Flags().StringVar(&historyFlag, "history", getEnvString("RESULTSPEC_HISTORY", ""), "Record runs in a history database, e.g. sqlite:./runs.db (env: RESULTSPEC_HISTORY)")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func newFormatter() (output.Formatter, func(), error) {
	cleanup := func() {}

	var w *os.File
	if outputFileFlag != "" {
		var err error
		w, err = os.Create(outputFileFlag)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot create output file: %w", err)
		}
		cleanup = func() { _ = w.Close() }
	}

	switch strings.ToLower(outputFlag) {
	case "json":
		opts := []output.JSONOption{}
		if w != nil {
			opts = append(opts, output.JSONWithWriter(w))
		}
		return output.NewJSONFormatter(opts...), cleanup, nil
	default: // "console"
		opts := []output.ConsoleOption{
			output.WithVerbose(verboseFlag),
			output.WithNoColor(noColorFlag),
		}
		if w != nil {
			opts = append(opts, output.WithWriter(w))
		}
		return output.NewConsoleFormatter(opts...), cleanup, nil
	}
}

func checkCommand(cmd *cobra.Command, args []string) error {
	formatter, cleanup, err := newFormatter()
	if err != nil {
		return err
	}
	defer cleanup()

	formatter.FormatHeader(version)

	var store *history.Store
	if historyFlag != "" {
		store, err = history.Open(historyFlag)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	files, err := collectFiles(args)
	if err != nil {
		formatter.FormatError(err)
		return err
	}

	if len(files) == 0 {
		err := fmt.Errorf("no .spec.yaml files found")
		formatter.FormatError(err)
		return err
	}

	runChecks := func() (int, int, time.Duration) {
		totalPassed := 0
		totalFailed := 0
		start := time.Now()

		for _, file := range files {
			run, err := scenario.RunFile(file)
			if err != nil {
				formatter.FormatError(err)
				totalFailed++
				if bailFlag {
					break
				}
				continue
			}

			formatter.FormatRun(run)
			totalPassed += run.Passed
			totalFailed += run.Failed

			if store != nil {
				if err := store.Record(run); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to record run: %v\n", err)
				}
			}

			if bailFlag && run.Failed > 0 {
				break
			}
		}

		return totalPassed, totalFailed, time.Since(start)
	}

	totalPassed, totalFailed, duration := runChecks()
	formatter.FormatSummary(totalPassed, totalFailed, duration)

	if !watchFlag {
		if totalFailed > 0 {
			os.Exit(ExitCheckFailure)
		}
		return nil
	}

	// Watch mode: re-run when scenarios or records change.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				formatter.FormatError(fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			watchedDirs[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Write) && isWatchedFile(event.Name) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running checks...\n\n", event.Name)

					passed, failed, d := runChecks()
					formatter.FormatSummary(passed, failed, d)

					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			formatter.FormatError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && isScenarioFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			if isScenarioFile(arg) {
				files = append(files, arg)
			}
		}
	}

	return files, nil
}

func isScenarioFile(path string) bool {
	return strings.HasSuffix(path, ".spec.yaml") || strings.HasSuffix(path, ".spec.yml")
}

// isWatchedFile reports whether a change to the file should trigger a
// re-run: scenarios, recorded results and schema documents all count.
func isWatchedFile(path string) bool {
	if isScenarioFile(path) {
		return true
	}
	ext := filepath.Ext(path)
	return ext == ".json" || ext == ".yaml" || ext == ".yml"
}
