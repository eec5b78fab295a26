package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/resultspec/packages/scenario"
	"github.com/fatih/color"
)

// Formatter renders scenario runs for one output format.
type Formatter interface {
	FormatRun(run *scenario.RunResult)
	FormatError(err error)
	FormatHeader(version string)
	FormatSummary(passed, failed int, duration time.Duration)
}

// truncate shortens long expected/actual values for display.
func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatRun(run *scenario.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s %s\n\n", bold(run.Name), cyan("("+run.File+")"))

	for _, o := range run.Outcomes {
		symbol := green("✓")
		if !o.Passed {
			symbol = red("✗")
		}

		fmt.Fprintf(f.writer, "  %s %s %s\n", symbol, o.Family, o.Target)

		if !o.Passed {
			fmt.Fprintf(f.writer, "    %s %s\n", red("→"), o.Message)
			if f.verbose {
				fmt.Fprintf(f.writer, "      Expected: %s\n", truncate(o.Expected, 100))
				fmt.Fprintf(f.writer, "      Actual:   %s\n", truncate(o.Actual, 100))
			}
		}
	}

	if f.verbose {
		fmt.Fprintf(f.writer, "\n  run %s in %dms\n", run.ID, run.Duration.Milliseconds())
	}
}

func (f *ConsoleFormatter) FormatSummary(passed, failed int, duration time.Duration) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(f.writer, "\nChecks: ")
	if passed > 0 {
		fmt.Fprintf(f.writer, "%s, ", green(fmt.Sprintf("%d passed", passed)))
	}
	if failed > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", failed)))
	}
	fmt.Fprintf(f.writer, "%d total\n", passed+failed)
	fmt.Fprintf(f.writer, "Time:   %dms\n\n", duration.Milliseconds())
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("resultspec"), version)
}
