package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/resultspec/packages/scenario"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	Summary  JSONSummary `json:"summary"`
	Runs     []JSONRun   `json:"runs"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

// JSONSummary represents the check summary
type JSONSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// JSONRun represents a single scenario run
type JSONRun struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	File     string      `json:"file"`
	Passed   int         `json:"passed"`
	Failed   int         `json:"failed"`
	Duration float64     `json:"duration"`
	Checks   []JSONCheck `json:"checks"`
	Error    string      `json:"error,omitempty"`
}

// JSONCheck represents a single check outcome
type JSONCheck struct {
	Family   string `json:"family"`
	Target   string `json:"target"`
	Passed   bool   `json:"passed"`
	Message  string `json:"message,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// JSONFormatter formats scenario runs as JSON. Runs accumulate and are
// written as one document by FormatSummary.
type JSONFormatter struct {
	writer io.Writer
	runs   []JSONRun
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		runs:   make([]JSONRun, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatRun(run *scenario.RunResult) {
	jr := JSONRun{
		ID:       run.ID,
		Name:     run.Name,
		File:     run.File,
		Passed:   run.Passed,
		Failed:   run.Failed,
		Duration: float64(run.Duration.Milliseconds()),
	}

	for _, o := range run.Outcomes {
		jr.Checks = append(jr.Checks, JSONCheck{
			Family:   o.Family,
			Target:   o.Target,
			Passed:   o.Passed,
			Message:  o.Message,
			Expected: o.Expected,
			Actual:   o.Actual,
		})
	}

	f.runs = append(f.runs, jr)
}

func (f *JSONFormatter) FormatError(err error) {
	f.runs = append(f.runs, JSONRun{Error: err.Error()})
}

func (f *JSONFormatter) FormatHeader(string) {}

func (f *JSONFormatter) FormatSummary(passed, failed int, duration time.Duration) {
	out := JSONOutput{
		Summary: JSONSummary{
			Total:  passed + failed,
			Passed: passed,
			Failed: failed,
		},
		Runs:     f.runs,
		Duration: float64(duration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}
