// Package output provides formatters for displaying scenario results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Each formatter implements the Formatter interface. Formats that
// accumulate results write them out in FormatSummary.
package output
