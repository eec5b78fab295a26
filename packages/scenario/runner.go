package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/resultspec/packages/check"
	"github.com/abdul-hamid-achik/resultspec/packages/fail"
	"github.com/abdul-hamid-achik/resultspec/packages/result"
	"github.com/google/uuid"
)

// Outcome is the result of one check.
type Outcome struct {
	Family   string
	Assert   string
	Target   string
	Passed   bool
	Message  string
	Expected string
	Actual   string
}

// RunResult aggregates the outcomes of one scenario file.
type RunResult struct {
	ID       string
	File     string
	Name     string
	Passed   int
	Failed   int
	Duration time.Duration
	Outcomes []Outcome
}

// RunFile loads a scenario file, loads its recorded result and applies
// every check. Problems with the files themselves are returned as
// errors; failed checks are reported through the outcomes.
func RunFile(path string) (*RunResult, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Run(s, filepath.Dir(path), path)
}

// Run applies a scenario's checks to its recorded result. Relative
// paths inside the scenario resolve against baseDir.
func Run(s *Scenario, baseDir, file string) (*RunResult, error) {
	recordPath := filepath.Join(baseDir, s.Result)
	data, err := os.ReadFile(recordPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read result record: %w", err)
	}

	res, err := result.FromRecord(data)
	if err != nil {
		return nil, fmt.Errorf("bad result record %s: %w", recordPath, err)
	}

	run := &RunResult{
		ID:   uuid.New().String(),
		File: file,
		Name: s.Name,
	}

	start := time.Now()
	for _, c := range s.Checks {
		apply, err := compile(&c, res, s.Context, baseDir)
		if err != nil {
			return nil, err
		}

		outcome := Outcome{
			Family: c.Family,
			Assert: c.Assert,
			Target: c.Target(),
			Passed: true,
		}
		if failure := fail.Protect(apply); failure != nil {
			outcome.Passed = false
			outcome.Message = failure.Error()
			outcome.Expected = failure.Expectation
			outcome.Actual = failure.Actual
		}

		if outcome.Passed {
			run.Passed++
		} else {
			run.Failed++
		}
		run.Outcomes = append(run.Outcomes, outcome)
	}
	run.Duration = time.Since(start)

	return run, nil
}

// compile turns a declarative check into a closure over the fluent
// assertion it stands for.
func compile(c *Check, res result.Result, prefix, baseDir string) (func(), error) {
	opts := []check.Option{}
	if prefix != "" {
		opts = append(opts, check.WithContext(prefix))
	}

	switch c.Family {
	case "created":
		b := check.Created(res, opts...)
		switch c.Assert {
		case "location":
			return func() { b.AtLocation(asString(c.Value)) }, nil
		case "action":
			return func() { b.AtAction(asString(c.Value)) }, nil
		case "controller":
			return func() { b.AtController(asString(c.Value)) }, nil
		case "route":
			return func() { b.AtRoute(asString(c.Value)) }, nil
		case "route-value":
			return func() { b.ContainingRouteValue(c.Key, c.Value) }, nil
		}

	case "redirect":
		b := check.Redirect(res, opts...)
		switch c.Assert {
		case "location":
			return func() { b.To(asString(c.Value)) }, nil
		case "action":
			return func() { b.ToAction(asString(c.Value)) }, nil
		case "controller":
			return func() { b.ToController(asString(c.Value)) }, nil
		case "route":
			return func() { b.ToRoute(asString(c.Value)) }, nil
		case "route-value":
			return func() { b.ContainingRouteValue(c.Key, c.Value) }, nil
		case "permanent":
			return func() { b.Permanent() }, nil
		case "temporary":
			return func() { b.Temporary() }, nil
		}

	case "file":
		b := check.File(res, opts...)
		switch c.Assert {
		case "contents":
			return func() { b.WithContents([]byte(asString(c.Value))) }, nil
		case "stream":
			return func() { b.WithStream(bytes.NewReader([]byte(asString(c.Value)))) }, nil
		case "path":
			return func() { b.WithPath(asString(c.Value)) }, nil
		case "download-name":
			return func() { b.WithDownloadName(asString(c.Value)) }, nil
		case "content-type":
			return func() { b.WithContentType(asString(c.Value)) }, nil
		}

	case "content":
		b := check.Content(res, opts...)
		switch c.Assert {
		case "body":
			return func() { b.WithBody(asString(c.Value)) }, nil
		case "content-type":
			return func() { b.WithContentType(asString(c.Value)) }, nil
		case "status":
			code, err := asInt(c.Value)
			if err != nil {
				return nil, fmt.Errorf("status check: %w", err)
			}
			return func() { b.WithStatusCode(code) }, nil
		}

	case "json":
		b := check.JSON(res, opts...)
		switch c.Assert {
		case "status":
			code, err := asInt(c.Value)
			if err != nil {
				return nil, fmt.Errorf("status check: %w", err)
			}
			return func() { b.WithStatusCode(code) }, nil
		case "path":
			return func() { b.WithPath(c.Path, c.Value) }, nil
		case "schema":
			schema := c.Schema
			if schema == "" {
				data, err := os.ReadFile(filepath.Join(baseDir, c.SchemaFile))
				if err != nil {
					return nil, fmt.Errorf("cannot read schema file: %w", err)
				}
				schema = string(data)
			}
			return func() { b.MatchingSchema(schema) }, nil
		}
	}

	// Unreachable after Validate, kept as a guard for direct Run calls.
	return nil, fmt.Errorf("unsupported check %s/%s", c.Family, c.Assert)
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}
