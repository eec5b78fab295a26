package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Check is a single declarative assertion against the recorded result.
type Check struct {
	// Family selects the assertion builder: created, file, redirect,
	// content or json.
	Family string `yaml:"family"`

	// Assert names the operation within the family, e.g. "location",
	// "route", "contents", "path", "schema".
	Assert string `yaml:"assert"`

	// Key is the route-value key for route-value checks.
	Key string `yaml:"key,omitempty"`

	// Path is the gjson path for json path checks.
	Path string `yaml:"path,omitempty"`

	// Value is the expected value.
	Value any `yaml:"value,omitempty"`

	// Schema is an inline JSON schema document for schema checks.
	Schema string `yaml:"schema,omitempty"`

	// SchemaFile is a path to a JSON schema document, relative to the
	// scenario file. It is ignored when Schema is set.
	SchemaFile string `yaml:"schema_file,omitempty"`
}

// Scenario is one parsed expectation file.
type Scenario struct {
	// Name describes the scenario in reports.
	Name string `yaml:"name"`

	// Context is the failure-context prefix threaded into every
	// assertion, e.g. "when calling GetItem expected".
	Context string `yaml:"context,omitempty"`

	// Result is the path of the recorded result JSON file, relative
	// to the scenario file.
	Result string `yaml:"result"`

	// Checks are applied to the recorded result in order.
	Checks []Check `yaml:"checks"`
}

var supportedAsserts = map[string]map[string]bool{
	"created": {
		"location":    true,
		"action":      true,
		"controller":  true,
		"route":       true,
		"route-value": true,
	},
	"redirect": {
		"location":    true,
		"action":      true,
		"controller":  true,
		"route":       true,
		"route-value": true,
		"permanent":   true,
		"temporary":   true,
	},
	"file": {
		"contents":      true,
		"stream":        true,
		"path":          true,
		"download-name": true,
		"content-type":  true,
	},
	"content": {
		"body":         true,
		"content-type": true,
		"status":       true,
	},
	"json": {
		"status": true,
		"path":   true,
		"schema": true,
	},
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot parse scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &s, nil
}

// Validate checks the scenario for structural problems before running.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if s.Result == "" {
		return fmt.Errorf("scenario has no result record")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("scenario has no checks")
	}

	for i, c := range s.Checks {
		asserts, ok := supportedAsserts[c.Family]
		if !ok {
			return fmt.Errorf("check %d: unknown family %q", i+1, c.Family)
		}
		if !asserts[c.Assert] {
			return fmt.Errorf("check %d: family %q has no %q assert", i+1, c.Family, c.Assert)
		}
		if c.Assert == "route-value" && c.Key == "" {
			return fmt.Errorf("check %d: route-value check needs a key", i+1)
		}
		if c.Family == "json" && c.Assert == "path" && c.Path == "" {
			return fmt.Errorf("check %d: json path check needs a path", i+1)
		}
		if c.Family == "json" && c.Assert == "schema" && c.Schema == "" && c.SchemaFile == "" {
			return fmt.Errorf("check %d: schema check needs a schema or schema_file", i+1)
		}
	}

	return nil
}

// Target describes what a check inspects, for reports.
func (c *Check) Target() string {
	switch {
	case c.Path != "":
		return c.Assert + " " + c.Path
	case c.Key != "":
		return c.Assert + " " + c.Key
	default:
		return c.Assert
	}
}
