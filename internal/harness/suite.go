package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed suite_schema.cue
var suiteSchema string

// Suite is a file of fixed cases plus optional property check defaults.
type Suite struct {
	// Name identifies the suite in reports.
	Name string `yaml:"name" json:"name"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Cases are the fixed cases, run in file order.
	Cases []CaseSpec `yaml:"cases" json:"cases"`

	// Property overrides DefaultDomain for prop and check runs.
	Property *PropertySpec `yaml:"property,omitempty" json:"property,omitempty"`
}

// CaseSpec is a fixed case as written in a suite file.
// Pointer fields distinguish a missing value from zero.
type CaseSpec struct {
	Name   string `yaml:"name" json:"name"`
	A      *int32 `yaml:"a" json:"a"`
	B      *int32 `yaml:"b" json:"b"`
	Expect *int32 `yaml:"expect" json:"expect"`
}

// PropertySpec holds property check settings from a suite file.
type PropertySpec struct {
	Seed   *int64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Trials *int    `yaml:"trials,omitempty" json:"trials,omitempty"`
	Values []int32 `yaml:"values,omitempty" json:"values,omitempty"`
}

// LoadSuite reads a suite from a .yaml, .yml or .cue file.
//
// YAML is decoded strictly: unknown fields are errors. CUE files are unified
// with the #Suite schema, which also rejects unknown fields and out-of-range
// integers.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite *Suite
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		suite, err = decodeYAMLSuite(data)
	case ".cue":
		suite, err = decodeCUESuite(path, data)
	default:
		return nil, fmt.Errorf("unsupported suite file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validateSuite(suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return suite, nil
}

func decodeYAMLSuite(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &suite, nil
}

func decodeCUESuite(path string, data []byte) (*Suite, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(suiteSchema, cue.Filename("suite_schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile suite schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %w", err)
	}

	v = schema.LookupPath(cue.ParsePath("#Suite")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("suite does not match schema: %w", err)
	}

	var suite Suite
	if err := v.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return &suite, nil
}

// validateSuite checks required fields and normalizes case names to NFC.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	names := make(map[string]int, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		c.Name = norm.NFC.String(c.Name)
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if prev, ok := names[c.Name]; ok {
			return fmt.Errorf("cases[%d]: duplicate name %q (first used by cases[%d])", i, c.Name, prev)
		}
		names[c.Name] = i

		if c.A == nil {
			return fmt.Errorf("cases[%d]: a is required", i)
		}
		if c.B == nil {
			return fmt.Errorf("cases[%d]: b is required", i)
		}
		if c.Expect == nil {
			return fmt.Errorf("cases[%d]: expect is required", i)
		}
	}

	if p := s.Property; p != nil && p.Trials != nil && *p.Trials < 0 {
		return fmt.Errorf("property: trials must be non-negative")
	}
	return nil
}

// TestCases converts the suite's cases for RunFixedCases.
func (s *Suite) TestCases() []TestCase {
	cases := make([]TestCase, len(s.Cases))
	for i, c := range s.Cases {
		cases[i] = TestCase{
			Name:     c.Name,
			Input:    InputPair{A: *c.A, B: *c.B},
			Expected: *c.Expect,
		}
	}
	return cases
}

// Domain returns DefaultDomain with the suite's property settings applied.
func (s *Suite) Domain() Domain {
	d := DefaultDomain()
	if s.Property == nil {
		return d
	}
	if s.Property.Seed != nil {
		d.Seed = *s.Property.Seed
	}
	if s.Property.Trials != nil {
		d.Trials = *s.Property.Trials
	}
	return d.WithValues(s.Property.Values...)
}
