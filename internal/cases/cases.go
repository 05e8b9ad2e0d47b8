// Package cases loads YAML case files describing expected outputs for the
// fixture operations, so a harness (or the eval subcommand) can replay them.
package cases

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suitey/go-example/arith"
	"github.com/suitey/go-example/combined"
)

// Case is a single expected input/output pair for one operation
type Case struct {
	Name string `yaml:"name,omitempty"`
	Op   string `yaml:"op"` // add, multiply, is_even, combined_add
	A    int32  `yaml:"a"`
	B    int32  `yaml:"b,omitempty"`

	// Expected result; Want for integer ops, WantBool for is_even
	Want     int32 `yaml:"want,omitempty"`
	WantBool bool  `yaml:"want_bool,omitempty"`
}

// File is the top-level structure of a case file
type File struct {
	Version string `yaml:"version,omitempty"`
	Cases   []Case `yaml:"cases"`
}

// Load reads and parses a case file from disk
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse case file: %w", err)
	}

	for i, c := range f.Cases {
		if c.Op == "" {
			return nil, fmt.Errorf("case %d: op is required", i)
		}
	}

	return &f, nil
}

// Run evaluates a single case and returns an error describing the mismatch,
// or an unknown-op error
func Run(c Case) error {
	switch c.Op {
	case "add":
		if got := arith.Add(c.A, c.B); got != c.Want {
			return fmt.Errorf("add(%d, %d) = %d, want %d", c.A, c.B, got, c.Want)
		}
	case "multiply":
		if got := arith.Multiply(c.A, c.B); got != c.Want {
			return fmt.Errorf("multiply(%d, %d) = %d, want %d", c.A, c.B, got, c.Want)
		}
	case "is_even":
		if got := arith.IsEven(c.A); got != c.WantBool {
			return fmt.Errorf("is_even(%d) = %v, want %v", c.A, got, c.WantBool)
		}
	case "combined_add":
		if got := combined.CombinedAdd(c.A, c.B); got != c.Want {
			return fmt.Errorf("combined_add(%d, %d) = %d, want %d", c.A, c.B, got, c.Want)
		}
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
	return nil
}
