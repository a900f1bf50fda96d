// Package scenario runs assertion chains described in YAML files through
// the real dispatcher, and renders message templates for previewing.
//
// A scenario file looks like:
//
//	name: equality
//	scenarios:
//	  - name: five is not four
//	    value: 5
//	    steps: [to, not, {equal: [4]}]
//	  - name: reports the path
//	    value: {parent: {age: 5}}
//	    path: [parent, age]
//	    steps: [to, {equal: ["5"]}]
//	    expect: fail
//	    message: |-
//	      Expected parent.age to strictly equal "5" (string)
//
//	      parent.age: '5' (number)
//
// A step is a word or method name, or a single-key map from a method name to
// its arguments. A sequence holds the argument list, so a single list
// argument is written as [[1, 2]].
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Outcome is what a scenario expects from its chain.
type Outcome string

const (
	OutcomePass Outcome = "pass"
	OutcomeFail Outcome = "fail"
)

// File is one scenario file.
type File struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Scenarios   []Scenario `yaml:"scenarios"`

	// Source is the path the file was loaded from.
	Source string `yaml:"-"`
}

// Scenario is one assertion chain and its expected outcome.
type Scenario struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
	// Path navigates from Value through a proxy, so failures report it.
	Path []any `yaml:"path,omitempty"`
	// DisplayName replaces the rendered value in messages.
	DisplayName string  `yaml:"display_name,omitempty"`
	Steps       []Step  `yaml:"steps"`
	Expect      Outcome `yaml:"expect,omitempty"`
	// Message must equal the failure message exactly.
	Message string `yaml:"message,omitempty"`
	// Contains lists substrings the failure message must hold.
	Contains []string `yaml:"contains,omitempty"`
}

// Expected returns the declared outcome, defaulting to pass.
func (s Scenario) Expected() Outcome {
	if s.Expect == "" {
		return OutcomePass
	}
	return s.Expect
}

// Step is a chain word or a method call.
type Step struct {
	Name string
	Args []any
	// Call is set when the step was written as a map, forcing a method call
	// even without arguments.
	Call bool
}

func (s Step) String() string {
	if !s.Call {
		return s.Name
	}
	return fmt.Sprintf("%s%v", s.Name, s.Args)
}

// UnmarshalYAML accepts "name" or {name: args}.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Name = node.Value
		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: a step map must have exactly one method", node.Line)
		}
		s.Name = node.Content[0].Value
		s.Call = true

		args := node.Content[1]
		switch {
		case args.Kind == yaml.SequenceNode:
			return args.Decode(&s.Args)
		case args.Tag == "!!null":
			s.Args = nil
			return nil
		default:
			var arg any
			if err := args.Decode(&arg); err != nil {
				return err
			}
			s.Args = []any{arg}
			return nil
		}
	}

	return fmt.Errorf("line %d: a step must be a name or a single-key map", node.Line)
}

// MarshalYAML writes the step back in the form UnmarshalYAML reads.
func (s Step) MarshalYAML() (any, error) {
	if !s.Call {
		return s.Name, nil
	}
	args := s.Args
	if args == nil {
		args = []any{}
	}
	return map[string]any{s.Name: args}, nil
}
