package jobfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scmforge/internal/synth"
)

// Load loads and parses a YAML job file from the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	return &f, nil
}

// Apply runs the file's checkouts against the synthesis context, in order.
// The first failing entry stops the run.
func (f *File) Apply(ctx *synth.Context) error {
	for i, entry := range f.SCM {
		cfg, err := entry.config()
		if err != nil {
			return fmt.Errorf("scm[%d]: %w", i, err)
		}

		if err := ctx.Add(cfg, nil); err != nil {
			return fmt.Errorf("scm[%d]: %w", i, err)
		}
	}

	return nil
}

// StringOrList accepts either a single string or a sequence of strings.
type StringOrList []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrList.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrList{str}
		} else {
			*s = StringOrList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or sequence, got %v", node.Kind)
	}
}
