package scenario

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/expect/internal/errors"
)

// Parse decodes a scenario file. Unknown fields are rejected so typos in
// keys do not silently skip checks.
func Parse(data []byte, source string) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.NewValidationError("ERR_SCENARIO_EMPTY", fmt.Sprintf("%s holds no scenarios", source))
		}
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "ERR_SCENARIO_PARSE", "parsing "+source)
	}
	file.Source = source

	if file.Name == "" {
		file.Name = filepath.Base(source)
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	if len(f.Scenarios) == 0 {
		return errors.NewValidationError("ERR_SCENARIO_EMPTY", fmt.Sprintf("%s holds no scenarios", f.Source))
	}

	for i, s := range f.Scenarios {
		label := fmt.Sprintf("#%d", i+1)
		if s.Name != "" {
			label = fmt.Sprintf("'%s'", s.Name)
		}

		var issue *errors.ExpectError
		switch e := s.Expected(); {
		case len(s.Steps) == 0:
			issue = errors.ValidationFailure("scenario", label+" has no steps", s.Name)
		case e != OutcomePass && e != OutcomeFail:
			issue = errors.ValidationFailure("scenario", fmt.Sprintf("%s has unknown expect value '%s'", label, e), e,
				"use 'pass' or 'fail'")
		case e == OutcomePass && (s.Message != "" || len(s.Contains) > 0):
			issue = errors.ValidationFailure("scenario", label+" checks a failure message but expects to pass", s.Name,
				"add 'expect: fail'")
		}
		if issue != nil {
			return issue.WithContext("file", f.Source)
		}
	}
	return nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileOperationError("read", path, "cannot read scenario file", err)
	}
	return Parse(data, path)
}

// Discover expands paths into the scenario files they hold. Directories are
// walked recursively, keeping files whose base name matches a pattern and
// no exclude. Files named directly are always kept. The result is sorted
// and free of duplicates.
func Discover(paths, patterns, exclude []string) ([]string, error) {
	var found []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.FileOperationError("stat", root, "cannot open scenario path", err)
		}
		if !info.IsDir() {
			found = append(found, filepath.Clean(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && d.Name()[0] == '.' {
					return filepath.SkipDir
				}
				return nil
			}
			if matchesAny(d.Name(), patterns) && !matchesAny(d.Name(), exclude) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.FileOperationError("walk", root, "cannot walk scenario path", err)
		}
	}

	slices.Sort(found)
	return slices.Compact(found), nil
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
