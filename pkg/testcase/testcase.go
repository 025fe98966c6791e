// Package testcase reformats judge results into test case records.
//
// A results document looks like
//
//	{"results": [{"expectedOutput": "TestCase-1\n3\nTestCase-2\n7"}, ...]}
//
// Each expectedOutput holds several outputs separated by "TestCase-<n>"
// markers. [Convert] turns every non-empty section into a [Case] with an
// empty input that is hidden from users.
package testcase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/casegen/pkg/errors"
)

// marker separates sections of an expected output.
var marker = regexp.MustCompile(`TestCase-\d+`)

// Result is one entry of a results document.
type Result struct {
	ExpectedOutput string `json:"expectedOutput"`
}

// Case is a reformatted test case.
type Case struct {
	Output        string `json:"output"`
	Input         string `json:"input"`
	VisibleToUser bool   `json:"visibleToUser"`
}

// Split cuts expectedOutput at every TestCase-<n> marker and returns the
// trimmed, non-empty sections in order.
func Split(expectedOutput string) []string {
	var out []string
	for _, piece := range marker.Split(expectedOutput, -1) {
		if s := strings.TrimSpace(piece); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Convert flattens the sections of every result into cases, keeping result
// order and section order.
func Convert(results []Result) []Case {
	cases := []Case{}
	for _, r := range results {
		for _, s := range Split(r.ExpectedOutput) {
			cases = append(cases, Case{Output: s})
		}
	}
	return cases
}

// ReadResults decodes a results document. The document must be an object
// whose "results" member is an array of objects with a string expectedOutput.
func ReadResults(r io.Reader) ([]Result, error) {
	var doc struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode results document")
	}
	trimmed := bytes.TrimSpace(doc.Results)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "results document must contain a \"results\" array")
	}

	var entries []struct {
		ExpectedOutput *string `json:"expectedOutput"`
	}
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode results")
	}

	results := make([]Result, len(entries))
	for i, e := range entries {
		if e.ExpectedOutput == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "results[%d]: missing expectedOutput", i)
		}
		results[i] = Result{ExpectedOutput: *e.ExpectedOutput}
	}
	return results, nil
}

// WriteCases writes cases as a compact JSON array without a trailing newline.
// HTML characters are not escaped.
func WriteCases(w io.Writer, cases []Case) error {
	if cases == nil {
		cases = []Case{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cases); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// OutputPath maps an input file to outRoot/<name of its parent dir>/<base>.
// Inputs without a parent directory land directly in outRoot.
func OutputPath(inputPath, outRoot string) string {
	parent := filepath.Base(filepath.Dir(inputPath))
	if parent == "." || parent == string(filepath.Separator) {
		parent = ""
	}
	return filepath.Join(outRoot, parent, filepath.Base(inputPath))
}

// ConvertFile reads a results document from inputPath, converts it and writes
// the cases to OutputPath(inputPath, outRoot), creating directories as
// needed. It returns the output path and the number of cases written.
func ConvertFile(inputPath, outRoot string) (string, int, error) {
	if err := errors.ValidatePath(inputPath); err != nil {
		return "", 0, err
	}
	if err := errors.ValidateOutputDir(outRoot); err != nil {
		return "", 0, err
	}

	f, err := os.Open(inputPath)
	if os.IsNotExist(err) {
		return "", 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "results file %s", inputPath)
	}
	if err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", inputPath)
	}
	defer f.Close()

	results, err := ReadResults(f)
	if err != nil {
		return "", 0, errors.Annotate(err, "%s", inputPath)
	}
	cases := Convert(results)

	outPath := OutputPath(inputPath, outRoot)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", 0, fmt.Errorf("create output dir: %w", err)
	}
	var buf bytes.Buffer
	if err := WriteCases(&buf, cases); err != nil {
		return "", 0, err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return "", 0, fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, len(cases), nil
}
