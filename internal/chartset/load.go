package chartset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/logchart/internal/render"
)

//go:embed schema.cue
var schemaSource string

// Load reads and validates the chart-set file at path.
func Load(path string) (*ChartSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart set: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML chart set and validates it in three passes: strict
// YAML decoding (unknown keys fail), the embedded CUE #ChartSet schema, and
// the cross-field checks of Validate. Every failure is a *ValidationError
// naming source.
func Parse(data []byte, source string) (*ChartSet, error) {
	var set ChartSet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Source: source, Problems: []string{"empty chart set"}}
		}
		return nil, &ValidationError{Source: source, Problems: yamlProblems(err)}
	}

	if problems := schemaProblems(&set); len(problems) > 0 {
		return nil, &ValidationError{Source: source, Problems: problems}
	}
	if problems := set.problems(); len(problems) > 0 {
		return nil, &ValidationError{Source: source, Problems: problems}
	}
	return &set, nil
}

// Validate runs the schema and cross-field checks on a chart set built in
// code, such as a preset.
func (s *ChartSet) Validate() error {
	problems := schemaProblems(s)
	if len(problems) == 0 {
		problems = s.problems()
	}
	if len(problems) > 0 {
		return &ValidationError{Source: s.Name, Problems: problems}
	}
	return nil
}

func yamlProblems(err error) []string {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return append([]string(nil), typeErr.Errors...)
	}
	return []string{err.Error()}
}

// schemaProblems unifies the JSON form of set with #ChartSet and returns
// one message per violation, prefixed with its path.
func schemaProblems(set *ChartSet) []string {
	data, err := json.Marshal(set)
	if err != nil {
		return []string{err.Error()}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#ChartSet"))
	if err := schema.Err(); err != nil {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	doc := ctx.CompileBytes(data, cue.Filename("chartset.json"))
	if err := doc.Err(); err != nil {
		return []string{err.Error()}
	}

	err = schema.Unify(doc).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}
	var problems []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := strings.Join(e.Path(), "."); path != "" {
			msg = path + ": " + msg
		}
		problems = append(problems, msg)
	}
	if len(problems) == 0 {
		problems = []string{err.Error()}
	}
	return problems
}

// problems reports what the schema cannot express: which fields each job
// kind needs, and chart names unique across the set.
func (s *ChartSet) problems() []string {
	var out []string
	add := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}

	names := make(map[string]string)
	for i, job := range s.Jobs {
		at := fmt.Sprintf("jobs.%d", i)
		switch job.KindOrDefault() {
		case KindLine:
			switch {
			case job.Input == "" && job.Table == "":
				add("%s.input: required for line jobs", at)
			case job.Input != "" && job.Table != "":
				add("%s.table: conflicts with input", at)
			}
		case KindVectors:
			if job.Rotation == "" {
				add("%s.rotation: required for vectors jobs", at)
			}
			if job.Omega == "" {
				add("%s.omega: required for vectors jobs", at)
			}
			if job.Table != "" {
				add("%s.table: only line jobs read archived tables", at)
			}
		}

		for j, c := range job.Charts {
			cat := fmt.Sprintf("%s.charts.%d", at, j)
			if prev, dup := names[c.Name]; dup {
				add("%s.name: %q already used by %s", cat, c.Name, prev)
			} else {
				names[c.Name] = cat
			}

			if job.KindOrDefault() == KindVectors {
				if c.Backend != "" && c.Backend != render.BackendGonum {
					add("%s.backend: vector charts are drawn by gonum only", cat)
				}
				continue
			}
			if c.X == "" {
				add("%s.x: required for line charts", cat)
			}
			if len(c.Y) == 0 {
				add("%s.y: at least one column required", cat)
			}
			if len(c.Labels) > len(c.Y) {
				add("%s.labels: %d labels for %d series", cat, len(c.Labels), len(c.Y))
			}
		}
	}
	return out
}
