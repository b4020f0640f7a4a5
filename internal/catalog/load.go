package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	categoryDescriptions map[string]string
}

// WithCategoryDescriptions attaches explanation text to categories.
// Every key must name a category used by at least one failure mode.
func WithCategoryDescriptions(descriptions map[string]string) Option {
	return func(o *loadOptions) {
		o.categoryDescriptions = descriptions
	}
}

// sourceEntry is the on-disk shape of one failure mode.
type sourceEntry struct {
	Category            string   `yaml:"category"`
	Description         string   `yaml:"description"`
	ShortDescription    string   `yaml:"short_description"`
	ExampleScenarios    []string `yaml:"example_scenarios"`
	PhDLevelAnalysis    string   `yaml:"phd_level_analysis"`
	TacticalSolutions   []string `yaml:"tactical_solutions"`
	StructuralSolutions []string `yaml:"structural_solutions"`
}

// requiredFields lists every source field in declaration order.
var requiredFields = []string{
	"category",
	"description",
	"short_description",
	"example_scenarios",
	"phd_level_analysis",
	"tactical_solutions",
	"structural_solutions",
}

// Load builds a Catalog from JSON source data.
func Load(data []byte, opts ...Option) (*Catalog, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := parseEntries(data)
	if err != nil {
		return nil, err
	}

	if err := validateSchema(data, entries); err != nil {
		return nil, err
	}

	c := &Catalog{
		modeIndex: make(map[string]int, len(entries)),
		catIndex:  make(map[string]int),
	}

	for _, e := range entries {
		var src sourceEntry
		if err := e.value.Decode(&src); err != nil {
			return nil, &LoadError{
				Code:        ErrCodeSchema,
				FailureMode: e.name,
				Line:        e.value.Line,
				Message:     "cannot decode entry",
				Err:         err,
			}
		}

		// Categories merge case-insensitively; members take the first spelling.
		key := foldKey(src.Category)
		i, ok := c.catIndex[key]
		if !ok {
			i = len(c.categories)
			c.catIndex[key] = i
			c.categories = append(c.categories, Category{Name: src.Category})
		}
		c.categories[i].Members = append(c.categories[i].Members, e.name)

		c.modeIndex[foldKey(e.name)] = len(c.modes)
		c.modes = append(c.modes, FailureMode{
			Name:                e.name,
			Category:            c.categories[i].Name,
			Description:         src.Description,
			ShortDescription:    src.ShortDescription,
			ExampleScenarios:    src.ExampleScenarios,
			PhDLevelAnalysis:    src.PhDLevelAnalysis,
			TacticalSolutions:   nonNil(src.TacticalSolutions),
			StructuralSolutions: nonNil(src.StructuralSolutions),
		})
	}

	for name, desc := range o.categoryDescriptions {
		i, ok := c.catIndex[foldKey(name)]
		if !ok {
			return nil, &LoadError{
				Code:    ErrCodeUnknownCategory,
				Message: fmt.Sprintf("description given for unknown category %q", name),
			}
		}
		c.categories[i].Description = strings.TrimSpace(desc)
	}

	return c, nil
}

// LoadFile reads and loads a catalog source file.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeRead,
			Message: fmt.Sprintf("cannot read %s", path),
			Err:     err,
		}
	}
	return Load(data, opts...)
}

type namedNode struct {
	name  string
	value *yaml.Node
}

// parseEntries walks the document node so declaration order survives
// and duplicate names can be reported before anything is decoded.
func parseEntries(data []byte) ([]namedNode, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeSyntax, Message: "invalid source data", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: "catalog source is empty"}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &LoadError{
			Code:    ErrCodeShape,
			Line:    root.Line,
			Message: "top level must be an object keyed by failure mode name",
		}
	}
	if len(root.Content) == 0 {
		return nil, &LoadError{Code: ErrCodeEmpty, Line: root.Line, Message: "catalog defines no failure modes"}
	}

	seen := make(map[string]string, len(root.Content)/2)
	entries := make([]namedNode, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		name := strings.TrimSpace(key.Value)
		if name == "" {
			return nil, &LoadError{Code: ErrCodeSchema, Line: key.Line, Message: "failure mode name must not be empty"}
		}
		if prev, ok := seen[foldKey(name)]; ok {
			return nil, &LoadError{
				Code:        ErrCodeDuplicate,
				FailureMode: name,
				Line:        key.Line,
				Message:     fmt.Sprintf("duplicate identifier (already defined as %q)", prev),
			}
		}
		if value.Kind != yaml.MappingNode {
			return nil, &LoadError{
				Code:        ErrCodeShape,
				FailureMode: name,
				Line:        value.Line,
				Message:     "entry must be an object",
			}
		}
		seen[foldKey(name)] = name
		entries = append(entries, namedNode{name: name, value: value})
	}
	return entries, nil
}

// validateSchema checks the source against the #Catalog definition.
func validateSchema(data []byte, entries []namedNode) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	src := ctx.CompileBytes(data, cue.Filename(sourceFilename))
	if err := src.Err(); err != nil {
		return cueLoadError(ErrCodeSyntax, err, entries)
	}

	v := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(src)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return cueLoadError(ErrCodeSchema, err, entries)
	}
	return nil
}

const sourceFilename = "catalog.json"

// cueLoadError converts the first CUE error into a LoadError naming the
// failure mode and field it concerns. CUE reports paths from the #Catalog
// definition, so definition labels are skipped. When CUE stops at the entry
// (an incomplete value), the first required field absent from the entry is
// named instead.
func cueLoadError(code string, err error, entries []namedNode) *LoadError {
	le := &LoadError{Code: code, Message: err.Error(), Err: err}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return le
	}
	first := errs[0]
	format, args := first.Msg()
	le.Message = fmt.Sprintf(format, args...)

	path := first.Path()
	for len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	if len(path) > 0 {
		le.FailureMode = unquoteLabel(path[0])
	}
	if len(path) > 1 {
		le.Field = unquoteLabel(path[1])
	}

	entry := findEntry(entries, le.FailureMode)
	if le.Field == "" && entry != nil {
		if missing := missingField(entry.value); missing != "" {
			le.Field = missing
			le.Message = "required field is missing"
		}
	}

	if pos := first.Position(); pos.IsValid() && pos.Filename() == sourceFilename {
		le.Line = pos.Line()
	} else if entry != nil {
		le.Line = entry.value.Line
	}
	return le
}

func findEntry(entries []namedNode, name string) *namedNode {
	if name == "" {
		return nil
	}
	for i := range entries {
		if entries[i].name == name {
			return &entries[i]
		}
	}
	return nil
}

// missingField returns the first required field that entry does not set.
func missingField(entry *yaml.Node) string {
	present := make(map[string]bool, len(entry.Content)/2)
	for i := 0; i+1 < len(entry.Content); i += 2 {
		present[entry.Content[i].Value] = true
	}
	for _, f := range requiredFields {
		if !present[f] {
			return f
		}
	}
	return ""
}

func unquoteLabel(label string) string {
	if s, err := strconv.Unquote(label); err == nil {
		return s
	}
	return label
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
