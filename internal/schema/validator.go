// Package schema validates health data files against an embedded CUE schema
// before they are loaded.
package schema

import (
	"embed"
	"fmt"
	"sync"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError describes one schema violation in a data file.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

var (
	loadOnce sync.Once
	loadErr  error
	cueCtx   *cue.Context
	dataDef  cue.Value
)

func loadSchema() {
	ctx := cuecontext.New()
	cueCtx = ctx

	content, err := schemaFS.ReadFile("schemas/datafile.cue")
	if err != nil {
		loadErr = fmt.Errorf("could not read embedded schema: %w", err)
		return
	}

	inst := ctx.CompileBytes(content, cue.Filename("datafile.cue"))
	if err := inst.Err(); err != nil {
		loadErr = fmt.Errorf("could not compile schema: %w", err)
		return
	}

	def := inst.LookupPath(cue.ParsePath("#DataFile"))
	if !def.Exists() {
		loadErr = fmt.Errorf("schema missing #DataFile definition")
		return
	}
	dataDef = def
}

// ValidateDataFile checks raw YAML document bytes against the data file
// schema. A nil return means the document conforms. Schema load failures are
// reported as a single error rather than silently skipping validation.
func ValidateDataFile(raw []byte) []ValidationError {
	loadOnce.Do(loadSchema)
	if loadErr != nil {
		return []ValidationError{{Message: loadErr.Error()}}
	}

	var doc map[string]any
	if err := yamlv3.Unmarshal(raw, &doc); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}

	dataValue := cueCtx.Encode(normalize(doc))
	if err := dataValue.Err(); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("error encoding data: %v", err)}}
	}

	unified := dataDef.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err)
	}
	return nil
}

func extractErrors(err error) []ValidationError {
	return []ValidationError{{Message: fmt.Sprintf("schema validation failed: %v", err)}}
}

// normalize rewrites values the YAML decoder resolves into Go types CUE
// cannot encode directly. Date scalars become plain YYYY-MM-DD strings.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return v
	}
}
