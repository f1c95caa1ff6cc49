package input

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks a generic decoded document (as produced by yaml.Unmarshal
// into map[string]any) against the #Document definition.
func Validate(doc map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("input: compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))
	if !def.Exists() {
		return fmt.Errorf("input: schema has no #Document")
	}

	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	return nil
}
