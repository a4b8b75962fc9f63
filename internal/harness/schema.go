package harness

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// scenarioSchema is the CUE definition every scenario document must satisfy.
const scenarioSchema = `
#Op: "std" | "dist" | "fuel" | "slip" | "sfoc" | "eta"

#ErrorCode: "INSUFFICIENT_INPUT" | "INVALID_FORMAT" | "INVALID_INPUT"

#Expect: {
	value?:      number
	tolerance?:  number & >=0
	unit?:       string
	display?:    string
	aux?:        [string]: string
	degenerate?: bool
	error?:      #ErrorCode
}

#Case: {
	name:   string & !=""
	op:     #Op
	args:   [string]: number | string
	expect: #Expect
}

#Scenario: {
	name:        string & !=""
	description: string & !=""
	now?:        =~"^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}$"
	cases:       [#Case, ...#Case]
}
`

// validateSchema unifies doc with #Scenario and requires a concrete result.
func validateSchema(doc map[string]interface{}) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	v := ctx.Encode(doc)
	if err := v.Err(); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %s", errors.Details(err, nil))
	}
	return nil
}
