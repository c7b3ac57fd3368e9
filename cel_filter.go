package main

import (
	"log"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/recview/recview/internal/record"
)

// celFilter holds the compiled CEL program for record filtering.
type celFilter struct {
	env        *cel.Env
	program    cel.Program // nil when no valid expression
	expr       string      // current expression text
	err        string      // compilation error, "" if ok
	evalErr    string      // first runtime eval error, "" if ok
	matchCount int         // matches from last evaluation
}

func newCelFilter() *celFilter {
	env, err := cel.NewEnv(
		cel.Variable("index", cel.IntType),
		cel.Variable("raw", cel.StringType),
		cel.Variable("summary", cel.StringType),
		cel.Variable("level", cel.StringType),
		cel.Variable("fields", cel.MapType(cel.StringType, cel.StringType)),
		ext.Strings(),
	)
	if err != nil {
		// Should not happen with static variable declarations
		log.Fatal("cel env: ", err)
	}
	return &celFilter{env: env}
}

func (f *celFilter) compile(expr string) {
	f.expr = expr
	f.program = nil
	f.err = ""
	f.evalErr = ""
	f.matchCount = 0

	if expr == "" {
		return
	}

	ast, issues := f.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		f.err = issues.Err().Error()
		return
	}

	// Verify output type is bool
	if ast.OutputType() != cel.BoolType {
		f.err = "expression must return bool"
		return
	}

	prg, err := f.env.Program(ast)
	if err != nil {
		f.err = err.Error()
		return
	}
	f.program = prg
}

func (f *celFilter) buildActivation(rec record.Record) map[string]any {
	return map[string]any{
		"index":   int64(rec.Index),
		"raw":     rec.Raw,
		"summary": rec.Summary(),
		"level":   rec.Level(),
		"fields":  rec.Fields,
	}
}

// eval reports whether rec passes the filter. With no compiled
// program every record passes. The first runtime error is retained
// for display; failing records are excluded rather than aborting.
func (f *celFilter) eval(rec record.Record) bool {
	if f.program == nil {
		return true
	}
	out, _, err := f.program.Eval(f.buildActivation(rec))
	if err != nil {
		if f.evalErr == "" {
			f.evalErr = err.Error()
		}
		return false
	}
	result, ok := out.Value().(bool)
	return ok && result
}
