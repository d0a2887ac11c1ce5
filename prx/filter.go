package prx

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// filterEnv is the environment a [Filter] expression is evaluated against,
// one module at a time.
type filterEnv struct {
	FileID    string
	Name      string
	Libraries int
	Functions int
	Variables int
}

func makeFilterEnv(mod *Module) filterEnv {
	env := filterEnv{
		FileID:    mod.FileID,
		Name:      mod.Name,
		Libraries: len(mod.Libraries),
	}

	for _, lib := range mod.Libraries {
		env.Functions += len(lib.Functions)
		env.Variables += len(lib.Variables)
	}

	return env
}

// Filter is a compiled boolean expression over module attributes.
//
// Expressions may reference FileID, Name, Libraries, Functions and Variables,
// for example:
//
//	FileID startsWith "sysmem" || Functions > 100
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles source into a [Filter]. An empty source yields a
// nil Filter, which selects every module.
func CompileFilter(source string) (*Filter, error) {
	if source == "" {
		return nil, nil //nolint:nilnil
	}

	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrInvalidFilter.Wrap(err).
			With(slog.String("source", source))
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the filter's source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.source
}

// Match reports whether mod satisfies f. A nil Filter matches every module.
func (f *Filter) Match(mod *Module) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, err := vm.Run(f.program, makeFilterEnv(mod))
	if err != nil {
		return false, ErrInvalidFilter.Wrap(err).
			With(slog.String("source", f.source), slog.String("module", mod.FileID))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Where returns the modules of t that satisfy f, in table order.
func (t *Table) Where(f *Filter) ([]*Module, error) {
	if t == nil {
		return nil, nil
	}

	mods := make([]*Module, 0, len(t.Modules))

	for i := range t.Modules {
		ok, err := f.Match(&t.Modules[i])
		if err != nil {
			return nil, err
		}

		if ok {
			mods = append(mods, &t.Modules[i])
		}
	}

	return mods, nil
}
