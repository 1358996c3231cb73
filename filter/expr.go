package filter

import (
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Program is a compiled filter expression. It is immutable and safe for
// concurrent evaluation.
type Program struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the original expression
func (p *Program) Expression() string {
	return p.expression
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables program caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *programCache
}

// Compile compiles an expression into an executable program
func (c *exprCompiler) Compile(expression string) (*Program, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if cached, ok := c.cache.lookup(expression); ok {
		return cached, nil
	}

	// Compile against the helpers only; resource fields are bound at run time
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	compiled := &Program{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	c.cache.store(compiled)
	return compiled, nil
}

// Clear removes all cached programs
func (c *exprCompiler) Clear() {
	c.cache.reset()
}

// Size returns the number of cached programs
func (c *exprCompiler) Size() int {
	return c.cache.size()
}

// Compile compiles expression with a default, uncached compiler
func Compile(expression string) (*Program, error) {
	return NewExprCompiler().Compile(expression)
}

// Match evaluates p against a single resource
func Match[T Subject](p *Program, v T) (bool, error) {
	out, err := expr.Run(p.program, createRuntimeEnvironment(p.helpers, v))
	if err != nil {
		return false, &EvaluationError{Expression: p.expression, Subject: describe(v), Err: err}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: p.expression,
			Subject:    describe(v),
			Err:        fmt.Errorf("expression returned %T, not bool", out),
		}
	}
	return matched, nil
}
