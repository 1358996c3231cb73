package filter

import (
	"github.com/s0up4200/srcapi/speedrun"
)

// Subject is a decoded speedrun.com resource a filter can be evaluated against
type Subject interface {
	speedrun.User | speedrun.Game | speedrun.PersonalBest
}

// Compiler compiles filter expressions into executable programs
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (*Program, error)
}

// CachingCompiler provides caching for compiled programs
type CachingCompiler interface {
	Compiler

	// Clear removes all cached programs
	Clear()

	// Size returns the number of cached programs
	Size() int
}
