package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Manager holds named preset filters, typically loaded from configuration
type Manager struct {
	compiler Compiler
	presets  map[string]*Program
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		if compiler != nil {
			m.compiler = compiler
		}
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		presets:  make(map[string]*Program),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterPresets compiles and registers presets. Nothing is registered if any
// of them fails to compile.
func (m *Manager) RegisterPresets(presets map[string]string) error {
	compiled := make(map[string]*Program, len(presets))

	for name, expression := range presets {
		program, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile preset '%s': %w", name, err)
		}
		compiled[name] = program
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Preset returns a registered preset by name
func (m *Manager) Preset(name string) (*Program, bool) {
	m.mu.RLock()
	program, exists := m.presets[name]
	m.mu.RUnlock()
	return program, exists
}

// Presets returns the sorted names of all registered presets
func (m *Manager) Presets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Resolve picks the program to apply. An explicit expression wins over a
// preset; with neither, the result is nil and nothing is filtered.
func (m *Manager) Resolve(expression, preset string) (*Program, error) {
	if strings.TrimSpace(expression) != "" {
		return m.compiler.Compile(expression)
	}

	if preset != "" {
		program, ok := m.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		return program, nil
	}

	return nil, nil
}
