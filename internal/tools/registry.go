// In file: internal/tools/registry.go
package tools

import (
	"errors"
	"fmt"
)

// ErrDuplicateTool is returned by Register when a tool name is already taken.
// Registration happens once at process start, so this is a fatal setup error.
var ErrDuplicateTool = errors.New("duplicate tool name")

// ArgKind declares what kind of arguments a tool accepts. The dispatcher
// validates call arguments against this declaration before invoking the
// tool, so misuse surfaces as an explicit execution error instead of a
// silent wrong answer.
type ArgKind int

const (
	// ArgsNumeric means every argument must be an integer or a float.
	ArgsNumeric ArgKind = iota
	// ArgsText means arguments are taken as text; numeric tokens are
	// accepted and used via their textual form.
	ArgsText
)

// Variadic marks a Spec with no upper bound on argument count.
const Variadic = -1

// Func is the calling convention every tool implementation follows:
// coerced scalar arguments in, one scalar result or a domain error out.
// Tools are pure functions with no I/O and no shared state.
type Func func(args []Value) (Value, error)

// Spec describes one registered tool: its unique name, the description
// rendered into the model's tool catalog, its declared signature, and the
// implementation. Immutable after registration.
type Spec struct {
	Name        string
	Description string
	Args        ArgKind
	// MinArgs and MaxArgs bound the accepted argument count.
	// MaxArgs == Variadic means unbounded.
	MinArgs int
	MaxArgs int
	Fn      Func
}

// CatalogEntry is one line of the tool list shown to the model.
type CatalogEntry struct {
	Name        string
	Description string
}

// Registry holds all available tools. It is populated once during startup
// and read-only afterwards, which makes unsynchronized concurrent reads
// from multiple sessions safe. There is no removal operation.
type Registry struct {
	specs map[string]Spec
	// order preserves registration order so the catalog rendered into the
	// prompt is stable across runs.
	order []string
}

func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register adds a tool to the registry. It fails with ErrDuplicateTool if
// the name is already present.
func (r *Registry) Register(spec Spec) error {
	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTool, spec.Name)
	}
	r.specs[spec.Name] = spec
	r.order = append(r.order, spec.Name)
	return nil
}

// MustRegister registers a tool and panics on failure. Intended for the
// built-in catalog wired up in the composition root, where a duplicate
// name is a programming error that should abort startup.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Catalog returns (name, description) pairs in registration order.
// The session renders this list verbatim into the initial prompt.
func (r *Registry) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, CatalogEntry{Name: name, Description: r.specs[name].Description})
	}
	return entries
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.specs)
}
