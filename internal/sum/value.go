package sum

import "fmt"

// Value represents a literal payload: a numeric constant or an opaque symbol.
type Value interface {
	isValue()
	String() string
	Equal(other Value) bool
}

// IntValue represents an integer constant.
type IntValue struct {
	Val int64
}

func (IntValue) isValue() {}
func (v IntValue) String() string {
	return fmt.Sprintf("%d", v.Val)
}

func (v IntValue) Equal(other Value) bool {
	if o, ok := other.(IntValue); ok {
		return v.Val == o.Val
	}
	return false
}

// SymValue represents an opaque symbolic payload. The name is whatever
// surface text the reifier could not decompose: an identifier, or an entire
// call expression carried verbatim.
type SymValue struct {
	Name string
}

func (SymValue) isValue() {}
func (v SymValue) String() string {
	return v.Name
}

func (v SymValue) Equal(other Value) bool {
	if o, ok := other.(SymValue); ok {
		return v.Name == o.Name
	}
	return false
}

// Env maps symbol names to values. It lets the evaluator resolve opaque
// symbols when concrete bindings are available.
type Env struct {
	vars map[string]Value
}

// NewEnv creates a new empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Get retrieves the value bound to a symbol, or nil if unbound.
func (e *Env) Get(name string) Value {
	if e == nil {
		return nil
	}
	if v, ok := e.vars[name]; ok {
		return v
	}
	return nil
}

// Set binds a symbol to a value.
func (e *Env) Set(name string, val Value) {
	e.vars[name] = val
}

// Clone creates a copy of the environment.
func (e *Env) Clone() *Env {
	clone := &Env{vars: make(map[string]Value, len(e.vars))}
	for k, v := range e.vars {
		clone.vars[k] = v
	}
	return clone
}

// Keys returns all bound symbol names.
func (e *Env) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	return keys
}

// String returns a string representation of the environment.
func (e *Env) String() string {
	result := "{"
	first := true
	for k, v := range e.vars {
		if !first {
			result += ", "
		}
		result += fmt.Sprintf("%s: %s", k, v.String())
		first = false
	}
	return result + "}"
}
