// Package vars is a process-wide registry of named dimensions, used to
// share a panel's size with the parts of a layout that depend on it.
package vars

import (
	"strconv"
	"sync"
)

// Registry maps dimension names to sizes. The zero value is ready to use.
type Registry struct {
	mu     sync.RWMutex
	values map[string]float64
}

// Global is the registry shared by the whole program.
var Global = &Registry{}

// SetVar implements resize.VarSetter.
func (r *Registry) SetVar(name string, size float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = make(map[string]float64)
	}
	r.values[name] = size
}

// Lookup returns the size stored under name.
func (r *Registry) Lookup(name string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[name]
	return v, ok
}

// Int returns the size under name rounded to whole cells, or fallback.
func (r *Registry) Int(name string, fallback int) int {
	v, ok := r.Lookup(name)
	if !ok {
		return fallback
	}
	return int(v + 0.5)
}

// String renders the size under name with a px unit, or "" when unset.
func (r *Registry) String(name string) string {
	v, ok := r.Lookup(name)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// Delete removes name.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, name)
}

// Set stores size under name in the global registry.
func Set(name string, size float64) { Global.SetVar(name, size) }

// Lookup reads name from the global registry.
func Lookup(name string) (float64, bool) { return Global.Lookup(name) }
