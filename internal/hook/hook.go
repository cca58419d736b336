// Package hook holds the debugger-trap hook: a registered function paired
// with its advertised source text.
//
// The hook is the program's anti-debug probe. Invoking it is a no-op unless
// an interactive debugger intercepts the call and blocks. The source text is
// deliberately introspectable: the tamper detector compares the live text
// against a baked-in constant, so any edit to the registered hook is
// observable. Exposing the text is the point - the check exists to catch
// analysts who rewrite the trap to defeat it.
package hook

// DefaultSource is the canonical source text of the unmodified trap.
// The tamper detector compares the live registration against this value.
const DefaultSource = "function(){debugger}"

// Registry binds the live trap function to its advertised source text.
//
// The registry is mutated only by the external driver (the analyst surface):
// the core reads it but never rewrites it. Calls are strictly sequential by
// the driver contract, so no locking is needed.
type Registry struct {
	fn     func()
	source string
}

// NewRegistry returns a registry holding the default trap: a no-op function
// advertised as DefaultSource.
func NewRegistry() *Registry {
	return &Registry{
		fn:     func() {},
		source: DefaultSource,
	}
}

// Install replaces the trap function and its advertised source text.
//
// This is the externally reachable mutation surface. A debugger that merely
// pauses inside the trap does not go through Install - it changes timing,
// not text. An analyst who rewrites the trap body does, and the new text is
// what Source() reports from then on.
func (r *Registry) Install(fn func(), source string) {
	r.fn = fn
	r.source = source
}

// Invoke runs the live trap function.
// With the default registration this returns immediately.
func (r *Registry) Invoke() {
	r.fn()
}

// Source returns the live advertised source text.
func (r *Registry) Source() string {
	return r.source
}
