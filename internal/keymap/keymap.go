// Package keymap maps key presses to command names per UI context.
package keymap

// Binding associates a key with a command in a context. The "global"
// context is consulted when the active context has no binding for the key.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves key presses against the binding table.
type Registry struct {
	// context -> key -> command
	byContext map[string]map[string]string
}

// NewRegistry builds a registry from bindings, applying overrides on top.
// Override keys have the form "context/command"; the value is the new key.
func NewRegistry(bindings []Binding, overrides map[string]string) *Registry {
	r := &Registry{byContext: make(map[string]map[string]string)}
	for _, b := range bindings {
		if key, ok := overrides[b.Context+"/"+b.Command]; ok {
			b.Key = key
		}
		r.add(b)
	}
	return r
}

func (r *Registry) add(b Binding) {
	ctx := r.byContext[b.Context]
	if ctx == nil {
		ctx = make(map[string]string)
		r.byContext[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// Lookup resolves key in context, falling back to global bindings. Returns
// the command name and whether a binding exists.
func (r *Registry) Lookup(context, key string) (string, bool) {
	if cmd, ok := r.byContext[context][key]; ok {
		return cmd, true
	}
	cmd, ok := r.byContext["global"][key]
	return cmd, ok
}

// BindingsFor returns the key->command table for a context, global
// bindings included (context bindings shadow global ones). Used to render
// the footer hints and the help overlay.
func (r *Registry) BindingsFor(context string) map[string]string {
	out := make(map[string]string)
	for key, cmd := range r.byContext["global"] {
		out[key] = cmd
	}
	for key, cmd := range r.byContext[context] {
		out[key] = cmd
	}
	return out
}
