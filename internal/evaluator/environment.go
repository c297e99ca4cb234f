package evaluator

// Environment maps names to store locations. It is logically
// persistent: extension creates a fresh frame chained to its
// predecessor, and a frame is never written to once a closure or
// continuation may have captured it. Binder forms therefore always
// extend through NewEnclosedEnvironment rather than setting names on
// a shared frame.
type Environment struct {
	store map[string]Location
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Location)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get resolves a name to its location, searching enclosing frames.
func (e *Environment) Get(name string) (Location, bool) {
	loc, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return loc, ok
}

// Set binds a name in this frame, shadowing any outer binding. It must
// only be called on a frame that no value has captured yet.
func (e *Environment) Set(name string, loc Location) {
	e.store[name] = loc
}
