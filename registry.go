package eventsystem

// Registry is the ordered set of live event systems. The first entry is the
// current system; it is the only one that does work in Update.
//
// A Registry is created once at startup and handed to every [New] call that
// should share a notion of "current". It is not safe for concurrent use.
type Registry struct {
	systems []*EventSystem
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Current returns the head of the registry, or nil if it is empty.
func (r *Registry) Current() *EventSystem {
	if len(r.systems) == 0 {
		return nil
	}
	return r.systems[0]
}

// SetCurrent moves s to the front of the registry. Systems that are not
// registered are ignored.
func (r *Registry) SetCurrent(s *EventSystem) {
	i := r.indexOf(s)
	if i < 0 {
		return
	}
	copy(r.systems[1:i+1], r.systems[:i])
	r.systems[0] = s
}

// Register appends s. Callers must not register the same system twice.
func (r *Registry) Register(s *EventSystem) {
	r.systems = append(r.systems, s)
}

// Unregister removes s by identity. No-op if s is not registered.
func (r *Registry) Unregister(s *EventSystem) {
	i := r.indexOf(s)
	if i < 0 {
		return
	}
	copy(r.systems[i:], r.systems[i+1:])
	r.systems[len(r.systems)-1] = nil
	r.systems = r.systems[:len(r.systems)-1]
}

// Systems returns the registered systems in order. The returned slice MUST
// NOT be mutated.
func (r *Registry) Systems() []*EventSystem {
	return r.systems
}

// Len returns the number of registered systems.
func (r *Registry) Len() int {
	return len(r.systems)
}

func (r *Registry) indexOf(s *EventSystem) int {
	if s == nil {
		return -1
	}
	for i, cur := range r.systems {
		if cur == s {
			return i
		}
	}
	return -1
}
