package carscrape

// ManifestEntry pairs a canonical template name with its role, for
// introspection by external tooling.
type ManifestEntry struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Registry holds templates in authoritative detection order. It is
// built once at process start and read-only thereafter; the order is
// the single source of truth for detection priority and must be stable
// across runs for reproducibility.
type Registry struct {
	order  []Template
	byName map[string]Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Template)}
}

// Register appends t to the detection order. Registering a name twice
// returns ECONFLICT: a silent override would invisibly reorder
// detection priority.
func (r *Registry) Register(t Template) error {
	name := t.Name()
	if name == "" {
		return Errorf(EINVALID, "template name required")
	}
	if _, ok := r.byName[name]; ok {
		return Errorf(ECONFLICT, "template %q already registered", name)
	}
	r.byName[name] = t
	r.order = append(r.order, t)
	return nil
}

// MustRegister is Register for static startup wiring; it panics on
// duplicate names, which is a programming error.
func (r *Registry) MustRegister(t Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the template registered under name, or nil.
func (r *Registry) Get(name string) Template {
	return r.byName[name]
}

// Templates returns the templates in detection order.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.order)
}

// Manifest returns the ordered list of {name, role} pairs.
func (r *Registry) Manifest() []ManifestEntry {
	out := make([]ManifestEntry, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, ManifestEntry{Name: t.Name(), Role: t.Role()})
	}
	return out
}
