package rule

// Registry owns the fixed set of rule instances and a set of disabled rule
// identifiers. The rule sequence is established once at construction and
// never grows or shrinks; only the disabled set mutates.
//
// Enable and Disable never validate their argument against the known rule
// set. Disabling an unknown identifier just adds a name to the disabled
// set, so configuration written against a newer or older rule set applies
// cleanly. This passthrough is part of the contract.
type Registry struct {
	rules    []Rule
	disabled map[string]struct{}
}

// NewRegistry builds a registry over the given rules, all enabled. The
// slice is copied; the caller's slice is not retained.
func NewRegistry(rules []Rule) *Registry {
	fixed := make([]Rule, len(rules))
	copy(fixed, rules)
	return &Registry{
		rules:    fixed,
		disabled: make(map[string]struct{}),
	}
}

// Disable adds id to the disabled set. Idempotent.
func (r *Registry) Disable(id string) {
	r.disabled[id] = struct{}{}
}

// Enable removes id from the disabled set. Idempotent.
func (r *Registry) Enable(id string) {
	delete(r.disabled, id)
}

// IsEnabled reports whether id is absent from the disabled set.
func (r *Registry) IsEnabled(id string) bool {
	_, off := r.disabled[id]
	return !off
}

// Enabled returns the enabled rules in the original fixed-set order.
func (r *Registry) Enabled() []Rule {
	result := make([]Rule, 0, len(r.rules))
	for _, rl := range r.rules {
		if r.IsEnabled(rl.ID()) {
			result = append(result, rl)
		}
	}
	return result
}

// All returns a copy of the full fixed rule set, enabled or not.
func (r *Registry) All() []Rule {
	result := make([]Rule, len(r.rules))
	copy(result, r.rules)
	return result
}

// ByID returns the rule with the given ID, or nil.
func (r *Registry) ByID(id string) Rule {
	for _, rl := range r.rules {
		if rl.ID() == id {
			return rl
		}
	}
	return nil
}

// TotalCount returns the size of the fixed rule set.
func (r *Registry) TotalCount() int {
	return len(r.rules)
}

// EnabledCount returns TotalCount minus the size of the disabled set.
// Disabled identifiers that name no known rule still count, so disabling
// an unknown id shrinks this value.
func (r *Registry) EnabledCount() int {
	return len(r.rules) - len(r.disabled)
}

// ApplyFilters applies the allow-list and deny-list on top of whatever
// enable/disable state the registry already carries (configuration is
// applied before this).
//
// A non-empty allow-list narrows the enabled set to exactly its named
// identifiers: every known rule not named is disabled and every named
// identifier is enabled, whatever configuration said. The deny-list then
// disables its identifiers unconditionally, so a denied rule stays off
// even when the allow-list named it.
func (r *Registry) ApplyFilters(only, except []string) {
	if len(only) > 0 {
		named := make(map[string]struct{}, len(only))
		for _, id := range only {
			named[id] = struct{}{}
		}
		for _, rl := range r.rules {
			if _, ok := named[rl.ID()]; !ok {
				r.Disable(rl.ID())
			}
		}
		for _, id := range only {
			r.Enable(id)
		}
	}
	for _, id := range except {
		r.Disable(id)
	}
}
