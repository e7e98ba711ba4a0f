package model

// ComponentOption holds the requested state for one component.
type ComponentOption struct {
	// Enabled is the requested enable state. The configurator writes
	// this boolean's literal into the flag assignment; it never reuses
	// the template's pre-existing default.
	Enabled bool
	// Version overrides the component's version assignment when
	// non-empty. Ignored for components without a version key.
	Version string
}

// OptionSet is the fully resolved set of choices driving one
// transformation run. It is built fresh per invocation and read-only
// once the engine starts.
type OptionSet struct {
	// Profile is the chosen base image profile.
	Profile Profile
	// Components maps each requested component to its option.
	// Components absent from the map are treated as disabled.
	Components map[Component]ComponentOption
}

// NewOptionSet creates an option set for the given profile with no
// components requested.
func NewOptionSet(profile Profile) OptionSet {
	return OptionSet{
		Profile:    profile,
		Components: make(map[Component]ComponentOption),
	}
}

// Enable marks a component as enabled with an optional version
// override (empty keeps the template default).
func (o *OptionSet) Enable(c Component, version string) {
	o.Components[c] = ComponentOption{Enabled: true, Version: version}
}

// Disable marks a component as explicitly disabled.
func (o *OptionSet) Disable(c Component) {
	o.Components[c] = ComponentOption{Enabled: false}
}

// Component returns the option for a component. Unrequested
// components come back disabled.
func (o OptionSet) Component(c Component) ComponentOption {
	return o.Components[c]
}

// EnabledComponents returns the enabled components in template order.
func (o OptionSet) EnabledComponents() []Component {
	var out []Component
	for _, c := range Components() {
		if o.Component(c).Enabled {
			out = append(out, c)
		}
	}
	return out
}
