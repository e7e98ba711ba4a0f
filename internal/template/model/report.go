package model

// ComponentResult records what the configurator actually did for one
// component. A requested option whose markers are missing from the
// template is a no-op, and this is where that stays observable.
type ComponentResult struct {
	// Component is the component this result belongs to.
	Component Component
	// Enabled is the state that was requested.
	Enabled bool
	// Version is the version override that was requested (empty if none).
	Version string
	// FlagApplied is true if the enable-flag assignment was found and rewritten.
	FlagApplied bool
	// VersionApplied is true if a version assignment was found and rewritten.
	VersionApplied bool
	// BlockApplied is true if the install block was found and toggled.
	BlockApplied bool
}

// Matched reports whether any marker for the component existed in the
// template.
func (r ComponentResult) Matched() bool {
	return r.FlagApplied || r.VersionApplied || r.BlockApplied
}

// Report describes which requested options were actually applied to
// the template, so callers can detect drift between the option
// vocabulary and the template's markers.
type Report struct {
	// Profile is the profile that was requested.
	Profile Profile
	// ProfileApplied is true if the profile's region was found and activated.
	ProfileApplied bool
	// ShellApplied is true if the CMD line was found and rewritten.
	ShellApplied bool
	// Components holds one result per component in processing order.
	Components []ComponentResult
}

// Unmatched returns the requested components that had no marker in
// the template.
func (r *Report) Unmatched() []Component {
	var out []Component
	for _, cr := range r.Components {
		if cr.Enabled && !cr.Matched() {
			out = append(out, cr.Component)
		}
	}
	return out
}

// Enabled returns the results for components that were requested
// enabled, in processing order.
func (r *Report) Enabled() []ComponentResult {
	var out []ComponentResult
	for _, cr := range r.Components {
		if cr.Enabled {
			out = append(out, cr)
		}
	}
	return out
}
