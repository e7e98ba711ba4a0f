package model

import "fmt"

// SuppressPrefix is the comment prefix applied to every line of a
// suppressed region. Stripping it restores the original line bytes.
const SuppressPrefix = "# "

// Profile represents a mutually exclusive base image choice.
// Exactly one profile region is active in any generated Dockerfile.
type Profile string

const (
	// ProfileUbuntu is the Ubuntu base image profile.
	ProfileUbuntu Profile = "ubuntu"
	// ProfileAlpine is the Alpine base image profile.
	ProfileAlpine Profile = "alpine"
)

// Profiles returns all known profiles in declaration order.
func Profiles() []Profile {
	return []Profile{ProfileUbuntu, ProfileAlpine}
}

// ParseProfile converts a string to a Profile.
func ParseProfile(s string) (Profile, error) {
	for _, p := range Profiles() {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown base profile: %q (valid: ubuntu, alpine)", s)
}

// Shell returns the login shell written into the CMD line for the profile.
func (p Profile) Shell() string {
	if p == ProfileAlpine {
		return "/bin/ash"
	}
	return "/bin/bash"
}

// Component represents an independently toggleable language toolchain.
type Component string

const (
	// ComponentGolang is the Go toolchain component.
	ComponentGolang Component = "golang"
	// ComponentRust is the Rust toolchain component.
	ComponentRust Component = "rust"
	// ComponentPython is the Python toolchain component.
	ComponentPython Component = "python"
	// ComponentNodeJS is the Node.js toolchain component.
	ComponentNodeJS Component = "nodejs"
	// ComponentJava is the Java toolchain component.
	ComponentJava Component = "java"
)

// Components returns all known components in template order.
func Components() []Component {
	return []Component{
		ComponentGolang,
		ComponentRust,
		ComponentPython,
		ComponentNodeJS,
		ComponentJava,
	}
}

// FlagKey returns the ARG key holding the component's enable flag
// (e.g. INSTALL_GOLANG).
func (c Component) FlagKey() string {
	switch c {
	case ComponentGolang:
		return "INSTALL_GOLANG"
	case ComponentRust:
		return "INSTALL_RUST"
	case ComponentPython:
		return "INSTALL_PYTHON"
	case ComponentNodeJS:
		return "INSTALL_NODEJS"
	case ComponentJava:
		return "INSTALL_JAVA"
	}
	return ""
}

// VersionKey returns the ARG key holding the component's version, or
// an empty string if the component has no version parameter.
func (c Component) VersionKey() string {
	switch c {
	case ComponentGolang:
		return "GO_VERSION"
	case ComponentNodeJS:
		return "NODE_MAJOR"
	case ComponentJava:
		return "JAVA_VERSION"
	}
	return ""
}

// DisplayName returns the human-readable component name used in
// summaries and prompts.
func (c Component) DisplayName() string {
	switch c {
	case ComponentGolang:
		return "Go"
	case ComponentRust:
		return "Rust"
	case ComponentPython:
		return "Python"
	case ComponentNodeJS:
		return "Node.js"
	case ComponentJava:
		return "Java"
	}
	return string(c)
}

// ComponentByFlagKey returns the component owning the given ARG flag
// key (e.g. INSTALL_GOLANG -> golang). The second return value is
// false if no component owns the key.
func ComponentByFlagKey(key string) (Component, bool) {
	for _, c := range Components() {
		if c.FlagKey() == key {
			return c, true
		}
	}
	return "", false
}

// RegionKind identifies what a region belongs to.
type RegionKind int

const (
	// RegionProfile is a base image block (FROM line plus setup commands).
	RegionProfile RegionKind = iota
	// RegionComponent is a component install block (RUN if ... fi).
	RegionComponent
)

// Region is a contiguous span of template lines belonging to one
// profile or one component. Start and End are inclusive line indexes.
type Region struct {
	// Kind is the region kind.
	Kind RegionKind
	// Profile is set when Kind is RegionProfile.
	Profile Profile
	// Component is set when Kind is RegionComponent.
	Component Component
	// Start is the first line index of the region.
	Start int
	// End is the last line index of the region.
	End int
}
