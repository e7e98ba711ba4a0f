package model

import (
	"strings"
	"testing"
)

func docFromText(t *testing.T, text string) *Document {
	t.Helper()
	trailing := strings.HasSuffix(text, "\n")
	trimmed := text
	if trailing {
		trimmed = strings.TrimSuffix(text, "\n")
	}
	return NewDocument(strings.Split(trimmed, "\n"), trailing)
}

// TestRenderRoundTrip checks that an untouched document reproduces its
// input byte-for-byte.
func TestRenderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "with trailing newline", text: "FROM ubuntu:22.04\nRUN apt-get update\n"},
		{name: "without trailing newline", text: "FROM ubuntu:22.04\nRUN apt-get update"},
		{name: "blank lines preserved", text: "a\n\n\nb\n"},
		{name: "plain comments preserved", text: "# just a comment\nFROM ubuntu:22.04\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromText(t, tt.text)
			if got := string(doc.Render()); got != tt.text {
				t.Errorf("expected %q, got %q", tt.text, got)
			}
		})
	}
}

// TestSetRegionState checks toggling, idempotence, and byte-exact
// round trips.
func TestSetRegionState(t *testing.T) {
	text := "FROM alpine:latest\nRUN apk update && \\\n    apk add curl\n"
	doc := docFromText(t, text)
	region := Region{Kind: RegionProfile, Profile: ProfileAlpine, Start: 0, End: 2}
	if err := doc.AddRegion(region); err != nil {
		t.Fatalf("AddRegion failed: %v", err)
	}
	r := doc.ProfileRegion(ProfileAlpine)
	if r == nil {
		t.Fatal("profile region not found")
	}

	if !doc.RegionActive(r) {
		t.Error("region should start active")
	}

	doc.SetRegionState(r, false)
	if doc.RegionActive(r) {
		t.Error("region should be suppressed")
	}
	want := "# FROM alpine:latest\n# RUN apk update && \\\n#     apk add curl\n"
	if got := string(doc.Render()); got != want {
		t.Errorf("suppressed render mismatch:\nwant %q\ngot  %q", want, got)
	}

	// Suppressing again must not stack prefixes
	doc.SetRegionState(r, false)
	if got := string(doc.Render()); got != want {
		t.Errorf("suppress should be idempotent:\nwant %q\ngot  %q", want, got)
	}

	// Re-activating restores the original bytes
	doc.SetRegionState(r, true)
	if got := string(doc.Render()); got != text {
		t.Errorf("round trip mismatch:\nwant %q\ngot  %q", text, got)
	}

	// Activating an already-active region is a no-op
	doc.SetRegionState(r, true)
	if got := string(doc.Render()); got != text {
		t.Errorf("activate should be idempotent:\nwant %q\ngot  %q", text, got)
	}
}

// TestSetAssignmentValue checks that only the value token changes.
func TestSetAssignmentValue(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		key      string
		value    string
		expected string
	}{
		{
			name:     "flag rewrite",
			line:     "ARG INSTALL_GOLANG=true",
			key:      "INSTALL_GOLANG",
			value:    "false",
			expected: "ARG INSTALL_GOLANG=false",
		},
		{
			name:     "version rewrite",
			line:     "ARG GO_VERSION=1.22.2",
			key:      "GO_VERSION",
			value:    "1.21.0",
			expected: "ARG GO_VERSION=1.21.0",
		},
		{
			name:     "same value is stable",
			line:     "ARG NODE_MAJOR=20",
			key:      "NODE_MAJOR",
			value:    "20",
			expected: "ARG NODE_MAJOR=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument([]string{tt.line}, true)
			if err := doc.AddAssignment(tt.key, 0); err != nil {
				t.Fatalf("AddAssignment failed: %v", err)
			}
			if !doc.SetAssignmentValue(tt.key, tt.value) {
				t.Fatal("SetAssignmentValue reported no match")
			}
			if got := doc.Line(0); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSetAssignmentValueMissingKey(t *testing.T) {
	doc := NewDocument([]string{"ARG INSTALL_RUST=true"}, true)
	if doc.SetAssignmentValue("INSTALL_RUST", "false") {
		t.Error("unregistered key should not match")
	}
}

func TestAddAssignmentDuplicate(t *testing.T) {
	doc := NewDocument([]string{"ARG GO_VERSION=1.22.2", "ARG GO_VERSION=1.21.0"}, true)
	if err := doc.AddAssignment("GO_VERSION", 0); err != nil {
		t.Fatalf("first AddAssignment failed: %v", err)
	}
	if err := doc.AddAssignment("GO_VERSION", 1); err == nil {
		t.Error("duplicate assignment should fail")
	}
}

func TestSetShellCommand(t *testing.T) {
	doc := NewDocument([]string{`CMD ["/bin/bash"]`}, true)
	doc.SetShellLine(0)

	if !doc.SetShellCommand(ProfileAlpine.Shell()) {
		t.Fatal("SetShellCommand reported no CMD line")
	}
	if got := doc.Line(0); got != `CMD ["/bin/ash"]` {
		t.Errorf("expected ash CMD, got %q", got)
	}

	// No CMD line registered
	empty := NewDocument([]string{"FROM ubuntu:22.04"}, true)
	if empty.SetShellCommand("/bin/bash") {
		t.Error("expected false for document without CMD line")
	}
}

func TestProfileShell(t *testing.T) {
	if ProfileUbuntu.Shell() != "/bin/bash" {
		t.Errorf("ubuntu shell mismatch: %s", ProfileUbuntu.Shell())
	}
	if ProfileAlpine.Shell() != "/bin/ash" {
		t.Errorf("alpine shell mismatch: %s", ProfileAlpine.Shell())
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input   string
		want    Profile
		wantErr bool
	}{
		{input: "ubuntu", want: ProfileUbuntu},
		{input: "alpine", want: ProfileAlpine},
		{input: "debian", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestComponentKeys(t *testing.T) {
	tests := []struct {
		component  Component
		flagKey    string
		versionKey string
	}{
		{ComponentGolang, "INSTALL_GOLANG", "GO_VERSION"},
		{ComponentRust, "INSTALL_RUST", ""},
		{ComponentPython, "INSTALL_PYTHON", ""},
		{ComponentNodeJS, "INSTALL_NODEJS", "NODE_MAJOR"},
		{ComponentJava, "INSTALL_JAVA", "JAVA_VERSION"},
	}

	for _, tt := range tests {
		t.Run(string(tt.component), func(t *testing.T) {
			if got := tt.component.FlagKey(); got != tt.flagKey {
				t.Errorf("flag key: expected %s, got %s", tt.flagKey, got)
			}
			if got := tt.component.VersionKey(); got != tt.versionKey {
				t.Errorf("version key: expected %s, got %s", tt.versionKey, got)
			}
			back, ok := ComponentByFlagKey(tt.flagKey)
			if !ok || back != tt.component {
				t.Errorf("ComponentByFlagKey(%s) = %v, %v", tt.flagKey, back, ok)
			}
		})
	}

	if _, ok := ComponentByFlagKey("INSTALL_COBOL"); ok {
		t.Error("unknown flag key should not resolve")
	}
}

func TestOptionSet(t *testing.T) {
	opts := NewOptionSet(ProfileUbuntu)
	opts.Enable(ComponentGolang, "1.21.0")
	opts.Enable(ComponentRust, "")
	opts.Disable(ComponentJava)

	if got := opts.Component(ComponentGolang); !got.Enabled || got.Version != "1.21.0" {
		t.Errorf("golang option mismatch: %+v", got)
	}
	if opts.Component(ComponentJava).Enabled {
		t.Error("java should be disabled")
	}
	// Unrequested components come back disabled
	if opts.Component(ComponentPython).Enabled {
		t.Error("python should default to disabled")
	}

	enabled := opts.EnabledComponents()
	if len(enabled) != 2 || enabled[0] != ComponentGolang || enabled[1] != ComponentRust {
		t.Errorf("unexpected enabled components: %v", enabled)
	}
}
