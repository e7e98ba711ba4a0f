package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tacogips/dockergen/internal/app"
	"github.com/tacogips/dockergen/internal/template/model"
)

const fixtureTemplate = "Dockerfile-Template"

// generate runs the full workflow against the fixture template.
func generate(t *testing.T, opts model.OptionSet) (string, *model.Report) {
	t.Helper()

	tempDir := t.TempDir()
	templatePath := copyFixtureToTemp(t, fixtureTemplate, tempDir)
	outputPath := filepath.Join(tempDir, "Dockerfile")

	report, err := app.Generate(context.Background(), app.GenerateOptions{
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		Options:      opts,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	return readOutput(t, outputPath), report
}

func TestGenerateUbuntuWithPython(t *testing.T) {
	opts := model.NewOptionSet(model.ProfileUbuntu)
	opts.Enable(model.ComponentPython, "")

	output, report := generate(t, opts)

	assertContains(t, output, "FROM ubuntu:22.04")
	assertContains(t, output, "# FROM alpine:latest")
	assertContains(t, output, "ARG INSTALL_PYTHON=true")
	assertContains(t, output, "ARG INSTALL_GOLANG=false")
	assertContains(t, output, "ARG INSTALL_RUST=false")
	assertContains(t, output, "ARG INSTALL_NODEJS=false")
	assertContains(t, output, "ARG INSTALL_JAVA=false")
	assertContains(t, output, `CMD ["/bin/bash"]`)

	if !report.ProfileApplied {
		t.Error("ubuntu base should have been applied")
	}
	if got := len(report.Enabled()); got != 1 {
		t.Errorf("expected 1 enabled component, got %d", got)
	}
}

func TestGenerateAlpineWithGolangAndNodeJS(t *testing.T) {
	opts := model.NewOptionSet(model.ProfileAlpine)
	opts.Enable(model.ComponentGolang, "1.22.2")
	opts.Enable(model.ComponentNodeJS, "20")

	output, report := generate(t, opts)

	assertContains(t, output, "FROM alpine:latest")
	assertContains(t, output, "# FROM ubuntu:22.04")
	assertContains(t, output, "ARG INSTALL_GOLANG=true")
	assertContains(t, output, "ARG GO_VERSION=1.22.2")
	assertContains(t, output, "ARG INSTALL_NODEJS=true")
	assertContains(t, output, "ARG NODE_MAJOR=20")
	assertContains(t, output, `CMD ["/bin/ash"]`)
	assertNotContains(t, output, `CMD ["/bin/bash"]`)

	if got := len(report.Enabled()); got != 2 {
		t.Errorf("expected 2 enabled components, got %d", got)
	}
}

func TestGenerateAllLanguages(t *testing.T) {
	opts := model.NewOptionSet(model.ProfileUbuntu)
	for _, c := range model.Components() {
		version := ""
		switch c {
		case model.ComponentGolang:
			version = "1.22.2"
		case model.ComponentNodeJS:
			version = "20"
		case model.ComponentJava:
			version = "17"
		}
		opts.Enable(c, version)
	}

	output, report := generate(t, opts)

	for _, c := range model.Components() {
		assertContains(t, output, "ARG "+c.FlagKey()+"=true")
	}
	for _, result := range report.Components {
		if !result.Matched() {
			t.Errorf("%s request did not match the template", result.Component.DisplayName())
		}
	}
}

func TestGenerateCustomVersions(t *testing.T) {
	opts := model.NewOptionSet(model.ProfileUbuntu)
	opts.Enable(model.ComponentGolang, "1.21.0")
	opts.Enable(model.ComponentNodeJS, "18")
	opts.Enable(model.ComponentJava, "21")

	output, _ := generate(t, opts)

	assertContains(t, output, "ARG GO_VERSION=1.21.0")
	assertContains(t, output, "ARG NODE_MAJOR=18")
	assertContains(t, output, "ARG JAVA_VERSION=21")
	assertNotContains(t, output, "ARG GO_VERSION=1.22.2")

	// Version values elsewhere in the template must not be rewritten
	assertContains(t, output, `go${GO_VERSION}.linux-amd64.tar.gz`)
	assertContains(t, output, `setup_${NODE_MAJOR}.x`)
}

func TestGenerateNoLanguages(t *testing.T) {
	opts := model.NewOptionSet(model.ProfileUbuntu)

	output, report := generate(t, opts)

	for _, c := range model.Components() {
		assertContains(t, output, "ARG "+c.FlagKey()+"=false")
	}
	if got := len(report.Enabled()); got != 0 {
		t.Errorf("expected no enabled components, got %d", got)
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	templatePath := copyFixtureToTemp(t, fixtureTemplate, tempDir)

	opts := model.NewOptionSet(model.ProfileAlpine)
	opts.Enable(model.ComponentRust, "")

	firstOut := filepath.Join(tempDir, "Dockerfile.alpine")
	if _, err := app.Generate(context.Background(), app.GenerateOptions{
		TemplatePath: templatePath,
		OutputPath:   firstOut,
		Options:      opts,
	}); err != nil {
		t.Fatalf("first generate failed: %v", err)
	}

	// Re-running against the own output must be a fixed point
	secondOut := filepath.Join(tempDir, "Dockerfile.again")
	if _, err := app.Generate(context.Background(), app.GenerateOptions{
		TemplatePath: firstOut,
		OutputPath:   secondOut,
		Options:      opts,
	}); err != nil {
		t.Fatalf("second generate failed: %v", err)
	}

	first := readOutput(t, firstOut)
	second := readOutput(t, secondOut)
	if first != second {
		t.Errorf("re-run changed the output:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestGenerateToggleBackRestoresOriginal(t *testing.T) {
	tempDir := t.TempDir()
	templatePath := copyFixtureToTemp(t, fixtureTemplate, tempDir)
	original := readOutput(t, templatePath)

	// The fixture ships with ubuntu active and everything enabled at
	// default versions; request those same options after a detour
	// through alpine and the bytes must come back identical.
	fixtureOpts := model.NewOptionSet(model.ProfileUbuntu)
	fixtureOpts.Enable(model.ComponentGolang, "1.22.2")
	fixtureOpts.Enable(model.ComponentRust, "")
	fixtureOpts.Enable(model.ComponentPython, "")
	fixtureOpts.Enable(model.ComponentNodeJS, "20")
	fixtureOpts.Enable(model.ComponentJava, "17")

	alpineOpts := fixtureOpts
	alpineOpts.Profile = model.ProfileAlpine

	alpineOut := filepath.Join(tempDir, "Dockerfile.alpine")
	if _, err := app.Generate(context.Background(), app.GenerateOptions{
		TemplatePath: templatePath,
		OutputPath:   alpineOut,
		Options:      alpineOpts,
	}); err != nil {
		t.Fatalf("alpine generate failed: %v", err)
	}

	restoredOut := filepath.Join(tempDir, "Dockerfile.restored")
	if _, err := app.Generate(context.Background(), app.GenerateOptions{
		TemplatePath: alpineOut,
		OutputPath:   restoredOut,
		Options:      fixtureOpts,
	}); err != nil {
		t.Fatalf("restore generate failed: %v", err)
	}

	restored := readOutput(t, restoredOut)
	if restored != original {
		t.Errorf("toggle round trip did not restore the template:\noriginal:\n%s\nrestored:\n%s", original, restored)
	}
}
