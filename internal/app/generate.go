package app

import (
	"context"
	"fmt"

	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/template/engine"
	"github.com/tacogips/dockergen/internal/template/generator"
	"github.com/tacogips/dockergen/internal/template/model"
	"github.com/tacogips/dockergen/internal/template/parser"
	"github.com/tacogips/dockergen/internal/template/provider"
)

// GenerateOptions contains options for Dockerfile generation.
type GenerateOptions struct {
	// TemplatePath is the template location (file path or http(s) URL).
	TemplatePath string
	// OutputPath is the output file path.
	OutputPath string
	// Options is the resolved profile/component option set.
	Options model.OptionSet
}

// Generate transforms the template according to the option set and
// writes the result to the output path. The returned report records
// which requested options actually matched a marker in the template;
// unmatched requests are not errors but callers can surface them.
func Generate(ctx context.Context, opts GenerateOptions) (*model.Report, error) {
	debug.DebugSection("[app] Generate workflow start")
	debug.DebugValue("[app] TemplatePath", opts.TemplatePath)
	debug.DebugValue("[app] OutputPath", opts.OutputPath)
	debug.DebugValue("[app] Profile", opts.Options.Profile)

	if err := validateGenerateOptions(opts); err != nil {
		return nil, NewValidationError("invalid generation options", err)
	}

	// Read the template before touching anything else; a missing
	// template must fail without producing output.
	prov := provider.ForLocation(opts.TemplatePath)
	debug.Debug("[app] Using %s provider", prov.Name())
	raw, err := prov.Fetch(ctx, opts.TemplatePath)
	if err != nil {
		return nil, NewTemplateFetchError("failed to read template", err)
	}

	doc, err := parser.NewParser().Parse(ctx, raw)
	if err != nil {
		return nil, NewParseError("invalid template structure", err)
	}

	report, err := engine.NewEngine().Apply(ctx, doc, opts.Options)
	if err != nil {
		return nil, NewTransformError("failed to apply options", err)
	}

	if err := generator.NewFileWriter().WriteFile(opts.OutputPath, doc.Render()); err != nil {
		return nil, NewWriteError("failed to write output", err)
	}

	debug.Debug("[app] Generate complete: %s", opts.OutputPath)
	return report, nil
}

// validateGenerateOptions checks the options before any work happens.
func validateGenerateOptions(opts GenerateOptions) error {
	if opts.TemplatePath == "" {
		return fmt.Errorf("template path cannot be empty")
	}
	if opts.OutputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if _, err := model.ParseProfile(string(opts.Options.Profile)); err != nil {
		return err
	}
	return nil
}
