package engine

import (
	"context"

	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/template/model"
)

// Engine applies a resolved option set to a parsed template document.
type Engine interface {
	// Apply runs the profile toggler once and the component
	// configurator once per component, mutating doc in place. The
	// returned report records which requested options actually matched
	// a marker in the template.
	Apply(ctx context.Context, doc *model.Document, opts model.OptionSet) (*model.Report, error)
}

// DefaultEngine implements Engine.
type DefaultEngine struct{}

// NewEngine creates a new DefaultEngine.
func NewEngine() Engine {
	return &DefaultEngine{}
}

// Apply runs the full transformation pipeline. Components are
// processed in template order; because every component's rewrites are
// confined to its own lines, any other order produces the same bytes.
func (e *DefaultEngine) Apply(ctx context.Context, doc *model.Document, opts model.OptionSet) (*model.Report, error) {
	debug.DebugSection("[engine] apply option set")
	debug.DebugValue("[engine] profile", opts.Profile)

	if _, err := model.ParseProfile(string(opts.Profile)); err != nil {
		return nil, err
	}

	report := &model.Report{Profile: opts.Profile}
	report.ProfileApplied, report.ShellApplied = ApplyProfile(doc, opts.Profile)

	for _, c := range model.Components() {
		report.Components = append(report.Components, ConfigureComponent(doc, c, opts.Component(c)))
	}

	return report, nil
}
