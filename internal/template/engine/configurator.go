package engine

import (
	"strconv"

	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/template/model"
)

// ConfigureComponent rewrites one component's markers to match the
// requested option:
//
//  1. the enable flag gets the requested boolean's literal; the
//     template's pre-existing default is never reused, so disabling a
//     component that defaults to enabled works;
//  2. the version assignment gets the requested version, when the
//     component has a version key, is enabled, and a version was given;
//  3. the install block is activated or suppressed to match Enabled.
//
// Every marker is qualified by the component's own keys, so
// configuring one component never touches another's lines. Missing
// markers are no-ops recorded in the returned result.
func ConfigureComponent(doc *model.Document, c model.Component, opt model.ComponentOption) model.ComponentResult {
	result := model.ComponentResult{
		Component: c,
		Enabled:   opt.Enabled,
		Version:   opt.Version,
	}

	result.FlagApplied = doc.SetAssignmentValue(c.FlagKey(), strconv.FormatBool(opt.Enabled))

	if key := c.VersionKey(); key != "" && opt.Enabled && opt.Version != "" {
		result.VersionApplied = doc.SetAssignmentValue(key, opt.Version)
	}

	if region := doc.ComponentRegion(c); region != nil {
		doc.SetRegionState(region, opt.Enabled)
		result.BlockApplied = true
	}

	debug.Debug("[engine] component %s: enabled=%t flag=%t version=%t block=%t",
		c, opt.Enabled, result.FlagApplied, result.VersionApplied, result.BlockApplied)
	return result
}
