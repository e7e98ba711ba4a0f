package engine

import (
	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/template/model"
)

// ApplyProfile activates the chosen profile's region, suppresses every
// other profile's region, and rewrites the CMD line to the chosen
// profile's shell. A profile whose block is absent from the template
// is skipped; regionApplied reports whether the chosen profile's
// block was found, shellApplied whether a CMD line was found. Running
// the toggler again with the same profile on its own output changes
// nothing.
func ApplyProfile(doc *model.Document, profile model.Profile) (regionApplied, shellApplied bool) {
	for _, p := range model.Profiles() {
		region := doc.ProfileRegion(p)
		if region == nil {
			debug.Debug("[engine] no region for profile %s", p)
			continue
		}
		doc.SetRegionState(region, p == profile)
		if p == profile {
			regionApplied = true
		}
	}

	shellApplied = doc.SetShellCommand(profile.Shell())
	debug.Debug("[engine] profile %s: region=%t shell=%t", profile, regionApplied, shellApplied)
	return regionApplied, shellApplied
}
