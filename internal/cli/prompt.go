package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tacogips/dockergen/internal/config"
	"github.com/tacogips/dockergen/internal/template/model"
)

// promptForOptions interactively prompts for the base profile, the
// components to include, and their versions. Config values seed the
// prompt defaults.
func promptForOptions(cfg *config.Config, defaultProfile model.Profile) (model.OptionSet, error) {
	fmt.Println()
	fmt.Println("Please choose the Dockerfile options:")
	fmt.Println()

	profile, err := promptProfile(defaultProfile)
	if err != nil {
		return model.OptionSet{}, err
	}

	opts := model.NewOptionSet(profile)

	picked, err := promptComponents()
	if err != nil {
		return model.OptionSet{}, err
	}

	for _, component := range picked {
		version := ""
		if component.VersionKey() != "" {
			version, err = promptVersion(component, cfg.VersionFor(component))
			if err != nil {
				return model.OptionSet{}, err
			}
		}
		opts.Enable(component, version)
	}

	return opts, nil
}

// promptProfile prompts for the base OS profile.
func promptProfile(defaultProfile model.Profile) (model.Profile, error) {
	options := make([]string, 0, len(model.Profiles()))
	for _, p := range model.Profiles() {
		options = append(options, string(p))
	}

	var answer string
	prompt := &survey.Select{
		Message: "Base OS:",
		Options: options,
		Default: string(defaultProfile),
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}

	return model.ParseProfile(answer)
}

// promptComponents prompts for the language toolchains to include.
func promptComponents() ([]model.Component, error) {
	names := make([]string, 0, len(model.Components()))
	byName := make(map[string]model.Component, len(model.Components()))
	for _, c := range model.Components() {
		names = append(names, c.DisplayName())
		byName[c.DisplayName()] = c
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message: "Languages to include:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}

	components := make([]model.Component, 0, len(picked))
	for _, name := range picked {
		components = append(components, byName[name])
	}
	return components, nil
}

// promptVersion prompts for a component version with the config default.
func promptVersion(component model.Component, defaultVersion string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s version:", component.DisplayName()),
		Default: defaultVersion,
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(versionValidator)); err != nil {
		return "", err
	}
	return answer, nil
}

// versionValidator adapts ValidateVersion for survey. Empty input is
// allowed; the prompt default fills it in.
func versionValidator(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if str == "" {
		return nil
	}
	return ValidateVersion(str)
}
