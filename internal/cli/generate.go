package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tacogips/dockergen/internal/app"
	"github.com/tacogips/dockergen/internal/config"
	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/template/generator"
	"github.com/tacogips/dockergen/internal/template/model"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Dockerfile from the template",
	Long: `Generate a customized Dockerfile from a template.

Pick a base OS with --base and enable language toolchains with their
flags. Flags override values from the config file; anything left unset
falls back to the config defaults. With no selection flags on a
terminal, options are chosen interactively.

Examples:
  dockergen generate --base ubuntu --python
  dockergen generate --base alpine --golang --nodejs
  dockergen generate --all
  dockergen generate --golang --go-version 1.21.0 --output MyDockerfile`,
	RunE: runGenerate,
}

// Command-specific flags for generate
var (
	generateBase        string
	generateGolang      bool
	generateGoVersion   string
	generateRust        bool
	generatePython      bool
	generateNodeJS      bool
	generateNodeVersion string
	generateJava        bool
	generateJavaVersion string
	generateAll         bool
	generateTemplate    string
	generateOutput      string
	generateConfig      string
	generateInteractive bool
)

func init() {
	// Flags for generate
	generateCmd.Flags().StringVarP(&generateBase, FlagBase, "b", "", DescBase)
	generateCmd.Flags().BoolVar(&generateGolang, FlagGolang, false, DescGolang)
	generateCmd.Flags().StringVar(&generateGoVersion, FlagGoVersion, "", DescGoVersion)
	generateCmd.Flags().BoolVar(&generateRust, FlagRust, false, DescRust)
	generateCmd.Flags().BoolVar(&generatePython, FlagPython, false, DescPython)
	generateCmd.Flags().BoolVar(&generateNodeJS, FlagNodeJS, false, DescNodeJS)
	generateCmd.Flags().StringVar(&generateNodeVersion, FlagNodeVersion, "", DescNodeVersion)
	generateCmd.Flags().BoolVar(&generateJava, FlagJava, false, DescJava)
	generateCmd.Flags().StringVar(&generateJavaVersion, FlagJavaVersion, "", DescJavaVersion)
	generateCmd.Flags().BoolVarP(&generateAll, FlagAll, "a", false, DescAll)
	generateCmd.Flags().StringVarP(&generateTemplate, FlagTemplate, "t", "", DescTemplate)
	generateCmd.Flags().StringVarP(&generateOutput, FlagOutput, "o", "", DescOutput)
	generateCmd.Flags().StringVarP(&generateConfig, FlagConfig, "c", "", DescConfig)
	generateCmd.Flags().BoolVarP(&generateInteractive, FlagInteractive, "i", false, DescInteractive)
}

// componentFlag maps a component to its enable flag name and value.
type componentFlag struct {
	component model.Component
	flag      string
	enabled   *bool
}

// componentFlags returns the enable flag bindings in template order.
func componentFlags() []componentFlag {
	return []componentFlag{
		{model.ComponentGolang, FlagGolang, &generateGolang},
		{model.ComponentRust, FlagRust, &generateRust},
		{model.ComponentPython, FlagPython, &generatePython},
		{model.ComponentNodeJS, FlagNodeJS, &generateNodeJS},
		{model.ComponentJava, FlagJava, &generateJava},
	}
}

// versionFlagFor returns the version flag name and value for a component,
// or empty strings for components without a version parameter.
func versionFlagFor(component model.Component) (string, string) {
	switch component {
	case model.ComponentGolang:
		return FlagGoVersion, generateGoVersion
	case model.ComponentNodeJS:
		return FlagNodeVersion, generateNodeVersion
	case model.ComponentJava:
		return FlagJavaVersion, generateJavaVersion
	}
	return "", ""
}

func runGenerate(cmd *cobra.Command, args []string) error {
	debug.DebugSection("[cli] generate command start")

	// Load configuration
	configPath := generateConfig
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	loader := config.NewLoader()
	cfg, err := loader.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}
	debug.DebugValue("[cli] config path", configPath)

	applyOutputConfig(cmd, cfg)

	// Flags win over config values
	templatePath := cfg.Template.Path
	if cmd.Flags().Changed(FlagTemplate) {
		templatePath = generateTemplate
	}
	outputPath := cfg.Defaults.Output
	if cmd.Flags().Changed(FlagOutput) {
		outputPath = generateOutput
	}
	if err := ValidateOutputPath(outputPath); err != nil {
		return err
	}

	base := cfg.Defaults.Base
	if cmd.Flags().Changed(FlagBase) {
		base = generateBase
	}
	profile, err := model.ParseProfile(base)
	if err != nil {
		return err
	}

	var opts model.OptionSet
	if useInteractive(cmd) {
		opts, err = promptForOptions(cfg, profile)
	} else {
		opts, err = buildOptionSet(cmd, cfg, profile)
	}
	if err != nil {
		return err
	}

	warnIfOverwriting(outputPath)

	report, err := app.Generate(cmd.Context(), app.GenerateOptions{
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		Options:      opts,
	})
	if err != nil {
		return err
	}

	printSummary(report, outputPath)
	return nil
}

// applyOutputConfig seeds the global output state from the config's
// output section. Flags given on the command line win over the config.
func applyOutputConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed(FlagQuiet) {
		globalQuiet = cfg.Output.Quiet
	}
	if !cmd.Flags().Changed(FlagNoColor) {
		globalNoColor = !cfg.Output.Color
		debug.SetNoColor(globalNoColor)
	}
}

// useInteractive reports whether options should be prompted for.
// Explicit --interactive always prompts; otherwise prompting happens
// only when no selection flag was given and stdin is a terminal.
func useInteractive(cmd *cobra.Command) bool {
	if generateInteractive {
		return true
	}
	if cmd.Flags().Changed(FlagAll) {
		return false
	}
	for _, cf := range componentFlags() {
		if cmd.Flags().Changed(cf.flag) {
			return false
		}
	}
	return isatty.IsTerminal(os.Stdin.Fd())
}

// buildOptionSet resolves the component selection from flags and config.
func buildOptionSet(cmd *cobra.Command, cfg *config.Config, profile model.Profile) (model.OptionSet, error) {
	opts := model.NewOptionSet(profile)

	for _, cf := range componentFlags() {
		enabled := generateAll || *cf.enabled
		if !enabled {
			opts.Disable(cf.component)
			continue
		}

		version := cfg.VersionFor(cf.component)
		if flagName, flagValue := versionFlagFor(cf.component); flagName != "" && cmd.Flags().Changed(flagName) {
			if err := ValidateVersion(flagValue); err != nil {
				return model.OptionSet{}, err
			}
			version = flagValue
		}
		opts.Enable(cf.component, version)
	}

	return opts, nil
}

// warnIfOverwriting tells the user when an existing output file is
// about to be replaced. Re-running over an earlier result is the
// normal workflow, so this is a notice rather than an error.
func warnIfOverwriting(path string) {
	if generator.NewFileWriter().Exists(path) {
		printInfo(fmt.Sprintf("Overwriting existing %s", path))
	}
}

// printSummary prints the generation result and follow-up instructions.
func printSummary(report *model.Report, outputPath string) {
	printSuccess(fmt.Sprintf("Dockerfile generated at %s", outputPath))
	printInfo(fmt.Sprintf("  Base OS: %s", capitalize(string(report.Profile))))

	enabled := report.Enabled()
	if len(enabled) == 0 {
		printInfo("  No language toolchains were enabled.")
	} else {
		names := make([]string, 0, len(enabled))
		for _, result := range enabled {
			name := result.Component.DisplayName()
			if result.Version != "" {
				name += " " + result.Version
			}
			names = append(names, name)
		}
		printInfo(fmt.Sprintf("  Included languages: %s", strings.Join(names, ", ")))
	}

	if !report.ProfileApplied {
		printWarning(fmt.Sprintf("no base image marker for %s found in the template", report.Profile))
	}
	for _, component := range report.Unmatched() {
		printWarning(fmt.Sprintf("no %s marker found in the template; section left unchanged", component.DisplayName()))
	}

	printInfo("")
	printInfo("Next steps:")
	printInfo("  " + shellquote.Join("docker", "build", "-t", "my-image", "-f", outputPath, "."))
}

// capitalize upper-cases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
