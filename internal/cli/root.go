package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/dockergen/internal/debug"
	"github.com/tacogips/dockergen/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dockergen",
	Short: "Dockerfile generator",
	Long: `dockergen creates customized Dockerfiles from a template.

Use "dockergen generate" to pick a base image (ubuntu or alpine) and
the language toolchains to include. Each toolchain has an enable flag
and, where it applies, a version override. The template's markers are
toggled and its ARG values rewritten; everything else is left alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation gets the examples screen instead of usage
		printExamples()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErrorMsg(err.Error())
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// printExamples prints a short guided tour for first-time users.
func printExamples() {
	printInfo("")
	printInfo("📦 Dockerfile Generator 📦")
	printInfo("=========================")
	printInfo("This tool helps you create customized Dockerfiles for your projects.")
	printInfo("")
	printInfo("Examples:")
	printInfo("  1. Create a Ubuntu-based Dockerfile with Python:")
	printInfo("     dockergen generate --base ubuntu --python")
	printInfo("")
	printInfo("  2. Create an Alpine-based Dockerfile with Go and Node.js:")
	printInfo("     dockergen generate --base alpine --golang --nodejs")
	printInfo("")
	printInfo("  3. Create a Dockerfile with all languages:")
	printInfo("     dockergen generate --all")
	printInfo("")
	printInfo("  4. Specify custom versions and output file:")
	printInfo("     dockergen generate --golang --go-version 1.21.0 --nodejs --node-version 18 --output MyDockerfile")
	printInfo("")
	printInfo("For more options, run: dockergen generate --help")
	printInfo("=========================")
	printInfo("")
}
