package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	animalName    string
	useJSON       bool
	apiKey        string
	skinType      string
	listSkinTypes bool
	templatePath  string
	dataPath      string
	outputPath    string
	settingsPath  string
	markdownOut   bool
	noInput       bool
	debugMode     bool
)

var rootCmd = &cobra.Command{
	Use:           "animals-web-generator",
	Short:         "Generate an HTML page of animals",
	Long:          `Fetches animals from the API-Ninjas animals API or a local data file and renders them into an HTML template, optionally filtered by skin type.`,
	Args:          usageArgs(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally
		if debugMode {
			SetDebugMode(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get API key
		if apiKey == "" && !useJSON {
			apiKey = os.Getenv("API_KEY")
		}

		// Build config overrides from flags the user actually set
		overrides := &ConfigOverrides{}
		flags := cmd.Flags()
		if flags.Changed("settings") {
			overrides.SettingsPath = &settingsPath
		}
		if flags.Changed("template") {
			overrides.TemplatePath = &templatePath
		}
		if flags.Changed("data") {
			overrides.DataPath = &dataPath
		}
		if flags.Changed("output") {
			overrides.OutputPath = &outputPath
		}

		cfg, err := NewConfig(apiKey, useJSON, overrides)
		if err != nil {
			return err
		}
		cfg.Markdown = markdownOut

		var input InputProvider = NewStdinPrompter(os.Stdin, os.Stdout)
		if noInput {
			input = staticInput{name: animalName}
		}

		opts := RunOptions{
			AnimalName:    animalName,
			ListSkinTypes: listSkinTypes,
		}
		if flags.Changed("skin-type") {
			opts.SkinType = &skinType
		}

		result, err := NewPageGenerator(cfg, input, os.Stdout).Generate(opts)
		if err != nil {
			return err
		}
		if result != nil {
			fmt.Println(updatedMessage(result.OutputPath))
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default settings and template to the current directory",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := ensureConfigExists(".")
		for _, path := range created {
			fmt.Printf("Created %s\n", path)
		}
		if err != nil {
			return err
		}
		if len(created) == 0 {
			fmt.Println("Nothing to do: settings and template already exist.")
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&animalName, "animal-name", "", "Animal to look up (prompted for in API mode when empty)")
	flags.BoolVar(&useJSON, "use-json", false, "Read animals from the local data file instead of the API")
	flags.StringVar(&apiKey, "api-key", "", "API-Ninjas API key (default $API_KEY)")
	flags.StringVar(&skinType, "skin-type", "", `Filter by skin type, "All" for no filter (skips interactive prompt)`)
	flags.BoolVar(&listSkinTypes, "list-skin-types", false, "List available skin types and exit")
	flags.StringVar(&templatePath, "template", defaultTemplatePath, "Path to HTML template")
	flags.StringVar(&dataPath, "data", defaultDataPath, "Path to animals data file (JSON or YAML)")
	flags.StringVar(&outputPath, "output", defaultOutputPath, "Output HTML file path")
	flags.BoolVar(&markdownOut, "markdown", false, "Also write a Markdown version of the page")
	flags.BoolVar(&noInput, "no-input", false, "Never prompt; use flag values and defaults")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", getConfigPath("settings.yaml"), "Path to settings file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.SetFlagErrorFunc(usageError)
	rootCmd.AddCommand(initCmd)
}

// updatedMessage reports the written page by file name
func updatedMessage(outputPath string) string {
	return filepath.Base(outputPath) + " updated."
}

// usageError marks command-line mistakes so they exit with status 2
func usageError(cmd *cobra.Command, err error) error {
	return newError("parse arguments", KindInvalidInput, "", err)
}

// usageArgs wraps a positional-argument validator with usageError
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(ExitCode(err))
	}
}
