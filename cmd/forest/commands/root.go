package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/panyam/forest/loader"
	"github.com/panyam/forest/runtime"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	colorMode  string
	strictMode bool

	// settings resolved before any subcommand runs
	settings = DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "forest",
	Short: "forest runs programs that build and print weighted trees",
	Long: `forest interprets a small language for declaring named, weighted tree
nodes, linking them to parents, and printing the resulting trees.  Loops
over integer ranges and string lists generate nodes in bulk.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: $FOREST_CONFIG or ./forest.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Colored output: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Exit with an error if the program reported any runtime errors")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

func resolveSettings(cmd *cobra.Command, args []string) error {
	cfg := DefaultConfig()
	if err := cfg.FromEnv(); err != nil {
		return err
	}

	path, required := configPath, cmd.Flags().Changed("config")
	if path == "" {
		if path = os.Getenv(ConfigEnvVar); path != "" {
			required = true
		} else {
			path = DefaultConfigFile
		}
	}
	if err := cfg.LoadFile(path, required); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("color") {
		cfg.Color = colorMode
	}
	if flags.Changed("strict") {
		cfg.Strict = strictMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runtime.SetLogLevel(cfg.Level())
	runtime.SetLogOutput(cmd.ErrOrStderr())
	color.NoColor = !cfg.UseColor(os.Stderr)
	settings = cfg
	runtime.Debug("settings: %+v", settings)
	return nil
}

// writeOutput writes content to path, or to the command's output when
// path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// newLoader builds a loader reading stdin from the command's input.
func newLoader(cmd *cobra.Command) *loader.Loader {
	resolver := loader.NewDefaultFileResolver()
	resolver.Stdin = cmd.InOrStdin()
	return loader.NewLoader(nil, resolver)
}
