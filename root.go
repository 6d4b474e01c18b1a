package main

import (
	"github.com/spf13/cobra"
	"github.com/williamokano/arkv/pkg/logger"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Configuration flags.
	configFile  string
	interactive bool
	verbose     bool
	quiet       bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "arkv [file-or-folder]",
	Short: "Archive files to remote servers via SFTP",
	Long: `arkv uploads a file or folder to one or more configured remote
servers over SFTP, in parallel, and reports per-destination throughput.

Examples:
  arkv cool-picture.png              Upload a single file
  arkv my_files/tuesday/             Upload a folder and its contents
  arkv document.pdf --interactive    Choose destination interactively

Get started by running: arkv setup`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE:    runUpload,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ~/.config/arkv/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "select destination interactively")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(validateCmd)
}

func setupLogging() {
	level := "info"
	switch {
	case quiet:
		level = "error"
	case verbose:
		level = "debug"
	}

	format := "console"
	if jsonOutput {
		format = "json"
	}

	logger.Init(level, format)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
