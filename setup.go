package main

import (
	"github.com/spf13/cobra"
	"github.com/williamokano/arkv/pkg/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive setup wizard",
	Long: `Run the interactive setup wizard to configure the SSH key and the
remote destinations. Re-running it on an existing configuration lets you
add, edit or delete destinations, or start over.`,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	_, err = setup.Run(setup.NewDefaultPrompter(), cfgPath)
	return err
}
