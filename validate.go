package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/williamokano/arkv/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long:  `Validate the configuration file without uploading anything.`,
	RunE:  validateConfig,
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Error().Str("file", cfgPath).Msg("config file not found")
		return fmt.Errorf("config file not found: %s", cfgPath)
	}

	if err := config.Validate(cfgPath); err != nil {
		log.Error().Err(err).Msg("configuration validation failed")
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	fmt.Println("Configuration is valid!")
	fmt.Println()
	fmt.Printf("SSH key: %s\n", cfg.SSHKeyPath)
	fmt.Printf("Destinations: %d\n", len(cfg.Destinations))
	for _, d := range cfg.Destinations {
		auth := "key"
		if d.Password != "" {
			auth = "password"
		}
		fmt.Printf("  %s: %s@%s:%d -> %s (%s auth)\n",
			d.Name, d.Username, d.Host, d.GetPort(), d.RemotePath, auth)
	}

	return nil
}
