package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/williamokano/arkv/pkg/config"
)

// Run executes the setup wizard against the config file at cfgPath. When a
// configuration already exists the user chooses between adding, editing or
// deleting a destination, starting fresh, or cancelling.
func Run(p *Prompter, cfgPath string) (*config.Config, error) {
	existing, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return runFresh(p, cfgPath)
	}

	fmt.Fprintln(p.writer, "\nConfiguration already exists.")
	choice, err := p.Select("What would you like to do?", []string{
		"Add a new destination",
		"Edit an existing destination",
		"Delete a destination",
		"Start fresh (delete all and reconfigure)",
		"Cancel",
	})
	if err != nil {
		return nil, err
	}

	switch choice {
	case 0:
		return addDestination(p, existing, cfgPath)
	case 1:
		return editDestination(p, existing, cfgPath)
	case 2:
		return deleteDestination(p, existing, cfgPath)
	case 3:
		confirmed, err := p.Confirm("This will delete all your existing settings. Are you sure?", false)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			fmt.Fprintln(p.writer, "Cancelled.")
			return existing, nil
		}
		return runFresh(p, cfgPath)
	default:
		fmt.Fprintln(p.writer, "Cancelled.")
		return existing, nil
	}
}

func runFresh(p *Prompter, cfgPath string) (*config.Config, error) {
	fmt.Fprintln(p.writer, "\nWelcome to arkv! Let's get you set up.")

	keyPath, err := promptKeyPath(p)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.writer, "SSH key configured: %s\n\n", keyPath)

	cfg := &config.Config{SSHKeyPath: keyPath}

	for {
		fmt.Fprintln(p.writer, "Setting up a remote destination...")
		dest, err := promptDestination(p)
		if err != nil {
			return nil, err
		}
		cfg.Destinations = append(cfg.Destinations, *dest)

		more, err := p.Confirm("Add another destination?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	if err := config.Save(cfg, cfgPath); err != nil {
		return nil, err
	}
	fmt.Fprintln(p.writer, "Configuration saved! You're ready to use arkv.")

	return cfg, nil
}

func addDestination(p *Prompter, cfg *config.Config, cfgPath string) (*config.Config, error) {
	fmt.Fprintln(p.writer, "\nAdding a new destination...")

	dest, err := promptDestination(p)
	if err != nil {
		return nil, err
	}
	cfg.Destinations = append(cfg.Destinations, *dest)

	if err := config.Save(cfg, cfgPath); err != nil {
		return nil, err
	}
	fmt.Fprintln(p.writer, "Destination added!")

	return cfg, nil
}

func editDestination(p *Prompter, cfg *config.Config, cfgPath string) (*config.Config, error) {
	if len(cfg.Destinations) == 0 {
		fmt.Fprintln(p.writer, "No destinations configured.")
		return cfg, nil
	}

	idx, err := p.Select("Select destination to edit", destinationLabels(cfg))
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.writer, "\nEditing %s...\n", cfg.Destinations[idx].Name)
	dest, err := promptDestination(p)
	if err != nil {
		return nil, err
	}
	cfg.Destinations[idx] = *dest

	if err := config.Save(cfg, cfgPath); err != nil {
		return nil, err
	}
	fmt.Fprintln(p.writer, "Destination updated!")

	return cfg, nil
}

func deleteDestination(p *Prompter, cfg *config.Config, cfgPath string) (*config.Config, error) {
	if len(cfg.Destinations) == 0 {
		fmt.Fprintln(p.writer, "No destinations configured.")
		return cfg, nil
	}

	idx, err := p.Select("Select destination to delete", destinationLabels(cfg))
	if err != nil {
		return nil, err
	}

	name := cfg.Destinations[idx].Name
	confirmed, err := p.Confirm(fmt.Sprintf("Delete '%s'?", name), false)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		fmt.Fprintln(p.writer, "Cancelled.")
		return cfg, nil
	}

	cfg.Destinations = append(cfg.Destinations[:idx], cfg.Destinations[idx+1:]...)
	if err := config.Save(cfg, cfgPath); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.writer, "Destination '%s' deleted!\n", name)

	return cfg, nil
}

// SelectDestination asks the user to pick one of the configured
// destinations.
func SelectDestination(p *Prompter, cfg *config.Config) (*config.Destination, error) {
	if len(cfg.Destinations) == 0 {
		return nil, fmt.Errorf("no destinations configured")
	}

	idx, err := p.Select("Select destination", destinationLabels(cfg))
	if err != nil {
		return nil, err
	}
	return &cfg.Destinations[idx], nil
}

func destinationLabels(cfg *config.Config) []string {
	labels := make([]string, 0, len(cfg.Destinations))
	for _, d := range cfg.Destinations {
		labels = append(labels, fmt.Sprintf("%s (%s)", d.Name, d.Host))
	}
	return labels
}

func promptKeyPath(p *Prompter) (string, error) {
	defaultKey := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultKey = filepath.Join(home, ".ssh", "id_ed25519")
	}

	path, err := p.PromptWithDefault("Path to your SSH private key", defaultKey)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("SSH key not found at: %s", path)
	}

	return path, nil
}

func promptDestination(p *Prompter) (*config.Destination, error) {
	name, err := p.Prompt("Name for this connection: ")
	if err != nil {
		return nil, err
	}

	host, err := p.Prompt("Server address (e.g., example.com or 192.168.1.1): ")
	if err != nil {
		return nil, err
	}

	portStr, err := p.PromptWithDefault("SSH port", "22")
	if err != nil {
		return nil, err
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid port: %s", portStr)
	}

	username, err := p.Prompt("Username: ")
	if err != nil {
		return nil, err
	}

	remotePath, err := p.Prompt("Remote folder path (e.g., /home/user/uploads): ")
	if err != nil {
		return nil, err
	}

	usePassword, err := p.Confirm("Use password authentication? (otherwise SSH key will be used)", false)
	if err != nil {
		return nil, err
	}

	password := ""
	if usePassword {
		password, err = p.PromptPassword("Password: ")
		if err != nil {
			return nil, err
		}
	}

	return &config.Destination{
		Name:       name,
		Host:       host,
		Port:       uint16(port),
		Username:   username,
		RemotePath: remotePath,
		Password:   password,
	}, nil
}
