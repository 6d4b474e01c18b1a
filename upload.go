package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/williamokano/arkv/pkg/config"
	"github.com/williamokano/arkv/pkg/setup"
	"github.com/williamokano/arkv/pkg/transfer"
)

func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.DefaultPath()
}

func runUpload(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	localPath := args[0]

	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		fmt.Println("No configuration found. Running setup...")
		cfg, err = setup.Run(setup.NewDefaultPrompter(), cfgPath)
		if err != nil {
			return err
		}
	}
	if len(cfg.Destinations) == 0 {
		return fmt.Errorf("no destinations configured, run 'arkv setup' to add one")
	}

	destinations := cfg.Destinations
	if interactive {
		dest, err := setup.SelectDestination(setup.NewDefaultPrompter(), cfg)
		if err != nil {
			return err
		}
		destinations = []config.Destination{*dest}
	}

	if len(destinations) > 1 {
		fmt.Printf("\nArchiving to %d destinations\n\n", len(destinations))
	} else {
		fmt.Printf("\nArchiving to %s (%s)\n\n", destinations[0].Name, destinations[0].Host)
	}

	// A terminal progress bar only renders sanely for a single destination;
	// concurrent transfers report through the log instead. A count failure
	// falls back to an indeterminate spinner and lets the engine report the
	// path problem.
	var reporter transfer.ProgressReporter = transfer.NopReporter{}
	if len(destinations) == 1 && !jsonOutput {
		total, err := transfer.CountFiles(localPath)
		if err != nil {
			total = -1
		}
		reporter = newBarReporter(total)
	}

	uploaders := make([]transfer.Uploader, 0, len(destinations))
	for _, d := range destinations {
		uploaders = append(uploaders, transfer.New(
			d.Transfer(),
			cfg.SSHKeyPath,
			log.Logger,
			transfer.WithReporter(reporter),
		))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
		cancel()
	}()

	multi := transfer.NewMultiTransferer(log.Logger, 0)
	results := multi.Run(ctx, uploaders, localPath)

	succeeded, failed := transfer.Partition(results)

	fmt.Println()
	for _, r := range succeeded {
		mb := float64(r.Stats.Bytes) / (1024 * 1024)
		secs := r.Stats.Seconds()
		speed := 0.0
		if secs > 0 {
			speed = mb / secs
		}
		fmt.Printf("%s: %.2f MB in %.1fs (%.2f MB/s)\n", r.Destination, mb, secs, speed)
	}

	if len(failed) > 0 {
		fmt.Fprintln(os.Stderr, "\nErrors occurred:")
		for _, r := range failed {
			fmt.Fprintf(os.Stderr, "  %v\n", r.Err)
		}
		return fmt.Errorf("%d of %d destinations failed", len(failed), len(results))
	}

	fmt.Println("\nDone!")
	return nil
}

// barReporter renders the engine's progress notifications with a terminal
// progress bar counting files; total -1 degrades to a spinner.
type barReporter struct {
	bar *progressbar.ProgressBar
}

func newBarReporter(total int) *barReporter {
	return &barReporter{
		bar: progressbar.Default(int64(total), "connecting"),
	}
}

func (r *barReporter) UploadingFile(relPath string) {
	r.bar.Describe("uploading " + relPath)
	_ = r.bar.Add(1)
}

func (r *barReporter) Completed(fileCount int, name string) {
	_ = r.bar.Finish()
	if name != "" {
		fmt.Printf("\nUploaded %s\n", name)
	} else {
		fmt.Printf("\nUploaded %d files\n", fileCount)
	}
}
