package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/echosite/echosite/cli"
	"github.com/echosite/echosite/config"
	"github.com/echosite/echosite/logger"
	"github.com/echosite/echosite/server"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	interactive bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "echosite-server",
	Short: "echosite server - static pages plus a JSON echo endpoint",
	Long: `echosite server answers GET requests with pre-rendered pages, echoes
JSON POST bodies back in an acknowledgment envelope, and rejects anything else.`,
	RunE: runServer,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "server.yaml", "Path to server configuration file")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Enable interactive mode")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Allow config file as positional argument if not provided via flag
	if configPath == "server.yaml" && len(args) > 0 {
		configPath = args[0]
	}

	// Load configuration; PORT env var overrides the configured port
	cfg, err := config.LoadServerConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Create logger
	level := logger.INFO
	if verbose {
		level = logger.DEBUG
	}
	log := logger.NewLogger(level)

	// Create and start server
	srv := server.NewServer(cfg, log)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer srv.Stop()

	// Start interactive interface if requested
	if interactive {
		interactiveCLI := cli.NewInteractiveCLI(log)
		go interactiveCLI.Start()
	}

	// Wait for interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down...")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
