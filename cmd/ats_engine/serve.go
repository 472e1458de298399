package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/logger"
	"github.com/jonathan/resume-ats/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /extract and POST /score. Configuration can be loaded from a JSON file using --config; command-line flags override config file values.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveDictionary string
	serveJSONLog    bool
	serveDebug      bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDictionary, "dictionary", "", "Path to a custom dictionary JSON file")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	cfg.Port = servePort

	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if cfg.Port == 0 {
			cfg.Port = servePort
		}
	}

	// CLI overrides win over config file values.
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("dictionary") {
		cfg.Dictionary = serveDictionary
	}
	if cmd.Flags().Changed("json-log") {
		cfg.JSONLog = serveJSONLog
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DictionaryPath: cfg.Dictionary,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
