package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file with policy overrides")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, policy, err := serveSettings(cmd.Flags().Changed("port"))
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:   port,
		Policy: policy,
	})

	return srv.Start()
}

// serveSettings resolves the listen port and scoring policy from the flags
// and the optional config file. An explicit --port always wins over the
// file, including --port 8080.
func serveSettings(portFlagSet bool) (int, scoring.Policy, error) {
	policy := scoring.DefaultPolicy()
	port := servePort

	if serveConfigPath != "" {
		cfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return 0, policy, fmt.Errorf("failed to load config: %w", err)
		}
		policy = cfg.ApplyToPolicy(policy)
		if cfg.Port > 0 && !portFlagSet {
			port = cfg.Port
		}
	}

	return port, policy, nil
}
