package cli

import (
	"fmt"

	"github.com/shadowzevax/Extensor-SRT/internal/config"
	"github.com/shadowzevax/Extensor-SRT/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload/download HTTP server",
	Long: `Start an HTTP server with an upload form on / and the processing
endpoint on POST /process-srt. The processed file comes back as an
attachment.

Examples:
  extensor serve
  extensor serve --bind 127.0.0.1:8080
  extensor serve --config /etc/extensor/config.toml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("config", "", "Path to a TOML config file")
	serveCmd.Flags().String("bind", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	bind, _ := cmd.Flags().GetString("bind")

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if bind != "" {
		cfg.Server.Bind = bind
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	srv := server.New(cfg, logger)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
