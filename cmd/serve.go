package cmd

import (
	"github.com/spf13/cobra"

	"invoiceportal/internal/config"
	"invoiceportal/internal/logger"
	"invoiceportal/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the invoice portal web server",
	Long: `Start the HTTP server that renders invoice views from submitted YAML
documents. The server is stateless: every request carries its own data
and nothing is written to disk or a database.`,
	Example: `  # Serve on the default port (8000, or $PORT)
  invoiceportal serve

  # Serve on a specific port
  invoiceportal serve --port 9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default: $PORT or 8000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = cfg.Port
	}

	log.Info().Str("port", port).Msg("Starting portal server")
	return server.New().Run(":" + port)
}
