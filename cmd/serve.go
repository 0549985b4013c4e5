package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"ticktock/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (default from SERVER_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.ServerPort = servePort
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	router := server.NewRouter(cfg, store)

	log.Printf("Server starting on port %s (store: %s)", cfg.ServerPort, cfg.Store)
	log.Printf("Demo credentials: john.doe@example.com / password123")
	return http.ListenAndServe(":"+cfg.ServerPort, router)
}
