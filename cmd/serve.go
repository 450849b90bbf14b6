package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mvolkova/pekarnya/internal/api"
	"github.com/mvolkova/pekarnya/internal/config"
	"github.com/mvolkova/pekarnya/internal/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pekarnya server",
	Long:  `Start the Pekarnya server to render the café menu, take orders and manage user accounts.`,
	Example: `pekarnya serve --config config.yml
pekarnya serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	server, err := api.New(cfg, db, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// Start the server in a goroutine
	go func() {
		log.Info("starting server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal to shut down
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("pekarnya started successfully")
	<-c
	log.Info("shutting down...")
}
