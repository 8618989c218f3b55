package commands

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/crcweb/center-site/internal/app"
	"github.com/crcweb/center-site/internal/content"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		if err := app.LoadAuthCredentials(); err != nil {
			return fmt.Errorf("failed to load auth credentials: %w", err)
		}

		store := content.NewDirStore(cfg.ContentDir)
		server, err := app.NewServer(cfg, store)
		if err != nil {
			return err
		}

		if cfg.Watch {
			if err := app.WatchContent(cfg.ContentDir, store); err != nil {
				log.Printf("Content watch disabled: %v", err)
			}
		}

		log.Printf("Starting %s on http://localhost:%d", cfg.SiteTitle, cfg.Port)
		log.Printf("Content directory: %s", cfg.ContentDir)
		return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), server.Routes())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
}
