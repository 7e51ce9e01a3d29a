// cmd_serve.go
//
// The serve command: expose the solver over HTTP.
package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aetimmes/wordle-minimax/internal/httpserver"
	"github.com/aetimmes/wordle-minimax/internal/store"
)

var serveFlags struct {
	port   string
	dbPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP solve API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.port, "port", "", "Listen port (default: $PORT or 5175)")
	f.StringVar(&serveFlags.dbPath, "db", store.DefaultDBPath, "SQLite database for report history")
}

func runServe(cmd *cobra.Command, args []string) error {
	sv, err := loadSolver()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	st, err := store.Open(serveFlags.dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open report store")
	}
	defer st.Close()

	srv := httpserver.New(sv, st)
	port := serveFlags.port
	if port == "" {
		port = getEnv("PORT", "5175")
	}
	log.Info().Str("port", port).Msg("starting wordle-minimax server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	return nil
}
