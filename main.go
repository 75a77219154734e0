package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"inkwell/app/config"
	"inkwell/app/routes"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server.

Environment:
  PORT       Port to listen on (default 8080).
  DB_PATH    Badger database directory (default data/badger).
`
	fmt.Println(helpText)
}

// serve opens the database and runs the HTTP server until interrupted.
func serve() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := config.Load()
	port := config.GetInt(cfg, "PORT", 8080)
	dbPath := config.GetString(cfg, "DB_PATH", "data/badger")

	opts := badger.DefaultOptions(dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("failed to open database")
	}
	defer db.Close()

	router := routes.SetupRoutes(db)

	errs := make(chan error, 1)
	srv := routes.StartServer(fmt.Sprintf(":%d", port), router, errs)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		log.Error().Err(err).Msg("server error")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	if err := routes.StopServer(srv, 10*time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
