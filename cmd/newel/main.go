package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"newel/internal/config"
	"newel/internal/database"
	"newel/internal/handler"
	"newel/internal/httpserver"
	"newel/internal/logutil"
	"newel/internal/repository"
	"newel/internal/session"
)

func main() {
	logger := logutil.NewServerLogger()

	app := &cli.App{
		Name:  "newel",
		Usage: "Classroom prompt and response server",
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := app.RunContext(logutil.WithLogger(ctx, logger), os.Args); err != nil {
		logger.Error().Err(err).Msg("application failed")
		os.Exit(1)
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Apply pending migrations and start the web server",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(db, cfg.DBDriver); err != nil {
				return err
			}

			sessions := session.NewManager([]byte(cfg.SecretKey))
			users := repository.NewUserRepository(db)

			return httpserver.Serve(c.Context, cfg.Addr, handler.Router(sessions, users))
		},
	}
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending migrations and exit",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(db, cfg.DBDriver); err != nil {
				return err
			}

			logger := logutil.GetOrDefault(c.Context)
			logger.Info().Str("driver", cfg.DBDriver).Msg("schema is up to date")
			return nil
		},
	}
}
