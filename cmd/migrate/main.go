package main

import (
	"database/sql"
	"os"

	"socialnet/pkg/config"
	"socialnet/pkg/database"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

var opts = struct {
	Dir     string `long:"dir" env:"MIGRATIONS_DIR" default:"migrations" description:"directory with migration files"`
	Command string `long:"command" default:"up" choice:"up" choice:"down" choice:"status" choice:"create" description:"migration command"`
	Name    string `long:"name" description:"name for new migration (used with create command)"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "migrate"
	parser.LongDescription = "Applies goose migrations to the socialnet database"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logrus.WithError(err).Fatal("failed to set dialect")
	}

	switch opts.Command {
	case "create":
		if opts.Name == "" {
			logrus.Fatal("--name is required for create command")
		}
		if err := goose.Create(db, opts.Dir, opts.Name, "sql"); err != nil {
			logrus.WithError(err).Fatal("failed to create migration")
		}
		logrus.Infof("created migration %s", opts.Name)
	case "up":
		if err := goose.Up(db, opts.Dir); err != nil {
			logrus.WithError(err).Fatal("failed to run migrations")
		}
		logrus.Info("migrations applied successfully")
	case "down":
		if err := goose.Down(db, opts.Dir); err != nil {
			logrus.WithError(err).Fatal("failed to rollback migrations")
		}
		logrus.Info("migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, opts.Dir); err != nil {
			logrus.WithError(err).Fatal("failed to get migration status")
		}
	}
}
