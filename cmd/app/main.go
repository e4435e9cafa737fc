package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cajeroweb"
	"cajeroweb/config"
	"cajeroweb/web"
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	db, err := newDatabase(cfg)
	if err != nil {
		return err
	}

	err = cajeroweb.NewMigrationHandler(db)()
	if err != nil {
		return err
	}

	err = cajeroweb.NewSeedHandler(db)()
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		Views: web.NewEngine(),
	})
	app.Use(web.RequestLogger())

	sessions := session.New(session.Config{
		Expiration: cfg.SessionTTL,
	})

	cajeroweb.NewRegister(app, web.NewHandler(db, sessions))()

	listen := cfg.ListenAddr
	if port := os.Getenv("PORT"); port != "" {
		listen = ":" + port
	}

	log.Println("listening on", listen)
	return app.Listen(listen)
}

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}
