package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	coreconfig "github.com/sushihelp/supportbot/core/config"
	coredatabase "github.com/sushihelp/supportbot/core/database"
	"github.com/sushihelp/supportbot/core/logger"
	coretelegram "github.com/sushihelp/supportbot/core/telegram"
	"github.com/sushihelp/supportbot/internal/bot"
	"github.com/sushihelp/supportbot/internal/session"
	"github.com/sushihelp/supportbot/internal/ticket"

	tele "gopkg.in/telebot.v4"
)

const defaultConfigPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		log.Fatalf("supportbot: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The ticket archive is optional; without a configured database the
	// bot runs fully in memory and tickets are discarded after the
	// confirmation flow.
	var archive ticket.Archive = ticket.NopArchive{}
	if cfg.Database.Enabled() {
		if err := coredatabase.RunMigrations(cfg.Database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		db, err := coredatabase.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		archive = ticket.NewSQLArchive(db)
	}

	store := session.NewMemoryStore()
	go session.Sweep(ctx, store, cfg.Sessions.SweepInterval())

	app := bot.New(store, archive)

	startedAt := time.Now()
	return coretelegram.Run(ctx, coretelegram.RunOptions{
		Config:      cfg,
		Registry:    app.Registry(),
		ParseMode:   tele.ModeHTML,
		Middlewares: coretelegram.DefaultMiddlewares(ctx, cfg, nil),
		OnStart: func(ctx context.Context, _ *tele.Bot) error {
			logger.Info(ctx, "app", "ready",
				slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info(ctx, "app", "shutdown",
				slog.Int("sessions", store.Len()),
			)
			return nil
		},
	})
}
