package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	reminderapi "github.com/assignwatch/assignwatch/internal/api/handlers/reminder"
	"github.com/assignwatch/assignwatch/internal/api/router"
	"github.com/assignwatch/assignwatch/internal/api/server"
	"github.com/assignwatch/assignwatch/internal/config"
	"github.com/assignwatch/assignwatch/internal/leb2"
	"github.com/assignwatch/assignwatch/internal/model"
	"github.com/assignwatch/assignwatch/internal/poller"
	remindermsg "github.com/assignwatch/assignwatch/internal/rabbitmq/handlers/reminder"
	"github.com/assignwatch/assignwatch/internal/rabbitmq/queue"
	watchrepo "github.com/assignwatch/assignwatch/internal/repository/watch"
	"github.com/assignwatch/assignwatch/internal/scheduler"
	remindersvc "github.com/assignwatch/assignwatch/internal/service/reminder"
	"github.com/assignwatch/assignwatch/internal/state"
	"github.com/assignwatch/assignwatch/internal/worker"
	"github.com/assignwatch/assignwatch/pkg/email"
	"github.com/assignwatch/assignwatch/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewReminderQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create reminder queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDNSs := make([]string, 0, len(cfg.Database.Slaves))

	for _, s := range cfg.Database.Slaves {
		slaveDNSs = append(slaveDNSs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDNSs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := watchrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	store := state.New(rdb, model.ReminderSettings{
		Enabled:       cfg.Reminder.Enabled,
		LeadTimeHours: cfg.Reminder.LeadTimeHours,
	})

	if err := store.SeedDefaults(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to seed reminder defaults")
	}

	loc, err := time.LoadLocation(cfg.LEB2.Timezone)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load leb2 timezone")
	}

	leb2Client := leb2.NewClient(cfg.LEB2.BaseURL, cfg.LEB2.Timeout, loc)

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	notifiers := map[string]remindersvc.Notifier{
		"email":    emailClient,
		"telegram": telegramClient,
	}

	service := remindersvc.NewService(repo, store, q, notifiers)
	apiHandler := reminderapi.NewHandler(service, val, cfg)
	messageHandler := remindermsg.NewHandler(service)

	dispatcher := worker.NewDispatcher(q, messageHandler, service)
	snapshotPoller := poller.New(leb2Client, service, cfg.Reminder.PollInterval)
	reminderScheduler := scheduler.New(service, cfg)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)
	go snapshotPoller.Run(ctx)
	go reminderScheduler.Run(ctx)

	r := router.New(apiHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
