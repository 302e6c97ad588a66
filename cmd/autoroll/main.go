package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-autoroll/internal/config"
	"github.com/KirkDiggler/dnd-autoroll/internal/dice"
	"github.com/KirkDiggler/dnd-autoroll/internal/discord"
	"github.com/KirkDiggler/dnd-autoroll/internal/events"
	"github.com/KirkDiggler/dnd-autoroll/internal/formulagroups"
	"github.com/KirkDiggler/dnd-autoroll/internal/i18n"
	"github.com/KirkDiggler/dnd-autoroll/internal/input"
	"github.com/KirkDiggler/dnd-autoroll/internal/itemcard"
	"github.com/KirkDiggler/dnd-autoroll/internal/itemroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/logging"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/actors"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/flags"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/records"
	"github.com/KirkDiggler/dnd-autoroll/internal/repositories/settings"
	"github.com/KirkDiggler/dnd-autoroll/internal/server"
	"github.com/KirkDiggler/dnd-autoroll/internal/telemetry"
	"github.com/KirkDiggler/dnd-autoroll/internal/uuid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "autoroll: %v\n", err)
		os.Exit(1)
	}
}

type repositorySet struct {
	actors   actors.Repository
	flags    flags.Repository
	settings settings.Repository
	records  records.Repository
	close    func() error
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	bus := events.NewBus(logger)
	tracker := input.NewTracker(logger)
	tracker.Install(bus)

	repos := openRepositories(ctx, cfg, logger)
	defer func() {
		if err := repos.close(); err != nil {
			logger.Warn("failed to close redis", zap.Error(err))
		}
	}()

	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load message catalogs: %w", err)
	}
	localizer, err := catalog.Localizer(cfg.Locale)
	if err != nil {
		return err
	}

	var broadcasters []chat.Broadcaster
	var session *discordgo.Session
	if cfg.Discord.Token != "" {
		session, err = discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			return fmt.Errorf("failed to create discord session: %w", err)
		}
		broadcasters = append(broadcasters, discord.NewBroadcaster(&discord.BroadcasterConfig{
			Sender:    session,
			ChannelID: cfg.Discord.ChannelID,
			Logger:    logger,
		}))
	} else {
		logger.Info("no DISCORD_TOKEN, records are not broadcast")
	}

	publisher := chat.NewPublisher(&chat.PublisherConfig{
		Store:        repos.records,
		Broadcasters: broadcasters,
		Logger:       logger,
	})

	roller := itemroll.NewService(&itemroll.ServiceConfig{
		Dice:      dice.NewRandomRoller(),
		Evaluator: dice.NewExpressionEvaluator(),
		Sink:      publisher,
		Groups:    repos.flags,
		Localizer: localizer,
		DiceSound: cfg.Rolls.DiceSound,
		Logger:    logger,
	})

	srd, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("failed to create SRD client: %w", err)
	}

	user := autoroll.Wrap(
		itemcard.NewService(&itemcard.Config{
			Sink:      publisher,
			Localizer: localizer,
			Logger:    logger,
		}),
		&autoroll.Config{
			Rolls:     roller,
			Settings:  repos.settings,
			Flags:     repos.flags,
			Localizer: localizer,
			Initializer: formulagroups.New(&formulagroups.Config{
				Store:     repos.flags,
				Localizer: localizer,
				SRD:       srd,
				Actors:    repos.actors,
				Logger:    logger,
			}),
			Input:       tracker,
			Sink:        publisher,
			Bus:         bus,
			SettleDelay: cfg.Rolls.SettleDelay,
			DiceSound:   cfg.Rolls.DiceSound,
			Logger:      logger,
		},
	)

	if session != nil {
		handler := discord.NewHandler(&discord.HandlerConfig{
			Responder: session,
			Records:   repos.records,
			Actors:    repos.actors,
			Rolls:     roller,
			Logger:    logger,
		})
		session.AddHandler(handler.HandleInteractionCreate)
		if err := session.Open(); err != nil {
			return fmt.Errorf("failed to open discord connection: %w", err)
		}
		defer func() {
			if err := session.Close(); err != nil {
				logger.Warn("failed to close discord connection", zap.Error(err))
			}
		}()
	}

	httpServer := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: server.New(&server.Config{
			ItemUser: user,
			Actors:   repos.actors,
			Settings: repos.settings,
			Flags:    repos.flags,
			Bus:      bus,
			Logger:   logger,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openRepositories connects to Redis when REDIS_URL is set, falling back to
// in-memory repositories when it is unset or unreachable
func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) *repositorySet {
	defaults := cfg.Settings.Defaults()
	inMemory := &repositorySet{
		actors:   actors.NewInMemoryRepository(),
		flags:    flags.NewInMemoryRepository(),
		settings: settings.NewInMemoryRepository(defaults),
		records:  records.NewInMemoryRepository(uuid.NewGoogleUUIDGenerator(), records.RealTimeProvider{}),
		close:    func() error { return nil },
	}

	if cfg.Redis.URL == "" {
		logger.Info("no REDIS_URL, using in-memory repositories")
		return inMemory
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn("failed to parse REDIS_URL, using in-memory repositories", zap.Error(err))
		return inMemory
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to connect to redis, using in-memory repositories", zap.Error(err))
		_ = client.Close()
		return inMemory
	}

	logger.Info("using redis for persistence", zap.String("addr", opts.Addr))
	return &repositorySet{
		actors:   actors.NewRedisRepository(&actors.RedisRepoConfig{Client: client}),
		flags:    flags.NewRedisRepository(&flags.RedisRepoConfig{Client: client}),
		settings: settings.NewRedisRepository(&settings.RedisRepoConfig{Client: client, Defaults: defaults}),
		records: records.NewRedisRepository(&records.RedisRepoConfig{
			Client:        client,
			UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
			TimeProvider:  records.RealTimeProvider{},
		}),
		close: client.Close,
	}
}
