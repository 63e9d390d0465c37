package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/gemini"
	"github.com/afklabs/afk-responder/internal/biz/repo"
	"github.com/afklabs/afk-responder/internal/biz/usecase"
	"github.com/afklabs/afk-responder/internal/conf"
	"github.com/afklabs/afk-responder/internal/data"
	"github.com/afklabs/afk-responder/internal/locale"
	"github.com/afklabs/afk-responder/internal/server"
	"github.com/afklabs/afk-responder/internal/service"
	"github.com/afklabs/afk-responder/openaichat"
	"github.com/afklabs/afk-responder/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := conf.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	locales, err := locale.NewResolverFromFile(cfg.LocalesPath)
	if err != nil {
		logger.Fatal("failed to load locales", zap.Error(err))
	}

	settingsRepo, err := data.NewSettingsRepo(cfg.SettingsDBPath)
	if err != nil {
		logger.Fatal("failed to open settings store", zap.Error(err))
	}
	defer settingsRepo.Close()

	manager := usecase.NewSettingsManager(settingsRepo, logger)
	if err := manager.Load(ctx); err != nil {
		logger.Fatal("failed to load settings", zap.Error(err))
	}

	userClient, err := telegram.NewClient(cfg.UserBotToken, cfg.Debug)
	if err != nil {
		logger.Fatal("failed to connect user bot", zap.Error(err))
	}

	controlBot, err := tgbotapi.NewBotAPI(cfg.ControlBotToken)
	if err != nil {
		logger.Fatal("failed to connect control bot", zap.Error(err))
	}
	controlBot.Debug = cfg.Debug

	responder, err := newResponder(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create AI client", zap.Error(err))
	}

	classifier := usecase.NewClassifierUsecase(userClient.SelfID(), usecase.ClassifierOptions{})
	prompts := usecase.NewPromptUsecase(locales)
	admin := usecase.NewAdminUsecase(manager, locales, logger)

	controlSrv := server.NewControl(controlBot, admin, locales, cfg.OwnerID, logger)
	notifier := data.NewAdminNotifier(controlSrv.SendText, cfg.OwnerID)
	messenger := data.NewTelegramRepo(userClient)

	pipeline := service.NewPipeline(
		manager, classifier, prompts,
		responder, messenger, notifier,
		locales, logger, cfg.AITimeout,
	)
	listener := server.NewListener(userClient, pipeline, logger)

	go controlSrv.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down")
		listener.Stop()
		cancel()
	}()

	logger.Info("starting AFK responder",
		zap.Int64("owner_id", cfg.OwnerID),
		zap.String("ai_provider", cfg.AIProvider))
	if err := listener.Start(); err != nil {
		logger.Fatal("listener error", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newResponder(ctx context.Context, cfg *conf.Config) (repo.ResponderRepo, error) {
	switch cfg.AIProvider {
	case conf.ProviderOpenAI:
		client, err := openaichat.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, err
		}
		return data.NewOpenAIRepo(client, cfg.OpenAIModel), nil
	default:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return data.NewGeminiRepo(client), nil
	}
}
