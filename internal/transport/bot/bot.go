package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"namevalue/internal/config"
	"namevalue/internal/transport/bot/handler"
	"namevalue/pkg/contextx"
	"namevalue/pkg/httpx"
	"namevalue/pkg/logx"
)

const logFieldMaxLen = 2048

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot представляет собой Telegram-бота
type Bot struct {
	botHandler *th.BotHandler
}

// New создает новый экземпляр бота и подписывается на обновления.
func New(ctx context.Context, cfg config.Bot, svc handler.Service) (*Bot, error) {
	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	}

	bot, err := telego.NewBot(cfg.Token, telego.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	me, err := bot.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("bot.GetMe: %w", err)
	}

	logger(ctx).Info("telegram bot authorized", slog.String("username", me.Username))

	// Получаем обновления через long polling
	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: cfg.PollingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	handler.New(svc).RegisterRoutes(botHandler, cfg.PrivateOnly)

	return &Bot{
		botHandler: botHandler,
	}, nil
}

// Run обрабатывает обновления до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started")

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		return fmt.Errorf("botHandler.Stop: %w", err)
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}
