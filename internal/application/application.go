package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"namevalue/internal/config"
	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/infrastructure/snapshot"
	"namevalue/internal/server"
	"namevalue/internal/transport/bot"
	"namevalue/internal/worker"
	"namevalue/pkg/application/modules"
	"namevalue/pkg/contextx"
	"namevalue/pkg/logx"
	"namevalue/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает все модули и ждёт, пока один из них не упадёт или не
// отменится ctx.
func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	// 1. Экспорт карточек
	exporter, checks, closeExporter := newExporter(ctx, cfg.Export)
	defer closeExporter()

	// 2. Сервис
	svc := valuation.NewService(exporter).
		WithCardTTL(cfg.Export.CacheTTL).
		WithExportTimeout(cfg.Export.Timeout)

	// 3. HTTP
	srv := server.NewServer(svc, server.Animation{
		Duration:      cfg.Animation.Duration,
		FrameInterval: cfg.Animation.FrameInterval,
	})

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           NewRouter(srv),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	// 4. Telegram-бот, если задан токен
	if cfg.Bot.Enabled() {
		telegramBot, err := bot.New(ctx, cfg.Bot, svc)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			if err := telegramBot.Run(ctx); err != nil {
				return fmt.Errorf("telegramBot.Run: %w", err)
			}

			return nil
		})
	}

	// 5. Прогрев кэша карточек
	if _, degraded := exporter.(snapshot.Disabled); !degraded && cfg.Export.WarmUp {
		warmer := worker.NewCardWarmer(svc).
			WithRateControl(cfg.Export.WarmUpInterval).
			WithPeriod(cfg.Export.WarmUpPeriod)

		if err := warmer.Start(ctx); err != nil {
			return fmt.Errorf("warmer.Start: %w", err)
		}
		defer warmer.Stop()
	}

	logger(ctx).Info("application started",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// newExporter без браузера сервис продолжает считать имена: выгрузка
// карточек отвечает ExportFailed, пока процесс не перезапустят.
func newExporter(
	ctx context.Context,
	cfg config.Export,
) (valuation.Exporter, []probe.ReadinessCheck, func()) {
	if !cfg.Enabled {
		logger(ctx).Warn("card export disabled")
		return snapshot.Disabled{}, nil, func() {}
	}

	browser, err := snapshot.NewBrowser(ctx, snapshot.Options{
		ExecPath:    cfg.ChromePath,
		MaxParallel: cfg.MaxParallel,
		Headless:    cfg.Headless,
	})
	if err != nil {
		logger(ctx).Warn("headless browser unavailable, card export degraded", logx.Error(err))
		return snapshot.Disabled{Reason: err}, nil, func() {}
	}

	return browser, []probe.ReadinessCheck{browser.Ready}, browser.Close
}
