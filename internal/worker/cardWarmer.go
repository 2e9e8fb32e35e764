package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"namevalue/internal/domain/service/nameRating"
	"namevalue/internal/domain/value"
	"namevalue/pkg/logx"
)

var ErrAlreadyRunning = errors.New("card warmer is already running")

type cardExporter interface {
	ExportCard(ctx context.Context, name value.Name) ([]byte, error)
}

// CardWarmer заранее рендерит карточки известных имён, чтобы их выгрузка
// отдавалась из кэша.
type CardWarmer struct {
	exporter cardExporter
	names    []value.Name

	requestInterval time.Duration
	period          time.Duration
	lastRequest     time.Time

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCardWarmer(exporter cardExporter) *CardWarmer {
	w := &CardWarmer{
		exporter:        exporter,
		requestInterval: 500 * time.Millisecond,
		period:          5 * time.Minute,
	}

	return w.WithNames(nameRating.FamousNames()...)
}

// WithNames заменяет список имён; невалидные пропускаются.
func (w *CardWarmer) WithNames(names ...string) *CardWarmer {
	w.names = w.names[:0]

	for _, raw := range names {
		name, err := value.ParseName(raw)
		if err != nil {
			continue
		}

		w.names = append(w.names, name)
	}

	return w
}

// WithRateControl пауза между двумя выгрузками: браузер общий с
// пользовательскими запросами.
func (w *CardWarmer) WithRateControl(interval time.Duration) *CardWarmer {
	if interval > 0 {
		w.requestInterval = interval
	}
	return w
}

// WithPeriod как часто проходить список заново. Берите меньше TTL кэша.
func (w *CardWarmer) WithPeriod(period time.Duration) *CardWarmer {
	if period > 0 {
		w.period = period
	}
	return w
}

func (w *CardWarmer) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("card warmer stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *CardWarmer) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *CardWarmer) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run проходит список раз в period до отмены контекста.
func (w *CardWarmer) Run(ctx context.Context) error {
	logger(ctx).Info("card warmer started", slog.Int("names", len(w.names)))

	ticker := time.NewTicker(w.period)
	defer ticker.Stop()

	for {
		w.warmAll(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("card warmer stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *CardWarmer) warmAll(ctx context.Context) {
	var warmed int

	for _, name := range w.names {
		if err := w.waitForNextSlot(ctx); err != nil {
			return
		}

		if _, err := w.exporter.ExportCard(ctx, name); err != nil {
			if ctx.Err() != nil {
				return
			}

			logger(ctx).Warn("card warm-up failed", logx.Error(err))
			continue
		}

		warmed++
	}

	logger(ctx).Debug("card warm-up cycle completed", slog.Int("warmed", warmed))
}

func (w *CardWarmer) waitForNextSlot(ctx context.Context) error {
	if w.lastRequest.IsZero() {
		w.lastRequest = time.Now()
		return nil
	}

	elapsed := time.Since(w.lastRequest)
	if elapsed >= w.requestInterval {
		w.lastRequest = time.Now()
		return nil
	}

	select {
	case <-time.After(w.requestInterval - elapsed):
		w.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
