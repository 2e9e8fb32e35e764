package valuation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"namevalue/internal/domain"
	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/service/nameRating"
	"namevalue/internal/domain/value"
	"namevalue/internal/view"
	"namevalue/pkg/contextx"
	"namevalue/pkg/errcodes"
	"namevalue/pkg/logx"
)

const (
	defaultCardTTL       = 10 * time.Minute
	defaultExportTimeout = 15 * time.Second

	filenameSuffix   = "_이름값.png"
	fallbackFilename = "이름"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -out exporter_mock.gen.go . Exporter

// Exporter превращает автономный документ карточки в PNG.
type Exporter interface {
	Capture(ctx context.Context, doc view.CardDocument) ([]byte, error)
}

type Service struct {
	exporter      Exporter
	exportTimeout time.Duration
	cards         *cache.Cache
	group         singleflight.Group
}

func NewService(exporter Exporter) *Service {
	return &Service{
		exporter:      exporter,
		exportTimeout: defaultExportTimeout,
		cards:         cache.New(defaultCardTTL, 2*defaultCardTTL),
	}
}

// WithCardTTL время жизни готовых PNG в памяти. 0 отключает кэш.
func (s *Service) WithCardTTL(ttl time.Duration) *Service {
	if ttl <= 0 {
		s.cards = nil
		return s
	}

	s.cards = cache.New(ttl, 2*ttl)
	return s
}

func (s *Service) WithExportTimeout(timeout time.Duration) *Service {
	if timeout > 0 {
		s.exportTimeout = timeout
	}
	return s
}

// Evaluate проверяет ввод и считает оценку.
func (s *Service) Evaluate(ctx context.Context, raw string) (value.Name, entity.Valuation, error) {
	name, err := value.ParseName(raw)
	if err != nil {
		return "", entity.Valuation{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseName: %w", err),
			failure.WithCode(errcodes.InvalidName),
			failure.WithDescription(value.InvalidNameMessage),
		)
	}

	v := nameRating.Classify(name.String())

	valuationsTotal.WithLabelValues(v.Grade().String()).Inc()
	logger(ctx).Debug("name evaluated",
		slog.String(logx.FieldGrade, v.Grade().String()),
		slog.Int(logx.FieldMarketCap, v.MarketCap()),
	)

	return name, v, nil
}

// ExportCard PNG карточки с итоговой капитализацией. Ошибки приходят как
// domain.AppError с кодом errcodes.ExportFailed, карточка на странице от них
// не зависит.
func (s *Service) ExportCard(ctx context.Context, name value.Name) ([]byte, error) {
	key := name.String()

	if png, ok := s.cached(key); ok {
		exportsTotal.WithLabelValues(resultCached).Inc()
		logger(ctx).Debug("card served from cache", slog.Bool(logx.FieldCacheHit, true))

		return slices.Clone(png), nil
	}

	res, err, _ := s.group.Do(key, func() (any, error) {
		return s.capture(ctx, name)
	})
	if err != nil {
		exportsTotal.WithLabelValues(resultFailed).Inc()
		logger(ctx).Error("card export failed", logx.Error(err))

		return nil, domain.WrapError(err, errcodes.ExportFailed, view.ExportFailedMessage)
	}

	png := res.([]byte) //nolint:forcetypeassert

	exportsTotal.WithLabelValues(resultCaptured).Inc()
	logger(ctx).Info("card exported", slog.Int(logx.FieldExportBytes, len(png)))

	return slices.Clone(png), nil
}

// capture общий для всех ждущих в singleflight, поэтому отвязан от отмены
// запроса и ограничен только таймаутом.
func (s *Service) capture(ctx context.Context, name value.Name) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.exportTimeout)
	defer cancel()

	started := time.Now()

	doc, err := view.BuildCardDocument(name, nameRating.Classify(name.String()))
	if err != nil {
		return nil, fmt.Errorf("view.BuildCardDocument: %w", err)
	}

	png, err := s.exporter.Capture(ctx, doc)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("exporter.Capture: timed out after %s: %w", s.exportTimeout, err)
		}

		return nil, fmt.Errorf("exporter.Capture: %w", err)
	}

	if len(png) == 0 {
		return nil, errors.New("exporter.Capture: empty image")
	}

	exportDuration.Observe(time.Since(started).Seconds())

	if s.cards != nil {
		s.cards.SetDefault(name.String(), png)
	}

	return png, nil
}

func (s *Service) cached(key string) ([]byte, bool) {
	if s.cards == nil {
		return nil, false
	}

	v, ok := s.cards.Get(key)
	if !ok {
		return nil, false
	}

	png, ok := v.([]byte)
	return png, ok
}

// DownloadFilename "<имя>_이름값.png" по первому непустому кандидату.
// Кандидаты по порядку: имя из запроса, затем значение поля ввода.
func DownloadFilename(candidates ...string) string {
	base := fallbackFilename

	for _, c := range candidates {
		if c = value.TrimSpace(c); c != "" {
			base = c
			break
		}
	}

	return base + filenameSuffix
}
