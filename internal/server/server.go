package server

import (
	"context"
	"time"

	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/value"
	"namevalue/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type valuationService interface {
	Evaluate(ctx context.Context, raw string) (value.Name, entity.Valuation, error)
	ExportCard(ctx context.Context, name value.Name) ([]byte, error)
}

// Animation параметры счётчика капитализации для SSE-потока.
type Animation struct {
	Duration      time.Duration
	FrameInterval time.Duration
}

// Данный сервер обслуживает и HTML-страницу, и JSON API: обе поверхности
// работают через один и тот же сервис оценки.
type Server struct {
	valuationService valuationService
	animation        Animation
}

func NewServer(
	valuationService valuationService,
	animation Animation,
) Server {
	return Server{
		valuationService: valuationService,
		animation:        animation,
	}
}
