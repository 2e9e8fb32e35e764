package handler

import (
	"context"

	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/value"
	"namevalue/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Service то, что боту нужно от сервиса оценки.
type Service interface {
	Evaluate(ctx context.Context, raw string) (value.Name, entity.Valuation, error)
	ExportCard(ctx context.Context, name value.Name) ([]byte, error)
}

type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{
		svc: svc,
	}
}
