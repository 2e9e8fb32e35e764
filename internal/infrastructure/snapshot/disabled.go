package snapshot

import (
	"context"
	"errors"
	"fmt"

	"namevalue/internal/view"
)

var ErrDisabled = errors.New("snapshot: card export is disabled")

// Disabled экспортёр для запуска без браузера: любая выгрузка падает с
// ErrDisabled, остальной сервис работает. Reason почему браузера нет, если
// его не удалось поднять.
type Disabled struct {
	Reason error
}

func (d Disabled) Capture(context.Context, view.CardDocument) ([]byte, error) {
	if d.Reason != nil {
		return nil, fmt.Errorf("%w: %w", ErrDisabled, d.Reason)
	}

	return nil, ErrDisabled
}
