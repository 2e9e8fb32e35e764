// Package animator крутит счётчик от 0 до цели с кубическим ease-out,
// одно значение на кадр.
package animator

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultFrameInterval один кадр экрана 60 Гц.
const DefaultFrameInterval = 16 * time.Millisecond

// Value значение счётчика при заданном прогрессе (обрезается до [0, 1]).
func Value(target int, progress float64) int {
	progress = min(max(progress, 0), 1)
	eased := 1 - math.Pow(1-progress, 3)

	return int(math.Round(float64(target) * eased))
}

// Sequence кадры, которые выдал бы Animate на идеально ровных часах.
// Последний кадр всегда target, для нуля результат [0].
func Sequence(target int, duration, interval time.Duration) []int {
	if target == 0 || duration <= 0 {
		return []int{target}
	}

	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	frames := make([]int, 0, int(duration/interval)+2)

	for elapsed := interval; ; elapsed += interval {
		progress := min(float64(elapsed)/float64(duration), 1)
		frames = append(frames, Value(target, progress))

		if progress >= 1 {
			return frames
		}
	}
}

// Handle один запущенный счётчик.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func finishedHandle() *Handle {
	h := &Handle{cancel: func() {}, done: make(chan struct{})}
	close(h.done)

	return h
}

// Cancel останавливает счётчик и ждёт выхода горутины: после возврата emit
// больше не вызывается. Повторный вызов ничего не делает. Нельзя вызывать
// изнутри emit.
func (h *Handle) Cancel() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done закрывается после последнего кадра или отмены.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Animator держит не больше одного счётчика. Новый запуск отменяет
// предыдущий, Stop всё сворачивает.
type Animator struct {
	interval time.Duration

	mu      sync.Mutex
	current *Handle
}

func New(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &Animator{interval: interval}
}

// Animate отменяет текущий счётчик и запускает новый с нуля.
// Для нулевой цели один раз выдаёт 0 и ничего не планирует.
func (a *Animator) Animate(ctx context.Context, target int, duration time.Duration, emit func(int)) *Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		a.current.Cancel()
		a.current = nil
	}

	if target == 0 || duration <= 0 {
		emit(target)

		return finishedHandle()
	}

	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	a.current = h

	go a.run(runCtx, h, target, duration, emit)

	return h
}

// Stop отменяет текущий счётчик и ждёт его.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		a.current.Cancel()
		a.current = nil
	}
}

func (a *Animator) run(ctx context.Context, h *Handle, target int, duration time.Duration, emit func(int)) {
	defer close(h.done)
	defer h.once.Do(h.cancel)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// ticker и отмена могут прийти одновременно
			if ctx.Err() != nil {
				return
			}

			progress := min(float64(now.Sub(start))/float64(duration), 1)
			emit(Value(target, progress))

			if progress >= 1 {
				return
			}
		}
	}
}
