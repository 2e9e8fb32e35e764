package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"namevalue/internal/domain/value"
	"namevalue/internal/worker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type exporterStub struct {
	mu    sync.Mutex
	calls []value.Name
	err   error
}

func (e *exporterStub) ExportCard(_ context.Context, name value.Name) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, name)

	return []byte("png"), e.err
}

func (e *exporterStub) Calls() []value.Name {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]value.Name(nil), e.calls...)
}

func TestCardWarmerDefaultsToFamousNames(t *testing.T) {
	rq := require.New(t)

	exporter := &exporterStub{}
	w := worker.NewCardWarmer(exporter).WithRateControl(time.Millisecond).WithPeriod(time.Hour)

	rq.NoError(w.Start(context.Background()))
	rq.True(w.IsRunning())
	rq.ErrorIs(w.Start(context.Background()), worker.ErrAlreadyRunning)

	rq.Eventually(func() bool { return len(exporter.Calls()) == 7 }, time.Second, 5*time.Millisecond)

	w.Stop()
	rq.False(w.IsRunning())

	calls := exporter.Calls()
	rq.Contains(calls, value.Name("김민수"))
	rq.Contains(calls, value.Name("지민"))
}

func TestCardWarmerRepeatsAndSkipsInvalid(t *testing.T) {
	rq := require.New(t)

	exporter := &exporterStub{err: errors.New("browser busy")}
	w := worker.NewCardWarmer(exporter).
		WithNames("김민수", "abc", "이지은").
		WithRateControl(time.Millisecond).
		WithPeriod(10 * time.Millisecond)

	rq.NoError(w.Start(context.Background()))

	// ошибки не останавливают прогрев, список проходится снова
	rq.Eventually(func() bool { return len(exporter.Calls()) >= 4 }, time.Second, 5*time.Millisecond)

	w.Stop()
	w.Stop()
	rq.False(w.IsRunning())

	for _, name := range exporter.Calls() {
		rq.Contains([]value.Name{"김민수", "이지은"}, name)
	}
}

func TestCardWarmerStopsWithContext(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	w := worker.NewCardWarmer(&exporterStub{}).WithRateControl(time.Hour)
	rq.NoError(w.Start(ctx))

	cancel()

	rq.Eventually(func() bool { return !w.IsRunning() }, time.Second, 5*time.Millisecond)
}
