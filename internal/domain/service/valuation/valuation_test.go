package valuation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"namevalue/internal/domain"
	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/domain/value"
	"namevalue/internal/view"
	"namevalue/pkg/errcodes"
)

var pngStub = []byte("\x89PNG\r\n\x1a\nstub") //nolint:gochecknoglobals

func TestServiceEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		expectedName  value.Name
		expectedCap   int
		expectedGrade entity.Grade
		wantErr       bool
	}{
		{name: "Valid", input: "김민수", expectedName: "김민수", expectedCap: 8420, expectedGrade: entity.GradeD},
		{name: "Trimmed", input: "  정국 ", expectedName: "정국", expectedCap: 8748, expectedGrade: entity.GradeC},
		{name: "Empty", input: "", wantErr: true},
		{name: "Too long", input: "가나다라마", wantErr: true},
		{name: "Latin", input: "kim", wantErr: true},
		{name: "Jamo only", input: "ㄱㄴ", wantErr: true},
	}

	svc := valuation.NewService(&valuation.ExporterMock{})

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			name, v, err := svc.Evaluate(context.Background(), tc.input)
			if tc.wantErr {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(errcodes.InvalidName.String(), failure.Code(err).String())
				rq.Equal(value.InvalidNameMessage, failure.Description(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.expectedName, name)
			rq.Equal(tc.expectedCap, v.MarketCap())
			rq.Equal(tc.expectedGrade, v.Grade())
		})
	}
}

func TestServiceExportCard(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	exporter := &valuation.ExporterMock{
		CaptureFunc: func(_ context.Context, doc view.CardDocument) ([]byte, error) {
			return pngStub, nil
		},
	}

	svc := valuation.NewService(exporter)

	png, err := svc.ExportCard(context.Background(), "김민수")
	rq.NoError(err)
	rq.Equal(pngStub, png)

	calls := exporter.CaptureCalls()
	rq.Len(calls, 1)
	rq.Equal(value.Name("김민수"), calls[0].Doc.Name)
	rq.Contains(calls[0].Doc.HTML, "8,420억")
	rq.NotContains(calls[0].Doc.HTML, "<style")

	_, hasDeadline := calls[0].Ctx.Deadline()
	rq.True(hasDeadline)

	// второй раз из кэша
	png, err = svc.ExportCard(context.Background(), "김민수")
	rq.NoError(err)
	rq.Equal(pngStub, png)
	rq.Len(exporter.CaptureCalls(), 1)

	// результат нельзя испортить через возвращённый срез
	png[0] = 0
	png, err = svc.ExportCard(context.Background(), "김민수")
	rq.NoError(err)
	rq.Equal(pngStub, png)
}

func TestServiceExportCardWithoutCache(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	exporter := &valuation.ExporterMock{
		CaptureFunc: func(context.Context, view.CardDocument) ([]byte, error) {
			return pngStub, nil
		},
	}

	svc := valuation.NewService(exporter).WithCardTTL(0)

	for range 3 {
		_, err := svc.ExportCard(context.Background(), "이지은")
		rq.NoError(err)
	}

	rq.Len(exporter.CaptureCalls(), 3)
}

func TestServiceExportCardFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		capture func(ctx context.Context, doc view.CardDocument) ([]byte, error)
	}{
		{
			name: "Exporter error",
			capture: func(context.Context, view.CardDocument) ([]byte, error) {
				return nil, errors.New("target closed")
			},
		},
		{
			name: "Empty image",
			capture: func(context.Context, view.CardDocument) ([]byte, error) {
				return nil, nil
			},
		},
		{
			name: "Timeout",
			capture: func(ctx context.Context, _ view.CardDocument) ([]byte, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)

			exporter := &valuation.ExporterMock{CaptureFunc: tc.capture}
			svc := valuation.NewService(exporter).WithExportTimeout(50 * time.Millisecond)

			png, err := svc.ExportCard(context.Background(), "홍길동")
			rq.Error(err)
			rq.Nil(png)
			rq.True(domain.HasCode(err, errcodes.ExportFailed))

			var appErr *domain.AppError
			rq.ErrorAs(err, &appErr)
			rq.Equal(view.ExportFailedMessage, appErr.Message)

			// ошибки не кэшируются, повтор снова идёт в экспортёр
			_, err = svc.ExportCard(context.Background(), "홍길동")
			rq.Error(err)
			rq.Len(exporter.CaptureCalls(), 2)
		})
	}
}

func TestDownloadFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []string
		expected   string
	}{
		{name: "Query name", candidates: []string{"김민수", "이지은"}, expected: "김민수_이름값.png"},
		{name: "Input fallback", candidates: []string{"", "이지은"}, expected: "이지은_이름값.png"},
		{name: "Blank skipped", candidates: []string{"  ", " 정국 "}, expected: "정국_이름값.png"},
		{name: "BOM trimmed", candidates: []string{"\uFEFF김민수"}, expected: "김민수_이름값.png"},
		{name: "Default", candidates: []string{"", ""}, expected: "이름_이름값.png"},
		{name: "No candidates", expected: "이름_이름값.png"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, valuation.DownloadFilename(tc.candidates...))
		})
	}
}
