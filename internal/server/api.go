package server

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"namevalue/internal/animator"
	"namevalue/internal/domain"
	"namevalue/internal/domain/entity"
	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/view"
	"namevalue/pkg/errcodes"
	"namevalue/pkg/httpx/reply"
	"namevalue/pkg/httpx/req"
	"namevalue/pkg/logx"
	"namevalue/pkg/lox"
	"namevalue/pkg/rest"
)

func (s Server) getV1Grades(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, lox.Map(entity.GradeStyles(), newRESTGrade))

	return nil
}

func (s Server) getV1Valuation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	name, v, err := s.valuationService.Evaluate(ctx, r.URL.Query().Get(queryParamName))
	if err != nil {
		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTValuation(name, v))

	return nil
}

func (s Server) postV1Valuation(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ValuationRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	name, v, err := s.valuationService.Evaluate(ctx, request.Name)
	if err != nil {
		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTValuation(name, v))

	return nil
}

// getV1ValuationCountUp отдаёт кадры счётчика как text/event-stream:
// по событию на кадр и финальное событие done.
func (s Server) getV1ValuationCountUp(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	_, v, err := s.valuationService.Evaluate(ctx, r.URL.Query().Get(queryParamName))
	if err != nil {
		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("%T does not support flushing", w)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	anim := animator.New(s.animation.FrameInterval)
	defer anim.Stop()

	handle := anim.Animate(ctx, v.MarketCap(), s.animation.Duration, func(frame int) {
		_, _ = fmt.Fprintf(w, "data: %d\n\n", frame)
		flusher.Flush()
	})

	<-handle.Done()

	if ctx.Err() != nil {
		return nil
	}

	_, _ = fmt.Fprintf(w, "event: done\ndata: %d\n\n", v.MarketCap())
	flusher.Flush()

	return nil
}

func (s Server) getV1ValuationCard(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	name, _, err := s.valuationService.Evaluate(ctx, r.URL.Query().Get(queryParamName))
	if err != nil {
		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	png, err := s.valuationService.ExportCard(ctx, name)
	if err != nil {
		if domain.HasCode(err, errcodes.ExportFailed) {
			logger(ctx).Error("valuationService.ExportCard", logx.Error(err))
			reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{
				Code:    rest.ErrorCode(errcodes.ExportFailed.String()),
				Message: view.ExportFailedMessage,
			})

			return nil
		}

		return fmt.Errorf("valuationService.ExportCard: %w", err)
	}

	writePNG(w, png, valuation.DownloadFilename(name.String()))

	return nil
}

func writePNG(w http.ResponseWriter, png []byte, filename string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(png)
}
