package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"git.appkode.ru/pub/go/failure"

	"namevalue/internal/domain/service/valuation"
	"namevalue/internal/domain/value"
	"namevalue/internal/view"
	"namevalue/pkg/logx"
)

const (
	formFieldName    = "name"
	queryParamName   = "name"
	queryParamInput  = "input"
	queryParamExport = "export"

	exportFailed = "failed"
)

func (s Server) getIndex(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()
	raw := query.Get(queryParamName)

	if raw == "" {
		return renderPage(w, http.StatusOK, view.Page{})
	}

	name, v, err := s.valuationService.Evaluate(ctx, raw)
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			// кривое имя из ссылки просто подставляем в форму
			return renderPage(w, http.StatusOK, view.Page{Input: raw})
		}

		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	card := view.NewCardData(name, v)

	return renderPage(w, http.StatusOK, view.Page{
		Card:         &card,
		ExportFailed: query.Get(queryParamExport) == exportFailed,
		DownloadURL:  cardURL(name),
		CountUpURL:   countUpURL(name),
	})
}

func (s Server) postIndex(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		return failure.NewInvalidArgumentErrorFromError(fmt.Errorf("r.ParseForm: %w", err))
	}

	raw := r.PostForm.Get(formFieldName)

	name, _, err := s.valuationService.Evaluate(ctx, raw)
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			return renderPage(w, http.StatusBadRequest, view.Page{
				Input: raw,
				Error: failure.Description(err),
			})
		}

		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	http.Redirect(w, r, indexURL(name, false), http.StatusSeeOther)

	return nil
}

func (s Server) getCardPNG(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()
	raw := query.Get(queryParamName)

	name, _, err := s.valuationService.Evaluate(ctx, raw)
	if err != nil {
		if failure.IsInvalidArgumentError(err) {
			http.Redirect(w, r, "/?"+url.Values{queryParamName: {raw}}.Encode(), http.StatusSeeOther)
			return nil
		}

		return fmt.Errorf("valuationService.Evaluate: %w", err)
	}

	png, err := s.valuationService.ExportCard(ctx, name)
	if err != nil {
		logger(ctx).Warn("card download failed, back to the page", logx.Error(err))
		http.Redirect(w, r, indexURL(name, true), http.StatusSeeOther)

		return nil
	}

	writePNG(w, png, valuation.DownloadFilename(raw, query.Get(queryParamInput)))

	return nil
}

func renderPage(w http.ResponseWriter, status int, page view.Page) error {
	var buf bytes.Buffer

	if err := view.RenderPage(&buf, page); err != nil {
		return fmt.Errorf("view.RenderPage: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)

	return nil
}

func indexURL(name value.Name, failed bool) string {
	q := url.Values{queryParamName: {name.String()}}
	if failed {
		q.Set(queryParamExport, exportFailed)
	}

	return "/?" + q.Encode()
}

func cardURL(name value.Name) string {
	return "/card.png?" + url.Values{queryParamName: {name.String()}}.Encode()
}

func countUpURL(name value.Name) string {
	return "/v1/valuation/countup?" + url.Values{queryParamName: {name.String()}}.Encode()
}
