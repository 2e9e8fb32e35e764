package application

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"namevalue/internal/server"
	"namevalue/pkg/logx"
	"namevalue/pkg/middlewarex"
)

const logFieldMaxLen = 4096

func NewRouter(srv server.Server) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	srv.RegisterRoutes(r)

	return r
}
